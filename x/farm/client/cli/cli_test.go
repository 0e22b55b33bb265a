package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestParseUints(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []uint64
		wantErr string
	}{
		{"valid", []string{"0", "18446744073709551615"}, []uint64{0, 18446744073709551615}, ""},
		{"negative", []string{"1", "-1"}, nil, "invalid amount"},
		{"overflow", []string{"18446744073709551616", "1"}, nil, "invalid pool-index"},
		{"not a number", []string{"x", "1"}, nil, "invalid pool-index"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseUints([]string{"pool-index", "amount"}, tt.args)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func findCmd(t *testing.T, root *cobra.Command, name string) *cobra.Command {
	t.Helper()
	for _, c := range root.Commands() {
		if c.Name() == name {
			return c
		}
	}
	t.Fatalf("no %s command under %s", name, root.Name())
	return nil
}

func TestCommandArgs(t *testing.T) {
	tests := []struct {
		root func() *cobra.Command
		name string
		args int
	}{
		{GetTxCmd, "bootstrap", 0},
		{GetTxCmd, "init-pool", 6},
		{GetTxCmd, "deposit", 2},
		{GetTxCmd, "withdraw", 2},
		{GetTxCmd, "emergency-withdraw", 1},
		{GetTxCmd, "update-info", 2},
		{GetTxCmd, "set-bonus", 4},
		{GetTxCmd, "extend", 2},
		{GetTxCmd, "close-position", 1},
		{GetQueryCmd, "registry", 0},
		{GetQueryCmd, "pool", 1},
		{GetQueryCmd, "pools", 0},
		{GetQueryCmd, "position", 2},
		{GetQueryCmd, "positions", 1},
		{GetQueryCmd, "pending", 2},
		{GetQueryCmd, "vaults", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := findCmd(t, tt.root(), tt.name)
			require.NoError(t, cmd.Args(cmd, make([]string, tt.args)))
			require.Error(t, cmd.Args(cmd, make([]string, tt.args+1)))
		})
	}
}
