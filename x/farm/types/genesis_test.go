package types

import (
	"errors"
	"testing"
)

func TestGenesisValidate(t *testing.T) {
	validPool := func(t *testing.T, index uint64) StakePool {
		p := newTestPool(t)
		p.PoolIndex = index
		return *p
	}
	vault := VaultAccount{
		Address: StakedVaultAddress(0).String(),
		Denom:   "ustake",
		Owner:   AuthorityAddress().String(),
	}

	tests := []struct {
		name    string
		gs      GenesisState
		wantErr bool
	}{
		{"default", *DefaultGenesis(), false},
		{
			"bootstrapped with a pool",
			GenesisState{
				Registry:  &PoolRegistry{PoolCounter: 1},
				Pools:     []StakePool{validPool(t, 0)},
				Positions: []Position{{PoolIndex: 0, Depositor: testDepositor, StakedAmount: 5, RewardDebt: 0}},
				Vaults:    []VaultAccount{vault},
			},
			false,
		},
		{"pools without registry", GenesisState{Pools: []StakePool{validPool(t, 0)}}, true},
		{"pool index beyond counter", GenesisState{Registry: &PoolRegistry{PoolCounter: 1}, Pools: []StakePool{validPool(t, 1)}}, true},
		{
			"duplicate pool",
			GenesisState{Registry: &PoolRegistry{PoolCounter: 2}, Pools: []StakePool{validPool(t, 0), validPool(t, 0)}},
			true,
		},
		{
			"position for unknown pool",
			GenesisState{
				Registry:  &PoolRegistry{PoolCounter: 1},
				Positions: []Position{{PoolIndex: 0, Depositor: testDepositor}},
			},
			true,
		},
		{
			"duplicate vault",
			GenesisState{Registry: &PoolRegistry{}, Vaults: []VaultAccount{vault, vault}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.gs.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidGenesis) {
					t.Errorf("expected ErrInvalidGenesis, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
