package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/stake-farm/x/farm/client/chain"
	"github.com/openalpha/stake-farm/x/farm/types"
)

const (
	flagOffset = "offset"
	flagLimit  = "limit"
)

// GetQueryCmd returns the cli query commands for the farm module
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the farm module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdQueryRegistry(),
		CmdQueryPool(),
		CmdQueryPools(),
		CmdQueryPosition(),
		CmdQueryPositions(),
		CmdQueryPending(),
		CmdQueryVaults(),
	)

	return cmd
}

func queryReader(cmd *cobra.Command) (client.Context, *chain.Reader, error) {
	clientCtx, err := client.GetClientQueryContext(cmd)
	if err != nil {
		return client.Context{}, nil, err
	}
	return clientCtx, chain.NewReader(clientCtx), nil
}

func printJSON(clientCtx client.Context, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return clientCtx.PrintBytes(out)
}

// nextPoolIndex returns the index the next initialized pool will receive
func nextPoolIndex(cmd *cobra.Command) (uint64, error) {
	_, reader, err := queryReader(cmd)
	if err != nil {
		return 0, err
	}
	registry, err := reader.Registry(cmd.Context())
	if err != nil {
		return 0, err
	}
	return registry.PoolCounter, nil
}

// CmdQueryRegistry returns the command to query the pool registry
func CmdQueryRegistry() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Query the pool registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, reader, err := queryReader(cmd)
			if err != nil {
				return err
			}
			registry, err := reader.Registry(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(clientCtx, registry)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPool returns the command to query a pool
func CmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [pool-index]",
		Short: "Query a pool by index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, reader, err := queryReader(cmd)
			if err != nil {
				return err
			}
			index, err := parseUint("pool-index", args[0])
			if err != nil {
				return err
			}
			pool, _, err := reader.Pool(cmd.Context(), index)
			if err != nil {
				return err
			}
			return printJSON(clientCtx, pool)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPools returns the command to list pools
func CmdQueryPools() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "List pools in index order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, reader, err := queryReader(cmd)
			if err != nil {
				return err
			}
			offset, _ := cmd.Flags().GetUint64(flagOffset)
			limit, _ := cmd.Flags().GetUint64(flagLimit)

			pools, total, err := reader.Pools(cmd.Context(), offset, limit)
			if err != nil {
				return err
			}
			return printJSON(clientCtx, struct {
				Pools []types.StakePool `json:"pools"`
				Total uint64            `json:"total"`
			}{pools, total})
		},
	}

	cmd.Flags().Uint64(flagOffset, 0, "Index of the first pool")
	cmd.Flags().Uint64(flagLimit, 50, "Maximum number of pools, 0 for all")
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPosition returns the command to query a position
func CmdQueryPosition() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "position [pool-index] [depositor]",
		Short: "Query a depositor's position in a pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, reader, err := queryReader(cmd)
			if err != nil {
				return err
			}
			index, err := parseUint("pool-index", args[0])
			if err != nil {
				return err
			}
			depositor, err := sdk.AccAddressFromBech32(args[1])
			if err != nil {
				return err
			}
			pos, err := reader.Position(cmd.Context(), index, depositor)
			if err != nil {
				return err
			}
			return printJSON(clientCtx, pos)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPositions returns the command to query every position of a pool
func CmdQueryPositions() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "positions [pool-index]",
		Short: "Query all positions in a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, reader, err := queryReader(cmd)
			if err != nil {
				return err
			}
			index, err := parseUint("pool-index", args[0])
			if err != nil {
				return err
			}
			positions, err := reader.Positions(cmd.Context(), index)
			if err != nil {
				return err
			}
			return printJSON(clientCtx, positions)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPending returns the command to query claimable reward
func CmdQueryPending() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pending [pool-index] [depositor]",
		Short: "Query the reward a depositor could claim at the latest height",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, reader, err := queryReader(cmd)
			if err != nil {
				return err
			}
			index, err := parseUint("pool-index", args[0])
			if err != nil {
				return err
			}
			depositor, err := sdk.AccAddressFromBech32(args[1])
			if err != nil {
				return err
			}
			pending, err := reader.PendingReward(cmd.Context(), index, depositor)
			if err != nil {
				return err
			}
			return printJSON(clientCtx, map[string]uint64{"pending_reward": pending})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryVaults returns the command to query a pool's vaults
func CmdQueryVaults() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vaults [pool-index]",
		Short: "Query the escrow accounts of a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, reader, err := queryReader(cmd)
			if err != nil {
				return err
			}
			index, err := parseUint("pool-index", args[0])
			if err != nil {
				return err
			}
			vaults, err := reader.Vaults(cmd.Context(), index)
			if err != nil {
				return err
			}
			return printJSON(clientCtx, vaults)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
