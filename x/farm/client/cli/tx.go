package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/openalpha/stake-farm/x/farm/types"
)

const (
	flagLink        = "link"
	flagThemeID     = "theme-id"
	flagRewardCount = "reward-token-count"
)

// GetTxCmd returns the transaction commands for the farm module
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Farm module transaction commands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdBootstrap(),
		CmdInitializePool(),
		CmdDeposit(),
		CmdWithdraw(),
		CmdEmergencyWithdraw(),
		CmdUpdateProjectInfo(),
		CmdSetBonusTime(),
		CmdUpdateEndBlock(),
		CmdClosePosition(),
	)

	return cmd
}

func parseUint(name, arg string) (uint64, error) {
	v, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", name, err)
	}
	return v, nil
}

func parseUints(names []string, args []string) ([]uint64, error) {
	out := make([]uint64, len(names))
	for i, name := range names {
		v, err := parseUint(name, args[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// CmdBootstrap returns the command to create the pool registry
func CmdBootstrap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Create the pool registry and the vault authority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgBootstrap{Payer: clientCtx.GetFromAddress().String()}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdInitializePool returns the command to create a pool
func CmdInitializePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-pool [staked-denom] [reward-denom] [reward-amount] [start] [end] [name]",
		Short: "Create a staking pool funded with reward-amount over [start, end)",
		Long: `Create a staking pool under the next registry index. The reward budget
is moved from the signer into the pool's reward vault and paid out at
reward-amount / (end - start) per block.`,
		Args: cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			nums, err := parseUints([]string{"reward-amount", "start", "end"}, args[2:5])
			if err != nil {
				return err
			}
			link, _ := cmd.Flags().GetString(flagLink)
			themeID, _ := cmd.Flags().GetUint32(flagThemeID)
			rewardCount, _ := cmd.Flags().GetUint64(flagRewardCount)

			index, err := nextPoolIndex(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgInitializePool{
				Owner:            clientCtx.GetFromAddress().String(),
				StakedDenom:      args[0],
				RewardDenom:      args[1],
				RewardTokenCount: rewardCount,
				RewardAmount:     nums[0],
				StartTime:        nums[1],
				EndTime:          nums[2],
				PoolName:         args[5],
				Link:             link,
				ThemeID:          themeID,
				StakedVault:      types.StakedVaultAddress(index).String(),
				RewardVault:      types.RewardVaultAddress(index).String(),
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagLink, "", "Project link")
	cmd.Flags().Uint32(flagThemeID, 0, "Display theme")
	cmd.Flags().Uint64(flagRewardCount, 1, "Number of reward tokens")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDeposit returns the command to stake into a pool
func CmdDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [pool-index] [amount]",
		Short: "Stake into a pool, claiming pending reward",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			nums, err := parseUints([]string{"pool-index", "amount"}, args)
			if err != nil {
				return err
			}

			msg := &types.MsgDeposit{
				Depositor:   clientCtx.GetFromAddress().String(),
				PoolIndex:   nums[0],
				Amount:      nums[1],
				StakedVault: types.StakedVaultAddress(nums[0]).String(),
				RewardVault: types.RewardVaultAddress(nums[0]).String(),
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdraw returns the command to unstake from a pool
func CmdWithdraw() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [pool-index] [amount]",
		Short: "Unstake from a pool and claim pending reward; amount 0 only claims",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			nums, err := parseUints([]string{"pool-index", "amount"}, args)
			if err != nil {
				return err
			}

			msg := &types.MsgWithdraw{
				Depositor:   clientCtx.GetFromAddress().String(),
				PoolIndex:   nums[0],
				Amount:      nums[1],
				StakedVault: types.StakedVaultAddress(nums[0]).String(),
				RewardVault: types.RewardVaultAddress(nums[0]).String(),
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdEmergencyWithdraw returns the command to recover stake without reward
func CmdEmergencyWithdraw() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emergency-withdraw [pool-index]",
		Short: "Recover the full stake of a pool, forfeiting pending reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			index, err := parseUint("pool-index", args[0])
			if err != nil {
				return err
			}

			msg := &types.MsgEmergencyWithdraw{
				Depositor:   clientCtx.GetFromAddress().String(),
				PoolIndex:   index,
				StakedVault: types.StakedVaultAddress(index).String(),
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateProjectInfo returns the command to replace pool metadata
func CmdUpdateProjectInfo() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-info [pool-index] [name]",
		Short: "Replace the display metadata of a pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			index, err := parseUint("pool-index", args[0])
			if err != nil {
				return err
			}
			link, _ := cmd.Flags().GetString(flagLink)
			themeID, _ := cmd.Flags().GetUint32(flagThemeID)

			msg := &types.MsgUpdateProjectInfo{
				Owner:     clientCtx.GetFromAddress().String(),
				PoolIndex: index,
				PoolName:  args[1],
				Link:      link,
				ThemeID:   themeID,
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagLink, "", "Project link")
	cmd.Flags().Uint32(flagThemeID, 0, "Display theme")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetBonusTime returns the command to arm a pool's bonus window
func CmdSetBonusTime() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-bonus [pool-index] [multiplier] [bonus-start] [bonus-end]",
		Short: "Arm the one-time bonus window of a pool",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			nums, err := parseUints([]string{"pool-index", "multiplier", "bonus-start", "bonus-end"}, args)
			if err != nil {
				return err
			}

			msg := &types.MsgSetBonusTime{
				Owner:       clientCtx.GetFromAddress().String(),
				PoolIndex:   nums[0],
				Multiplier:  nums[1],
				BonusStart:  nums[2],
				BonusEnd:    nums[3],
				StakedVault: types.StakedVaultAddress(nums[0]).String(),
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateEndBlock returns the command to extend a pool
func CmdUpdateEndBlock() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extend [pool-index] [new-end]",
		Short: "Extend a running pool, funding the added blocks at the current rate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			nums, err := parseUints([]string{"pool-index", "new-end"}, args)
			if err != nil {
				return err
			}

			msg := &types.MsgUpdateEndBlock{
				Owner:       clientCtx.GetFromAddress().String(),
				PoolIndex:   nums[0],
				NewEndTime:  nums[1],
				RewardVault: types.RewardVaultAddress(nums[0]).String(),
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdClosePosition returns the command to delete an empty position
func CmdClosePosition() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "close-position [pool-index]",
		Short: "Delete the signer's empty position in a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			index, err := parseUint("pool-index", args[0])
			if err != nil {
				return err
			}

			msg := &types.MsgClosePosition{
				Depositor: clientCtx.GetFromAddress().String(),
				PoolIndex: index,
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
