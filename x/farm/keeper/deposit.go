package keeper

import (
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/stake-farm/x/farm/types"
)

// StakeResult describes the effect of a deposit or withdrawal
type StakeResult struct {
	Position   *types.Position
	Moved      uint64
	RewardPaid uint64
}

// Deposit stakes amount into a pool. Pending reward on the existing stake is
// paid out first.
func (k *Keeper) Deposit(ctx sdk.Context, depositor sdk.AccAddress, poolIndex, amount uint64, stakedVault, rewardVault string) (*StakeResult, error) {
	if amount == 0 {
		return nil, errorsmod.Wrap(types.ErrInvalidAmount, "deposit amount must be positive")
	}

	result := &StakeResult{Moved: amount}
	err := k.atomic(ctx, func(ctx sdk.Context) error {
		pool, err := k.GetPool(ctx, poolIndex)
		if err != nil {
			return err
		}
		staked, err := k.loadVault(ctx, stakedVault, types.StakedVaultAddress(poolIndex), pool.StakedDenom)
		if err != nil {
			return err
		}
		reward, err := k.loadVault(ctx, rewardVault, types.RewardVaultAddress(poolIndex), pool.RewardDenom)
		if err != nil {
			return err
		}
		if err := k.checkSource(ctx, depositor, pool.StakedDenom, amount); err != nil {
			return err
		}
		if err := k.checkRecipient(depositor); err != nil {
			return err
		}

		if err := k.updatePool(ctx, pool, staked, k.now(ctx)); err != nil {
			return err
		}

		pos, err := k.getOrCreatePosition(ctx, poolIndex, depositor)
		if err != nil {
			return err
		}
		if pos.StakedAmount > 0 {
			pending, err := pos.Pending(pool)
			if err != nil {
				return err
			}
			if err := k.payReward(ctx, pool, reward, depositor, pending); err != nil {
				return err
			}
			result.RewardPaid = pending
		}

		if err := pos.AddStake(amount); err != nil {
			return err
		}
		if err := k.transfer(ctx, depositor, sdk.MustAccAddressFromBech32(staked.Address), pool.StakedDenom, amount); err != nil {
			return err
		}
		if err := pos.SyncRewardDebt(pool); err != nil {
			return err
		}

		k.SetPool(ctx, pool)
		k.SetPosition(ctx, pos)
		result.Position = pos

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeDeposit,
				sdk.NewAttribute(types.AttributeKeyPoolIndex, strconv.FormatUint(poolIndex, 10)),
				sdk.NewAttribute(types.AttributeKeyDepositor, depositor.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, strconv.FormatUint(amount, 10)),
				sdk.NewAttribute(types.AttributeKeyStaked, strconv.FormatUint(pos.StakedAmount, 10)),
			),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.logger.Info("deposit",
		"pool_index", poolIndex,
		"depositor", depositor.String(),
		"amount", amount,
		"reward_paid", result.RewardPaid,
		"staked_amount", result.Position.StakedAmount,
	)
	return result, nil
}

// Withdraw unstakes amount from a pool and pays out pending reward. An amount
// of zero only claims.
func (k *Keeper) Withdraw(ctx sdk.Context, depositor sdk.AccAddress, poolIndex, amount uint64, stakedVault, rewardVault string) (*StakeResult, error) {
	result := &StakeResult{Moved: amount}
	err := k.atomic(ctx, func(ctx sdk.Context) error {
		pool, err := k.GetPool(ctx, poolIndex)
		if err != nil {
			return err
		}
		pos, err := k.GetPosition(ctx, poolIndex, depositor)
		if err != nil {
			return err
		}
		if amount > pos.StakedAmount {
			return errorsmod.Wrapf(types.ErrAmountExceedsBalance, "requested %d, staked %d", amount, pos.StakedAmount)
		}

		staked, err := k.loadVault(ctx, stakedVault, types.StakedVaultAddress(poolIndex), pool.StakedDenom)
		if err != nil {
			return err
		}
		reward, err := k.loadVault(ctx, rewardVault, types.RewardVaultAddress(poolIndex), pool.RewardDenom)
		if err != nil {
			return err
		}
		if err := k.checkRecipient(depositor); err != nil {
			return err
		}

		if err := k.updatePool(ctx, pool, staked, k.now(ctx)); err != nil {
			return err
		}

		pending, err := pos.Pending(pool)
		if err != nil {
			return err
		}
		if err := pos.RemoveStake(amount); err != nil {
			return err
		}
		if amount > 0 {
			if err := k.checkVaultDebit(ctx, staked, amount); err != nil {
				return err
			}
			if err := k.authority.signVaultTransfer(ctx, staked, depositor, amount); err != nil {
				return err
			}
		}
		if err := k.payReward(ctx, pool, reward, depositor, pending); err != nil {
			return err
		}
		result.RewardPaid = pending

		if err := pos.SyncRewardDebt(pool); err != nil {
			return err
		}

		k.SetPool(ctx, pool)
		k.SetPosition(ctx, pos)
		result.Position = pos

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeWithdraw,
				sdk.NewAttribute(types.AttributeKeyPoolIndex, strconv.FormatUint(poolIndex, 10)),
				sdk.NewAttribute(types.AttributeKeyDepositor, depositor.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, strconv.FormatUint(amount, 10)),
				sdk.NewAttribute(types.AttributeKeyReward, strconv.FormatUint(pending, 10)),
			),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.logger.Info("withdraw",
		"pool_index", poolIndex,
		"depositor", depositor.String(),
		"amount", amount,
		"reward_paid", result.RewardPaid,
		"staked_amount", result.Position.StakedAmount,
	)
	return result, nil
}

// EmergencyWithdraw returns the full stake without touching accrual. Pending
// reward is forfeited.
func (k *Keeper) EmergencyWithdraw(ctx sdk.Context, depositor sdk.AccAddress, poolIndex uint64, stakedVault string) (uint64, error) {
	var withdrawn uint64
	err := k.atomic(ctx, func(ctx sdk.Context) error {
		pool, err := k.GetPool(ctx, poolIndex)
		if err != nil {
			return err
		}
		staked, err := k.loadVault(ctx, stakedVault, types.StakedVaultAddress(poolIndex), pool.StakedDenom)
		if err != nil {
			return err
		}
		pos, err := k.GetPosition(ctx, poolIndex, depositor)
		if err != nil {
			return err
		}
		if pos.StakedAmount == 0 {
			return errorsmod.Wrapf(types.ErrEmptyPosition, "pool %d, depositor %s", poolIndex, depositor)
		}
		if err := k.checkRecipient(depositor); err != nil {
			return err
		}

		withdrawn = pos.StakedAmount
		if err := k.checkVaultDebit(ctx, staked, withdrawn); err != nil {
			return err
		}
		if err := k.authority.signVaultTransfer(ctx, staked, depositor, withdrawn); err != nil {
			return err
		}

		pos.StakedAmount = 0
		pos.RewardDebt = 0
		k.SetPosition(ctx, pos)

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeEmergencyWithdraw,
				sdk.NewAttribute(types.AttributeKeyPoolIndex, strconv.FormatUint(poolIndex, 10)),
				sdk.NewAttribute(types.AttributeKeyDepositor, depositor.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, strconv.FormatUint(withdrawn, 10)),
			),
		)
		return nil
	})
	if err != nil {
		return 0, err
	}

	k.logger.Info("emergency withdraw", "pool_index", poolIndex, "depositor", depositor.String(), "amount", withdrawn)
	return withdrawn, nil
}

// ClosePosition deletes a position that no longer holds stake
func (k *Keeper) ClosePosition(ctx sdk.Context, depositor sdk.AccAddress, poolIndex uint64) error {
	err := k.atomic(ctx, func(ctx sdk.Context) error {
		pos, err := k.GetPosition(ctx, poolIndex, depositor)
		if err != nil {
			return err
		}
		if pos.StakedAmount != 0 {
			return errorsmod.Wrapf(types.ErrPositionNotEmpty, "%d still staked", pos.StakedAmount)
		}
		k.DeletePosition(ctx, poolIndex, depositor)

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeClosePosition,
				sdk.NewAttribute(types.AttributeKeyPoolIndex, strconv.FormatUint(poolIndex, 10)),
				sdk.NewAttribute(types.AttributeKeyDepositor, depositor.String()),
			),
		)
		return nil
	})
	if err != nil {
		return err
	}

	k.logger.Info("position closed", "pool_index", poolIndex, "depositor", depositor.String())
	return nil
}

// PendingReward returns the reward the depositor could claim now, accruing a
// copy of the pool to the current time unit.
func (k *Keeper) PendingReward(ctx sdk.Context, poolIndex uint64, depositor sdk.AccAddress) (uint64, error) {
	pool, err := k.GetPool(ctx, poolIndex)
	if err != nil {
		return 0, err
	}
	pos, err := k.GetPosition(ctx, poolIndex, depositor)
	if err != nil {
		return 0, err
	}
	vault, err := k.GetVault(ctx, types.StakedVaultAddress(poolIndex))
	if err != nil {
		return 0, err
	}
	supply, err := k.vaultBalance(ctx, vault)
	if err != nil {
		return 0, err
	}
	preview, err := pool.Preview(supply, k.now(ctx))
	if err != nil {
		return 0, err
	}
	return pos.Pending(preview)
}
