package keeper

import (
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/stake-farm/x/farm/types"
)

// InitializePool creates a pool under the next registry index, opens its two
// vaults and moves the reward budget from the owner into the reward vault.
func (k *Keeper) InitializePool(ctx sdk.Context, msg *types.MsgInitializePool) (*types.StakePool, error) {
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidAddress, err.Error())
	}

	var pool *types.StakePool
	err = k.atomic(ctx, func(ctx sdk.Context) error {
		index, err := k.allocatePoolIndex(ctx)
		if err != nil {
			return err
		}

		stakedVaultAddr := types.StakedVaultAddress(index)
		rewardVaultAddr := types.RewardVaultAddress(index)
		if err := checkDerived(msg.StakedVault, stakedVaultAddr, types.ErrVaultAddressMismatch); err != nil {
			return err
		}
		if err := checkDerived(msg.RewardVault, rewardVaultAddr, types.ErrVaultAddressMismatch); err != nil {
			return err
		}

		decimals, err := k.denomDecimals(ctx, msg.StakedDenom)
		if err != nil {
			return err
		}
		pool, err = types.NewStakePool(types.NewStakePoolParams{
			PoolIndex:        index,
			Owner:            owner.String(),
			StakedDenom:      msg.StakedDenom,
			RewardDenom:      msg.RewardDenom,
			StakedDecimals:   decimals,
			RewardTokenCount: msg.RewardTokenCount,
			RewardAmount:     msg.RewardAmount,
			StartTime:        msg.StartTime,
			EndTime:          msg.EndTime,
			Metadata:         msg.Metadata(),
		})
		if err != nil {
			return err
		}

		if err := k.checkSource(ctx, owner, msg.RewardDenom, msg.RewardAmount); err != nil {
			return err
		}
		if _, err := k.initializeVault(ctx, stakedVaultAddr, pool.StakedDenom, k.authority.address); err != nil {
			return err
		}
		if _, err := k.initializeVault(ctx, rewardVaultAddr, pool.RewardDenom, k.authority.address); err != nil {
			return err
		}
		if err := k.transfer(ctx, owner, rewardVaultAddr, pool.RewardDenom, msg.RewardAmount); err != nil {
			return err
		}

		k.SetPool(ctx, pool)

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeInitializePool,
				sdk.NewAttribute(types.AttributeKeyPoolIndex, strconv.FormatUint(index, 10)),
				sdk.NewAttribute(types.AttributeKeyOwner, pool.Owner),
				sdk.NewAttribute(types.AttributeKeyAmount, strconv.FormatUint(msg.RewardAmount, 10)),
				sdk.NewAttribute(types.AttributeKeyStartTime, strconv.FormatUint(pool.StartTime, 10)),
				sdk.NewAttribute(types.AttributeKeyEndTime, strconv.FormatUint(pool.EndTime, 10)),
			),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.logger.Info("pool initialized",
		"pool_index", pool.PoolIndex,
		"owner", pool.Owner,
		"staked_denom", pool.StakedDenom,
		"reward_denom", pool.RewardDenom,
		"reward_rate", pool.RewardRatePerUnitTime,
		"start_time", pool.StartTime,
		"end_time", pool.EndTime,
	)
	return pool, nil
}

// UpdateProjectInfo replaces the display metadata of a pool
func (k *Keeper) UpdateProjectInfo(ctx sdk.Context, owner sdk.AccAddress, poolIndex uint64, metadata types.PoolMetadata) error {
	err := k.atomic(ctx, func(ctx sdk.Context) error {
		pool, err := k.GetPool(ctx, poolIndex)
		if err != nil {
			return err
		}
		if err := requireOwner(pool, owner); err != nil {
			return err
		}
		if err := metadata.Validate(); err != nil {
			return err
		}

		pool.Metadata = metadata
		k.SetPool(ctx, pool)

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeUpdateProjectInfo,
				sdk.NewAttribute(types.AttributeKeyPoolIndex, strconv.FormatUint(poolIndex, 10)),
			),
		)
		return nil
	})
	if err != nil {
		return err
	}

	k.logger.Info("pool metadata updated", "pool_index", poolIndex, "name", metadata.Name)
	return nil
}

// SetBonusTime brings the pool's accrual up to date and then arms its
// one-shot bonus window, shortening the schedule to keep the budget.
func (k *Keeper) SetBonusTime(ctx sdk.Context, owner sdk.AccAddress, poolIndex, multiplier, bonusStart, bonusEnd uint64, stakedVault string) (*types.StakePool, error) {
	var pool *types.StakePool
	err := k.atomic(ctx, func(ctx sdk.Context) error {
		var err error
		pool, err = k.GetPool(ctx, poolIndex)
		if err != nil {
			return err
		}
		if err := requireOwner(pool, owner); err != nil {
			return err
		}
		vault, err := k.loadVault(ctx, stakedVault, types.StakedVaultAddress(poolIndex), pool.StakedDenom)
		if err != nil {
			return err
		}

		now := k.now(ctx)
		if err := k.updatePool(ctx, pool, vault, now); err != nil {
			return err
		}
		if err := pool.ArmBonus(multiplier, bonusStart, bonusEnd, now); err != nil {
			return err
		}
		k.SetPool(ctx, pool)

		armed, _ := pool.Bonus.Get()
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeSetBonusTime,
				sdk.NewAttribute(types.AttributeKeyPoolIndex, strconv.FormatUint(poolIndex, 10)),
				sdk.NewAttribute(types.AttributeKeyMultiplier, strconv.FormatUint(multiplier, 10)),
				sdk.NewAttribute(types.AttributeKeyStartTime, strconv.FormatUint(armed.Start, 10)),
				sdk.NewAttribute(types.AttributeKeyEndTime, strconv.FormatUint(pool.EndTime, 10)),
			),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.logger.Info("bonus window armed",
		"pool_index", poolIndex,
		"multiplier", multiplier,
		"bonus_start", bonusStart,
		"bonus_end", bonusEnd,
		"end_time", pool.EndTime,
	)
	return pool, nil
}

// UpdateEndBlock extends a running pool and moves the extra reward for the
// added time units from the owner into the reward vault.
func (k *Keeper) UpdateEndBlock(ctx sdk.Context, owner sdk.AccAddress, poolIndex, newEnd uint64, rewardVault string) (*types.StakePool, uint64, error) {
	var (
		pool  *types.StakePool
		topUp uint64
	)
	err := k.atomic(ctx, func(ctx sdk.Context) error {
		var err error
		pool, err = k.GetPool(ctx, poolIndex)
		if err != nil {
			return err
		}
		if err := requireOwner(pool, owner); err != nil {
			return err
		}
		vault, err := k.loadVault(ctx, rewardVault, types.RewardVaultAddress(poolIndex), pool.RewardDenom)
		if err != nil {
			return err
		}

		topUp, err = pool.ExtendEnd(newEnd, k.now(ctx))
		if err != nil {
			return err
		}
		if err := k.checkSource(ctx, owner, pool.RewardDenom, topUp); err != nil {
			return err
		}
		if err := k.transfer(ctx, owner, sdk.MustAccAddressFromBech32(vault.Address), pool.RewardDenom, topUp); err != nil {
			return err
		}
		k.SetPool(ctx, pool)

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeUpdateEndBlock,
				sdk.NewAttribute(types.AttributeKeyPoolIndex, strconv.FormatUint(poolIndex, 10)),
				sdk.NewAttribute(types.AttributeKeyEndTime, strconv.FormatUint(newEnd, 10)),
				sdk.NewAttribute(types.AttributeKeyAmount, strconv.FormatUint(topUp, 10)),
			),
		)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	k.logger.Info("pool schedule extended", "pool_index", poolIndex, "end_time", newEnd, "top_up", topUp)
	return pool, topUp, nil
}

// updatePool accrues reward up to now against the staked vault balance
func (k *Keeper) updatePool(ctx sdk.Context, pool *types.StakePool, stakedVault types.VaultAccount, now uint64) error {
	supply, err := k.vaultBalance(ctx, stakedVault)
	if err != nil {
		return err
	}
	return pool.Update(supply, now)
}

// payReward releases amount from the pool's remaining liability and sends it
// from the reward vault to recipient.
func (k *Keeper) payReward(ctx sdk.Context, pool *types.StakePool, rewardVault types.VaultAccount, recipient sdk.AccAddress, amount uint64) error {
	if amount == 0 {
		return nil
	}
	if err := pool.ReleaseReward(amount); err != nil {
		return err
	}
	if err := k.checkVaultDebit(ctx, rewardVault, amount); err != nil {
		return err
	}
	if err := k.authority.signVaultTransfer(ctx, rewardVault, recipient, amount); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRewardPaid,
			sdk.NewAttribute(types.AttributeKeyPoolIndex, strconv.FormatUint(pool.PoolIndex, 10)),
			sdk.NewAttribute(types.AttributeKeyDepositor, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyReward, strconv.FormatUint(amount, 10)),
		),
	)
	return nil
}
