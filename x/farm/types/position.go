package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Position is a depositor's stake in one pool.
type Position struct {
	PoolIndex    uint64 `protobuf:"varint,1,opt,name=pool_index,json=poolIndex,proto3" json:"pool_index"`
	Depositor    string `protobuf:"bytes,2,opt,name=depositor,proto3" json:"depositor"`
	StakedAmount uint64 `protobuf:"varint,3,opt,name=staked_amount,json=stakedAmount,proto3" json:"staked_amount"`
	RewardDebt   uint64 `protobuf:"varint,4,opt,name=reward_debt,json=rewardDebt,proto3" json:"reward_debt"`
}

// NewPosition returns a zeroed position
func NewPosition(poolIndex uint64, depositor string) *Position {
	return &Position{
		PoolIndex: poolIndex,
		Depositor: depositor,
	}
}

// PendingReward returns amount * perShare / 10^rank - rewardDebt.
func PendingReward(amount uint64, perShare math.Uint, rank uint8, rewardDebt uint64) (uint64, error) {
	entitled, err := ScaledShare(amount, perShare, rank, ErrPendingOverflow)
	if err != nil {
		return 0, err
	}
	if rewardDebt > entitled {
		return 0, errorsmod.Wrapf(ErrPendingOverflow, "reward debt %d exceeds entitlement %d", rewardDebt, entitled)
	}
	return entitled - rewardDebt, nil
}

// RewardDebtFor returns amount * perShare / 10^rank.
func RewardDebtFor(amount uint64, perShare math.Uint, rank uint8) (uint64, error) {
	return ScaledShare(amount, perShare, rank, ErrRewardDebtOverflow)
}

// Pending returns the unclaimed reward of the position against pool.
func (p *Position) Pending(pool *StakePool) (uint64, error) {
	return PendingReward(p.StakedAmount, pool.AccruedPerShare, pool.PrecisionRank, p.RewardDebt)
}

// SyncRewardDebt resets the checkpoint baseline after a balance change or a payout.
func (p *Position) SyncRewardDebt(pool *StakePool) error {
	debt, err := RewardDebtFor(p.StakedAmount, pool.AccruedPerShare, pool.PrecisionRank)
	if err != nil {
		return err
	}
	p.RewardDebt = debt
	return nil
}

// AddStake increases the staked amount
func (p *Position) AddStake(amount uint64) error {
	staked, err := checkedAdd64(p.StakedAmount, amount, ErrStakedSupplyOverflow)
	if err != nil {
		return err
	}
	p.StakedAmount = staked
	return nil
}

// RemoveStake decreases the staked amount
func (p *Position) RemoveStake(amount uint64) error {
	if amount > p.StakedAmount {
		return errorsmod.Wrapf(ErrAmountExceedsBalance, "requested %d, staked %d", amount, p.StakedAmount)
	}
	p.StakedAmount -= amount
	return nil
}

// Address returns the derived address of the position
func (p *Position) Address() (sdk.AccAddress, error) {
	depositor, err := sdk.AccAddressFromBech32(p.Depositor)
	if err != nil {
		return nil, err
	}
	return PositionAddress(p.PoolIndex, depositor), nil
}

// Validate performs stateless validation of a persisted position
func (p *Position) Validate() error {
	if _, err := sdk.AccAddressFromBech32(p.Depositor); err != nil {
		return fmt.Errorf("position depositor: %w", err)
	}
	if p.StakedAmount == 0 && p.RewardDebt != 0 {
		return fmt.Errorf("empty position of %s in pool %d carries reward debt %d", p.Depositor, p.PoolIndex, p.RewardDebt)
	}
	return nil
}
