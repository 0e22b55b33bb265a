package types

import (
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Metadata limits
const (
	MaxPoolNameLength = 31
	MaxLinkLength     = 128
)

// Bonus is an interval [Start, End) during which each time unit counts
// Multiplier times.
type Bonus struct {
	Multiplier uint64 `json:"multiplier"`
	Start      uint64 `json:"start"`
	End        uint64 `json:"end"`
}

// BonusWindow is either unset or holds exactly one Bonus.
type BonusWindow struct {
	set   bool
	bonus Bonus
}

// NoBonus returns an unset window.
func NoBonus() BonusWindow {
	return BonusWindow{}
}

// WithBonus returns a window holding b.
func WithBonus(b Bonus) BonusWindow {
	return BonusWindow{set: true, bonus: b}
}

// Get returns the bonus and whether one is set.
func (w BonusWindow) Get() (Bonus, bool) {
	return w.bonus, w.set
}

// IsSet reports whether a bonus is armed.
func (w BonusWindow) IsSet() bool {
	return w.set
}

// MarshalJSON encodes an unset window as null.
func (w BonusWindow) MarshalJSON() ([]byte, error) {
	if !w.set {
		return []byte("null"), nil
	}
	return json.Marshal(w.bonus)
}

// UnmarshalJSON decodes null as an unset window.
func (w *BonusWindow) UnmarshalJSON(bz []byte) error {
	if string(bz) == "null" {
		*w = NoBonus()
		return nil
	}
	var b Bonus
	if err := json.Unmarshal(bz, &b); err != nil {
		return err
	}
	*w = WithBonus(b)
	return nil
}

// PoolMetadata is display information with no effect on accrual.
type PoolMetadata struct {
	Name    string `json:"name"`
	Link    string `json:"link"`
	ThemeID uint32 `json:"theme_id"`
}

// Validate checks metadata bounds
func (m PoolMetadata) Validate() error {
	if m.Name == "" || len(m.Name) > MaxPoolNameLength {
		return errorsmod.Wrapf(ErrInvalidPoolMetadata, "pool name must be 1-%d bytes", MaxPoolNameLength)
	}
	if len(m.Link) > MaxLinkLength {
		return errorsmod.Wrapf(ErrInvalidPoolMetadata, "link exceeds %d bytes", MaxLinkLength)
	}
	return nil
}

// StakePool is the configuration and accrual checkpoint of one pool.
type StakePool struct {
	PoolIndex     uint64 `json:"pool_index"`
	Owner         string `json:"owner"`
	StakedDenom   string `json:"staked_denom"`
	RewardDenom   string `json:"reward_denom"`
	IsInitialized bool   `json:"is_initialized"`
	PrecisionRank uint8  `json:"precision_rank"`

	RewardTokenCount uint64 `json:"reward_token_count"`

	// Bonus is cleared once its end has passed; BonusConsumed stays set so
	// a pool can never arm a second window.
	Bonus         BonusWindow `json:"bonus"`
	BonusConsumed bool        `json:"bonus_consumed"`

	LastCheckpointTime    uint64    `json:"last_checkpoint_time"`
	StartTime             uint64    `json:"start_time"`
	EndTime               uint64    `json:"end_time"`
	RewardAmountRemaining uint64    `json:"reward_amount_remaining"`
	RewardRatePerUnitTime uint64    `json:"reward_rate_per_unit_time"`
	AccruedPerShare       math.Uint `json:"accrued_per_share"`

	Metadata PoolMetadata `json:"metadata"`
}

// NewStakePoolParams groups the inputs of pool initialization
type NewStakePoolParams struct {
	PoolIndex        uint64
	Owner            string
	StakedDenom      string
	RewardDenom      string
	StakedDecimals   uint32
	RewardTokenCount uint64
	RewardAmount     uint64
	StartTime        uint64
	EndTime          uint64
	Metadata         PoolMetadata
}

// RewardRate returns amount / (end - start) using integer division.
func RewardRate(amount, start, end uint64) (uint64, error) {
	if end <= start {
		return 0, errorsmod.Wrapf(ErrRewardRateDivision, "end %d must be after start %d", end, start)
	}
	return amount / (end - start), nil
}

// NewStakePool builds an initialized pool with an empty accrual checkpoint.
func NewStakePool(p NewStakePoolParams) (*StakePool, error) {
	rank, err := PrecisionRankForDecimals(p.StakedDecimals)
	if err != nil {
		return nil, err
	}
	if p.RewardTokenCount == 0 {
		return nil, ErrInvalidRewardTokenCount
	}
	if err := p.Metadata.Validate(); err != nil {
		return nil, err
	}
	rate, err := RewardRate(p.RewardAmount, p.StartTime, p.EndTime)
	if err != nil {
		return nil, err
	}

	return &StakePool{
		PoolIndex:             p.PoolIndex,
		Owner:                 p.Owner,
		StakedDenom:           p.StakedDenom,
		RewardDenom:           p.RewardDenom,
		IsInitialized:         true,
		PrecisionRank:         rank,
		RewardTokenCount:      p.RewardTokenCount,
		Bonus:                 NoBonus(),
		LastCheckpointTime:    p.StartTime,
		StartTime:             p.StartTime,
		EndTime:               p.EndTime,
		RewardAmountRemaining: p.RewardAmount,
		RewardRatePerUnitTime: rate,
		AccruedPerShare:       math.ZeroUint(),
		Metadata:              p.Metadata,
	}, nil
}

// Address returns the derived state address of the pool
func (p *StakePool) Address() sdk.AccAddress {
	return PoolAddress(p.PoolIndex)
}

// HasEnded reports whether no further reward accrues at now
func (p *StakePool) HasEnded(now uint64) bool {
	return now >= p.EndTime
}

// IsOwner reports whether addr owns the pool
func (p *StakePool) IsOwner(addr string) bool {
	return p.Owner == addr
}

// ReleaseReward deducts a payout from the remaining reward liability.
func (p *StakePool) ReleaseReward(amount uint64) error {
	if amount > p.RewardAmountRemaining {
		return errorsmod.Wrapf(ErrInsufficientRewardBudget, "payout %d, remaining %d", amount, p.RewardAmountRemaining)
	}
	p.RewardAmountRemaining -= amount
	return nil
}

// ArmBonus sets the one-shot bonus window and shortens the schedule so that
// the extra weighted units are funded from the existing budget. A window that
// has already begun is clamped to start at now, so only the units still to
// accrue are funded.
func (p *StakePool) ArmBonus(multiplier, start, end, now uint64) error {
	if p.Bonus.IsSet() || p.BonusConsumed {
		return ErrBonusAlreadySet
	}
	if multiplier < 1 {
		return ErrInvalidMultiplier
	}
	if start >= end {
		return errorsmod.Wrapf(ErrInvalidBonusWindow, "start %d must be before end %d", start, end)
	}
	if start < p.StartTime {
		return errorsmod.Wrapf(ErrInvalidBonusWindow, "start %d precedes pool start %d", start, p.StartTime)
	}
	if start < now {
		start = now
	}
	if start >= end {
		return errorsmod.Wrapf(ErrInvalidBonusWindow, "window ended at %d, now %d", end, now)
	}

	shortening, err := checkedMul64(end-start, multiplier-1, ErrEndTimeOverflow)
	if err != nil {
		return err
	}
	if shortening > p.EndTime {
		return errorsmod.Wrapf(ErrInsufficientBonusBudget, "schedule shortened by %d units", shortening)
	}
	newEnd := p.EndTime - shortening
	if newEnd < now || newEnd <= p.StartTime {
		return errorsmod.Wrapf(ErrInsufficientBonusBudget, "new end %d, now %d, start %d", newEnd, now, p.StartTime)
	}

	p.Bonus = WithBonus(Bonus{Multiplier: multiplier, Start: start, End: end})
	p.BonusConsumed = true
	p.EndTime = newEnd
	return nil
}

// ExtendEnd moves the end of the schedule to newEnd and returns the reward
// top-up needed to keep paying the current rate until then.
func (p *StakePool) ExtendEnd(newEnd, now uint64) (uint64, error) {
	if p.HasEnded(now) {
		return 0, errorsmod.Wrapf(ErrPoolEnded, "ended at %d", p.EndTime)
	}
	if newEnd <= p.EndTime {
		return 0, errorsmod.Wrapf(ErrEndTimeNotExtended, "current %d, requested %d", p.EndTime, newEnd)
	}

	topUp, err := checkedMul64(newEnd-p.EndTime, p.RewardRatePerUnitTime, ErrRewardOverflow)
	if err != nil {
		return 0, err
	}
	remaining, err := checkedAdd64(p.RewardAmountRemaining, topUp, ErrRewardBudgetOverflow)
	if err != nil {
		return 0, err
	}

	p.RewardAmountRemaining = remaining
	p.EndTime = newEnd
	return topUp, nil
}

// Validate performs stateless validation of a persisted pool
func (p *StakePool) Validate() error {
	if !p.IsInitialized {
		return fmt.Errorf("pool %d is not initialized", p.PoolIndex)
	}
	if _, err := sdk.AccAddressFromBech32(p.Owner); err != nil {
		return fmt.Errorf("pool %d owner: %w", p.PoolIndex, err)
	}
	if err := sdk.ValidateDenom(p.StakedDenom); err != nil {
		return fmt.Errorf("pool %d staked denom: %w", p.PoolIndex, err)
	}
	if err := sdk.ValidateDenom(p.RewardDenom); err != nil {
		return fmt.Errorf("pool %d reward denom: %w", p.PoolIndex, err)
	}
	if p.PrecisionRank == 0 || p.PrecisionRank > PrecisionBase {
		return fmt.Errorf("pool %d precision rank %d out of range", p.PoolIndex, p.PrecisionRank)
	}
	if p.EndTime <= p.StartTime {
		return fmt.Errorf("pool %d end %d not after start %d", p.PoolIndex, p.EndTime, p.StartTime)
	}
	if p.LastCheckpointTime < p.StartTime || p.LastCheckpointTime > p.EndTime {
		return fmt.Errorf("pool %d checkpoint %d outside [%d, %d]", p.PoolIndex, p.LastCheckpointTime, p.StartTime, p.EndTime)
	}
	if _, err := PerShareToUint256(p.AccruedPerShare); err != nil {
		return fmt.Errorf("pool %d: %w", p.PoolIndex, err)
	}
	if b, ok := p.Bonus.Get(); ok && (b.Start >= b.End || b.Multiplier < 1 || !p.BonusConsumed) {
		return fmt.Errorf("pool %d has an inconsistent bonus window", p.PoolIndex)
	}
	return p.Metadata.Validate()
}
