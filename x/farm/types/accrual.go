package types

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/holiman/uint256"
)

// EffectiveUnits returns the bonus-weighted number of time units in
// [from, to] after clamping the interval into [StartTime, EndTime]. Units
// inside the bonus window count Multiplier times, all others count once.
func (p *StakePool) EffectiveUnits(from, to uint64) (uint64, error) {
	if from < p.StartTime {
		from = p.StartTime
	}
	if to > p.EndTime {
		to = p.EndTime
	}
	if to <= from {
		return 0, nil
	}

	bonus, ok := p.Bonus.Get()
	if !ok || bonus.End <= from || bonus.Start >= to {
		return to - from, nil
	}

	m := bonus.Multiplier
	switch {
	case from < bonus.Start && bonus.End < to:
		return weightedUnits(bonus.Start-from+(to-bonus.End), bonus.End-bonus.Start, m)
	case from < bonus.Start:
		return weightedUnits(bonus.Start-from, to-bonus.Start, m)
	case bonus.End < to:
		return weightedUnits(to-bonus.End, bonus.End-from, m)
	default:
		return weightedUnits(0, to-from, m)
	}
}

// weightedUnits returns plain + boosted*m.
func weightedUnits(plain, boosted, m uint64) (uint64, error) {
	weighted, err := checkedMul64(boosted, m, ErrEffectiveUnitsOverflow)
	if err != nil {
		return 0, err
	}
	return checkedAdd64(plain, weighted, ErrEffectiveUnitsOverflow)
}

// Update brings the accrual checkpoint forward to now given the balance of
// the staked vault. Repeated calls with the same now are no-ops. On error
// the pool is left unchanged.
func (p *StakePool) Update(stakedSupply, now uint64) error {
	if now <= p.LastCheckpointTime {
		return nil
	}

	checkpoint := now
	if checkpoint > p.EndTime {
		checkpoint = p.EndTime
	}

	if stakedSupply == 0 {
		p.LastCheckpointTime = checkpoint
		return nil
	}

	accrued, err := p.accruedAt(stakedSupply, now)
	if err != nil {
		return err
	}

	p.AccruedPerShare = PerShareFromUint256(accrued)
	p.LastCheckpointTime = checkpoint
	if bonus, ok := p.Bonus.Get(); ok && now >= bonus.End {
		p.Bonus = NoBonus()
	}
	return nil
}

// accruedAt computes the accrued-per-share counter at now without mutating
// the pool. Division by the supply truncates; the remainder stays in the
// reward vault.
func (p *StakePool) accruedAt(stakedSupply, now uint64) (*uint256.Int, error) {
	acc, err := PerShareToUint256(p.AccruedPerShare)
	if err != nil {
		return nil, err
	}

	units, err := p.EffectiveUnits(p.LastCheckpointTime, now)
	if err != nil {
		return nil, err
	}
	reward, err := checkedMul64(units, p.RewardRatePerUnitTime, ErrRewardOverflow)
	if err != nil {
		return nil, err
	}

	factor, err := PrecisionFactor(p.PrecisionRank)
	if err != nil {
		return nil, err
	}
	scaled, overflow := new(uint256.Int).MulOverflow(u256(reward), factor)
	if overflow || scaled.BitLen() > maxPerShareBits {
		return nil, errorsmod.Wrapf(ErrRewardMulPrecisionOverflow, "reward %d", reward)
	}
	if stakedSupply == 0 {
		return nil, ErrRewardDivSupplyOverflow
	}
	increment := new(uint256.Int).Div(scaled, u256(stakedSupply))

	next, overflow := new(uint256.Int).AddOverflow(acc, increment)
	if overflow || next.BitLen() > maxPerShareBits {
		return nil, ErrAccruedPerShareOverflow
	}
	return next, nil
}

// Preview returns a copy of the pool brought forward to now. The receiver is
// not modified.
func (p *StakePool) Preview(stakedSupply, now uint64) (*StakePool, error) {
	cp := *p
	if err := cp.Update(stakedSupply, now); err != nil {
		return nil, err
	}
	return &cp, nil
}
