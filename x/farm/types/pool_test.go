package types

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestPrecisionRankForDecimals(t *testing.T) {
	tests := []struct {
		decimals uint32
		want     uint8
		wantErr  bool
	}{
		{0, 21, false},
		{6, 15, false},
		{9, 12, false},
		{20, 1, false},
		{21, 0, true},
		{255, 0, true},
	}
	for _, tt := range tests {
		got, err := PrecisionRankForDecimals(tt.decimals)
		if tt.wantErr {
			if !errors.Is(err, ErrDecimalsTooLarge) {
				t.Errorf("decimals %d: expected ErrDecimalsTooLarge, got %v", tt.decimals, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("decimals %d: got (%d, %v), want %d", tt.decimals, got, err, tt.want)
		}
	}
}

func TestRewardRate(t *testing.T) {
	rate, err := RewardRate(1000, 0, 100)
	if err != nil || rate != 10 {
		t.Errorf("RewardRate(1000, 0, 100) = (%d, %v), want 10", rate, err)
	}
	rate, err = RewardRate(1000, 0, 300)
	if err != nil || rate != 3 {
		t.Errorf("RewardRate truncation = (%d, %v), want 3", rate, err)
	}
	for _, w := range [][2]uint64{{100, 100}, {100, 50}} {
		if _, err := RewardRate(1000, w[0], w[1]); !errors.Is(err, ErrRewardRateDivision) {
			t.Errorf("window %v: expected ErrRewardRateDivision, got %v", w, err)
		}
	}
}

func TestNewStakePoolRejects(t *testing.T) {
	base := NewStakePoolParams{
		Owner:            testOwner,
		StakedDenom:      "ustake",
		RewardDenom:      "ureward",
		StakedDecimals:   6,
		RewardTokenCount: 1,
		RewardAmount:     1000,
		StartTime:        10,
		EndTime:          20,
		Metadata:         PoolMetadata{Name: "pool"},
	}

	tests := []struct {
		name    string
		mutate  func(p *NewStakePoolParams)
		wantErr error
	}{
		{"decimals too large", func(p *NewStakePoolParams) { p.StakedDecimals = 21 }, ErrDecimalsTooLarge},
		{"zero reward token count", func(p *NewStakePoolParams) { p.RewardTokenCount = 0 }, ErrInvalidRewardTokenCount},
		{"empty name", func(p *NewStakePoolParams) { p.Metadata.Name = "" }, ErrInvalidPoolMetadata},
		{"long name", func(p *NewStakePoolParams) { p.Metadata.Name = string(make([]byte, 32)) }, ErrInvalidPoolMetadata},
		{"end equals start", func(p *NewStakePoolParams) { p.EndTime = p.StartTime }, ErrRewardRateDivision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := base
			tt.mutate(&params)
			if _, err := NewStakePool(params); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	pool, err := NewStakePool(base)
	if err != nil {
		t.Fatal(err)
	}
	if pool.LastCheckpointTime != base.StartTime || pool.Bonus.IsSet() || !pool.AccruedPerShare.IsZero() {
		t.Errorf("unexpected initial checkpoint state: %+v", pool)
	}
	if err := pool.Validate(); err != nil {
		t.Errorf("fresh pool fails validation: %v", err)
	}
}

func TestArmBonusShortensSchedule(t *testing.T) {
	pool := newTestPool(t)
	if err := pool.ArmBonus(2, 40, 60, 0); err != nil {
		t.Fatalf("ArmBonus: %v", err)
	}
	if pool.EndTime != 80 {
		t.Errorf("end = %d, want 80", pool.EndTime)
	}
	b, ok := pool.Bonus.Get()
	if !ok || b != (Bonus{Multiplier: 2, Start: 40, End: 60}) {
		t.Errorf("bonus = %+v (set %v)", b, ok)
	}
}

func TestArmBonusClampsStartedWindow(t *testing.T) {
	tests := []struct {
		name      string
		now       uint64
		wantEnd   uint64
		wantStart uint64
	}{
		{"before window", 30, 80, 40},
		{"at window start", 40, 80, 40},
		{"inside window", 50, 90, 50},
		{"last unit of window", 59, 99, 59},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := newTestPool(t)
			if err := pool.ArmBonus(2, 40, 60, tt.now); err != nil {
				t.Fatalf("ArmBonus: %v", err)
			}
			if pool.EndTime != tt.wantEnd {
				t.Errorf("end = %d, want %d", pool.EndTime, tt.wantEnd)
			}
			b, _ := pool.Bonus.Get()
			if b.Start != tt.wantStart || b.End != 60 {
				t.Errorf("bonus window = [%d, %d), want [%d, 60)", b.Start, b.End, tt.wantStart)
			}
		})
	}
}

func TestArmBonusOneShot(t *testing.T) {
	pool := newTestPool(t)
	if err := pool.ArmBonus(1, 10, 20, 0); err != nil {
		t.Fatal(err)
	}
	attempts := [][3]uint64{{2, 40, 60}, {1, 10, 20}, {5, 0, 1}, {0, 1, 0}}
	for _, a := range attempts {
		if err := pool.ArmBonus(a[0], a[1], a[2], 0); !errors.Is(err, ErrBonusAlreadySet) {
			t.Errorf("ArmBonus%v: expected ErrBonusAlreadySet, got %v", a, err)
		}
	}
}

func TestArmBonusRejects(t *testing.T) {
	tests := []struct {
		name                   string
		multiplier, start, end uint64
		now                    uint64
		wantErr                error
	}{
		{"zero multiplier", 0, 40, 60, 0, ErrInvalidMultiplier},
		{"start equals end", 2, 40, 40, 0, ErrInvalidBonusWindow},
		{"start after end", 2, 60, 40, 0, ErrInvalidBonusWindow},
		{"new end before now", 5, 40, 60, 45, ErrInsufficientBonusBudget},
		{"window already elapsed", 2, 40, 60, 60, ErrInvalidBonusWindow},
		{"shortening past start", 11, 40, 50, 0, ErrInsufficientBonusBudget},
		{"shortening overflow", math.MaxUint64, 0, 3, 0, ErrEndTimeOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := newTestPool(t)
			err := pool.ArmBonus(tt.multiplier, tt.start, tt.end, tt.now)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if pool.Bonus.IsSet() || pool.BonusConsumed || pool.EndTime != 100 {
				t.Error("rejected bonus mutated the pool")
			}
		})
	}

	pool := newTestPool(t)
	pool.StartTime, pool.LastCheckpointTime = 30, 30
	if err := pool.ArmBonus(2, 20, 40, 30); !errors.Is(err, ErrInvalidBonusWindow) {
		t.Errorf("bonus before pool start: expected ErrInvalidBonusWindow, got %v", err)
	}
}

func TestExtendEnd(t *testing.T) {
	pool := newTestPool(t)
	topUp, err := pool.ExtendEnd(150, 20)
	if err != nil {
		t.Fatal(err)
	}
	if topUp != 500 || pool.EndTime != 150 || pool.RewardAmountRemaining != 1500 {
		t.Errorf("top-up %d, end %d, remaining %d", topUp, pool.EndTime, pool.RewardAmountRemaining)
	}

	if _, err := pool.ExtendEnd(150, 20); !errors.Is(err, ErrEndTimeNotExtended) {
		t.Errorf("same end: expected ErrEndTimeNotExtended, got %v", err)
	}
	if _, err := pool.ExtendEnd(120, 20); !errors.Is(err, ErrEndTimeNotExtended) {
		t.Errorf("shorter end: expected ErrEndTimeNotExtended, got %v", err)
	}
	if _, err := pool.ExtendEnd(300, 150); !errors.Is(err, ErrPoolEnded) {
		t.Errorf("ended pool: expected ErrPoolEnded, got %v", err)
	}
}

func TestReleaseReward(t *testing.T) {
	pool := newTestPool(t)
	if err := pool.ReleaseReward(400); err != nil {
		t.Fatal(err)
	}
	if pool.RewardAmountRemaining != 600 {
		t.Errorf("remaining = %d, want 600", pool.RewardAmountRemaining)
	}
	if err := pool.ReleaseReward(601); !errors.Is(err, ErrInsufficientRewardBudget) {
		t.Errorf("expected ErrInsufficientRewardBudget, got %v", err)
	}
}

func TestBonusWindowJSON(t *testing.T) {
	pool := newTestPool(t)
	bz, err := json.Marshal(pool)
	if err != nil {
		t.Fatal(err)
	}
	var decoded StakePool
	if err := json.Unmarshal(bz, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Bonus.IsSet() {
		t.Error("unset bonus decoded as set")
	}

	if err := pool.ArmBonus(3, 10, 15, 0); err != nil {
		t.Fatal(err)
	}
	bz, err = json.Marshal(pool)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(bz, &decoded); err != nil {
		t.Fatal(err)
	}
	b, ok := decoded.Bonus.Get()
	if !ok || b.Multiplier != 3 || b.Start != 10 || b.End != 15 {
		t.Errorf("bonus decoded as %+v (set %v)", b, ok)
	}
}
