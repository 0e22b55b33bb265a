package types

import (
	"math"

	errorsmod "cosmossdk.io/errors"
)

// PoolRegistry hands out sequential pool indices.
type PoolRegistry struct {
	PoolCounter uint64 `json:"pool_counter"`
}

// NewPoolRegistry returns a registry whose first index is 0
func NewPoolRegistry() *PoolRegistry {
	return &PoolRegistry{}
}

// AllocateIndex returns the current counter value and advances it.
func (r *PoolRegistry) AllocateIndex() (uint64, error) {
	if r.PoolCounter == math.MaxUint64 {
		return 0, errorsmod.Wrapf(ErrPoolCounterOverflow, "counter at %d", r.PoolCounter)
	}
	index := r.PoolCounter
	r.PoolCounter++
	return index, nil
}
