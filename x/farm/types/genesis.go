package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// VaultAccount is the farm-side record of an escrow account. Funds live in
// the bank module under Address; the record pins the denom and the owner that
// is allowed to move them.
type VaultAccount struct {
	Address string `json:"address"`
	Denom   string `json:"denom"`
	Owner   string `json:"owner"`
}

// Validate checks the vault record fields
func (v VaultAccount) Validate() error {
	if _, err := sdk.AccAddressFromBech32(v.Address); err != nil {
		return fmt.Errorf("vault address: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(v.Owner); err != nil {
		return fmt.Errorf("vault %s owner: %w", v.Address, err)
	}
	return sdk.ValidateDenom(v.Denom)
}

// GenesisState is the farm module state at genesis or export
type GenesisState struct {
	Registry  *PoolRegistry  `json:"registry,omitempty"`
	Pools     []StakePool    `json:"pools"`
	Positions []Position     `json:"positions"`
	Vaults    []VaultAccount `json:"vaults"`
}

// DefaultGenesis returns an empty state; Bootstrap has not run yet.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Pools:     []StakePool{},
		Positions: []Position{},
		Vaults:    []VaultAccount{},
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if gs.Registry == nil {
		if len(gs.Pools) > 0 || len(gs.Positions) > 0 || len(gs.Vaults) > 0 {
			return errorsmod.Wrap(ErrInvalidGenesis, "state present without a pool registry")
		}
		return nil
	}

	pools := make(map[uint64]struct{}, len(gs.Pools))
	for i := range gs.Pools {
		p := &gs.Pools[i]
		if p.PoolIndex >= gs.Registry.PoolCounter {
			return errorsmod.Wrapf(ErrInvalidGenesis, "pool %d not below counter %d", p.PoolIndex, gs.Registry.PoolCounter)
		}
		if _, dup := pools[p.PoolIndex]; dup {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate pool %d", p.PoolIndex)
		}
		if err := p.Validate(); err != nil {
			return errorsmod.Wrap(ErrInvalidGenesis, err.Error())
		}
		pools[p.PoolIndex] = struct{}{}
	}

	positions := make(map[string]struct{}, len(gs.Positions))
	for i := range gs.Positions {
		pos := &gs.Positions[i]
		if _, ok := pools[pos.PoolIndex]; !ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "position of %s references unknown pool %d", pos.Depositor, pos.PoolIndex)
		}
		if err := pos.Validate(); err != nil {
			return errorsmod.Wrap(ErrInvalidGenesis, err.Error())
		}
		key := fmt.Sprintf("%d/%s", pos.PoolIndex, pos.Depositor)
		if _, dup := positions[key]; dup {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate position %s", key)
		}
		positions[key] = struct{}{}
	}

	vaults := make(map[string]struct{}, len(gs.Vaults))
	for _, v := range gs.Vaults {
		if err := v.Validate(); err != nil {
			return errorsmod.Wrap(ErrInvalidGenesis, err.Error())
		}
		if _, dup := vaults[v.Address]; dup {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate vault %s", v.Address)
		}
		vaults[v.Address] = struct{}{}
	}
	return nil
}
