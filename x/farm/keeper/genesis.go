package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/stake-farm/x/farm/types"
)

// InitGenesis writes the genesis state into the store
func (k *Keeper) InitGenesis(ctx sdk.Context, gs *types.GenesisState) {
	if gs.Registry == nil {
		return
	}

	k.ensureAuthorityAccount(ctx)
	k.SetRegistry(ctx, gs.Registry)
	for i := range gs.Pools {
		k.SetPool(ctx, &gs.Pools[i])
	}
	for i := range gs.Positions {
		k.SetPosition(ctx, &gs.Positions[i])
	}
	for _, vault := range gs.Vaults {
		addr := sdk.MustAccAddressFromBech32(vault.Address)
		if k.accountKeeper.GetAccount(ctx, addr) == nil {
			k.accountKeeper.SetAccount(ctx, k.accountKeeper.NewAccountWithAddress(ctx, addr))
		}
		k.SetVault(ctx, vault)
	}
}

// ExportGenesis reads the full module state
func (k *Keeper) ExportGenesis(ctx sdk.Context) (*types.GenesisState, error) {
	gs := types.DefaultGenesis()
	if !k.HasRegistry(ctx) {
		return gs, nil
	}

	registry, err := k.GetRegistry(ctx)
	if err != nil {
		return nil, err
	}
	gs.Registry = registry

	if gs.Pools, err = k.GetAllPools(ctx); err != nil {
		return nil, err
	}
	if gs.Positions, err = k.GetAllPositions(ctx); err != nil {
		return nil, err
	}
	if gs.Vaults, err = k.GetAllVaults(ctx); err != nil {
		return nil, err
	}
	return gs, nil
}
