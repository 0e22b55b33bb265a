package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/openalpha/stake-farm/x/farm/types"
)

// Bootstrap creates the pool registry with its counter at zero and makes sure
// the authority account exists. It can run only once.
func (k *Keeper) Bootstrap(ctx sdk.Context, payer sdk.AccAddress) (sdk.AccAddress, error) {
	err := k.atomic(ctx, func(ctx sdk.Context) error {
		if k.HasRegistry(ctx) {
			return types.ErrAlreadyBootstrapped
		}
		k.ensureAuthorityAccount(ctx)
		k.SetRegistry(ctx, types.NewPoolRegistry())

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeBootstrap,
				sdk.NewAttribute(types.AttributeKeyAuthority, k.authority.address.String()),
			),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.logger.Info("farm bootstrapped", "payer", payer.String(), "authority", k.authority.address.String())
	return k.authority.address, nil
}

// ensureAuthorityAccount registers the authority as a module account
func (k *Keeper) ensureAuthorityAccount(ctx sdk.Context) {
	if k.accountKeeper.GetAccount(ctx, k.authority.address) != nil {
		return
	}
	macc := authtypes.NewEmptyModuleAccount(types.ModuleName)
	k.accountKeeper.SetAccount(ctx, k.accountKeeper.NewAccount(ctx, macc))
}

// allocatePoolIndex hands out the next pool index and persists the counter
func (k *Keeper) allocatePoolIndex(ctx sdk.Context) (uint64, error) {
	registry, err := k.GetRegistry(ctx)
	if errorsmod.IsOf(err, types.ErrRegistryNotFound) {
		return 0, errorsmod.Wrap(err, "bootstrap must run before pools are created")
	}
	if err != nil {
		return 0, err
	}
	index, err := registry.AllocateIndex()
	if err != nil {
		return 0, err
	}
	k.SetRegistry(ctx, registry)
	return index, nil
}
