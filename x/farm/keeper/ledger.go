package keeper

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/stake-farm/x/farm/types"
)

// GetVault loads the vault record stored for addr
func (k *Keeper) GetVault(ctx sdk.Context, addr sdk.AccAddress) (types.VaultAccount, error) {
	bz := k.GetStore(ctx).Get(types.VaultKey(addr))
	if bz == nil {
		return types.VaultAccount{}, errorsmod.Wrapf(types.ErrVaultNotFound, "vault %s", addr)
	}
	var vault types.VaultAccount
	if err := json.Unmarshal(bz, &vault); err != nil {
		return types.VaultAccount{}, errorsmod.Wrapf(types.ErrInvalidVaultState, "vault %s: %v", addr, err)
	}
	return vault, nil
}

// SetVault saves a vault record
func (k *Keeper) SetVault(ctx sdk.Context, vault types.VaultAccount) {
	addr := sdk.MustAccAddressFromBech32(vault.Address)
	bz, _ := json.Marshal(vault)
	k.GetStore(ctx).Set(types.VaultKey(addr), bz)
}

// GetAllVaults returns every vault record
func (k *Keeper) GetAllVaults(ctx sdk.Context) ([]types.VaultAccount, error) {
	iterator := storetypes.KVStorePrefixIterator(k.GetStore(ctx), types.VaultKeyPrefix)
	defer iterator.Close()

	vaults := make([]types.VaultAccount, 0)
	for ; iterator.Valid(); iterator.Next() {
		var vault types.VaultAccount
		if err := json.Unmarshal(iterator.Value(), &vault); err != nil {
			return nil, errorsmod.Wrap(types.ErrInvalidVaultState, err.Error())
		}
		vaults = append(vaults, vault)
	}
	return vaults, nil
}

// initializeVault opens an escrow account for denom owned by owner. The bank
// account is created if the address has never been seen.
func (k *Keeper) initializeVault(ctx sdk.Context, addr sdk.AccAddress, denom string, owner sdk.AccAddress) (types.VaultAccount, error) {
	if k.GetStore(ctx).Has(types.VaultKey(addr)) {
		return types.VaultAccount{}, errorsmod.Wrapf(types.ErrVaultExists, "vault %s", addr)
	}
	if k.accountKeeper.GetAccount(ctx, addr) == nil {
		k.accountKeeper.SetAccount(ctx, k.accountKeeper.NewAccountWithAddress(ctx, addr))
	}

	vault := types.VaultAccount{
		Address: addr.String(),
		Denom:   denom,
		Owner:   owner.String(),
	}
	k.SetVault(ctx, vault)
	return vault, nil
}

// denomDecimals returns the exponent of the display unit of denom
func (k *Keeper) denomDecimals(ctx sdk.Context, denom string) (uint32, error) {
	md, found := k.bankKeeper.GetDenomMetaData(ctx, denom)
	if !found {
		return 0, errorsmod.Wrapf(types.ErrMintNotFound, "no metadata for %s", denom)
	}
	var decimals uint32
	for _, unit := range md.DenomUnits {
		if unit == nil {
			continue
		}
		if unit.Denom == md.Display {
			return unit.Exponent, nil
		}
		if unit.Exponent > decimals {
			decimals = unit.Exponent
		}
	}
	return decimals, nil
}

// tokenAccount returns the ledger view of addr's holding of denom. Vaults
// report the owner pinned in their record; any other account owns itself.
func (k *Keeper) tokenAccount(ctx sdk.Context, addr sdk.AccAddress, denom string) (types.TokenAccount, error) {
	balance := k.bankKeeper.GetBalance(ctx, addr, denom)
	if !balance.Amount.IsUint64() {
		return types.TokenAccount{}, errorsmod.Wrapf(types.ErrOverflow, "balance %s of %s", balance, addr)
	}

	owner := addr
	if vault, err := k.GetVault(ctx, addr); err == nil {
		if owner, err = sdk.AccAddressFromBech32(vault.Owner); err != nil {
			return types.TokenAccount{}, errorsmod.Wrapf(types.ErrInvalidVaultState, "vault %s owner: %v", addr, err)
		}
	} else if !errorsmod.IsOf(err, types.ErrVaultNotFound) {
		return types.TokenAccount{}, err
	}

	decimals, err := k.denomDecimals(ctx, denom)
	if err != nil && !errorsmod.IsOf(err, types.ErrMintNotFound) {
		return types.TokenAccount{}, err
	}

	return types.TokenAccount{
		Address:  addr,
		Amount:   balance.Amount.Uint64(),
		Owner:    owner,
		Denom:    denom,
		Decimals: decimals,
		Frozen:   k.bankKeeper.IsSendEnabledCoins(ctx, balance) != nil,
	}, nil
}

// transfer moves amount of denom out of an account the signer controls
// directly. Vault debits go through the authority instead.
func (k *Keeper) transfer(ctx sdk.Context, from, to sdk.AccAddress, denom string, amount uint64) error {
	if amount == 0 {
		return nil
	}
	return k.bankKeeper.SendCoins(ctx, from, to, coinsOf(denom, amount))
}

func coinsOf(denom string, amount uint64) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(denom, math.NewIntFromUint64(amount)))
}
