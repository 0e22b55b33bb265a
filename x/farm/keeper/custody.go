package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/stake-farm/x/farm/types"
)

// checkDerived compares a caller-supplied account reference with the
// address derived for it.
func checkDerived(supplied string, expected sdk.AccAddress, site error) error {
	addr, err := sdk.AccAddressFromBech32(supplied)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "%s: %v", supplied, err)
	}
	if !addr.Equals(expected) {
		return errorsmod.Wrapf(site, "got %s, derived %s", addr, expected)
	}
	return nil
}

// loadVault verifies a caller-supplied vault reference and returns its record.
func (k *Keeper) loadVault(ctx sdk.Context, supplied string, expected sdk.AccAddress, denom string) (types.VaultAccount, error) {
	if err := checkDerived(supplied, expected, types.ErrVaultAddressMismatch); err != nil {
		return types.VaultAccount{}, err
	}
	vault, err := k.GetVault(ctx, expected)
	if err != nil {
		return types.VaultAccount{}, err
	}
	if vault.Owner != k.authority.address.String() {
		return types.VaultAccount{}, errorsmod.Wrapf(types.ErrVaultOwnerMismatch, "vault %s is owned by %s", vault.Address, vault.Owner)
	}
	if vault.Denom != denom {
		return types.VaultAccount{}, errorsmod.Wrapf(types.ErrVaultMintMismatch, "vault %s holds %s, want %s", vault.Address, vault.Denom, denom)
	}
	return vault, nil
}

// vaultBalance returns the amount the vault currently holds.
func (k *Keeper) vaultBalance(ctx sdk.Context, vault types.VaultAccount) (uint64, error) {
	acc, err := k.tokenAccount(ctx, sdk.MustAccAddressFromBech32(vault.Address), vault.Denom)
	if err != nil {
		return 0, err
	}
	return acc.Amount, nil
}

// checkSource verifies that owner can send amount of denom from its own
// account.
func (k *Keeper) checkSource(ctx sdk.Context, owner sdk.AccAddress, denom string, amount uint64) error {
	acc, err := k.tokenAccount(ctx, owner, denom)
	if err != nil {
		return err
	}
	if !acc.Owner.Equals(owner) {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s does not own %s", owner, acc.Address)
	}
	if acc.Frozen {
		return errorsmod.Wrapf(types.ErrAccountFrozen, "%s transfers are disabled", denom)
	}
	if acc.Amount < amount {
		return errorsmod.Wrapf(types.ErrInsufficientFunds, "%s holds %d%s, needs %d", owner, acc.Amount, denom, amount)
	}
	return nil
}

// checkVaultDebit verifies that vault can release amount.
func (k *Keeper) checkVaultDebit(ctx sdk.Context, vault types.VaultAccount, amount uint64) error {
	acc, err := k.tokenAccount(ctx, sdk.MustAccAddressFromBech32(vault.Address), vault.Denom)
	if err != nil {
		return err
	}
	if acc.Frozen {
		return errorsmod.Wrapf(types.ErrAccountFrozen, "%s transfers are disabled", vault.Denom)
	}
	if acc.Amount < amount {
		return errorsmod.Wrapf(types.ErrInsufficientFunds, "vault %s holds %d%s, needs %d", vault.Address, acc.Amount, vault.Denom, amount)
	}
	return nil
}

// checkRecipient rejects payouts to addresses that may not receive funds.
func (k *Keeper) checkRecipient(addr sdk.AccAddress) error {
	if k.bankKeeper.BlockedAddr(addr) {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s is not allowed to receive funds", addr)
	}
	return nil
}

// requireOwner rejects signers other than the pool owner.
func requireOwner(pool *types.StakePool, signer sdk.AccAddress) error {
	if !pool.IsOwner(signer.String()) {
		return errorsmod.Wrapf(types.ErrNotPoolOwner, "pool %d is owned by %s", pool.PoolIndex, pool.Owner)
	}
	return nil
}
