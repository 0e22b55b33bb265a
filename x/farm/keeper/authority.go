package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/stake-farm/x/farm/types"
)

// vaultAuthority is the keyless signer shared by every pool. It holds no
// state and can only debit vaults whose record names it as owner.
type vaultAuthority struct {
	address sdk.AccAddress
	bank    types.BankKeeper
}

func newVaultAuthority(bank types.BankKeeper) vaultAuthority {
	return vaultAuthority{
		address: types.AuthorityAddress(),
		bank:    bank,
	}
}

// signVaultTransfer moves amount out of vault to recipient.
func (a vaultAuthority) signVaultTransfer(ctx sdk.Context, vault types.VaultAccount, to sdk.AccAddress, amount uint64) error {
	if vault.Owner != a.address.String() {
		return errorsmod.Wrapf(types.ErrVaultOwnerMismatch, "vault %s is owned by %s", vault.Address, vault.Owner)
	}
	if amount == 0 {
		return nil
	}
	from, err := sdk.AccAddressFromBech32(vault.Address)
	if err != nil {
		return errorsmod.Wrap(types.ErrInvalidVaultState, err.Error())
	}
	return a.bank.SendCoins(ctx, from, to, coinsOf(vault.Denom, amount))
}
