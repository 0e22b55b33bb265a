package types

import (
	"bytes"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

func TestDerivedAddressesAreDistinct(t *testing.T) {
	depositor := sdk.MustAccAddressFromBech32(testDepositor)
	addrs := map[string]sdk.AccAddress{
		"authority":       AuthorityAddress(),
		"registry":        RegistryAddress(),
		"pool 0":          PoolAddress(0),
		"pool 1":          PoolAddress(1),
		"staked vault 0":  StakedVaultAddress(0),
		"staked vault 1":  StakedVaultAddress(1),
		"reward vault 0":  RewardVaultAddress(0),
		"reward vault 1":  RewardVaultAddress(1),
		"position 0":      PositionAddress(0, depositor),
		"position 1":      PositionAddress(1, depositor),
		"owner position0": PositionAddress(0, sdk.MustAccAddressFromBech32(testOwner)),
	}

	seen := make(map[string]string, len(addrs))
	for name, addr := range addrs {
		if other, dup := seen[addr.String()]; dup {
			t.Errorf("%s and %s derive the same address", name, other)
		}
		seen[addr.String()] = name
	}
}

func TestDerivationIsDeterministic(t *testing.T) {
	if !StakedVaultAddress(7).Equals(StakedVaultAddress(7)) {
		t.Error("staked vault derivation not deterministic")
	}
	if !DeriveAddress(TagStakedVault, PoolAddress(7)).Equals(StakedVaultAddress(7)) {
		t.Error("staked vault not derived from pool address")
	}
}

func TestPositionKeysGroupByPool(t *testing.T) {
	depositor := sdk.MustAccAddressFromBech32(testDepositor)
	key := PositionKey(3, depositor)
	if !bytes.HasPrefix(key, PoolPositionsPrefix(3)) {
		t.Error("position key outside its pool prefix")
	}
	if bytes.HasPrefix(key, PoolPositionsPrefix(4)) {
		t.Error("position key inside another pool prefix")
	}
	if bytes.Compare(PoolKey(1), PoolKey(256)) >= 0 {
		t.Error("pool keys do not sort numerically")
	}
}
