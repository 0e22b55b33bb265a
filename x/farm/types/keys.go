package types

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

// Module name and store key
const (
	ModuleName = "farm"
	StoreKey   = ModuleName
	RouterKey  = ModuleName
)

// Domain-separation tags used for deterministic address derivation
const (
	TagPoolRegistry = "pool_registry"
	TagStakePool    = "stake_pool"
	TagStakedVault  = "staked_vault"
	TagRewardVault  = "reward_vault"
	TagUserPosition = "user_position"
)

// Store key prefixes
var (
	RegistryKey       = []byte{0x01}
	PoolKeyPrefix     = []byte{0x02}
	PositionKeyPrefix = []byte{0x03}
	VaultKeyPrefix    = []byte{0x04}
)

// DeriveAddress derives a keyless account address owned by the farm module
// from a domain tag and the identifying seed parts. The same inputs always
// produce the same address.
func DeriveAddress(tag string, parts ...[]byte) sdk.AccAddress {
	keys := make([][]byte, 0, len(parts)+1)
	keys = append(keys, []byte(tag))
	keys = append(keys, parts...)
	return sdk.AccAddress(address.Module(ModuleName, keys...))
}

// AuthorityAddress returns the address of the module account that signs
// every vault debit.
func AuthorityAddress() sdk.AccAddress {
	return sdk.AccAddress(address.Module(ModuleName))
}

// RegistryAddress returns the derived address of the singleton pool registry.
func RegistryAddress() sdk.AccAddress {
	return DeriveAddress(TagPoolRegistry)
}

// PoolAddress returns the derived state address of the pool with the given index.
func PoolAddress(poolIndex uint64) sdk.AccAddress {
	return DeriveAddress(TagStakePool, Uint64Bytes(poolIndex))
}

// StakedVaultAddress returns the escrow address holding a pool's staked asset.
func StakedVaultAddress(poolIndex uint64) sdk.AccAddress {
	return DeriveAddress(TagStakedVault, PoolAddress(poolIndex))
}

// RewardVaultAddress returns the escrow address holding a pool's reward asset.
func RewardVaultAddress(poolIndex uint64) sdk.AccAddress {
	return DeriveAddress(TagRewardVault, PoolAddress(poolIndex))
}

// PositionAddress returns the derived address of a depositor's position in a pool.
func PositionAddress(poolIndex uint64, depositor sdk.AccAddress) sdk.AccAddress {
	return DeriveAddress(TagUserPosition, PoolAddress(poolIndex), depositor)
}

// Uint64Bytes encodes v big-endian so that keys sort by numeric value.
func Uint64Bytes(v uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, v)
	return bz
}

// PoolKey returns the store key of a pool
func PoolKey(poolIndex uint64) []byte {
	return append(append([]byte{}, PoolKeyPrefix...), Uint64Bytes(poolIndex)...)
}

// PoolPositionsPrefix returns the prefix under which all positions of a pool live
func PoolPositionsPrefix(poolIndex uint64) []byte {
	return append(append([]byte{}, PositionKeyPrefix...), Uint64Bytes(poolIndex)...)
}

// PositionKey returns the store key of a depositor's position
func PositionKey(poolIndex uint64, depositor sdk.AccAddress) []byte {
	return append(PoolPositionsPrefix(poolIndex), address.MustLengthPrefix(depositor)...)
}

// VaultKey returns the store key of a vault account record
func VaultKey(vault sdk.AccAddress) []byte {
	return append(append([]byte{}, VaultKeyPrefix...), address.MustLengthPrefix(vault)...)
}
