package keeper

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/stake-farm/x/farm/types"
)

// Keeper manages the farm module state
type Keeper struct {
	cdc           codec.BinaryCodec
	storeKey      storetypes.StoreKey
	accountKeeper types.AccountKeeper
	bankKeeper    types.BankKeeper
	authority     vaultAuthority
	logger        log.Logger
}

// NewKeeper creates a new farm keeper
func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
	accountKeeper types.AccountKeeper,
	bankKeeper types.BankKeeper,
	logger log.Logger,
) *Keeper {
	return &Keeper{
		cdc:           cdc,
		storeKey:      storeKey,
		accountKeeper: accountKeeper,
		bankKeeper:    bankKeeper,
		authority:     newVaultAuthority(bankKeeper),
		logger:        logger.With("module", "x/farm"),
	}
}

// Logger returns the module logger
func (k *Keeper) Logger() log.Logger {
	return k.logger
}

// GetStore returns the KVStore
func (k *Keeper) GetStore(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

// Authority returns the address of the keyless vault signer
func (k *Keeper) Authority() sdk.AccAddress {
	return k.authority.address
}

// now returns the current time unit
func (k *Keeper) now(ctx sdk.Context) uint64 {
	h := ctx.BlockHeight()
	if h < 0 {
		return 0
	}
	return uint64(h)
}

// atomic runs fn against a cached branch of the store and commits it only
// if fn succeeds.
func (k *Keeper) atomic(ctx sdk.Context, fn func(ctx sdk.Context) error) error {
	cacheCtx, write := ctx.CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}

// ============ Registry ============

// GetRegistry loads the pool registry
func (k *Keeper) GetRegistry(ctx sdk.Context) (*types.PoolRegistry, error) {
	bz := k.GetStore(ctx).Get(types.RegistryKey)
	if bz == nil {
		return nil, types.ErrRegistryNotFound
	}
	var registry types.PoolRegistry
	if err := json.Unmarshal(bz, &registry); err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRegistryState, err.Error())
	}
	return &registry, nil
}

// HasRegistry reports whether Bootstrap has run
func (k *Keeper) HasRegistry(ctx sdk.Context) bool {
	return k.GetStore(ctx).Has(types.RegistryKey)
}

// SetRegistry saves the pool registry
func (k *Keeper) SetRegistry(ctx sdk.Context, registry *types.PoolRegistry) {
	bz, _ := json.Marshal(registry)
	k.GetStore(ctx).Set(types.RegistryKey, bz)
}

// ============ Pools ============

// GetPool loads a pool by index
func (k *Keeper) GetPool(ctx sdk.Context, poolIndex uint64) (*types.StakePool, error) {
	bz := k.GetStore(ctx).Get(types.PoolKey(poolIndex))
	if bz == nil {
		return nil, errorsmod.Wrapf(types.ErrPoolNotFound, "pool %d", poolIndex)
	}
	var pool types.StakePool
	if err := json.Unmarshal(bz, &pool); err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidPoolState, "pool %d: %v", poolIndex, err)
	}
	if !pool.IsInitialized {
		return nil, errorsmod.Wrapf(types.ErrInvalidPoolState, "pool %d is not initialized", poolIndex)
	}
	return &pool, nil
}

// SetPool saves a pool
func (k *Keeper) SetPool(ctx sdk.Context, pool *types.StakePool) {
	bz, _ := json.Marshal(pool)
	k.GetStore(ctx).Set(types.PoolKey(pool.PoolIndex), bz)
}

// IteratePools calls cb for each pool in index order until cb returns true
func (k *Keeper) IteratePools(ctx sdk.Context, cb func(pool *types.StakePool) (stop bool)) error {
	iterator := storetypes.KVStorePrefixIterator(k.GetStore(ctx), types.PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.StakePool
		if err := json.Unmarshal(iterator.Value(), &pool); err != nil {
			return errorsmod.Wrap(types.ErrInvalidPoolState, err.Error())
		}
		if cb(&pool) {
			break
		}
	}
	return nil
}

// GetAllPools returns all pools in index order
func (k *Keeper) GetAllPools(ctx sdk.Context) ([]types.StakePool, error) {
	pools := make([]types.StakePool, 0)
	err := k.IteratePools(ctx, func(pool *types.StakePool) bool {
		pools = append(pools, *pool)
		return false
	})
	return pools, err
}

// ============ Positions ============

// GetPosition loads a depositor's position in a pool
func (k *Keeper) GetPosition(ctx sdk.Context, poolIndex uint64, depositor sdk.AccAddress) (*types.Position, error) {
	bz := k.GetStore(ctx).Get(types.PositionKey(poolIndex, depositor))
	if bz == nil {
		return nil, errorsmod.Wrapf(types.ErrPositionNotFound, "pool %d, depositor %s", poolIndex, depositor)
	}
	var pos types.Position
	if err := json.Unmarshal(bz, &pos); err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidPositionState, "pool %d, depositor %s: %v", poolIndex, depositor, err)
	}
	return &pos, nil
}

// getOrCreatePosition returns the stored position, or a zeroed one on first use
func (k *Keeper) getOrCreatePosition(ctx sdk.Context, poolIndex uint64, depositor sdk.AccAddress) (*types.Position, error) {
	pos, err := k.GetPosition(ctx, poolIndex, depositor)
	if errorsmod.IsOf(err, types.ErrPositionNotFound) {
		return types.NewPosition(poolIndex, depositor.String()), nil
	}
	return pos, err
}

// SetPosition saves a position
func (k *Keeper) SetPosition(ctx sdk.Context, pos *types.Position) {
	depositor := sdk.MustAccAddressFromBech32(pos.Depositor)
	bz, _ := json.Marshal(pos)
	k.GetStore(ctx).Set(types.PositionKey(pos.PoolIndex, depositor), bz)
}

// DeletePosition removes a position record
func (k *Keeper) DeletePosition(ctx sdk.Context, poolIndex uint64, depositor sdk.AccAddress) {
	k.GetStore(ctx).Delete(types.PositionKey(poolIndex, depositor))
}

// GetPoolPositions returns all positions of one pool
func (k *Keeper) GetPoolPositions(ctx sdk.Context, poolIndex uint64) ([]types.Position, error) {
	return k.collectPositions(ctx, types.PoolPositionsPrefix(poolIndex))
}

// GetAllPositions returns every position in the store
func (k *Keeper) GetAllPositions(ctx sdk.Context) ([]types.Position, error) {
	return k.collectPositions(ctx, types.PositionKeyPrefix)
}

func (k *Keeper) collectPositions(ctx sdk.Context, prefix []byte) ([]types.Position, error) {
	iterator := storetypes.KVStorePrefixIterator(k.GetStore(ctx), prefix)
	defer iterator.Close()

	positions := make([]types.Position, 0)
	for ; iterator.Valid(); iterator.Next() {
		var pos types.Position
		if err := json.Unmarshal(iterator.Value(), &pos); err != nil {
			return nil, errorsmod.Wrap(types.ErrInvalidPositionState, err.Error())
		}
		positions = append(positions, pos)
	}
	return positions, nil
}
