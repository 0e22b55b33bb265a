// Package chain reads farm state from a running node. Plain records come
// from ABCI store queries; positions, rewards and vault balances come from
// the farm Query service. It backs the farm CLI queries and the farm-api
// service.
package chain

import (
	"context"
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	abci "github.com/cometbft/cometbft/abci/types"
	"github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"
	gogogrpc "github.com/cosmos/gogoproto/grpc"

	"github.com/openalpha/stake-farm/x/farm/types"
)

// Reader queries farm state at the latest committed height
type Reader struct {
	clientCtx client.Context

	// Query service calls go here; defaults to clientCtx
	queryConn gogogrpc.ClientConn
}

// NewReader creates a Reader over clientCtx
func NewReader(clientCtx client.Context) *Reader {
	return &Reader{clientCtx: clientCtx, queryConn: clientCtx}
}

// WithQueryConn routes Query service calls through conn, e.g. a node's gRPC
// endpoint
func (r *Reader) WithQueryConn(conn gogogrpc.ClientConn) *Reader {
	r.queryConn = conn
	return r
}

func (r *Reader) query() types.QueryClient {
	return types.NewQueryClient(r.queryConn)
}

func (r *Reader) queryKey(ctx context.Context, key []byte) ([]byte, int64, error) {
	res, err := r.clientCtx.WithCmdContext(ctx).QueryABCI(abci.RequestQuery{
		Path: fmt.Sprintf("/store/%s/key", types.StoreKey),
		Data: key,
	})
	if err != nil {
		return nil, 0, err
	}
	return res.Value, res.Height, nil
}

// Height returns the latest committed height
func (r *Reader) Height(ctx context.Context) (int64, error) {
	_, height, err := r.queryKey(ctx, types.RegistryKey)
	return height, err
}

// Registry returns the pool registry
func (r *Reader) Registry(ctx context.Context) (*types.PoolRegistry, error) {
	bz, _, err := r.queryKey(ctx, types.RegistryKey)
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, types.ErrRegistryNotFound
	}
	var registry types.PoolRegistry
	if err := json.Unmarshal(bz, &registry); err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRegistryState, err.Error())
	}
	return &registry, nil
}

// Pool returns a pool by index together with the height it was read at
func (r *Reader) Pool(ctx context.Context, poolIndex uint64) (*types.StakePool, int64, error) {
	bz, height, err := r.queryKey(ctx, types.PoolKey(poolIndex))
	if err != nil {
		return nil, 0, err
	}
	if bz == nil {
		return nil, height, errorsmod.Wrapf(types.ErrPoolNotFound, "pool %d", poolIndex)
	}
	var pool types.StakePool
	if err := json.Unmarshal(bz, &pool); err != nil {
		return nil, height, errorsmod.Wrapf(types.ErrInvalidPoolState, "pool %d: %v", poolIndex, err)
	}
	return &pool, height, nil
}

// Pools returns a page of pools in index order together with the total count
func (r *Reader) Pools(ctx context.Context, offset, limit uint64) ([]types.StakePool, uint64, error) {
	registry, err := r.Registry(ctx)
	if err != nil {
		return nil, 0, err
	}
	total := registry.PoolCounter
	start, end := types.PageBounds(total, offset, limit)

	pools := make([]types.StakePool, 0, end-start)
	for i := start; i < end; i++ {
		pool, _, err := r.Pool(ctx, i)
		if errorsmod.IsOf(err, types.ErrPoolNotFound) {
			continue
		}
		if err != nil {
			return nil, 0, err
		}
		pools = append(pools, *pool)
	}
	return pools, total, nil
}

// Position returns a depositor's position in a pool
func (r *Reader) Position(ctx context.Context, poolIndex uint64, depositor sdk.AccAddress) (*types.Position, error) {
	bz, _, err := r.queryKey(ctx, types.PositionKey(poolIndex, depositor))
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, errorsmod.Wrapf(types.ErrPositionNotFound, "pool %d, depositor %s", poolIndex, depositor)
	}
	var pos types.Position
	if err := json.Unmarshal(bz, &pos); err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidPositionState, err.Error())
	}
	return &pos, nil
}

// Positions returns every position recorded in a pool
func (r *Reader) Positions(ctx context.Context, poolIndex uint64) ([]types.Position, error) {
	// the store read keeps a missing pool a typed error
	if _, _, err := r.Pool(ctx, poolIndex); err != nil {
		return nil, err
	}
	res, err := r.query().Positions(ctx, &types.QueryPositionsRequest{PoolIndex: poolIndex})
	if err != nil {
		return nil, err
	}
	if res.Positions == nil {
		return []types.Position{}, nil
	}
	return res.Positions, nil
}

// Vaults returns the escrow accounts of a pool with their balances
func (r *Reader) Vaults(ctx context.Context, poolIndex uint64) (*types.PoolVaults, error) {
	if _, _, err := r.Pool(ctx, poolIndex); err != nil {
		return nil, err
	}
	res, err := r.query().Vaults(ctx, &types.QueryVaultsRequest{PoolIndex: poolIndex})
	if err != nil {
		return nil, err
	}
	if res.Vaults == nil {
		return nil, errorsmod.Wrapf(types.ErrVaultNotFound, "pool %d", poolIndex)
	}
	return res.Vaults, nil
}

// PendingReward returns the reward a depositor could claim at the latest
// height, accrued up to that height
func (r *Reader) PendingReward(ctx context.Context, poolIndex uint64, depositor sdk.AccAddress) (uint64, error) {
	if _, _, err := r.Pool(ctx, poolIndex); err != nil {
		return 0, err
	}
	if _, err := r.Position(ctx, poolIndex, depositor); err != nil {
		return 0, err
	}
	res, err := r.query().PendingReward(ctx, &types.QueryPendingRewardRequest{
		PoolIndex: poolIndex,
		Depositor: depositor.String(),
	})
	if err != nil {
		return 0, err
	}
	return res.PendingReward, nil
}
