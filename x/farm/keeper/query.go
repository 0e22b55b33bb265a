package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/stake-farm/x/farm/types"
)

var _ types.QueryServer = (*QueryServer)(nil)

// QueryServer defines the farm QueryServer
type QueryServer struct {
	keeper *Keeper
}

// NewQueryServerImpl creates a new QueryServer instance
func NewQueryServerImpl(keeper *Keeper) *QueryServer {
	return &QueryServer{keeper: keeper}
}

// Position returns a depositor's position in a pool
func (q *QueryServer) Position(ctx context.Context, req *types.QueryPositionRequest) (*types.QueryPositionResponse, error) {
	addr, err := signer(req.Depositor)
	if err != nil {
		return nil, err
	}
	pos, err := q.keeper.GetPosition(sdk.UnwrapSDKContext(ctx), req.PoolIndex, addr)
	if err != nil {
		return nil, err
	}
	return &types.QueryPositionResponse{Position: pos}, nil
}

// Positions returns every position of a pool
func (q *QueryServer) Positions(ctx context.Context, req *types.QueryPositionsRequest) (*types.QueryPositionsResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if _, err := q.keeper.GetPool(sdkCtx, req.PoolIndex); err != nil {
		return nil, err
	}
	positions, err := q.keeper.GetPoolPositions(sdkCtx, req.PoolIndex)
	if err != nil {
		return nil, err
	}
	return &types.QueryPositionsResponse{Positions: positions}, nil
}

// PendingReward returns the reward a depositor could claim at the current height
func (q *QueryServer) PendingReward(ctx context.Context, req *types.QueryPendingRewardRequest) (*types.QueryPendingRewardResponse, error) {
	addr, err := signer(req.Depositor)
	if err != nil {
		return nil, err
	}
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	pending, err := q.keeper.PendingReward(sdkCtx, req.PoolIndex, addr)
	if err != nil {
		return nil, err
	}
	return &types.QueryPendingRewardResponse{PendingReward: pending, Height: sdkCtx.BlockHeight()}, nil
}

// Vaults returns the escrow accounts of a pool
func (q *QueryServer) Vaults(ctx context.Context, req *types.QueryVaultsRequest) (*types.QueryVaultsResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if _, err := q.keeper.GetPool(sdkCtx, req.PoolIndex); err != nil {
		return nil, err
	}

	staked, err := q.keeper.GetVault(sdkCtx, types.StakedVaultAddress(req.PoolIndex))
	if err != nil {
		return nil, err
	}
	reward, err := q.keeper.GetVault(sdkCtx, types.RewardVaultAddress(req.PoolIndex))
	if err != nil {
		return nil, err
	}
	stakedBalance, err := q.keeper.vaultBalance(sdkCtx, staked)
	if err != nil {
		return nil, err
	}
	rewardBalance, err := q.keeper.vaultBalance(sdkCtx, reward)
	if err != nil {
		return nil, err
	}

	return &types.QueryVaultsResponse{Vaults: &types.PoolVaults{
		Authority:     q.keeper.Authority().String(),
		StakedVault:   staked.Address,
		StakedBalance: stakedBalance,
		RewardVault:   reward.Address,
		RewardBalance: rewardBalance,
	}}, nil
}
