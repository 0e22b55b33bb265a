package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/stake-farm/metrics"
	"github.com/openalpha/stake-farm/x/farm/types"
)

var _ types.MsgServer = (*MsgServer)(nil)

// MsgServer implements the farm message service
type MsgServer struct {
	keeper  *Keeper
	metrics *metrics.Collector
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
func NewMsgServerImpl(keeper *Keeper) *MsgServer {
	return &MsgServer{keeper: keeper, metrics: metrics.GetCollector()}
}

func (m *MsgServer) fail(operation string, err error) error {
	_, code, _ := errorsmod.ABCIInfo(err, false)
	m.metrics.RecordOperationError(operation, strconv.FormatUint(uint64(code), 10))
	return err
}

func (m *MsgServer) recordPoolState(ctx sdk.Context, poolIndex uint64) {
	pool, err := m.keeper.GetPool(ctx, poolIndex)
	if err != nil {
		return
	}
	vault, err := m.keeper.GetVault(ctx, types.StakedVaultAddress(poolIndex))
	if err != nil {
		return
	}
	staked, err := m.keeper.vaultBalance(ctx, vault)
	if err != nil {
		return
	}
	m.metrics.RecordPoolState(strconv.FormatUint(poolIndex, 10), float64(staked), float64(pool.RewardAmountRemaining))
}

func signer(addr string) (sdk.AccAddress, error) {
	acc, err := sdk.AccAddressFromBech32(addr)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidAddress, err.Error())
	}
	return acc, nil
}

// Bootstrap handles MsgBootstrap
func (m *MsgServer) Bootstrap(goCtx context.Context, msg *types.MsgBootstrap) (*types.MsgBootstrapResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	payer, err := signer(msg.Payer)
	if err != nil {
		return nil, m.fail(types.TypeMsgBootstrap, err)
	}
	authority, err := m.keeper.Bootstrap(ctx, payer)
	if err != nil {
		return nil, m.fail(types.TypeMsgBootstrap, err)
	}
	return &types.MsgBootstrapResponse{Authority: authority.String()}, nil
}

// InitializePool handles MsgInitializePool
func (m *MsgServer) InitializePool(goCtx context.Context, msg *types.MsgInitializePool) (*types.MsgInitializePoolResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	pool, err := m.keeper.InitializePool(ctx, msg)
	if err != nil {
		return nil, m.fail(types.TypeMsgInitializePool, err)
	}

	m.metrics.RecordPoolInitialized(pool.StakedDenom, pool.RewardDenom)
	m.recordPoolState(ctx, pool.PoolIndex)
	return &types.MsgInitializePoolResponse{
		PoolIndex:             pool.PoolIndex,
		PoolAddress:           pool.Address().String(),
		RewardRatePerUnitTime: pool.RewardRatePerUnitTime,
	}, nil
}

// Deposit handles MsgDeposit
func (m *MsgServer) Deposit(goCtx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	depositor, err := signer(msg.Depositor)
	if err != nil {
		return nil, m.fail(types.TypeMsgDeposit, err)
	}
	result, err := m.keeper.Deposit(ctx, depositor, msg.PoolIndex, msg.Amount, msg.StakedVault, msg.RewardVault)
	if err != nil {
		return nil, m.fail(types.TypeMsgDeposit, err)
	}

	poolLabel := strconv.FormatUint(msg.PoolIndex, 10)
	m.metrics.RecordDeposit(poolLabel, float64(result.Moved), float64(result.RewardPaid))
	m.recordPoolState(ctx, msg.PoolIndex)
	return &types.MsgDepositResponse{
		StakedAmount: result.Position.StakedAmount,
		RewardPaid:   result.RewardPaid,
	}, nil
}

// Withdraw handles MsgWithdraw
func (m *MsgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	depositor, err := signer(msg.Depositor)
	if err != nil {
		return nil, m.fail(types.TypeMsgWithdraw, err)
	}
	result, err := m.keeper.Withdraw(ctx, depositor, msg.PoolIndex, msg.Amount, msg.StakedVault, msg.RewardVault)
	if err != nil {
		return nil, m.fail(types.TypeMsgWithdraw, err)
	}

	poolLabel := strconv.FormatUint(msg.PoolIndex, 10)
	m.metrics.RecordWithdrawal(poolLabel, float64(result.Moved), float64(result.RewardPaid))
	m.recordPoolState(ctx, msg.PoolIndex)
	return &types.MsgWithdrawResponse{
		StakedAmount: result.Position.StakedAmount,
		Withdrawn:    result.Moved,
		RewardPaid:   result.RewardPaid,
	}, nil
}

// EmergencyWithdraw handles MsgEmergencyWithdraw
func (m *MsgServer) EmergencyWithdraw(goCtx context.Context, msg *types.MsgEmergencyWithdraw) (*types.MsgEmergencyWithdrawResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	depositor, err := signer(msg.Depositor)
	if err != nil {
		return nil, m.fail(types.TypeMsgEmergencyWithdraw, err)
	}
	withdrawn, err := m.keeper.EmergencyWithdraw(ctx, depositor, msg.PoolIndex, msg.StakedVault)
	if err != nil {
		return nil, m.fail(types.TypeMsgEmergencyWithdraw, err)
	}

	m.metrics.RecordEmergencyWithdrawal(strconv.FormatUint(msg.PoolIndex, 10), float64(withdrawn))
	m.recordPoolState(ctx, msg.PoolIndex)
	return &types.MsgEmergencyWithdrawResponse{Withdrawn: withdrawn}, nil
}

// UpdateProjectInfo handles MsgUpdateProjectInfo
func (m *MsgServer) UpdateProjectInfo(goCtx context.Context, msg *types.MsgUpdateProjectInfo) (*types.MsgUpdateProjectInfoResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	owner, err := signer(msg.Owner)
	if err != nil {
		return nil, m.fail(types.TypeMsgUpdateProjectInfo, err)
	}
	if err := m.keeper.UpdateProjectInfo(ctx, owner, msg.PoolIndex, msg.Metadata()); err != nil {
		return nil, m.fail(types.TypeMsgUpdateProjectInfo, err)
	}

	m.metrics.RecordPoolOperation(strconv.FormatUint(msg.PoolIndex, 10), types.TypeMsgUpdateProjectInfo)
	return &types.MsgUpdateProjectInfoResponse{}, nil
}

// SetBonusTime handles MsgSetBonusTime
func (m *MsgServer) SetBonusTime(goCtx context.Context, msg *types.MsgSetBonusTime) (*types.MsgSetBonusTimeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	owner, err := signer(msg.Owner)
	if err != nil {
		return nil, m.fail(types.TypeMsgSetBonusTime, err)
	}
	pool, err := m.keeper.SetBonusTime(ctx, owner, msg.PoolIndex, msg.Multiplier, msg.BonusStart, msg.BonusEnd, msg.StakedVault)
	if err != nil {
		return nil, m.fail(types.TypeMsgSetBonusTime, err)
	}

	m.metrics.RecordPoolOperation(strconv.FormatUint(msg.PoolIndex, 10), types.TypeMsgSetBonusTime)
	return &types.MsgSetBonusTimeResponse{EndTime: pool.EndTime}, nil
}

// UpdateEndBlock handles MsgUpdateEndBlock
func (m *MsgServer) UpdateEndBlock(goCtx context.Context, msg *types.MsgUpdateEndBlock) (*types.MsgUpdateEndBlockResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	owner, err := signer(msg.Owner)
	if err != nil {
		return nil, m.fail(types.TypeMsgUpdateEndBlock, err)
	}
	pool, topUp, err := m.keeper.UpdateEndBlock(ctx, owner, msg.PoolIndex, msg.NewEndTime, msg.RewardVault)
	if err != nil {
		return nil, m.fail(types.TypeMsgUpdateEndBlock, err)
	}

	m.metrics.RecordPoolOperation(strconv.FormatUint(msg.PoolIndex, 10), types.TypeMsgUpdateEndBlock)
	m.recordPoolState(ctx, msg.PoolIndex)
	return &types.MsgUpdateEndBlockResponse{EndTime: pool.EndTime, TopUp: topUp}, nil
}

// ClosePosition handles MsgClosePosition
func (m *MsgServer) ClosePosition(goCtx context.Context, msg *types.MsgClosePosition) (*types.MsgClosePositionResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	depositor, err := signer(msg.Depositor)
	if err != nil {
		return nil, m.fail(types.TypeMsgClosePosition, err)
	}
	if err := m.keeper.ClosePosition(ctx, depositor, msg.PoolIndex); err != nil {
		return nil, m.fail(types.TypeMsgClosePosition, err)
	}
	return &types.MsgClosePositionResponse{}, nil
}
