package keeper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openalpha/stake-farm/x/farm/types"
)

func TestMsgServerLifecycle(t *testing.T) {
	f := setupKeeper(t)
	srv := NewMsgServerImpl(f.keeper)
	goCtx := f.ctx

	_, err := srv.Bootstrap(goCtx, &types.MsgBootstrap{Payer: f.owner.String()})
	require.ErrorIs(t, err, types.ErrAlreadyBootstrapped)

	initRes, err := srv.InitializePool(goCtx, f.initMsg(0, 1000, 0, 100))
	require.NoError(t, err)
	require.Equal(t, uint64(0), initRes.PoolIndex)
	require.Equal(t, uint64(10), initRes.RewardRatePerUnitTime)
	require.Equal(t, types.PoolAddress(0).String(), initRes.PoolAddress)

	staked := types.StakedVaultAddress(0).String()
	reward := types.RewardVaultAddress(0).String()

	depRes, err := srv.Deposit(goCtx, &types.MsgDeposit{
		Depositor: f.alice.String(), PoolIndex: 0, Amount: 100, StakedVault: staked, RewardVault: reward,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(100), depRes.StakedAmount)

	bonusRes, err := srv.SetBonusTime(f.at(10), &types.MsgSetBonusTime{
		Owner: f.owner.String(), PoolIndex: 0, Multiplier: 2, BonusStart: 40, BonusEnd: 60, StakedVault: staked,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(80), bonusRes.EndTime)

	_, err = srv.UpdateProjectInfo(f.ctx, &types.MsgUpdateProjectInfo{
		Owner: f.owner.String(), PoolIndex: 0, PoolName: "renamed", Link: "", ThemeID: 2,
	})
	require.NoError(t, err)

	endRes, err := srv.UpdateEndBlock(f.ctx, &types.MsgUpdateEndBlock{
		Owner: f.owner.String(), PoolIndex: 0, NewEndTime: 90, RewardVault: reward,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(90), endRes.EndTime)
	require.Equal(t, uint64(100), endRes.TopUp)

	wdRes, err := srv.Withdraw(f.at(30), &types.MsgWithdraw{
		Depositor: f.alice.String(), PoolIndex: 0, Amount: 40, StakedVault: staked, RewardVault: reward,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(60), wdRes.StakedAmount)
	require.Equal(t, uint64(40), wdRes.Withdrawn)
	require.Equal(t, uint64(300), wdRes.RewardPaid)

	emRes, err := srv.EmergencyWithdraw(f.ctx, &types.MsgEmergencyWithdraw{
		Depositor: f.alice.String(), PoolIndex: 0, StakedVault: staked,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(60), emRes.Withdrawn)

	_, err = srv.ClosePosition(f.ctx, &types.MsgClosePosition{Depositor: f.alice.String(), PoolIndex: 0})
	require.NoError(t, err)

	_, err = srv.Deposit(f.ctx, &types.MsgDeposit{
		Depositor: "bogus", PoolIndex: 0, Amount: 1, StakedVault: staked, RewardVault: reward,
	})
	require.ErrorIs(t, err, types.ErrInvalidAddress)
}

func TestQueryServer(t *testing.T) {
	f := setupKeeper(t)
	q := NewQueryServerImpl(f.keeper)
	for i := 0; i < 3; i++ {
		f.initPool(t)
	}
	f.deposit(t, f.alice, 1, 250)

	pos, err := q.Position(f.ctx, &types.QueryPositionRequest{PoolIndex: 1, Depositor: f.alice.String()})
	require.NoError(t, err)
	require.Equal(t, uint64(250), pos.Position.StakedAmount)

	positions, err := q.Positions(f.ctx, &types.QueryPositionsRequest{PoolIndex: 1})
	require.NoError(t, err)
	require.Len(t, positions.Positions, 1)
	require.Equal(t, f.alice.String(), positions.Positions[0].Depositor)

	positions, err = q.Positions(f.ctx, &types.QueryPositionsRequest{PoolIndex: 0})
	require.NoError(t, err)
	require.Empty(t, positions.Positions)

	pending, err := q.PendingReward(f.at(20), &types.QueryPendingRewardRequest{PoolIndex: 1, Depositor: f.alice.String()})
	require.NoError(t, err)
	require.Equal(t, uint64(200), pending.PendingReward)
	require.Equal(t, int64(20), pending.Height)

	vaults, err := q.Vaults(f.ctx, &types.QueryVaultsRequest{PoolIndex: 1})
	require.NoError(t, err)
	require.Equal(t, uint64(250), vaults.Vaults.StakedBalance)
	require.Equal(t, uint64(1000), vaults.Vaults.RewardBalance)
	require.Equal(t, types.AuthorityAddress().String(), vaults.Vaults.Authority)
	require.Equal(t, types.StakedVaultAddress(1).String(), vaults.Vaults.StakedVault)
}

func TestQueryServerErrors(t *testing.T) {
	f := setupKeeper(t)
	q := NewQueryServerImpl(f.keeper)
	f.initPool(t)

	tests := []struct {
		name  string
		query func() error
		err   error
	}{
		{"positions of missing pool", func() error {
			_, err := q.Positions(f.ctx, &types.QueryPositionsRequest{PoolIndex: 9})
			return err
		}, types.ErrPoolNotFound},
		{"vaults of missing pool", func() error {
			_, err := q.Vaults(f.ctx, &types.QueryVaultsRequest{PoolIndex: 9})
			return err
		}, types.ErrPoolNotFound},
		{"bad depositor", func() error {
			_, err := q.Position(f.ctx, &types.QueryPositionRequest{PoolIndex: 0, Depositor: "bogus"})
			return err
		}, types.ErrInvalidAddress},
		{"no position", func() error {
			_, err := q.Position(f.ctx, &types.QueryPositionRequest{PoolIndex: 0, Depositor: f.bob.String()})
			return err
		}, types.ErrPositionNotFound},
		{"pending of bad depositor", func() error {
			_, err := q.PendingReward(f.ctx, &types.QueryPendingRewardRequest{PoolIndex: 0, Depositor: ""})
			return err
		}, types.ErrInvalidAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.query(), tt.err)
		})
	}
}
