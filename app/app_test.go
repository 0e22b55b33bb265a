package app

import (
	"testing"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	abci "github.com/cometbft/cometbft/abci/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	gogoproto "github.com/cosmos/gogoproto/proto"
	"github.com/stretchr/testify/require"

	farmtypes "github.com/openalpha/stake-farm/x/farm/types"
)

const (
	stakeDenom  = "ustake"
	rewardDenom = "ureward"
)

var (
	owner = sdk.AccAddress([]byte("farm_pool_owner_____"))
	alice = sdk.AccAddress([]byte("farm_alice__________"))
)

func denomMetadata(base string) banktypes.Metadata {
	display := base[1:]
	return banktypes.Metadata{
		Base:    base,
		Display: display,
		Name:    display,
		Symbol:  display,
		DenomUnits: []*banktypes.DenomUnit{
			{Denom: base, Exponent: 0},
			{Denom: display, Exponent: 6},
		},
	}
}

// setupApp builds an App over an in-memory database with funded test
// accounts and denom metadata for both farm denoms.
func setupApp(t *testing.T) (*App, sdk.Context) {
	t.Helper()

	a := NewApp(log.NewNopLogger(), dbm.NewMemDB(), nil, true, nil)
	ctx := a.NewUncachedContext(false, cmtproto.Header{Height: 1})

	a.BankKeeper.InitGenesis(ctx, &banktypes.GenesisState{
		Params: banktypes.DefaultParams(),
		Balances: []banktypes.Balance{
			{Address: owner.String(), Coins: sdk.NewCoins(sdk.NewCoin(rewardDenom, sdkmath.NewInt(1_000_000)))},
			{Address: alice.String(), Coins: sdk.NewCoins(sdk.NewCoin(stakeDenom, sdkmath.NewInt(10_000)))},
		},
		DenomMetadata: []banktypes.Metadata{denomMetadata(stakeDenom), denomMetadata(rewardDenom)},
	})
	return a, ctx
}

func deliver(t *testing.T, a *App, ctx sdk.Context, msg sdk.Msg) (*sdk.Result, error) {
	t.Helper()
	handler := a.MsgServiceRouter().Handler(msg)
	require.NotNil(t, handler, "no route for %s", sdk.MsgTypeURL(msg))
	return handler(ctx, msg)
}

func TestFarmServicesRouted(t *testing.T) {
	a, _ := setupApp(t)

	msgs := []sdk.Msg{
		&farmtypes.MsgBootstrap{},
		&farmtypes.MsgInitializePool{},
		&farmtypes.MsgDeposit{},
		&farmtypes.MsgWithdraw{},
		&farmtypes.MsgEmergencyWithdraw{},
		&farmtypes.MsgUpdateProjectInfo{},
		&farmtypes.MsgSetBonusTime{},
		&farmtypes.MsgUpdateEndBlock{},
		&farmtypes.MsgClosePosition{},
	}
	for _, msg := range msgs {
		typeURL := sdk.MsgTypeURL(msg)
		t.Run(typeURL, func(t *testing.T) {
			require.NotNil(t, a.MsgServiceRouter().HandlerByTypeURL(typeURL))
		})
	}

	for _, method := range []string{"Position", "Positions", "PendingReward", "Vaults"} {
		path := "/" + farmtypes.ProtoPackage + ".Query/" + method
		t.Run(path, func(t *testing.T) {
			require.NotNil(t, a.GRPCQueryRouter().Route(path))
		})
	}
}

func TestMsgSigners(t *testing.T) {
	a, _ := setupApp(t)

	tests := []struct {
		name   string
		msg    sdk.Msg
		signer sdk.AccAddress
	}{
		{"bootstrap", &farmtypes.MsgBootstrap{Payer: owner.String()}, owner},
		{"deposit", &farmtypes.MsgDeposit{Depositor: alice.String(), Amount: 1}, alice},
		{"set bonus time", &farmtypes.MsgSetBonusTime{Owner: owner.String()}, owner},
		{"close position", &farmtypes.MsgClosePosition{Depositor: alice.String()}, alice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signers, _, err := a.AppCodec().GetMsgV1Signers(tt.msg)
			require.NoError(t, err)
			require.Len(t, signers, 1)
			require.Equal(t, tt.signer.Bytes(), signers[0])
		})
	}
}

func TestDeliverDeposit(t *testing.T) {
	a, ctx := setupApp(t)
	staked := farmtypes.StakedVaultAddress(0)
	reward := farmtypes.RewardVaultAddress(0)

	res, err := deliver(t, a, ctx, &farmtypes.MsgBootstrap{Payer: owner.String()})
	require.NoError(t, err)
	require.Len(t, res.MsgResponses, 1)

	_, err = deliver(t, a, ctx, &farmtypes.MsgInitializePool{
		Owner:            owner.String(),
		StakedDenom:      stakeDenom,
		RewardDenom:      rewardDenom,
		RewardTokenCount: 1,
		RewardAmount:     1000,
		StartTime:        1,
		EndTime:          101,
		PoolName:         "reference pool",
		StakedVault:      staked.String(),
		RewardVault:      reward.String(),
	})
	require.NoError(t, err)

	res, err = deliver(t, a, ctx, &farmtypes.MsgDeposit{
		Depositor:   alice.String(),
		PoolIndex:   0,
		Amount:      250,
		StakedVault: staked.String(),
		RewardVault: reward.String(),
	})
	require.NoError(t, err)
	require.Len(t, res.MsgResponses, 1)
	require.Equal(t, "/"+farmtypes.ProtoPackage+".MsgDepositResponse", res.MsgResponses[0].TypeUrl)

	var depRes farmtypes.MsgDepositResponse
	require.NoError(t, gogoproto.Unmarshal(res.MsgResponses[0].Value, &depRes))
	require.Equal(t, uint64(250), depRes.StakedAmount)

	require.Equal(t, sdkmath.NewInt(250), a.BankKeeper.GetBalance(ctx, staked, stakeDenom).Amount)
	require.Equal(t, sdkmath.NewInt(9_750), a.BankKeeper.GetBalance(ctx, alice, stakeDenom).Amount)
	require.Equal(t, sdkmath.NewInt(1000), a.BankKeeper.GetBalance(ctx, reward, rewardDenom).Amount)

	pos, err := a.FarmKeeper.GetPosition(ctx, 0, alice)
	require.NoError(t, err)
	require.Equal(t, uint64(250), pos.StakedAmount)

	// the registered Query service reads the same state
	reqBz, err := gogoproto.Marshal(&farmtypes.QueryPositionsRequest{PoolIndex: 0})
	require.NoError(t, err)
	route := a.GRPCQueryRouter().Route("/" + farmtypes.ProtoPackage + ".Query/Positions")
	require.NotNil(t, route)
	qres, err := route(ctx, &abci.RequestQuery{Data: reqBz})
	require.NoError(t, err)

	var positions farmtypes.QueryPositionsResponse
	require.NoError(t, gogoproto.Unmarshal(qres.Value, &positions))
	require.Len(t, positions.Positions, 1)
	require.Equal(t, alice.String(), positions.Positions[0].Depositor)
}

func TestDeliverRejects(t *testing.T) {
	a, ctx := setupApp(t)

	tests := []struct {
		name string
		msg  sdk.Msg
		err  error
	}{
		{"bad payer", &farmtypes.MsgBootstrap{Payer: "bogus"}, farmtypes.ErrInvalidAddress},
		{"zero deposit", &farmtypes.MsgDeposit{
			Depositor:   alice.String(),
			Amount:      0,
			StakedVault: farmtypes.StakedVaultAddress(0).String(),
			RewardVault: farmtypes.RewardVaultAddress(0).String(),
		}, farmtypes.ErrInvalidAmount},
		{"deposit before bootstrap", &farmtypes.MsgDeposit{
			Depositor:   alice.String(),
			Amount:      10,
			StakedVault: farmtypes.StakedVaultAddress(0).String(),
			RewardVault: farmtypes.RewardVaultAddress(0).String(),
		}, farmtypes.ErrPoolNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := deliver(t, a, ctx, tt.msg)
			require.ErrorIs(t, err, tt.err)
		})
	}
}
