package chain

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"

	sdkmath "cosmossdk.io/math"
	abci "github.com/cometbft/cometbft/abci/types"
	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	rpcclient "github.com/cometbft/cometbft/rpc/client"
	coretypes "github.com/cometbft/cometbft/rpc/core/types"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	gogoproto "github.com/cosmos/gogoproto/proto"
	"github.com/stretchr/testify/require"

	"github.com/openalpha/stake-farm/x/farm/types"
)

const nodeHeight = 42

var (
	alice = sdk.AccAddress([]byte("farm_alice__________"))
	bob   = sdk.AccAddress([]byte("farm_bob____________"))
)

// fakeNode answers ABCI queries from an in-memory copy of farm state. Store
// reads return the JSON records; Query service calls are answered from the
// same records.
type fakeNode struct {
	client.CometRPC

	store   map[string][]byte
	pending map[string]uint64
	paths   []string
}

func newFakeNode(t *testing.T, pools int) *fakeNode {
	t.Helper()
	n := &fakeNode{store: map[string][]byte{}, pending: map[string]uint64{}}
	n.put(t, types.RegistryKey, types.PoolRegistry{PoolCounter: uint64(pools)})
	for i := 0; i < pools; i++ {
		n.put(t, types.PoolKey(uint64(i)), types.StakePool{
			PoolIndex:       uint64(i),
			StakedDenom:     "ustake",
			RewardDenom:     "ureward",
			IsInitialized:   true,
			EndTime:         100,
			AccruedPerShare: sdkmath.ZeroUint(),
		})
	}
	return n
}

func (n *fakeNode) put(t *testing.T, key []byte, v interface{}) {
	t.Helper()
	bz, err := json.Marshal(v)
	require.NoError(t, err)
	n.store[string(key)] = bz
}

func (n *fakeNode) deposit(t *testing.T, poolIndex uint64, who sdk.AccAddress, amount uint64) {
	t.Helper()
	n.put(t, types.PositionKey(poolIndex, who), types.Position{
		PoolIndex:    poolIndex,
		Depositor:    who.String(),
		StakedAmount: amount,
	})
}

func (n *fakeNode) positions(poolIndex uint64) []types.Position {
	var out []types.Position
	prefix := string(types.PoolPositionsPrefix(poolIndex))
	for key, bz := range n.store {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		var pos types.Position
		if err := json.Unmarshal(bz, &pos); err == nil {
			out = append(out, pos)
		}
	}
	return out
}

func (n *fakeNode) ABCIQueryWithOptions(
	_ context.Context, path string, data cmtbytes.HexBytes, _ rpcclient.ABCIQueryOptions,
) (*coretypes.ResultABCIQuery, error) {
	n.paths = append(n.paths, path)

	var res gogoproto.Message
	switch path {
	case "/store/" + types.StoreKey + "/key":
		return &coretypes.ResultABCIQuery{Response: abci.ResponseQuery{Value: n.store[string(data)], Height: nodeHeight}}, nil
	case "/" + types.ProtoPackage + ".Query/Positions":
		var req types.QueryPositionsRequest
		if err := gogoproto.Unmarshal(data, &req); err != nil {
			return nil, err
		}
		res = &types.QueryPositionsResponse{Positions: n.positions(req.PoolIndex)}
	case "/" + types.ProtoPackage + ".Query/PendingReward":
		var req types.QueryPendingRewardRequest
		if err := gogoproto.Unmarshal(data, &req); err != nil {
			return nil, err
		}
		res = &types.QueryPendingRewardResponse{PendingReward: n.pending[req.Depositor], Height: nodeHeight}
	case "/" + types.ProtoPackage + ".Query/Vaults":
		var req types.QueryVaultsRequest
		if err := gogoproto.Unmarshal(data, &req); err != nil {
			return nil, err
		}
		res = &types.QueryVaultsResponse{Vaults: &types.PoolVaults{
			Authority:     types.AuthorityAddress().String(),
			StakedVault:   types.StakedVaultAddress(req.PoolIndex).String(),
			StakedBalance: 250,
			RewardVault:   types.RewardVaultAddress(req.PoolIndex).String(),
			RewardBalance: 1000,
		}}
	default:
		return &coretypes.ResultABCIQuery{Response: abci.ResponseQuery{Code: 6, Log: "unknown query path " + path}}, nil
	}

	bz, err := gogoproto.Marshal(res)
	if err != nil {
		return nil, err
	}
	return &coretypes.ResultABCIQuery{Response: abci.ResponseQuery{Value: bz, Height: nodeHeight}}, nil
}

func (n *fakeNode) calledQueryService() bool {
	for _, p := range n.paths {
		if strings.HasPrefix(p, "/"+types.ProtoPackage+".Query/") {
			return true
		}
	}
	return false
}

func newTestReader(node *fakeNode) *Reader {
	registry := codectypes.NewInterfaceRegistry()
	clientCtx := client.Context{}.
		WithClient(node).
		WithInterfaceRegistry(registry).
		WithCodec(codec.NewProtoCodec(registry))
	return NewReader(clientCtx)
}

func TestReaderHeightAndRegistry(t *testing.T) {
	r := newTestReader(newFakeNode(t, 2))

	height, err := r.Height(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(nodeHeight), height)

	registry, err := r.Registry(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(2), registry.PoolCounter)

	empty := newTestReader(&fakeNode{store: map[string][]byte{}})
	_, err = empty.Registry(context.Background())
	require.ErrorIs(t, err, types.ErrRegistryNotFound)
}

func TestReaderPool(t *testing.T) {
	node := newFakeNode(t, 2)
	node.store[string(types.PoolKey(5))] = []byte("{not json")
	r := newTestReader(node)

	tests := []struct {
		name  string
		index uint64
		err   error
	}{
		{"first pool", 0, nil},
		{"second pool", 1, nil},
		{"missing pool", 2, types.ErrPoolNotFound},
		{"corrupt record", 5, types.ErrInvalidPoolState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, height, err := r.Pool(context.Background(), tt.index)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.index, pool.PoolIndex)
			require.Equal(t, int64(nodeHeight), height)
		})
	}
}

func TestReaderPools(t *testing.T) {
	r := newTestReader(newFakeNode(t, 3))

	tests := []struct {
		name    string
		offset  uint64
		limit   uint64
		indexes []uint64
	}{
		{"all", 0, 0, []uint64{0, 1, 2}},
		{"first page", 0, 2, []uint64{0, 1}},
		{"second page", 2, 2, []uint64{2}},
		{"offset past end", 3, 5, []uint64{}},
		{"huge offset", math.MaxUint64, 1, []uint64{}},
		{"limit that would overflow", 1, math.MaxUint64, []uint64{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pools, total, err := r.Pools(context.Background(), tt.offset, tt.limit)
			require.NoError(t, err)
			require.Equal(t, uint64(3), total)

			indexes := make([]uint64, 0, len(pools))
			for _, p := range pools {
				indexes = append(indexes, p.PoolIndex)
			}
			require.Equal(t, tt.indexes, indexes)
		})
	}
}

func TestReaderPositions(t *testing.T) {
	node := newFakeNode(t, 2)
	node.deposit(t, 0, alice, 100)
	node.deposit(t, 0, bob, 50)
	r := newTestReader(node)

	pos, err := r.Position(context.Background(), 0, alice)
	require.NoError(t, err)
	require.Equal(t, uint64(100), pos.StakedAmount)

	_, err = r.Position(context.Background(), 1, alice)
	require.ErrorIs(t, err, types.ErrPositionNotFound)

	positions, err := r.Positions(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, positions, 2)

	positions, err = r.Positions(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, positions)
	require.Empty(t, positions)

	node.paths = nil
	_, err = r.Positions(context.Background(), 7)
	require.ErrorIs(t, err, types.ErrPoolNotFound)
	require.False(t, node.calledQueryService())
}

func TestReaderPendingReward(t *testing.T) {
	node := newFakeNode(t, 1)
	node.deposit(t, 0, alice, 100)
	node.pending[alice.String()] = 420
	r := newTestReader(node)

	tests := []struct {
		name      string
		pool      uint64
		depositor sdk.AccAddress
		want      uint64
		err       error
	}{
		{"claimable reward", 0, alice, 420, nil},
		{"no position", 0, bob, 0, types.ErrPositionNotFound},
		{"missing pool", 3, alice, 0, types.ErrPoolNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node.paths = nil
			pending, err := r.PendingReward(context.Background(), tt.pool, tt.depositor)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				require.False(t, node.calledQueryService())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, pending)
			require.True(t, node.calledQueryService())
		})
	}
}

func TestReaderVaults(t *testing.T) {
	r := newTestReader(newFakeNode(t, 1))

	vaults, err := r.Vaults(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, types.StakedVaultAddress(0).String(), vaults.StakedVault)
	require.Equal(t, uint64(250), vaults.StakedBalance)
	require.Equal(t, uint64(1000), vaults.RewardBalance)

	_, err = r.Vaults(context.Background(), 1)
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}
