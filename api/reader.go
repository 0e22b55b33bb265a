package api

import (
	"context"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc"

	"github.com/openalpha/stake-farm/api/websocket"
	"github.com/openalpha/stake-farm/pkg/grpcclient"
	"github.com/openalpha/stake-farm/x/farm/client/chain"
	"github.com/openalpha/stake-farm/x/farm/types"
)

// Reader is the read-only view of farm state served by the API
type Reader interface {
	websocket.Source

	Pool(ctx context.Context, poolIndex uint64) (*types.StakePool, int64, error)
	Position(ctx context.Context, poolIndex uint64, depositor sdk.AccAddress) (*types.Position, error)
	Positions(ctx context.Context, poolIndex uint64) ([]types.Position, error)
	PendingReward(ctx context.Context, poolIndex uint64, depositor sdk.AccAddress) (uint64, error)
	Vaults(ctx context.Context, poolIndex uint64) (*types.PoolVaults, error)
}

var _ Reader = (*ChainReader)(nil)

// ChainReader reads farm state from a farmd node. Store queries go through
// CometBFT RPC; Query service calls use the node's gRPC endpoint when one
// is set.
type ChainReader struct {
	*chain.Reader

	grpcPool *grpcclient.Pool
}

// NewChainReader connects to the node named by cfg
func NewChainReader(cfg *Config) (*ChainReader, error) {
	rpc, err := client.NewClientFromNode(cfg.NodeURI)
	if err != nil {
		return nil, err
	}

	registry := codectypes.NewInterfaceRegistry()
	clientCtx := client.Context{}.
		WithClient(rpc).
		WithNodeURI(cfg.NodeURI).
		WithInterfaceRegistry(registry).
		WithCodec(codec.NewProtoCodec(registry))

	r := &ChainReader{Reader: chain.NewReader(clientCtx)}
	if cfg.GRPCAddr != "" {
		grpcCfg := grpcclient.DefaultConfig()
		grpcCfg.GRPCAddr = cfg.GRPCAddr
		pool, err := grpcclient.Dial(grpcCfg,
			grpc.WithDefaultCallOptions(grpc.ForceCodec(codec.NewProtoCodec(registry).GRPCCodec())))
		if err != nil {
			return nil, err
		}
		r.grpcPool = pool
		r.Reader.WithQueryConn(pool)
	}
	return r, nil
}

// Close releases the gRPC connections
func (r *ChainReader) Close() error {
	if r.grpcPool == nil {
		return nil
	}
	return r.grpcPool.Close()
}
