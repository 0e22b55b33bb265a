// Package grpcclient provides a pooled gRPC connection to a farmd node
package grpcclient

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	gogogrpc "github.com/cosmos/gogoproto/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

// Config holds gRPC client configuration
type Config struct {
	GRPCAddr       string
	PoolSize       int           // Connection pool size
	Timeout        time.Duration // Per-call timeout when the caller sets none
	MaxRecvMsgSize int
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		GRPCAddr:       "localhost:9090",
		PoolSize:       4,
		Timeout:        5 * time.Second,
		MaxRecvMsgSize: 10 * 1024 * 1024,
	}
}

// Pool spreads calls over a fixed set of connections, round-robin
type Pool struct {
	config    *Config
	pool      []*grpc.ClientConn
	poolIndex uint64

	calls    uint64
	failures uint64
}

var _ gogogrpc.ClientConn = (*Pool)(nil)

// Dial opens PoolSize connections to config.GRPCAddr. Extra options are
// appended to the defaults.
func Dial(config *Config, opts ...grpc.DialOption) (*Pool, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.GRPCAddr == "" {
		return nil, fmt.Errorf("gRPC address is required")
	}
	if config.PoolSize <= 0 {
		return nil, fmt.Errorf("pool size must be positive, got %d", config.PoolSize)
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(config.MaxRecvMsgSize)),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                30 * time.Second,
			Timeout:             10 * time.Second,
			PermitWithoutStream: true,
		}),
	}, opts...)

	p := &Pool{
		config: config,
		pool:   make([]*grpc.ClientConn, 0, config.PoolSize),
	}
	for i := 0; i < config.PoolSize; i++ {
		conn, err := grpc.NewClient(config.GRPCAddr, dialOpts...)
		if err != nil {
			_ = p.Close()
			return nil, fmt.Errorf("connect to gRPC: %w", err)
		}
		p.pool = append(p.pool, conn)
	}
	return p, nil
}

// getConn returns a connection from the pool (round-robin)
func (p *Pool) getConn() *grpc.ClientConn {
	idx := atomic.AddUint64(&p.poolIndex, 1) % uint64(len(p.pool))
	return p.pool[idx]
}

func (p *Pool) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || p.config.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, p.config.Timeout)
}

// Invoke performs a unary call on the next connection
func (p *Pool) Invoke(ctx context.Context, method string, args, reply interface{}, opts ...grpc.CallOption) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	atomic.AddUint64(&p.calls, 1)
	if err := p.getConn().Invoke(ctx, method, args, reply, opts...); err != nil {
		atomic.AddUint64(&p.failures, 1)
		return err
	}
	return nil
}

// NewStream opens a stream on the next connection
func (p *Pool) NewStream(ctx context.Context, desc *grpc.StreamDesc, method string, opts ...grpc.CallOption) (grpc.ClientStream, error) {
	atomic.AddUint64(&p.calls, 1)
	return p.getConn().NewStream(ctx, desc, method, opts...)
}

// GetMetrics returns call counters
func (p *Pool) GetMetrics() (calls, failures uint64) {
	return atomic.LoadUint64(&p.calls), atomic.LoadUint64(&p.failures)
}

// Size returns the number of pooled connections
func (p *Pool) Size() int {
	return len(p.pool)
}

// Close closes all connections
func (p *Pool) Close() error {
	var firstErr error
	for _, conn := range p.pool {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
