package grpcclient

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func startHealthServer(t *testing.T) *bufconn.Listener {
	t.Helper()
	lis := bufconn.Listen(1024 * 1024)

	srv := grpc.NewServer()
	hs := health.NewServer()
	hs.SetServingStatus("farm", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)
	return lis
}

func dialBuf(t *testing.T, lis *bufconn.Listener, size int) *Pool {
	t.Helper()
	cfg := DefaultConfig()
	cfg.GRPCAddr = "passthrough:///bufnet"
	cfg.PoolSize = size

	pool, err := Dial(cfg, grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close() })
	return pool
}

func TestPoolInvokesOverEveryConnection(t *testing.T) {
	lis := startHealthServer(t)
	pool := dialBuf(t, lis, 3)
	require.Equal(t, 3, pool.Size())

	client := healthpb.NewHealthClient(pool)
	for i := 0; i < 6; i++ {
		res, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "farm"})
		require.NoError(t, err)
		require.Equal(t, healthpb.HealthCheckResponse_SERVING, res.Status)
	}

	calls, failures := pool.GetMetrics()
	require.Equal(t, uint64(6), calls)
	require.Zero(t, failures)
}

func TestPoolCountsFailures(t *testing.T) {
	lis := startHealthServer(t)
	pool := dialBuf(t, lis, 1)

	_, err := healthpb.NewHealthClient(pool).Check(context.Background(), &healthpb.HealthCheckRequest{Service: "unknown"})
	require.Error(t, err)

	calls, failures := pool.GetMetrics()
	require.Equal(t, uint64(1), calls)
	require.Equal(t, uint64(1), failures)
}

func TestDialRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GRPCAddr = ""
	_, err := Dial(cfg)
	require.Error(t, err)

	cfg = DefaultConfig()
	cfg.PoolSize = 0
	_, err = Dial(cfg)
	require.Error(t, err)
}
