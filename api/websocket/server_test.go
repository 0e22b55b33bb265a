package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"cosmossdk.io/log"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/openalpha/stake-farm/x/farm/types"
)

type fakeSource struct {
	mu     sync.Mutex
	height int64
	pools  []types.StakePool
	calls  int
}

func (f *fakeSource) set(height int64, pools ...types.StakePool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.height = height
	f.pools = pools
}

func (f *fakeSource) Height(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.height, nil
}

func (f *fakeSource) Pools(_ context.Context, _, _ uint64) ([]types.StakePool, uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	out := append([]types.StakePool(nil), f.pools...)
	return out, uint64(len(out)), nil
}

func pool(index, remaining uint64) types.StakePool {
	return types.StakePool{
		PoolIndex:             index,
		StakedDenom:           "ustake",
		RewardDenom:           "ureward",
		IsInitialized:         true,
		StartTime:             0,
		EndTime:               100,
		RewardAmountRemaining: remaining,
	}
}

type received struct {
	Type    string          `json:"type"`
	Channel string          `json:"channel"`
	Height  int64           `json:"height"`
	Data    json.RawMessage `json:"data"`
}

func setupServer(t *testing.T, config *ServerConfig) (*Server, *fakeSource, string) {
	t.Helper()
	source := &fakeSource{}
	srv := NewServer(source, config, log.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go srv.hub.Run(ctx)

	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return srv, source, "ws" + strings.TrimPrefix(ts.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) received {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg received
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestPollPublishesOnlyWhenHeightAdvances(t *testing.T) {
	srv, source, _ := setupServer(t, nil)
	ctx := context.Background()

	published, err := srv.poll(ctx)
	require.NoError(t, err)
	require.False(t, published)
	require.Equal(t, 0, source.calls)

	source.set(5, pool(0, 1000), pool(1, 500))
	published, err = srv.poll(ctx)
	require.NoError(t, err)
	require.True(t, published)
	require.Equal(t, 2, srv.Cache().Len())

	published, err = srv.poll(ctx)
	require.NoError(t, err)
	require.False(t, published)
	require.Equal(t, 1, source.calls)
}

func TestSubscribeReplaysAndPushes(t *testing.T) {
	srv, source, url := setupServer(t, nil)
	ctx := context.Background()

	source.set(5, pool(0, 1000), pool(1, 500))
	_, err := srv.poll(ctx)
	require.NoError(t, err)

	conn := dial(t, url)
	require.NoError(t, conn.WriteJSON(ClientMessage{Action: "subscribe", Channel: PoolChannel(1)}))

	msg := readMessage(t, conn)
	require.Equal(t, "subscribed", msg.Type)
	require.Equal(t, "pool:1", msg.Channel)

	msg = readMessage(t, conn)
	require.Equal(t, "pool", msg.Type)
	require.Equal(t, int64(5), msg.Height)
	var snap PoolSnapshot
	require.NoError(t, json.Unmarshal(msg.Data, &snap))
	require.Equal(t, uint64(1), snap.Pool.PoolIndex)
	require.Equal(t, uint64(500), snap.Pool.RewardAmountRemaining)

	source.set(6, pool(0, 900), pool(1, 400))
	_, err = srv.poll(ctx)
	require.NoError(t, err)

	msg = readMessage(t, conn)
	require.Equal(t, "pool", msg.Type)
	require.Equal(t, int64(6), msg.Height)
	require.NoError(t, json.Unmarshal(msg.Data, &snap))
	require.Equal(t, uint64(400), snap.Pool.RewardAmountRemaining)
}

func TestSubscribeAllPools(t *testing.T) {
	srv, source, url := setupServer(t, nil)

	conn := dial(t, url)
	require.NoError(t, conn.WriteJSON(ClientMessage{Action: "subscribe", Channel: ChannelPools}))
	require.Equal(t, "subscribed", readMessage(t, conn).Type)

	source.set(3, pool(0, 1000), pool(1, 500), pool(2, 250))
	_, err := srv.poll(context.Background())
	require.NoError(t, err)

	msg := readMessage(t, conn)
	require.Equal(t, "pools", msg.Type)
	require.Equal(t, int64(3), msg.Height)
	var snaps []PoolSnapshot
	require.NoError(t, json.Unmarshal(msg.Data, &snaps))
	require.Len(t, snaps, 3)
	for i, snap := range snaps {
		require.Equal(t, uint64(i), snap.Pool.PoolIndex)
	}
}

func TestClientErrors(t *testing.T) {
	_, _, url := setupServer(t, nil)
	conn := dial(t, url)

	tests := []struct {
		name string
		send interface{}
		code string
	}{
		{"unknown channel", ClientMessage{Action: "subscribe", Channel: "ticker:BTC"}, "invalid_channel"},
		{"bad pool index", ClientMessage{Action: "subscribe", Channel: "pool:abc"}, "invalid_channel"},
		{"unknown action", ClientMessage{Action: "trade"}, "unknown_action"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, conn.WriteJSON(tt.send))
			msg := readMessage(t, conn)
			require.Equal(t, "error", msg.Type)

			var body map[string]string
			require.NoError(t, json.Unmarshal(msg.Data, &body))
			require.Equal(t, tt.code, body["code"])
		})
	}

	require.NoError(t, conn.WriteJSON(ClientMessage{Action: "ping"}))
	require.Equal(t, "pong", readMessage(t, conn).Type)
}

func TestConnectionLimitPerIP(t *testing.T) {
	config := DefaultServerConfig()
	config.MaxConnPerIP = 1
	_, _, url := setupServer(t, config)

	dial(t, url)

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestSnapshotCache(t *testing.T) {
	cache := NewSnapshotCache()

	snaps := cache.Update(10, []types.StakePool{pool(2, 1), pool(0, 3), pool(1, 2)})
	require.Len(t, snaps, 3)

	all := cache.All()
	require.Len(t, all, 3)
	for i, snap := range all {
		require.Equal(t, uint64(i), snap.Pool.PoolIndex)
	}

	require.Nil(t, cache.Update(9, []types.StakePool{pool(0, 99)}))
	snap, ok := cache.Get(0)
	require.True(t, ok)
	require.Equal(t, uint64(3), snap.Pool.RewardAmountRemaining)
	require.Equal(t, int64(10), cache.Height())

	_, ok = cache.Get(7)
	require.False(t, ok)
}

func TestParseChannel(t *testing.T) {
	idx, all, err := parseChannel("pool:42")
	require.NoError(t, err)
	require.False(t, all)
	require.Equal(t, uint64(42), idx)

	_, all, err = parseChannel(ChannelPools)
	require.NoError(t, err)
	require.True(t, all)

	_, _, err = parseChannel("pool:")
	require.Error(t, err)
}
