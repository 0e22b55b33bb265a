package websocket

import (
	"context"
	"net/http"
	"sync"
	"time"

	"cosmossdk.io/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/openalpha/stake-farm/api/middleware"
	"github.com/openalpha/stake-farm/metrics"
	"github.com/openalpha/stake-farm/x/farm/types"
)

// Source is the chain view the server polls
type Source interface {
	Height(ctx context.Context) (int64, error)
	Pools(ctx context.Context, offset, limit uint64) ([]types.StakePool, uint64, error)
}

// Server upgrades /ws requests and pushes pool snapshots every time the
// polled chain height advances
type Server struct {
	hub      *Hub
	cache    *SnapshotCache
	source   Source
	config   *ServerConfig
	upgrader websocket.Upgrader
	logger   log.Logger

	connectionsPerIP map[string]int
	ipMu             sync.Mutex

	lastHeight int64
}

// ServerConfig contains server configuration
type ServerConfig struct {
	PollInterval   time.Duration
	AllowedOrigins []string
	MaxConnPerIP   int

	HubConfig *HubConfig
}

// DefaultServerConfig returns default server configuration
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		PollInterval:   time.Second,
		AllowedOrigins: []string{"*"},
		MaxConnPerIP:   10,
		HubConfig:      DefaultHubConfig(),
	}
}

// NewServer creates a websocket server reading from source
func NewServer(source Source, config *ServerConfig, logger log.Logger) *Server {
	if config == nil {
		config = DefaultServerConfig()
	}
	logger = logger.With("component", "websocket")
	cache := NewSnapshotCache()

	return &Server{
		hub:              NewHub(config.HubConfig, cache, logger),
		cache:            cache,
		source:           source,
		config:           config,
		upgrader:         newUpgrader(config.AllowedOrigins),
		logger:           logger,
		connectionsPerIP: make(map[string]int),
	}
}

// Run drives the hub and the chain poller until ctx is done
func (s *Server) Run(ctx context.Context) {
	go s.hub.Run(ctx)

	ticker := time.NewTicker(s.config.PollInterval)
	defer ticker.Stop()

	for {
		if _, err := s.poll(ctx); err != nil && ctx.Err() == nil {
			s.logger.Error("failed to poll pools", "error", err)
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

// poll reads every pool when the chain height has advanced since the last
// poll and publishes the snapshots. It reports whether anything was published.
func (s *Server) poll(ctx context.Context) (bool, error) {
	height, err := s.source.Height(ctx)
	if err != nil {
		return false, err
	}
	if height <= s.lastHeight {
		return false, nil
	}

	pools, _, err := s.source.Pools(ctx, 0, 0)
	if err != nil {
		return false, err
	}
	s.lastHeight = height
	metrics.GetCollector().RecordBlockHeight(height)

	snaps := s.cache.Update(height, pools)
	s.hub.Publish(height, snaps)
	return len(snaps) > 0, nil
}

// ServeHTTP upgrades the request to a websocket connection
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ip := middleware.ClientIP(r)
	if !s.acquireIP(ip) {
		http.Error(w, "Too many connections from this IP", http.StatusTooManyRequests)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.releaseIP(ip)
		s.logger.Debug("websocket upgrade failed", "ip", ip, "error", err)
		return
	}

	client := NewClient(s.hub, conn, uuid.NewString(), ip)
	client.onClose = func() { s.releaseIP(ip) }

	if !enqueue(s.hub, s.hub.register, client) {
		_ = conn.Close()
		s.releaseIP(ip)
		return
	}

	go client.writePump()
	go client.readPump()
}

func (s *Server) acquireIP(ip string) bool {
	s.ipMu.Lock()
	defer s.ipMu.Unlock()

	if s.connectionsPerIP[ip] >= s.config.MaxConnPerIP {
		return false
	}
	s.connectionsPerIP[ip]++
	return true
}

func (s *Server) releaseIP(ip string) {
	s.ipMu.Lock()
	defer s.ipMu.Unlock()

	s.connectionsPerIP[ip]--
	if s.connectionsPerIP[ip] <= 0 {
		delete(s.connectionsPerIP, ip)
	}
}

// GetHub returns the hub
func (s *Server) GetHub() *Hub {
	return s.hub
}

// Cache returns the snapshot cache
func (s *Server) Cache() *SnapshotCache {
	return s.cache
}
