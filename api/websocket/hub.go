package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"cosmossdk.io/log"

	"github.com/openalpha/stake-farm/metrics"
)

const (
	// ChannelPools carries snapshots of every pool
	ChannelPools = "pools"

	poolChannelPrefix = "pool:"
)

// PoolChannel returns the channel carrying snapshots of one pool
func PoolChannel(poolIndex uint64) string {
	return poolChannelPrefix + strconv.FormatUint(poolIndex, 10)
}

// parseChannel validates a channel name. all is set for ChannelPools.
func parseChannel(channel string) (poolIndex uint64, all bool, err error) {
	if channel == ChannelPools {
		return 0, true, nil
	}
	raw, ok := strings.CutPrefix(channel, poolChannelPrefix)
	if !ok {
		return 0, false, fmt.Errorf("unknown channel %q", channel)
	}
	poolIndex, err = strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid pool index in channel %q", channel)
	}
	return poolIndex, false, nil
}

// WSMessage is the envelope of every server message
type WSMessage struct {
	Type    string      `json:"type"`
	Channel string      `json:"channel,omitempty"`
	Height  int64       `json:"height,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Hub maintains the set of active clients and their channel subscriptions
type Hub struct {
	clients  map[*Client]bool
	channels map[string]map[*Client]bool // channel -> clients

	register    chan *Client
	unregister  chan *Client
	subscribe   chan *SubscriptionRequest
	unsubscribe chan *SubscriptionRequest
	done        chan struct{}

	// Latest pool snapshots, replayed to new subscribers
	cache *SnapshotCache

	mu sync.RWMutex

	config *HubConfig
	logger log.Logger
}

// HubConfig contains hub configuration
type HubConfig struct {
	MaxSubscriptions int     // Channels per client
	MessageRate      float64 // Client messages per second
	MessageBurst     int
}

// DefaultHubConfig returns default hub configuration
func DefaultHubConfig() *HubConfig {
	return &HubConfig{
		MaxSubscriptions: 50,
		MessageRate:      10,
		MessageBurst:     20,
	}
}

// SubscriptionRequest asks the hub to add or remove a client from a channel
type SubscriptionRequest struct {
	Client  *Client
	Channel string
}

// NewHub creates a new Hub
func NewHub(config *HubConfig, cache *SnapshotCache, logger log.Logger) *Hub {
	if config == nil {
		config = DefaultHubConfig()
	}
	if cache == nil {
		cache = NewSnapshotCache()
	}

	return &Hub{
		clients:     make(map[*Client]bool),
		channels:    make(map[string]map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		subscribe:   make(chan *SubscriptionRequest, 256),
		unsubscribe: make(chan *SubscriptionRequest, 256),
		done:        make(chan struct{}),
		cache:       cache,
		config:      config,
		logger:      logger,
	}
}

// Run processes registrations and subscriptions until ctx is done, then
// disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case req := <-h.subscribe:
			h.handleSubscription(req)

		case req := <-h.unsubscribe:
			h.handleUnsubscription(req)

		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				h.removeClient(client)
			}
			h.mu.Unlock()
			return
		}
	}
}

// enqueue hands a client to the Run loop unless the hub has stopped
func enqueue[T any](h *Hub, ch chan T, v T) bool {
	select {
	case ch <- v:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	metrics.GetCollector().RecordWSConnection(1)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeClient(client)
}

// removeClient drops client from every channel; callers hold h.mu
func (h *Hub) removeClient(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)

	for channel, clients := range h.channels {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.channels, channel)
		}
	}

	close(client.send)
	metrics.GetCollector().RecordWSConnection(-1)
}

func (h *Hub) handleSubscription(req *SubscriptionRequest) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.clients[req.Client] {
		return
	}
	if _, ok := h.channels[req.Channel]; !ok {
		h.channels[req.Channel] = make(map[*Client]bool)
	}
	h.channels[req.Channel][req.Client] = true

	h.deliver(req.Client, &WSMessage{Type: "subscribed", Channel: req.Channel})

	// Replay the latest snapshot so subscribers need not wait a block
	poolIndex, all, err := parseChannel(req.Channel)
	if err != nil {
		return
	}
	if all {
		if snaps := h.cache.All(); len(snaps) > 0 {
			h.deliver(req.Client, poolsMessage(h.cache.Height(), snaps))
		}
		return
	}
	if snap, ok := h.cache.Get(poolIndex); ok {
		h.deliver(req.Client, poolMessage(snap))
	}
}

func (h *Hub) handleUnsubscription(req *SubscriptionRequest) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.channels[req.Channel]; ok {
		delete(clients, req.Client)
		if len(clients) == 0 {
			delete(h.channels, req.Channel)
		}
	}
	h.deliver(req.Client, &WSMessage{Type: "unsubscribed", Channel: req.Channel})
}

// deliver queues msg for client without blocking; callers hold h.mu. A client
// whose buffer is full misses the message.
func (h *Hub) deliver(client *Client, msg *WSMessage) {
	if !h.clients[client] {
		return
	}
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("failed to encode websocket message", "type", msg.Type, "error", err)
		return
	}
	select {
	case client.send <- data:
		metrics.GetCollector().RecordWSMessage(msg.Type)
	default:
	}
}

// Send queues msg for a single client
func (h *Hub) Send(client *Client, msg *WSMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	h.deliver(client, msg)
}

// BroadcastToChannel queues msg for every subscriber of channel
func (h *Hub) BroadcastToChannel(channel string, msg *WSMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.channels[channel] {
		h.deliver(client, msg)
	}
}

// Publish pushes snapshots read at height to the pools channel and to each
// pool's own channel
func (h *Hub) Publish(height int64, snaps []*PoolSnapshot) {
	if len(snaps) == 0 {
		return
	}
	h.BroadcastToChannel(ChannelPools, poolsMessage(height, snaps))
	for _, snap := range snaps {
		h.BroadcastToChannel(PoolChannel(snap.Pool.PoolIndex), poolMessage(snap))
	}
}

func poolsMessage(height int64, snaps []*PoolSnapshot) *WSMessage {
	return &WSMessage{Type: "pools", Channel: ChannelPools, Height: height, Data: snaps}
}

func poolMessage(snap *PoolSnapshot) *WSMessage {
	return &WSMessage{
		Type:    "pool",
		Channel: PoolChannel(snap.Pool.PoolIndex),
		Height:  snap.Height,
		Data:    snap,
	}
}

// GetClientCount returns the number of connected clients
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// GetChannelClientCount returns the number of subscribers of a channel
func (h *Hub) GetChannelClientCount(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.channels[channel])
}
