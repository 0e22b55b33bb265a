package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Stake farm metrics collector

var (
	// Singleton collector
	collector     *Collector
	collectorOnce sync.Once
)

// Collector holds all stake farm metrics
type Collector struct {
	// Pool metrics
	PoolsInitialized *prometheus.CounterVec
	PoolOperations   *prometheus.CounterVec
	StakedBalance    *prometheus.GaugeVec
	RewardRemaining  *prometheus.GaugeVec

	// Position metrics
	DepositsTotal           *prometheus.CounterVec
	DepositedAmount         *prometheus.CounterVec
	WithdrawalsTotal        *prometheus.CounterVec
	WithdrawnAmount         *prometheus.CounterVec
	EmergencyWithdrawsTotal *prometheus.CounterVec
	RewardsPaid             *prometheus.CounterVec

	// Operation failures by error code
	OperationErrors *prometheus.CounterVec

	// WebSocket metrics
	WSConnectionsActive prometheus.Gauge
	WSMessagesTotal     *prometheus.CounterVec

	// API metrics
	APIRequestsTotal  *prometheus.CounterVec
	APIRequestLatency *prometheus.HistogramVec
	RateLimitHits     *prometheus.CounterVec

	// Chain metrics
	BlockHeight prometheus.Gauge
}

// GetCollector returns the singleton metrics collector
func GetCollector() *Collector {
	collectorOnce.Do(func() {
		collector = newCollector(prometheus.DefaultRegisterer)
	})
	return collector
}

// NewCollector creates a collector registered on reg
func NewCollector(reg prometheus.Registerer) *Collector {
	return newCollector(reg)
}

func newCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{}

	c.PoolsInitialized = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stakefarm",
			Subsystem: "pools",
			Name:      "initialized_total",
			Help:      "Number of pools initialized",
		},
		[]string{"staked_denom", "reward_denom"},
	)

	c.PoolOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stakefarm",
			Subsystem: "pools",
			Name:      "owner_operations_total",
			Help:      "Owner-gated pool operations by kind",
		},
		[]string{"pool_index", "operation"},
	)

	c.StakedBalance = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "stakefarm",
			Subsystem: "pools",
			Name:      "staked_balance",
			Help:      "Staked vault balance in base units",
		},
		[]string{"pool_index"},
	)

	c.RewardRemaining = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "stakefarm",
			Subsystem: "pools",
			Name:      "reward_remaining",
			Help:      "Remaining reward liability in base units",
		},
		[]string{"pool_index"},
	)

	c.DepositsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stakefarm",
			Subsystem: "positions",
			Name:      "deposits_total",
			Help:      "Number of deposits",
		},
		[]string{"pool_index"},
	)

	c.DepositedAmount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stakefarm",
			Subsystem: "positions",
			Name:      "deposited_amount",
			Help:      "Staked asset deposited in base units",
		},
		[]string{"pool_index"},
	)

	c.WithdrawalsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stakefarm",
			Subsystem: "positions",
			Name:      "withdrawals_total",
			Help:      "Number of withdrawals, including claims",
		},
		[]string{"pool_index"},
	)

	c.WithdrawnAmount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stakefarm",
			Subsystem: "positions",
			Name:      "withdrawn_amount",
			Help:      "Staked asset withdrawn in base units",
		},
		[]string{"pool_index"},
	)

	c.EmergencyWithdrawsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stakefarm",
			Subsystem: "positions",
			Name:      "emergency_withdrawals_total",
			Help:      "Number of emergency withdrawals",
		},
		[]string{"pool_index"},
	)

	c.RewardsPaid = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stakefarm",
			Subsystem: "positions",
			Name:      "rewards_paid",
			Help:      "Reward asset paid out in base units",
		},
		[]string{"pool_index"},
	)

	c.OperationErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stakefarm",
			Subsystem: "operations",
			Name:      "errors_total",
			Help:      "Failed operations by message type and error code",
		},
		[]string{"operation", "code"},
	)

	c.WSConnectionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "stakefarm",
			Subsystem: "websocket",
			Name:      "connections_active",
			Help:      "Number of active WebSocket connections",
		},
	)

	c.WSMessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stakefarm",
			Subsystem: "websocket",
			Name:      "messages_total",
			Help:      "Total WebSocket messages sent",
		},
		[]string{"type"},
	)

	c.APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stakefarm",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total API requests",
		},
		[]string{"method", "path", "status"},
	)

	c.APIRequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stakefarm",
			Subsystem: "api",
			Name:      "request_latency_ms",
			Help:      "API request latency in milliseconds",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"method", "path"},
	)

	c.RateLimitHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stakefarm",
			Subsystem: "api",
			Name:      "rate_limit_hits_total",
			Help:      "Requests rejected by the rate limiter",
		},
		[]string{"path"},
	)

	c.BlockHeight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "stakefarm",
			Subsystem: "chain",
			Name:      "block_height",
			Help:      "Latest block height seen by the API",
		},
	)

	c.registerAll(reg)

	return c
}

// registerAll registers all metrics on reg
func (c *Collector) registerAll(reg prometheus.Registerer) {
	reg.MustRegister(
		c.PoolsInitialized,
		c.PoolOperations,
		c.StakedBalance,
		c.RewardRemaining,
		c.DepositsTotal,
		c.DepositedAmount,
		c.WithdrawalsTotal,
		c.WithdrawnAmount,
		c.EmergencyWithdrawsTotal,
		c.RewardsPaid,
		c.OperationErrors,
		c.WSConnectionsActive,
		c.WSMessagesTotal,
		c.APIRequestsTotal,
		c.APIRequestLatency,
		c.RateLimitHits,
		c.BlockHeight,
	)
}

// ============ Recording Helpers ============

// RecordPoolInitialized records a new pool
func (c *Collector) RecordPoolInitialized(stakedDenom, rewardDenom string) {
	c.PoolsInitialized.WithLabelValues(stakedDenom, rewardDenom).Inc()
}

// RecordPoolOperation records an owner-gated pool update
func (c *Collector) RecordPoolOperation(poolIndex, operation string) {
	c.PoolOperations.WithLabelValues(poolIndex, operation).Inc()
}

// RecordPoolState records the staked balance and remaining reward of a pool
func (c *Collector) RecordPoolState(poolIndex string, staked, rewardRemaining float64) {
	c.StakedBalance.WithLabelValues(poolIndex).Set(staked)
	c.RewardRemaining.WithLabelValues(poolIndex).Set(rewardRemaining)
}

// RecordDeposit records a deposit and the reward it paid out
func (c *Collector) RecordDeposit(poolIndex string, amount, reward float64) {
	c.DepositsTotal.WithLabelValues(poolIndex).Inc()
	c.DepositedAmount.WithLabelValues(poolIndex).Add(amount)
	if reward > 0 {
		c.RewardsPaid.WithLabelValues(poolIndex).Add(reward)
	}
}

// RecordWithdrawal records a withdrawal or claim
func (c *Collector) RecordWithdrawal(poolIndex string, amount, reward float64) {
	c.WithdrawalsTotal.WithLabelValues(poolIndex).Inc()
	c.WithdrawnAmount.WithLabelValues(poolIndex).Add(amount)
	if reward > 0 {
		c.RewardsPaid.WithLabelValues(poolIndex).Add(reward)
	}
}

// RecordEmergencyWithdrawal records an emergency withdrawal
func (c *Collector) RecordEmergencyWithdrawal(poolIndex string, amount float64) {
	c.EmergencyWithdrawsTotal.WithLabelValues(poolIndex).Inc()
	c.WithdrawnAmount.WithLabelValues(poolIndex).Add(amount)
}

// RecordOperationError records a failed operation
func (c *Collector) RecordOperationError(operation, code string) {
	c.OperationErrors.WithLabelValues(operation, code).Inc()
}

// RecordAPIRequest records an API request
func (c *Collector) RecordAPIRequest(method, path, status string, latencyMs float64) {
	c.APIRequestsTotal.WithLabelValues(method, path, status).Inc()
	c.APIRequestLatency.WithLabelValues(method, path).Observe(latencyMs)
}

// RecordRateLimitHit records a request rejected by the rate limiter
func (c *Collector) RecordRateLimitHit(path string) {
	c.RateLimitHits.WithLabelValues(path).Inc()
}

// RecordWSConnection records WebSocket connection changes
func (c *Collector) RecordWSConnection(delta int) {
	c.WSConnectionsActive.Add(float64(delta))
}

// RecordWSMessage records a WebSocket message
func (c *Collector) RecordWSMessage(msgType string) {
	c.WSMessagesTotal.WithLabelValues(msgType).Inc()
}

// RecordBlockHeight records the latest height observed
func (c *Collector) RecordBlockHeight(height int64) {
	c.BlockHeight.Set(float64(height))
}

// ============ HTTP Handler ============

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer is a helper for measuring latency
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ElapsedMs returns the elapsed time in milliseconds
func (t *Timer) ElapsedMs() float64 {
	return float64(time.Since(t.start).Microseconds()) / 1000.0
}
