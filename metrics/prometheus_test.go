package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollectorRecordsPoolActivity(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.RecordPoolInitialized("ustake", "ureward")
	c.RecordDeposit("0", 700, 0)
	c.RecordDeposit("0", 300, 25)
	c.RecordWithdrawal("0", 200, 75)
	c.RecordEmergencyWithdrawal("0", 100)
	c.RecordPoolState("0", 700, 900)

	require.Equal(t, float64(1), testutil.ToFloat64(c.PoolsInitialized.WithLabelValues("ustake", "ureward")))
	require.Equal(t, float64(2), testutil.ToFloat64(c.DepositsTotal.WithLabelValues("0")))
	require.Equal(t, float64(1000), testutil.ToFloat64(c.DepositedAmount.WithLabelValues("0")))
	require.Equal(t, float64(100), testutil.ToFloat64(c.RewardsPaid.WithLabelValues("0")))
	require.Equal(t, float64(300), testutil.ToFloat64(c.WithdrawnAmount.WithLabelValues("0")))
	require.Equal(t, float64(1), testutil.ToFloat64(c.EmergencyWithdrawsTotal.WithLabelValues("0")))
	require.Equal(t, float64(700), testutil.ToFloat64(c.StakedBalance.WithLabelValues("0")))
	require.Equal(t, float64(900), testutil.ToFloat64(c.RewardRemaining.WithLabelValues("0")))
}

func TestCollectorRecordsServiceActivity(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.RecordWSConnection(1)
	c.RecordWSConnection(1)
	c.RecordWSConnection(-1)
	c.RecordWSMessage("pool")
	c.RecordRateLimitHit("/v1/farm/pools")
	c.RecordAPIRequest("GET", "/health", "200", 1.5)
	c.RecordOperationError("deposit", "68")
	c.RecordBlockHeight(42)

	require.Equal(t, float64(1), testutil.ToFloat64(c.WSConnectionsActive))
	require.Equal(t, float64(1), testutil.ToFloat64(c.WSMessagesTotal.WithLabelValues("pool")))
	require.Equal(t, float64(1), testutil.ToFloat64(c.RateLimitHits.WithLabelValues("/v1/farm/pools")))
	require.Equal(t, float64(1), testutil.ToFloat64(c.APIRequestsTotal.WithLabelValues("GET", "/health", "200")))
	require.Equal(t, float64(1), testutil.ToFloat64(c.OperationErrors.WithLabelValues("deposit", "68")))
	require.Equal(t, float64(42), testutil.ToFloat64(c.BlockHeight))
}

func TestNewCollectorRegistersEveryMetric(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordBlockHeight(1)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)

	// A second registration of the same names must fail.
	require.Panics(t, func() { NewCollector(reg) })
}
