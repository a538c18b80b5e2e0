package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-cli/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of node RPC operations.",
	}, []string{"operation", "coin", "network", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "coin", "network", "status"})
	rpcRateLimitWait = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "rpc_client",
		Name:      "rate_limit_wait_seconds",
		Help:      "Time spent waiting for the RPC rate limiter.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8), // 1ms..16s
	}, []string{"operation", "coin", "network"})
)

// RPCClient tracks metrics for RPC calls to blockchain nodes.
type RPCClient struct {
	coin    model.Coin
	network model.Network
}

// NewRPCClient constructs a metrics collector for RPC calls.
func NewRPCClient(coin model.Coin, network model.Network) *RPCClient {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &RPCClient{coin: coin, network: network}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)

	rpcRequestsTotal.WithLabelValues(operation, string(m.coin), string(m.network), status).Inc()
	rpcRequestDuration.WithLabelValues(operation, string(m.coin), string(m.network), status).Observe(time.Since(started).Seconds())
}

// ObserveWait records how long a call was held back by the rate limiter.
func (m RPCClient) ObserveWait(operation string, waited time.Duration) {
	rpcRateLimitWait.WithLabelValues(operation, string(m.coin), string(m.network)).Observe(waited.Seconds())
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
