package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minter_service",
		Subsystem: "ledger_client",
		Name:      "operations_total",
		Help:      "Count of ledger node operations.",
	}, []string{"operation", "network", "status"})
	ledgerOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "minter_service",
		Subsystem: "ledger_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger node operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// LedgerClient tracks metrics for calls against the ledger node.
type LedgerClient struct {
	network string
}

// NewLedgerClient constructs a metrics collector for ledger calls.
func NewLedgerClient(network string) *LedgerClient {
	if network == "" {
		network = "unknown"
	}
	return &LedgerClient{network: network}
}

// Observe records a single ledger call outcome and duration.
func (m LedgerClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	ledgerOperationsTotal.WithLabelValues(operation, m.network, status).Inc()
	ledgerOperationDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}
