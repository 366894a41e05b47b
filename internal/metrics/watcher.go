package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	watcherFetchPendingTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minter_service",
		Subsystem: "confirmation_watcher",
		Name:      "fetch_pending_total",
		Help:      "Count of attempts to fetch stale pending records.",
	}, []string{"status"})
	watcherFetchPendingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "minter_service",
		Subsystem: "confirmation_watcher",
		Name:      "fetch_pending_duration_seconds",
		Help:      "Duration of fetching stale pending records.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	watcherResolveBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minter_service",
		Subsystem: "confirmation_watcher",
		Name:      "resolve_batch_total",
		Help:      "Count of pending batches resolved.",
	}, []string{"status"})
	watcherResolveBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "minter_service",
		Subsystem: "confirmation_watcher",
		Name:      "resolve_batch_duration_seconds",
		Help:      "Duration of resolving a pending batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	watcherResolveBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "minter_service",
		Subsystem: "confirmation_watcher",
		Name:      "resolve_batch_size",
		Help:      "Number of pending records resolved per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"status"})
)

// Watcher tracks metrics for the confirmation watcher loop.
type Watcher struct{}

// NewWatcher creates a Watcher metrics collector.
func NewWatcher() *Watcher {
	return &Watcher{}
}

// ObserveFetchPending records a fetch attempt outcome and duration.
func (m Watcher) ObserveFetchPending(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	watcherFetchPendingTotal.WithLabelValues(status).Inc()
	watcherFetchPendingDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveResolveBatch records resolution of one pending batch.
func (m Watcher) ObserveResolveBatch(err error, records int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	watcherResolveBatchTotal.WithLabelValues(status).Inc()
	watcherResolveBatchDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	watcherResolveBatchSize.WithLabelValues(status).Observe(float64(records))
}
