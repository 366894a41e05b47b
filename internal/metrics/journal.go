package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	journalFlushesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minter_service",
		Subsystem: "mint_journal",
		Name:      "flushes_total",
		Help:      "Count of journal batch flushes.",
	}, []string{"status"})
	journalFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "minter_service",
		Subsystem: "mint_journal",
		Name:      "flush_duration_seconds",
		Help:      "Duration of journal batch flushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	journalFlushSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "minter_service",
		Subsystem: "mint_journal",
		Name:      "flush_size",
		Help:      "Number of events written per journal flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"status"})
)

// Journal tracks metrics for the mint event journal.
type Journal struct{}

// NewJournal creates a Journal metrics collector.
func NewJournal() *Journal {
	return &Journal{}
}

// ObserveFlush records one journal batch write.
func (m Journal) ObserveFlush(err error, events int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	journalFlushesTotal.WithLabelValues(status).Inc()
	journalFlushDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	journalFlushSize.WithLabelValues(status).Observe(float64(events))
}
