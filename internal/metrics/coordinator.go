package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	coordinatorSubmitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minter_service",
		Subsystem: "coordinator",
		Name:      "submits_total",
		Help:      "Count of submit calls by resolution.",
	}, []string{"resolution"})
	coordinatorSubmitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "minter_service",
		Subsystem: "coordinator",
		Name:      "submit_duration_seconds",
		Help:      "Duration of submit calls.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"resolution"})
	coordinatorMismatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "minter_service",
		Subsystem: "coordinator",
		Name:      "identifier_mismatches_total",
		Help:      "Count of mint ids reused with different recipient or amount.",
	})
)

// Coordinator tracks metrics for the mint coordinator.
type Coordinator struct{}

// NewCoordinator creates a Coordinator metrics collector.
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// ObserveSubmit records one submit call with its resolution.
func (m Coordinator) ObserveSubmit(resolution string, started time.Time) {
	coordinatorSubmitsTotal.WithLabelValues(resolution).Inc()
	coordinatorSubmitDuration.WithLabelValues(resolution).Observe(time.Since(started).Seconds())
}

// ObserveMismatch records a reused mint id with differing arguments.
func (m Coordinator) ObserveMismatch() {
	coordinatorMismatchesTotal.Inc()
}
