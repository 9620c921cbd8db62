// Package metrics exposes Prometheus instrumentation for the checkout path.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Checkout outcome labels.
const (
	StatusCommitted = "committed"
	StatusRejected  = "rejected"
	StatusFailed    = "failed"
)

type CheckoutMetrics struct {
	Batches  *prometheus.CounterVec
	Duration prometheus.Histogram
}

// NewCheckoutMetrics registers checkout counters on reg. Passing nil uses
// the default registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	batches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shopkeeper",
		Subsystem: "checkout",
		Name:      "batches_total",
		Help:      "Checkout batches by outcome.",
	}, []string{"status"})

	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "shopkeeper",
		Subsystem: "checkout",
		Name:      "duration_seconds",
		Help:      "Wall time of one checkout batch.",
		Buckets:   prometheus.DefBuckets,
	})

	reg.MustRegister(batches, duration)
	return &CheckoutMetrics{Batches: batches, Duration: duration}
}
