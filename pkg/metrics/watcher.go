package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// WatcherMetrics records metadata for the order watcher poll loop.
type WatcherMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
	skipped  *prometheus.CounterVec
	pending  prometheus.Gauge
}

// NewWatcherMetrics registers the watcher metrics on the provided registerer.
func NewWatcherMetrics(reg prometheus.Registerer) *WatcherMetrics {
	if reg == nil {
		return &WatcherMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "poll_duration_seconds",
		Help:    "Duration of watcher polls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"poll"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "poll_success",
		Help: "Successful watcher polls.",
	}, []string{"poll"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "poll_failure",
		Help: "Failed watcher polls.",
	}, []string{"poll"})
	skipped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "poll_skipped",
		Help: "Watcher ticks skipped because the previous poll was still running.",
	}, []string{"poll"})
	pending := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "orders_pending",
		Help: "Pending orders observed by the last successful poll.",
	})
	reg.MustRegister(duration, success, failure, skipped, pending)
	return &WatcherMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
		skipped:  skipped,
		pending:  pending,
	}
}

// ObserveDuration records the duration for the named poll.
func (w *WatcherMetrics) ObserveDuration(poll string, duration time.Duration) {
	if w == nil || w.duration == nil {
		return
	}
	w.duration.WithLabelValues(normalizeLabel(poll)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named poll.
func (w *WatcherMetrics) IncSuccess(poll string) {
	if w == nil || w.success == nil {
		return
	}
	w.success.WithLabelValues(normalizeLabel(poll)).Inc()
}

// IncFailure increments the failure counter for the named poll.
func (w *WatcherMetrics) IncFailure(poll string) {
	if w == nil || w.failure == nil {
		return
	}
	w.failure.WithLabelValues(normalizeLabel(poll)).Inc()
}

// IncSkipped increments the skipped-tick counter for the named poll.
func (w *WatcherMetrics) IncSkipped(poll string) {
	if w == nil || w.skipped == nil {
		return
	}
	w.skipped.WithLabelValues(normalizeLabel(poll)).Inc()
}

// SetPendingOrders records the pending order count from the latest poll.
func (w *WatcherMetrics) SetPendingOrders(count int) {
	if w == nil || w.pending == nil {
		return
	}
	w.pending.Set(float64(count))
}

func normalizeLabel(poll string) string {
	if poll == "" {
		return "unknown"
	}
	return poll
}
