// Package metrics exposes the sync core's Prometheus instrumentation:
// poll-cycle counters, per-feed failure counters, and latency histograms
// for both passive fetches and operator actions.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TicksTotal counts cycle firings by cycle name (fast, slow, forced).
var TicksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "arabicbot",
		Subsystem: "dashboard",
		Name:      "ticks_total",
		Help:      "Total number of poll cycle firings",
	},
	[]string{"cycle"},
)

// FetchErrors counts failed fetches by feed (status, statistics, logs,
// swarm, causal).
var FetchErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "arabicbot",
		Subsystem: "dashboard",
		Name:      "fetch_errors_total",
		Help:      "Total number of failed feed fetches",
	},
	[]string{"feed"},
)

// FetchDuration observes round-trip time per feed for successful fetches.
var FetchDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "arabicbot",
		Subsystem: "dashboard",
		Name:      "fetch_duration_seconds",
		Help:      "Feed fetch round-trip time in seconds",
		Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	},
	[]string{"feed"},
)

// ActionDuration observes end-to-end latency of operator actions.
var ActionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "arabicbot",
		Subsystem: "dashboard",
		Name:      "action_duration_seconds",
		Help:      "Operator action latency in seconds",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	},
	[]string{"action", "outcome"},
)

// ToastsShown counts toasts by severity.
var ToastsShown = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "arabicbot",
		Subsystem: "dashboard",
		Name:      "toasts_shown_total",
		Help:      "Total number of toasts shown",
	},
	[]string{"severity"},
)

// SchedulerRunning reports whether the poll cycles are armed (1) or
// suspended (0).
var SchedulerRunning = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: "arabicbot",
		Subsystem: "dashboard",
		Name:      "scheduler_running",
		Help:      "Whether the polling scheduler is currently armed",
	},
)

func RecordTick(cycle string) {
	TicksTotal.WithLabelValues(cycle).Inc()
}

func RecordFetchError(feed string) {
	FetchErrors.WithLabelValues(feed).Inc()
}

func RecordFetch(feed string, elapsed time.Duration) {
	FetchDuration.WithLabelValues(feed).Observe(elapsed.Seconds())
}

func RecordAction(action, outcome string, elapsed time.Duration) {
	ActionDuration.WithLabelValues(action, outcome).Observe(elapsed.Seconds())
}

func RecordToast(severity string) {
	ToastsShown.WithLabelValues(severity).Inc()
}

func SetSchedulerRunning(running bool) {
	if running {
		SchedulerRunning.Set(1)
	} else {
		SchedulerRunning.Set(0)
	}
}
