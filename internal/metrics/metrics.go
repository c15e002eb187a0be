// Package metrics holds the prometheus collectors of the automation engine.
// Collectors are registered on the default registry and served by the
// HTTP adapter at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TokenRefreshes counts outbound token refresh calls by result.
	TokenRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kwai",
		Name:      "token_refreshes_total",
		Help:      "Access token refresh calls issued to the Kwai auth endpoint.",
	}, []string{"result"})

	// PlatformRequests observes Kwai API latency by operation and outcome.
	PlatformRequests = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "kwai",
		Name:      "request_duration_seconds",
		Help:      "Latency of Kwai marketing API calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op", "outcome"})

	// RulesProcessed counts rules handled by the runner by outcome.
	RulesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "automation",
		Name:      "rules_processed_total",
		Help:      "Automation rules processed per pass.",
	}, []string{"outcome"})

	// Actions counts executed remediation actions.
	Actions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "automation",
		Name:      "actions_total",
		Help:      "Remediation actions applied to ad sets.",
	}, []string{"kind", "outcome"})

	// MissingMetrics counts evaluations skipped because the event was absent.
	MissingMetrics = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "automation",
		Name:      "missing_metrics_total",
		Help:      "Evaluations where the report lacked the rule event.",
	}, []string{"event"})

	// PassDuration observes the wall time of complete passes.
	PassDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "automation",
		Name:      "pass_duration_seconds",
		Help:      "Duration of automation passes.",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300},
	})
)

// Outcome maps an error to the outcome label.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
