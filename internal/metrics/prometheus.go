// Package metrics provides the Prometheus implementation of the risk
// engine's MetricsCollector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RiskCollector counts engine activity. The degraded counter is the
// one to alert on: it climbs when a collaborator outage is silently
// suppressing fraud detection.
type RiskCollector struct {
	evaluations      *prometheus.CounterVec
	findings         *prometheus.CounterVec
	degraded         *prometheus.CounterVec
	feedbackFailures prometheus.Counter
	scores           prometheus.Histogram
}

func NewRiskCollector() *RiskCollector {
	return &RiskCollector{
		evaluations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vigil_evaluations_total",
			Help: "Transaction evaluations by verdict.",
		}, []string{"verdict"}),
		findings: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vigil_findings_total",
			Help: "Triggered findings by evaluator.",
		}, []string{"evaluator"}),
		degraded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vigil_evaluator_degraded_total",
			Help: "Evaluations where an evaluator failed open.",
		}, []string{"evaluator"}),
		feedbackFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vigil_blacklist_feedback_failures_total",
			Help: "Fraud verdicts whose blacklist write failed.",
		}),
		scores: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "vigil_risk_score",
			Help:    "Distribution of computed risk scores.",
			Buckets: []float64{0, 15, 30, 45, 60, 75, 90, 105, 130},
		}),
	}
}

func (c *RiskCollector) RecordEvaluation(fraud bool, score float64) {
	verdict := "clean"
	if fraud {
		verdict = "fraud"
	}
	c.evaluations.WithLabelValues(verdict).Inc()
	c.scores.Observe(score)
}

func (c *RiskCollector) RecordFinding(evaluator string) {
	c.findings.WithLabelValues(evaluator).Inc()
}

func (c *RiskCollector) RecordDegraded(evaluator string) {
	c.degraded.WithLabelValues(evaluator).Inc()
}

func (c *RiskCollector) RecordFeedbackFailure() {
	c.feedbackFailures.Inc()
}
