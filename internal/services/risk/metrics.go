package risk

// MetricsCollector receives engine observability events. The degraded
// counter is the operational signal that a collaborator outage is
// silently suppressing detections.
type MetricsCollector interface {
	RecordEvaluation(fraud bool, score float64)
	RecordFinding(evaluator string)
	RecordDegraded(evaluator string)
	RecordFeedbackFailure()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordEvaluation(bool, float64) {}
func (n *NoopMetricsCollector) RecordFinding(string)           {}
func (n *NoopMetricsCollector) RecordDegraded(string)          {}
func (n *NoopMetricsCollector) RecordFeedbackFailure()         {}
