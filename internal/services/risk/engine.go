package risk

import (
	"context"
	"log"
	"time"

	"vigil/internal/models"
)

// Service is the one operation the engine exposes. Evaluate never
// returns an error: every evaluator swallows its own faults and
// contributes nothing on failure.
type Service interface {
	Evaluate(ctx context.Context, tx *models.Transaction, clientIP string) *Assessment
}

type engine struct {
	evaluators []Evaluator
	blacklist  BlacklistStore
	metrics    MetricsCollector
}

// NewEngine creates the risk engine with its fixed evaluator order:
// blacklist, odd-hour, amount-anomaly, geographic-drift.
func NewEngine(history TransactionHistory, blacklist BlacklistStore, geo GeoResolver, metrics MetricsCollector) Service {
	if history == nil {
		panic("history is required")
	}
	if blacklist == nil {
		panic("blacklist is required")
	}
	if geo == nil {
		panic("geo resolver is required")
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &engine{
		evaluators: []Evaluator{
			NewBlacklistCheck(blacklist),
			OddHourCheck{},
			NewAmountAnomalyCheck(history),
			NewGeoDriftCheck(history, geo),
		},
		blacklist: blacklist,
		metrics:   metrics,
	}
}

func (e *engine) Evaluate(ctx context.Context, tx *models.Transaction, clientIP string) *Assessment {
	in := &Input{Transaction: tx, ClientIP: clientIP}
	assessment := &Assessment{FraudReasons: []string{}}

	for _, ev := range e.evaluators {
		out := ev.Evaluate(ctx, in)
		if out.Degraded {
			log.Printf("risk: %s evaluator degraded, failing open: %v", ev.Name(), out.Err)
			e.metrics.RecordDegraded(ev.Name())
		}
		for _, f := range out.Findings {
			assessment.FraudReasons = append(assessment.FraudReasons, f.Reason)
			assessment.RiskScore += f.Weight
			e.metrics.RecordFinding(ev.Name())
		}
	}

	// Any finding, or a score over the threshold. Under the current
	// weights the second clause never decides on its own; it would only
	// matter for a finding carrying weight 0.
	assessment.IsFraud = len(assessment.FraudReasons) > 0 ||
		assessment.RiskScore >= fraudScoreThreshold

	e.metrics.RecordEvaluation(assessment.IsFraud, assessment.RiskScore)

	if assessment.IsFraud {
		err := e.blacklist.Upsert(ctx, models.BlacklistKindAccount,
			tx.RecipientAccount, FeedbackReason, time.Now())
		if err != nil {
			// The returned assessment and the stored blacklist diverge
			// here. There is no retry; the counter is the only trace.
			log.Printf("risk: blacklist feedback failed for account %s: %v",
				tx.RecipientAccount, err)
			e.metrics.RecordFeedbackFailure()
		} else {
			log.Printf("risk: fraudulent transaction detected: %s", tx.TransactionID)
		}
	}

	return assessment
}
