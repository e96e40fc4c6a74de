package risk

import (
	"context"
	"time"

	"vigil/internal/models"
)

// Coordinates is a geographic point.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Finding is one triggered signal: a reason shown to the caller and
// the weight it contributes to the risk score.
type Finding struct {
	Reason string
	Weight float64
}

// Outcome is the result of running one evaluator. It distinguishes
// "condition did not trigger" (no findings, not degraded) from
// "evaluator could not run its check" (Degraded with the cause in
// Err). Both look the same to the caller of Evaluate; the distinction
// exists for logs and metrics.
type Outcome struct {
	Findings []Finding
	Degraded bool
	Err      error
}

// Input is what every evaluator receives. ClientIP is empty when the
// requesting client's address is unknown.
type Input struct {
	Transaction *models.Transaction
	ClientIP    string
}

// Evaluator inspects one aspect of a transaction and produces zero or
// more findings. Evaluators are independent; none reads another's
// output.
type Evaluator interface {
	Name() string
	Evaluate(ctx context.Context, in *Input) Outcome
}

// Assessment is the engine's verdict for one transaction.
// RiskScore always equals the sum of the weights of the findings
// whose reasons appear in FraudReasons.
type Assessment struct {
	IsFraud      bool     `json:"is_fraud"`
	FraudReasons []string `json:"fraud_reasons"`
	RiskScore    float64  `json:"risk_score"`
}

// TransactionHistory is the read contract the engine needs from the
// transaction store: prior transactions for a card type, newest
// first, with the current submission excluded.
type TransactionHistory interface {
	Recent(ctx context.Context, cardType string, limit int, excludeTxID string) ([]models.Transaction, error)
}

// BlacklistStore is the set of flagged identifiers. Upsert must be
// idempotent on (kind, value).
type BlacklistStore interface {
	Contains(ctx context.Context, kind, value string) (bool, error)
	Upsert(ctx context.Context, kind, value, reason string, at time.Time) error
}

// GeoResolver maps location names to coordinates and coordinate pairs
// to great-circle distance in kilometers.
type GeoResolver interface {
	Resolve(ctx context.Context, location string) (Coordinates, error)
	Distance(a, b Coordinates) float64
}
