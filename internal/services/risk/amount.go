package risk

import (
	"context"
	"fmt"
	"math"
)

// AmountAnomalyCheck flags amounts far outside the card type's recent
// spending pattern, measured as a z-score against the last
// historyWindow transactions.
type AmountAnomalyCheck struct {
	history TransactionHistory
}

func NewAmountAnomalyCheck(history TransactionHistory) *AmountAnomalyCheck {
	return &AmountAnomalyCheck{history: history}
}

func (c *AmountAnomalyCheck) Name() string { return "amount_anomaly" }

func (c *AmountAnomalyCheck) Evaluate(ctx context.Context, in *Input) Outcome {
	tx := in.Transaction

	recent, err := c.history.Recent(ctx, tx.CardType, historyWindow, tx.TransactionID)
	if err != nil {
		return Outcome{Degraded: true, Err: err}
	}
	if len(recent) < minHistorySamples {
		// Not enough history to say what normal looks like.
		return Outcome{}
	}

	amounts := make([]float64, len(recent))
	for i, t := range recent {
		amounts[i] = t.Amount
	}

	mean, stddev := meanStdDev(amounts)
	if stddev == 0 {
		// All historical amounts identical; no spread to measure
		// against.
		return Outcome{}
	}

	z := math.Abs(tx.Amount-mean) / stddev
	if z > zScoreThreshold {
		return Outcome{Findings: []Finding{{
			Reason: fmt.Sprintf(ReasonAmountAnomalyFmt, z),
			Weight: WeightAmountAnomaly,
		}}}
	}
	return Outcome{}
}

// meanStdDev returns the mean and population standard deviation.
func meanStdDev(values []float64) (mean, stddev float64) {
	n := float64(len(values))
	for _, v := range values {
		mean += v
	}
	mean /= n

	var variance float64
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= n

	return mean, math.Sqrt(variance)
}
