package risk

import (
	"context"
	"time"
)

// OddHourCheck flags transactions whose stated wall-clock hour falls
// between midnight and 4 AM inclusive. The hour is taken from the
// timestamp as written; no timezone conversion.
type OddHourCheck struct{}

func (OddHourCheck) Name() string { return "odd_hour" }

func (OddHourCheck) Evaluate(_ context.Context, in *Input) Outcome {
	t, err := time.Parse(TimestampLayout, in.Transaction.Timestamp)
	if err != nil {
		// A malformed timestamp suppresses this signal only; the rest
		// of the evaluation proceeds.
		return Outcome{Degraded: true, Err: err}
	}

	hour := t.Hour()
	if hour >= oddHourStart && hour <= oddHourEnd {
		return Outcome{Findings: []Finding{{Reason: ReasonOddHour, Weight: WeightOddHour}}}
	}
	return Outcome{}
}
