package risk

import "context"

// GeoDriftCheck flags transactions located implausibly far from the
// card type's previous transaction location.
type GeoDriftCheck struct {
	history TransactionHistory
	geo     GeoResolver
}

func NewGeoDriftCheck(history TransactionHistory, geo GeoResolver) *GeoDriftCheck {
	return &GeoDriftCheck{history: history, geo: geo}
}

func (c *GeoDriftCheck) Name() string { return "geo_drift" }

func (c *GeoDriftCheck) Evaluate(ctx context.Context, in *Input) Outcome {
	tx := in.Transaction

	recent, err := c.history.Recent(ctx, tx.CardType, 1, tx.TransactionID)
	if err != nil {
		return Outcome{Degraded: true, Err: err}
	}
	if len(recent) == 0 {
		// First transaction for this card type.
		return Outcome{}
	}

	// Resolution failure on either end leaves the distance at zero, so
	// no finding is possible.
	current, err := c.geo.Resolve(ctx, tx.Location)
	if err != nil {
		return Outcome{Degraded: true, Err: err}
	}
	previous, err := c.geo.Resolve(ctx, recent[0].Location)
	if err != nil {
		return Outcome{Degraded: true, Err: err}
	}

	if c.geo.Distance(current, previous) > driftDistanceKm {
		return Outcome{Findings: []Finding{{Reason: ReasonGeoDrift, Weight: WeightGeoDrift}}}
	}
	return Outcome{}
}
