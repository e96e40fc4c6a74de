package risk

import (
	"context"
	"errors"

	"vigil/internal/models"
)

// BlacklistCheck flags transactions touching known-bad identifiers:
// the requesting client's IP and the recipient account. It is the only
// evaluator that can emit two findings in one pass.
type BlacklistCheck struct {
	store BlacklistStore
}

func NewBlacklistCheck(store BlacklistStore) *BlacklistCheck {
	return &BlacklistCheck{store: store}
}

func (c *BlacklistCheck) Name() string { return "blacklist" }

func (c *BlacklistCheck) Evaluate(ctx context.Context, in *Input) Outcome {
	var out Outcome

	if in.ClientIP != "" {
		hit, err := c.store.Contains(ctx, models.BlacklistKindIP, in.ClientIP)
		switch {
		case err != nil:
			// Lookup failure reads as "not blacklisted".
			out.Degraded = true
			out.Err = err
		case hit:
			out.Findings = append(out.Findings, Finding{Reason: ReasonBlacklistedIP, Weight: WeightBlacklistedIP})
		}
	}

	hit, err := c.store.Contains(ctx, models.BlacklistKindAccount, in.Transaction.RecipientAccount)
	switch {
	case err != nil:
		out.Degraded = true
		out.Err = errors.Join(out.Err, err)
	case hit:
		out.Findings = append(out.Findings, Finding{Reason: ReasonBlacklistedAccount, Weight: WeightBlacklistedAccount})
	}

	return out
}
