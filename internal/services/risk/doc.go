/*
Package risk implements the transaction risk-evaluation engine.

The engine runs a fixed, ordered set of signal evaluators against a
submitted transaction. Each evaluator inspects one aspect of the
transaction (blacklist membership, hour of day, amount relative to
card-type history, distance from the previous location) and emits
zero or more findings, each a reason string with a point weight. The
engine sums the weights into a risk score, collects the reasons in
evaluator order, and declares fraud when any finding is present or the
score reaches the threshold. On a fraud verdict the recipient account
is fed back into the blacklist, so future transactions to the same
account are flagged immediately.

Collaborators (transaction history, blacklist store, geocoder) are
injected as interfaces. Every collaborator failure is handled inside
the affected evaluator: the finding is suppressed, the degradation is
logged and counted, and evaluation continues. Evaluate itself never
fails.

Usage:

	svc := risk.NewEngine(historyRepo, blacklistRepo, geoClient, metrics)
	assessment := svc.Evaluate(ctx, tx, clientIP)
	if assessment.IsFraud {
	    // recipient account has already been blacklisted
	}
*/
package risk
