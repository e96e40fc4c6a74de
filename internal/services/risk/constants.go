package risk

// Finding weights
const (
	WeightBlacklistedIP      = 30.0
	WeightBlacklistedAccount = 40.0
	WeightOddHour            = 15.0
	WeightAmountAnomaly      = 20.0
	WeightGeoDrift           = 25.0
)

// Finding reason texts. These are part of the API surface; clients
// match on them.
const (
	ReasonBlacklistedIP      = "Blacklisted IP address"
	ReasonBlacklistedAccount = "Blacklisted recipient account"
	ReasonOddHour            = "Transaction at odd hours (12 AM - 4 AM)"
	ReasonAmountAnomalyFmt   = "Abnormal transaction amount (z-score: %.2f)"
	ReasonGeoDrift           = "Geographic drift detected (>500km from last location)"
)

// FeedbackReason is recorded on blacklist entries the engine creates
// itself after a fraud verdict.
const FeedbackReason = "Fraudulent transaction detected"

// TimestampLayout is the wall-clock form transactions are submitted in.
// The hour is read as stated; no timezone conversion is performed.
const TimestampLayout = "2006-01-02 15:04:05"

// Policy constants. Fixed, not configurable per call.
const (
	historyWindow       = 5
	minHistorySamples   = 2
	zScoreThreshold     = 2.0
	driftDistanceKm     = 500.0
	oddHourStart        = 0
	oddHourEnd          = 4
	fraudScoreThreshold = 30.0
)

// FailOpen names the failure policy: when a collaborator is
// unavailable or an input field is malformed, the affected evaluator
// suppresses its finding and the transaction is still processed.
// Failures reduce detection sensitivity, they never block. Flipping
// this is a business decision, not a bug fix.
const FailOpen = true
