package models

import "time"

// Blacklist entry kinds
const (
	BlacklistKindIP      = "ip"
	BlacklistKindAccount = "account"
)

// Transaction is a single submitted transaction together with the risk
// assessment it received. The submitted fields are never mutated after
// creation; the assessment fields are written once, when the record is
// stored.
type Transaction struct {
	ID            uint   `gorm:"primarykey" json:"-"`
	TransactionID string `gorm:"index;not null" json:"transaction_id"`
	// Timestamp is kept exactly as submitted, "YYYY-MM-DD HH:MM:SS".
	// Lexicographic order on this layout equals chronological order,
	// so history queries sort on the raw column.
	Timestamp        string  `gorm:"not null" json:"timestamp"`
	Amount           float64 `gorm:"not null" json:"amount"`
	Location         string  `gorm:"not null" json:"location"`
	CardType         string  `gorm:"index;not null" json:"card_type"`
	Currency         string  `gorm:"default:'USD'" json:"currency"`
	RecipientAccount string  `gorm:"not null" json:"recipient_account_number"`

	// Assessment annotation
	IsFraud      bool        `json:"is_fraud"`
	FraudReasons StringSlice `gorm:"type:jsonb" json:"fraud_reasons"`
	RiskScore    float64     `json:"risk_score"`
	CheckedBy    string      `json:"checked_by,omitempty"`
	CheckedAt    time.Time   `json:"checked_at"`
}

// BlacklistEntry is a flagged identifier. Uniqueness is on (kind, value);
// re-adding the same pair refreshes Reason and AddedAt instead of
// duplicating.
type BlacklistEntry struct {
	ID      uint      `gorm:"primarykey" json:"-"`
	Kind    string    `gorm:"uniqueIndex:idx_blacklist_kind_value;not null" json:"type"`
	Value   string    `gorm:"uniqueIndex:idx_blacklist_kind_value;not null" json:"value"`
	Reason  string    `json:"reason,omitempty"`
	AddedAt time.Time `gorm:"not null" json:"added_at"`
}
