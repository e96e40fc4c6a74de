package repositories

import (
	"context"
	"fmt"
	"time"

	"vigil/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Identifiers flagged before the service ever processed a transaction.
// Seeded at startup; the engine grows the account list on its own.
var (
	SeedBlacklistedIPs = []string{
		"192.168.1.100",
		"10.0.0.50",
		"172.16.0.25",
		"203.0.113.45",
		"198.51.100.78",
	}
	SeedBlacklistedAccounts = []string{
		"ACC123456789",
		"ACC987654321",
		"ACC555666777",
		"ACC111222333",
	}
)

// BlacklistRepository is the set of flagged identifiers.
// Upsert is idempotent on (kind, value): re-adding refreshes the
// reason and timestamp rather than duplicating the entry.
type BlacklistRepository interface {
	Contains(ctx context.Context, kind, value string) (bool, error)
	Upsert(ctx context.Context, kind, value, reason string, at time.Time) error
	List(ctx context.Context) ([]models.BlacklistEntry, error)
}

type blacklistRepository struct {
	db *gorm.DB
}

func NewBlacklistRepository(db *gorm.DB) BlacklistRepository {
	return &blacklistRepository{db: db}
}

func (r *blacklistRepository) Contains(ctx context.Context, kind, value string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.BlacklistEntry{}).
		Where("kind = ? AND value = ?", kind, value).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("blacklist lookup failed: %w", err)
	}
	return count > 0, nil
}

func (r *blacklistRepository) Upsert(ctx context.Context, kind, value, reason string, at time.Time) error {
	entry := models.BlacklistEntry{
		Kind:    kind,
		Value:   value,
		Reason:  reason,
		AddedAt: at,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "kind"}, {Name: "value"}},
			DoUpdates: clause.AssignmentColumns([]string{"reason", "added_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("blacklist upsert failed: %w", err)
	}
	return nil
}

func (r *blacklistRepository) List(ctx context.Context) ([]models.BlacklistEntry, error) {
	var entries []models.BlacklistEntry
	err := r.db.WithContext(ctx).
		Order("added_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list blacklist: %w", err)
	}
	return entries, nil
}

// SeedBlacklist loads the predefined IPs and accounts. Safe to run on
// every startup; entries already present only get their timestamp
// refreshed.
func SeedBlacklist(ctx context.Context, repo BlacklistRepository) error {
	now := time.Now()
	for _, ip := range SeedBlacklistedIPs {
		if err := repo.Upsert(ctx, models.BlacklistKindIP, ip, "", now); err != nil {
			return err
		}
	}
	for _, account := range SeedBlacklistedAccounts {
		if err := repo.Upsert(ctx, models.BlacklistKindAccount, account, "", now); err != nil {
			return err
		}
	}
	return nil
}
