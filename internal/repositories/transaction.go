package repositories

import (
	"context"
	"fmt"

	"vigil/internal/models"

	"gorm.io/gorm"
)

// TransactionRepository is the append-only store of checked transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	// Recent returns the most recent transactions for a card type,
	// newest first, excluding the submission identified by excludeTxID.
	Recent(ctx context.Context, cardType string, limit int, excludeTxID string) ([]models.Transaction, error)
	ListAll(ctx context.Context) ([]models.Transaction, error)
	ListFlagged(ctx context.Context) ([]models.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		return fmt.Errorf("failed to store transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) Recent(ctx context.Context, cardType string, limit int, excludeTxID string) ([]models.Transaction, error) {
	var txs []models.Transaction
	q := r.db.WithContext(ctx).
		Where("card_type = ?", cardType).
		Order("timestamp DESC").
		Limit(limit)
	if excludeTxID != "" {
		q = q.Where("transaction_id <> ?", excludeTxID)
	}
	if err := q.Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("failed to query transaction history: %w", err)
	}
	return txs, nil
}

func (r *transactionRepository) ListAll(ctx context.Context) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.WithContext(ctx).
		Order("checked_at DESC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

func (r *transactionRepository) ListFlagged(ctx context.Context) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.WithContext(ctx).
		Where("is_fraud = ?", true).
		Order("checked_at DESC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list flagged transactions: %w", err)
	}
	return txs, nil
}
