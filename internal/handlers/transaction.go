package handlers

import (
	"log"
	"time"

	"vigil/internal/models"
	"vigil/internal/repositories"
	"vigil/internal/services/risk"
	"vigil/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TransactionHandler struct {
	riskService risk.Service
	txRepo      repositories.TransactionRepository
	blacklist   repositories.BlacklistRepository
}

func NewTransactionHandler(riskService risk.Service, txRepo repositories.TransactionRepository, blacklist repositories.BlacklistRepository) *TransactionHandler {
	return &TransactionHandler{
		riskService: riskService,
		txRepo:      txRepo,
		blacklist:   blacklist,
	}
}

type checkFraudRequest struct {
	TransactionID    string  `json:"transaction_id"`
	Timestamp        string  `json:"timestamp" validate:"required"`
	Amount           float64 `json:"amount" validate:"required,gt=0"`
	Location         string  `json:"location" validate:"required"`
	CardType         string  `json:"card_type" validate:"required"`
	Currency         string  `json:"currency"`
	RecipientAccount string  `json:"recipient_account_number" validate:"required"`
}

// CheckFraud evaluates a transaction, stores it annotated with its
// assessment, and returns the annotated record.
func (h *TransactionHandler) CheckFraud(c *fiber.Ctx) error {
	var input checkFraudRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validation.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if input.TransactionID == "" {
		input.TransactionID = uuid.NewString()
	}
	if input.Currency == "" {
		input.Currency = "USD"
	}

	claims := c.Locals("claims").(*models.UserClaims)

	tx := &models.Transaction{
		TransactionID:    input.TransactionID,
		Timestamp:        input.Timestamp,
		Amount:           input.Amount,
		Location:         input.Location,
		CardType:         input.CardType,
		Currency:         input.Currency,
		RecipientAccount: input.RecipientAccount,
	}

	// Evaluate before storing so the history the evaluators read does
	// not include this submission.
	assessment := h.riskService.Evaluate(c.Context(), tx, c.IP())

	tx.IsFraud = assessment.IsFraud
	tx.FraudReasons = models.StringSlice(assessment.FraudReasons)
	tx.RiskScore = assessment.RiskScore
	tx.CheckedBy = claims.Username
	tx.CheckedAt = time.Now()

	if err := h.txRepo.Create(c.Context(), tx); err != nil {
		log.Printf("failed to store transaction %s: %v", tx.TransactionID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error processing transaction",
		})
	}

	return c.JSON(tx)
}

// GetTransactions returns all checked transactions, newest first.
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	txs, err := h.txRepo.ListAll(c.Context())
	if err != nil {
		log.Printf("failed to list transactions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error fetching transactions",
		})
	}
	return c.JSON(fiber.Map{"transactions": txs})
}

// GetFlaggedTransactions returns only transactions assessed as fraud.
func (h *TransactionHandler) GetFlaggedTransactions(c *fiber.Ctx) error {
	txs, err := h.txRepo.ListFlagged(c.Context())
	if err != nil {
		log.Printf("failed to list flagged transactions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error fetching flagged transactions",
		})
	}
	return c.JSON(fiber.Map{"flagged_transactions": txs})
}

// GetBlacklist returns every blacklisted identifier, newest first.
func (h *TransactionHandler) GetBlacklist(c *fiber.Ctx) error {
	entries, err := h.blacklist.List(c.Context())
	if err != nil {
		log.Printf("failed to list blacklist: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error fetching blacklist",
		})
	}
	return c.JSON(fiber.Map{"blacklist": entries})
}
