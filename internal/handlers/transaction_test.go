package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vigil/internal/middleware"
	"vigil/internal/models"
	"vigil/internal/services/risk"
	"vigil/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRiskService struct {
	assessment *risk.Assessment
	lastTx     *models.Transaction
	lastIP     string
}

func (f *fakeRiskService) Evaluate(_ context.Context, tx *models.Transaction, clientIP string) *risk.Assessment {
	f.lastTx = tx
	f.lastIP = clientIP
	return f.assessment
}

type fakeTxRepo struct {
	stored []*models.Transaction
}

func (f *fakeTxRepo) Create(_ context.Context, tx *models.Transaction) error {
	f.stored = append(f.stored, tx)
	return nil
}

func (f *fakeTxRepo) Recent(context.Context, string, int, string) ([]models.Transaction, error) {
	return nil, nil
}

func (f *fakeTxRepo) ListAll(context.Context) ([]models.Transaction, error) {
	out := make([]models.Transaction, len(f.stored))
	for i, tx := range f.stored {
		out[i] = *tx
	}
	return out, nil
}

func (f *fakeTxRepo) ListFlagged(context.Context) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, tx := range f.stored {
		if tx.IsFraud {
			out = append(out, *tx)
		}
	}
	return out, nil
}

type fakeBlacklistRepo struct{}

func (fakeBlacklistRepo) Contains(context.Context, string, string) (bool, error) { return false, nil }
func (fakeBlacklistRepo) Upsert(context.Context, string, string, string, time.Time) error {
	return nil
}
func (fakeBlacklistRepo) List(context.Context) ([]models.BlacklistEntry, error) { return nil, nil }

func newTestApp(t *testing.T, svc risk.Service, repo *fakeTxRepo) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := NewTransactionHandler(svc, repo, fakeBlacklistRepo{})
	app.Post("/api/check_fraud", middleware.Auth(), h.CheckFraud)
	app.Get("/api/transactions", middleware.Auth(), h.GetTransactions)
	return app
}

func authToken(t *testing.T) string {
	t.Helper()
	access, _, err := utils.GenerateTokens(&models.UserClaims{
		UserID:   1,
		Username: "analyst1",
		Role:     "analyst",
	})
	require.NoError(t, err)
	return access
}

func TestCheckFraud(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := &fakeRiskService{assessment: &risk.Assessment{
		IsFraud:      true,
		FraudReasons: []string{risk.ReasonOddHour},
		RiskScore:    risk.WeightOddHour,
	}}
	repo := &fakeTxRepo{}
	app := newTestApp(t, svc, repo)

	body, _ := json.Marshal(map[string]interface{}{
		"transaction_id":           "TX-42",
		"timestamp":                "2025-03-15 02:00:00",
		"amount":                   250.0,
		"location":                 "Chennai",
		"card_type":                "visa",
		"recipient_account_number": "ACC000111",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/check_fraud", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+authToken(t))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "TX-42", got.TransactionID)
	assert.True(t, got.IsFraud)
	assert.Equal(t, []string{risk.ReasonOddHour}, []string(got.FraudReasons))
	assert.Equal(t, risk.WeightOddHour, got.RiskScore)
	assert.Equal(t, "analyst1", got.CheckedBy)
	assert.Equal(t, "USD", got.Currency) // default applied

	// Stored after evaluation, annotated with the verdict.
	require.Len(t, repo.stored, 1)
	assert.True(t, repo.stored[0].IsFraud)
}

func TestCheckFraudRejectsInvalidBody(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := &fakeRiskService{assessment: &risk.Assessment{FraudReasons: []string{}}}
	app := newTestApp(t, svc, &fakeTxRepo{})

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{
			name: "negative amount",
			body: map[string]interface{}{
				"transaction_id":           "TX-1",
				"timestamp":                "2025-03-15 10:00:00",
				"amount":                   -5.0,
				"location":                 "Chennai",
				"card_type":                "visa",
				"recipient_account_number": "ACC1",
			},
		},
		{
			name: "missing card type",
			body: map[string]interface{}{
				"transaction_id":           "TX-1",
				"timestamp":                "2025-03-15 10:00:00",
				"amount":                   5.0,
				"location":                 "Chennai",
				"recipient_account_number": "ACC1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/api/check_fraud", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+authToken(t))

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestCheckFraudRequiresToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := &fakeRiskService{assessment: &risk.Assessment{FraudReasons: []string{}}}
	app := newTestApp(t, svc, &fakeTxRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/check_fraud", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
