package risk

import (
	"context"
	"testing"

	"vigil/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlacklistCheckBothIdentifiersFlagged(t *testing.T) {
	store := newFakeBlacklist()
	store.add(models.BlacklistKindIP, "203.0.113.45")
	store.add(models.BlacklistKindAccount, "ACC111222333")

	check := NewBlacklistCheck(store)

	tx := &models.Transaction{RecipientAccount: "ACC111222333"}
	out := check.Evaluate(context.Background(), &Input{Transaction: tx, ClientIP: "203.0.113.45"})

	require.Len(t, out.Findings, 2)
	assert.Equal(t, ReasonBlacklistedIP, out.Findings[0].Reason)
	assert.Equal(t, ReasonBlacklistedAccount, out.Findings[1].Reason)
	assert.False(t, out.Degraded)
}

func TestBlacklistCheckUnknownClientIP(t *testing.T) {
	store := newFakeBlacklist()
	store.add(models.BlacklistKindIP, "203.0.113.45")

	check := NewBlacklistCheck(store)

	// Absent client identifier skips the IP lookup entirely.
	tx := &models.Transaction{RecipientAccount: "ACC000"}
	out := check.Evaluate(context.Background(), &Input{Transaction: tx, ClientIP: ""})

	assert.Empty(t, out.Findings)
	assert.False(t, out.Degraded)
}
