package risk

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"vigil/internal/models"
)

// In-memory collaborator fakes.

type fakeHistory struct {
	transactions []models.Transaction
	err          error
}

func (f *fakeHistory) Recent(_ context.Context, cardType string, limit int, excludeTxID string) ([]models.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Transaction
	for _, tx := range f.transactions {
		if tx.CardType == cardType && tx.TransactionID != excludeTxID {
			out = append(out, tx)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeBlacklist struct {
	entries     map[string]models.BlacklistEntry
	containsErr error
	upsertErr   error
	upsertCalls int
}

func newFakeBlacklist() *fakeBlacklist {
	return &fakeBlacklist{entries: make(map[string]models.BlacklistEntry)}
}

func (f *fakeBlacklist) key(kind, value string) string { return kind + "|" + value }

func (f *fakeBlacklist) add(kind, value string) {
	f.entries[f.key(kind, value)] = models.BlacklistEntry{Kind: kind, Value: value, AddedAt: time.Now()}
}

func (f *fakeBlacklist) Contains(_ context.Context, kind, value string) (bool, error) {
	if f.containsErr != nil {
		return false, f.containsErr
	}
	_, ok := f.entries[f.key(kind, value)]
	return ok, nil
}

func (f *fakeBlacklist) Upsert(_ context.Context, kind, value, reason string, at time.Time) error {
	f.upsertCalls++
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.entries[f.key(kind, value)] = models.BlacklistEntry{Kind: kind, Value: value, Reason: reason, AddedAt: at}
	return nil
}

// fakeGeo resolves from a fixed map and measures planar distance, so a
// test controls distances by choosing coordinates directly.
type fakeGeo struct {
	coords map[string]Coordinates
}

func (f *fakeGeo) Resolve(_ context.Context, location string) (Coordinates, error) {
	c, ok := f.coords[location]
	if !ok {
		return Coordinates{}, errors.New("geocoder unavailable")
	}
	return c, nil
}

func (f *fakeGeo) Distance(a, b Coordinates) float64 {
	return math.Hypot(a.Lat-b.Lat, a.Lon-b.Lon)
}
