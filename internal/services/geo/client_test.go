package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"vigil/internal/services/risk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Chennai", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"13.0827","lon":"80.2707"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", nil)

	coords, err := client.Resolve(context.Background(), "Chennai")
	require.NoError(t, err)
	assert.InDelta(t, 13.0827, coords.Lat, 1e-9)
	assert.InDelta(t, 80.2707, coords.Lon, 1e-9)
}

func TestResolveNoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", nil)

	_, err := client.Resolve(context.Background(), "Nowhereville")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestResolveServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", nil)

	_, err := client.Resolve(context.Background(), "Chennai")
	assert.Error(t, err)
}

func TestResolveUsesCache(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"13.0827","lon":"80.2707"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", newMemoryCache())

	for i := 0; i < 3; i++ {
		coords, err := client.Resolve(context.Background(), "Chennai")
		require.NoError(t, err)
		assert.InDelta(t, 13.0827, coords.Lat, 1e-9)
	}

	assert.Equal(t, 1, calls, "repeat lookups should hit the cache")
}

func TestDistance(t *testing.T) {
	client := NewClient("", "", nil)

	tests := []struct {
		name   string
		a, b   risk.Coordinates
		wantKm float64
	}{
		{
			name:   "same point",
			a:      risk.Coordinates{Lat: 13.0827, Lon: 80.2707},
			b:      risk.Coordinates{Lat: 13.0827, Lon: 80.2707},
			wantKm: 0,
		},
		{
			name:   "Chennai to Mumbai",
			a:      risk.Coordinates{Lat: 13.0827, Lon: 80.2707},
			b:      risk.Coordinates{Lat: 19.0760, Lon: 72.8777},
			wantKm: 1031,
		},
		{
			name:   "Paris to London",
			a:      risk.Coordinates{Lat: 48.8566, Lon: 2.3522},
			b:      risk.Coordinates{Lat: 51.5074, Lon: -0.1278},
			wantKm: 344,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantKm, client.Distance(tt.a, tt.b), 10)
			// Symmetric
			assert.InDelta(t, client.Distance(tt.a, tt.b), client.Distance(tt.b, tt.a), 1e-9)
		})
	}
}
