// Package geo resolves place names to coordinates through a
// Nominatim-compatible geocoding API and computes great-circle
// distances. Resolved coordinates are cached, geocoders rate-limit
// aggressively.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"vigil/internal/services/risk"
)

const (
	DefaultBaseURL   = "https://nominatim.openstreetmap.org"
	DefaultUserAgent = "vigil-fraud-detection"

	coordsCacheTTL  = 24 * time.Hour
	coordsKeyPrefix = "geo:location:"

	requestTimeout = 10 * time.Second
)

// ErrLocationNotFound is returned when the geocoder has no match for
// a place name.
var ErrLocationNotFound = errors.New("location not found")

// Cache is the subset of the cache service the client needs.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// Client implements risk.GeoResolver against a Nominatim-style API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	cache      Cache
}

// NewClient creates a geocoding client. cache may be nil, in which
// case every Resolve hits the API.
func NewClient(baseURL, userAgent string, cache Cache) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		cache:      cache,
	}
}

// Nominatim returns lat/lon as JSON strings.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve maps a free-text place name to coordinates.
func (c *Client) Resolve(ctx context.Context, location string) (risk.Coordinates, error) {
	key := coordsKeyPrefix + strings.ToLower(strings.TrimSpace(location))

	if c.cache != nil {
		var coords risk.Coordinates
		if err := c.cache.Get(ctx, key, &coords); err == nil {
			return coords, nil
		}
	}

	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1",
		c.baseURL, url.QueryEscape(location))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return risk.Coordinates{}, fmt.Errorf("failed to build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return risk.Coordinates{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return risk.Coordinates{}, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return risk.Coordinates{}, fmt.Errorf("failed to decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return risk.Coordinates{}, fmt.Errorf("%w: %q", ErrLocationNotFound, location)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return risk.Coordinates{}, fmt.Errorf("invalid latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return risk.Coordinates{}, fmt.Errorf("invalid longitude %q: %w", results[0].Lon, err)
	}

	coords := risk.Coordinates{Lat: lat, Lon: lon}

	if c.cache != nil {
		// Cache write failures only cost a future lookup.
		_ = c.cache.SetWithTTL(ctx, key, coords, coordsCacheTTL)
	}

	return coords, nil
}
