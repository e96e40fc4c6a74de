package geo

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

var errMiss = errors.New("cache miss")

// memoryCache is a map-backed Cache for tests.
type memoryCache struct {
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := m.data[key]
	if !ok {
		return errMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) SetWithTTL(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}
