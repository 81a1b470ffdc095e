// Package redis implements ports.ResultStore on a Redis backend.
// Scan records are stored as JSON values with an optional TTL, so repeated
// batch scans of a large asset library can skip unchanged snapshots.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/mestiri/wrangler/pkg/ports"
)

// Store implements ports.ResultStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for cached scan records.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for scan records.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "wrangler:scan:",
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Save persists the scan record under the prefixed key.
func (s *Store) Save(ctx context.Context, key string, rec *ports.ScanRecord) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal scan record: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save scan record: %w", err)
	}
	return nil
}

// Load retrieves the scan record for a key.
func (s *Store) Load(ctx context.Context, key string) (*ports.ScanRecord, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, backend.Nil) {
		return nil, ports.ErrNotCached
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load scan record: %w", err)
	}
	var rec ports.ScanRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scan record: %w", err)
	}
	return &rec, nil
}

// Delete removes the scan record for a key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete scan record: %w", err)
	}
	return nil
}

var _ ports.ResultStore = (*Store)(nil)
