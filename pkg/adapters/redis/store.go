// Package redis provides a ports.SchemaStore backed by Redis, letting
// multiple validation services share one set of schema definitions.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aretw0/skooma"
	"github.com/aretw0/skooma/pkg/schemafile"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.SchemaStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithTTL sets an expiration on stored definitions.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for definitions.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewWithClient(rdb, opts...)
}

// NewWithClient wraps an existing client. Useful for tests and for
// hosts that manage their own connection pool.
func NewWithClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "skooma:schema:",
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Save persists a JSON-encoded definition.
func (s *Store) Save(ctx context.Context, name string, def *schemafile.Definition) error {
	data, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("encoding schema %q: %w", name, err)
	}
	if err := s.client.Set(ctx, s.prefix+name, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis error saving schema %q: %w", name, err)
	}
	return nil
}

// Load retrieves and decodes a definition.
func (s *Store) Load(ctx context.Context, name string) (*schemafile.Definition, error) {
	data, err := s.client.Get(ctx, s.prefix+name).Bytes()
	if err == backend.Nil {
		return nil, skooma.ErrSchemaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis error loading schema %q: %w", name, err)
	}

	var def schemafile.Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decoding schema %q: %w", name, err)
	}
	return &def, nil
}

// List scans for stored schema names under the prefix.
func (s *Store) List(ctx context.Context) ([]string, error) {
	var names []string
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		names = append(names, strings.TrimPrefix(iter.Val(), s.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis error listing schemas: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a definition.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := s.client.Del(ctx, s.prefix+name).Err(); err != nil {
		return fmt.Errorf("redis error deleting schema %q: %w", name, err)
	}
	return nil
}

// Ping verifies connectivity, for startup checks.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
