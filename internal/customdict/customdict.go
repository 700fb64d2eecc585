// Package customdict persists user-supplied vocabulary words in a
// Redis set so they survive restarts.
package customdict

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const defaultKey = "custom_dict"

// Store wraps a Redis client holding the custom word set.
type Store struct {
	client *redis.Client
	key    string
}

// New creates a Store using the default key.
func New(client *redis.Client) *Store {
	return &Store{client: client, key: defaultKey}
}

// NewWithKey creates a Store backed by the given set key.
func NewWithKey(client *redis.Client, key string) *Store {
	return &Store{client: client, key: key}
}

// Add inserts a word into the custom dictionary.
func (s *Store) Add(ctx context.Context, word string) error {
	return s.client.SAdd(ctx, s.key, word).Err()
}

// Remove deletes a word from the custom dictionary.
func (s *Store) Remove(ctx context.Context, word string) error {
	return s.client.SRem(ctx, s.key, word).Err()
}

// All returns every word stored in the custom dictionary.
func (s *Store) All(ctx context.Context) ([]string, error) {
	return s.client.SMembers(ctx, s.key).Result()
}

// Len returns the number of stored words.
func (s *Store) Len(ctx context.Context) (int64, error) {
	return s.client.SCard(ctx, s.key).Result()
}
