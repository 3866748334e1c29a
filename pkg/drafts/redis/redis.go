// Package redis provides a Redis-backed drafts.Storage.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/goliatone/go-phoneform/pkg/drafts"
)

// Config contains configuration options for the Redis storage.
type Config struct {
	// Client is the Redis client instance.
	Client *goredis.Client

	// KeyPrefix is prepended to every key.
	// Default: "phoneform:"
	KeyPrefix string

	// TTL expires drafts that are not touched again. Zero keeps them forever.
	TTL time.Duration
}

// Storage implements drafts.Storage using Redis string values.
type Storage struct {
	client    *goredis.Client
	keyPrefix string
	ttl       time.Duration
}

var _ drafts.Storage = (*Storage)(nil)

// New creates a Redis-backed storage.
func New(config Config) (*Storage, error) {
	if config.Client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if config.KeyPrefix == "" {
		config.KeyPrefix = "phoneform:"
	}
	if config.TTL < 0 {
		config.TTL = 0
	}
	return &Storage{
		client:    config.Client,
		keyPrefix: config.KeyPrefix,
		ttl:       config.TTL,
	}, nil
}

func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, drafts.ErrEmptyKey
	}
	redisKey := s.keyPrefix + key
	value, err := s.client.Get(ctx, redisKey).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get key %s: %w", redisKey, err)
	}
	return value, true, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return drafts.ErrEmptyKey
	}
	redisKey := s.keyPrefix + key
	if err := s.client.Set(ctx, redisKey, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", redisKey, err)
	}
	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return drafts.ErrEmptyKey
	}
	redisKey := s.keyPrefix + key
	if err := s.client.Del(ctx, redisKey).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", redisKey, err)
	}
	return nil
}

// Close closes the underlying client.
func (s *Storage) Close() error {
	return s.client.Close()
}
