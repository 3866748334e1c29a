package drafts

import (
	"context"
	"errors"
)

// Storage is the key-value surface drafts are written to.
type Storage interface {
	// Get returns the stored value and whether the key exists. An error is
	// reserved for storage failures, not for missing keys.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// ErrEmptyKey is returned by backends for blank keys.
var ErrEmptyKey = errors.New("drafts: empty key")
