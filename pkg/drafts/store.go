package drafts

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
)

// DefaultKeyPrefix scopes draft keys inside a shared storage.
const DefaultKeyPrefix = "formdraft:"

// Values maps field names to their current value.
type Values map[string]string

// Clone returns an independent copy. A nil map clones to an empty map.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for key, value := range v {
		out[key] = value
	}
	return out
}

// Store reads and writes form drafts through a Storage backend.
type Store struct {
	storage   Storage
	keyPrefix string
	logger    *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithKeyPrefix overrides DefaultKeyPrefix.
func WithKeyPrefix(prefix string) Option {
	return func(s *Store) {
		s.keyPrefix = prefix
	}
}

// WithLogger sets the logger used to report degraded storage.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore wraps storage. A nil storage yields an in-memory backend.
func NewStore(storage Storage, opts ...Option) *Store {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	s := &Store{
		storage:   storage,
		keyPrefix: DefaultKeyPrefix,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Key returns the storage key used for formKey.
func (s *Store) Key(formKey string) string {
	return s.keyPrefix + strings.TrimSpace(formKey)
}

// Save overwrites the draft for formKey. Failures are logged and dropped.
func (s *Store) Save(ctx context.Context, formKey string, values Values) {
	if values == nil {
		values = Values{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		s.logger.WarnContext(ctx, "drafts: encode draft", slog.String("form", formKey), slog.Any("error", err))
		return
	}
	if err := s.storage.Set(ctx, s.Key(formKey), string(data)); err != nil {
		s.logger.WarnContext(ctx, "drafts: storage unavailable on save", slog.String("form", formKey), slog.Any("error", err))
	}
}

// Load returns the saved draft or an empty map.
func (s *Store) Load(ctx context.Context, formKey string) Values {
	raw, ok, err := s.storage.Get(ctx, s.Key(formKey))
	if err != nil {
		s.logger.WarnContext(ctx, "drafts: storage unavailable on load", slog.String("form", formKey), slog.Any("error", err))
		return Values{}
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return Values{}
	}

	var values Values
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		s.logger.DebugContext(ctx, "drafts: discarding unreadable draft", slog.String("form", formKey), slog.Any("error", err))
		return Values{}
	}
	if values == nil {
		return Values{}
	}
	return values
}

// Clear removes the draft for formKey.
func (s *Store) Clear(ctx context.Context, formKey string) {
	if err := s.storage.Delete(ctx, s.Key(formKey)); err != nil {
		s.logger.WarnContext(ctx, "drafts: storage unavailable on clear", slog.String("form", formKey), slog.Any("error", err))
	}
}
