package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Entry is one accepted submission.
type Entry struct {
	ID         string            `json:"id"`
	ReceivedAt time.Time         `json:"received_at"`
	RemoteAddr string            `json:"remote_addr,omitempty"`
	Fields     map[string]string `json:"fields"`
}

// Sink stores or forwards accepted entries.
type Sink interface {
	Deliver(ctx context.Context, entry Entry) error
}

// SinkFunc adapts a function into a Sink.
type SinkFunc func(ctx context.Context, entry Entry) error

func (fn SinkFunc) Deliver(ctx context.Context, entry Entry) error {
	return fn(ctx, entry)
}

// DiscardSink accepts and drops every entry.
type DiscardSink struct{}

func (DiscardSink) Deliver(context.Context, Entry) error { return nil }

// FileSink appends entries to a file, one JSON object per line.
type FileSink struct {
	path string
	mu   sync.Mutex
}

var _ Sink = (*FileSink)(nil)

// NewFileSink creates the parent directory of path if needed.
func NewFileSink(path string) (*FileSink, error) {
	if path == "" {
		return nil, fmt.Errorf("intake: file sink path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("intake: create sink dir: %w", err)
	}
	return &FileSink{path: path}, nil
}

// Path returns the log file location.
func (s *FileSink) Path() string {
	return s.path
}

func (s *FileSink) Deliver(ctx context.Context, entry Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("intake: encode entry: %w", err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("intake: open %s: %w", s.path, err)
	}
	if _, err := f.Write(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("intake: append %s: %w", s.path, err)
	}
	return f.Close()
}
