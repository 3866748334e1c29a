package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// RequestIDHeader carries a fresh id for every attempt.
const RequestIDHeader = "X-Request-ID"

const maxResponseBody = 64 << 10

type config struct {
	client   *http.Client
	headers  http.Header
	logger   *slog.Logger
	sanitize bool
}

// Option configures the HTTP submitters.
type Option func(*config)

// WithHTTPClient overrides http.DefaultClient.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		if client != nil {
			c.client = client
		}
	}
}

// WithHeader adds a static header to every request, such as an API key.
func WithHeader(name, value string) Option {
	return func(c *config) {
		if strings.TrimSpace(name) == "" {
			return
		}
		c.headers.Add(name, value)
	}
}

// WithLogger sets the logger for delivery diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSanitize toggles markup stripping on payload values. Enabled by default.
func WithSanitize(enabled bool) Option {
	return func(c *config) {
		c.sanitize = enabled
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		client:   http.DefaultClient,
		headers:  make(http.Header),
		logger:   slog.Default(),
		sanitize: true,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// post sends payload as JSON and returns the status and a bounded body.
func (c config) post(ctx context.Context, endpoint string, payload Payload) (int, []byte, error) {
	if c.sanitize {
		payload = Sanitize(payload)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	for name, values := range c.headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	c.logger.DebugContext(ctx, "submission: posting form", slog.String("endpoint", endpoint), slog.String("request_id", requestID))

	res, err := c.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = res.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBody))
	if err != nil {
		return res.StatusCode, nil, err
	}

	c.logger.InfoContext(ctx, "submission: endpoint answered",
		slog.String("endpoint", endpoint),
		slog.String("request_id", requestID),
		slog.Int("status", res.StatusCode),
	)
	return res.StatusCode, data, nil
}

func isSuccessStatus(status int) bool {
	return status >= 200 && status < 300
}
