package submission

import (
	"context"
	"errors"
)

// Webhook posts forms to a third-party form service. Any 2xx answer is a
// success; the body is ignored.
type Webhook struct {
	endpoint string
	cfg      config
}

var _ Submitter = (*Webhook)(nil)

// NewWebhook builds a webhook submitter for endpoint.
func NewWebhook(endpoint string, opts ...Option) (*Webhook, error) {
	if endpoint == "" {
		return nil, errors.New("submission: webhook endpoint is required")
	}
	return &Webhook{endpoint: endpoint, cfg: newConfig(opts)}, nil
}

// Submit posts payload once.
func (w *Webhook) Submit(ctx context.Context, payload Payload) error {
	status, _, err := w.cfg.post(ctx, w.endpoint, payload)
	if err != nil {
		return &TransportError{Endpoint: w.endpoint, Status: status, Err: err}
	}
	if !isSuccessStatus(status) {
		return &TransportError{Endpoint: w.endpoint, Status: status, Err: ErrRejected}
	}
	return nil
}
