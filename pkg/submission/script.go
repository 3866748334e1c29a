package submission

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// ScriptResponse is the body a script endpoint answers with.
type ScriptResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Script posts forms to a same-origin script endpoint. Success requires a 2xx
// status and a body reporting success: true.
type Script struct {
	endpoint string
	cfg      config
}

var _ Submitter = (*Script)(nil)

// NewScript builds a script-endpoint submitter.
func NewScript(endpoint string, opts ...Option) (*Script, error) {
	if endpoint == "" {
		return nil, errors.New("submission: script endpoint is required")
	}
	return &Script{endpoint: endpoint, cfg: newConfig(opts)}, nil
}

// Submit posts payload once.
func (s *Script) Submit(ctx context.Context, payload Payload) error {
	status, body, err := s.cfg.post(ctx, s.endpoint, payload)
	if err != nil {
		return &TransportError{Endpoint: s.endpoint, Status: status, Err: err}
	}

	var answer ScriptResponse
	decodeErr := json.Unmarshal(body, &answer)
	message := strings.TrimSpace(answer.Message)

	if !isSuccessStatus(status) {
		return &TransportError{Endpoint: s.endpoint, Status: status, Message: message, Err: ErrRejected}
	}
	if decodeErr != nil {
		return &TransportError{Endpoint: s.endpoint, Status: status, Err: decodeErr}
	}
	if !answer.Success {
		return &TransportError{Endpoint: s.endpoint, Status: status, Message: message, Err: ErrRejected}
	}
	return nil
}
