package submission

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Payload is the flat JSON object sent to the endpoint.
type Payload map[string]string

// Submitter delivers a payload. A nil error means the endpoint confirmed
// success.
type Submitter interface {
	Submit(ctx context.Context, payload Payload) error
}

// SubmitterFunc adapts a function into a Submitter.
type SubmitterFunc func(ctx context.Context, payload Payload) error

// Submit delegates to the underlying function.
func (fn SubmitterFunc) Submit(ctx context.Context, payload Payload) error {
	return fn(ctx, payload)
}

// ErrRejected is wrapped when an endpoint answers but reports failure.
var ErrRejected = errors.New("submission: rejected by endpoint")

// TransportError describes a failed delivery.
type TransportError struct {
	Endpoint string
	// Status is the HTTP status, zero when no response was received.
	Status int
	// Message is the endpoint's own explanation, when it sent one.
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	msg := "submission: " + e.Endpoint
	if e.Status > 0 {
		msg += fmt.Sprintf(": status %d %s", e.Status, http.StatusText(e.Status))
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TransportError) Unwrap() error { return e.Err }
