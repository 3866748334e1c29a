package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrGaveUp is returned by Run when the user declines to retry a failed
	// submission.
	ErrGaveUp = errors.New("prompt: submission not retried")
)
