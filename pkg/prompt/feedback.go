package prompt

import (
	"context"

	"github.com/goliatone/go-phoneform/pkg/controller"
)

// Feedback prints controller notifications through a Driver.
type Feedback struct {
	Driver Driver
	// Labels maps field names to the text shown next to their errors.
	Labels map[string]string
}

var _ controller.Feedback = (*Feedback)(nil)

func (f *Feedback) StateChanged(_, to controller.State) {
	if to == controller.StateSubmitting {
		f.info("Enviando...")
	}
}

func (f *Feedback) FieldErrors(errs []controller.FieldError) {
	for _, fe := range errs {
		label := f.Labels[fe.Field]
		if label == "" {
			label = fe.Field
		}
		f.info("✗ " + label + ": " + fe.Message)
	}
}

func (f *Feedback) ClearErrors() {}

func (f *Feedback) GlobalError(message string) {
	f.info("✗ " + message)
}

func (f *Feedback) Success(message string) {
	f.info("✓ " + message)
}

func (f *Feedback) info(msg string) {
	if f == nil || f.Driver == nil {
		return
	}
	_ = f.Driver.Info(context.Background(), msg)
}
