package controller

// Feedback is the host surface that shows the form's progress. Calls are made
// from the goroutine running Submit, never while the controller holds its lock,
// so implementations may read the controller back.
type Feedback interface {
	StateChanged(from, to State)
	FieldErrors(errs []FieldError)
	ClearErrors()
	GlobalError(message string)
	Success(message string)
}

// NopFeedback discards every notification.
type NopFeedback struct{}

func (NopFeedback) StateChanged(State, State) {}
func (NopFeedback) FieldErrors([]FieldError)  {}
func (NopFeedback) ClearErrors()              {}
func (NopFeedback) GlobalError(string)        {}
func (NopFeedback) Success(string)            {}
