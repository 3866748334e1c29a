package controller

// OutcomeKind tags an Outcome.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeValidationFailed
	OutcomeTransportFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeValidationFailed:
		return "validation_failed"
	case OutcomeTransportFailed:
		return "transport_failed"
	default:
		return "unknown"
	}
}

// FieldError is an inline message for one field.
type FieldError struct {
	Field   string
	Message string
}

// Outcome is the result of one Submit call.
type Outcome struct {
	Kind OutcomeKind
	// FieldErrors lists every invalid field in form order.
	FieldErrors []FieldError
	// Message is the user-facing success or retry text.
	Message string
	// Err is the collaborator error behind a transport failure.
	Err error
}

// FieldError returns the message recorded for field, if any.
func (o Outcome) FieldError(field string) (string, bool) {
	for _, fe := range o.FieldErrors {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}
