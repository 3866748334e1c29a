package formspec

import (
	"strings"
)

// Kind selects how a field is validated and collected.
type Kind string

const (
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindTextarea Kind = "textarea"
	KindChoice   Kind = "choice"
	KindPhone    Kind = "phone"
)

func (k Kind) valid() bool {
	switch k {
	case KindText, KindEmail, KindTextarea, KindChoice, KindPhone:
		return true
	default:
		return false
	}
}

// Default messages used when a definition leaves them blank.
const (
	DefaultRequiredMessage = "Este campo es obligatorio"
	DefaultInvalidMessage  = "Formato inválido"
	DefaultFailureMessage  = "Hubo un problema al enviar el formulario. Por favor, inténtalo de nuevo más tarde."
	DefaultSuccessMessage  = "¡Formulario enviado con éxito!"
)

// Choice is one allowed value of a choice field.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
	// Payload replaces Value in submissions when set.
	Payload string `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// Field describes one input.
type Field struct {
	Name      string   `json:"name" yaml:"name"`
	Kind      Kind     `json:"kind" yaml:"kind"`
	Label     string   `json:"label,omitempty" yaml:"label,omitempty"`
	Required  bool     `json:"required,omitempty" yaml:"required,omitempty"`
	MinLength int      `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	Choices   []Choice `json:"choices,omitempty" yaml:"choices,omitempty"`
	// EmptyValue is submitted in place of an empty optional value.
	EmptyValue string `json:"emptyValue,omitempty" yaml:"emptyValue,omitempty"`
	// Message is shown when a required value is missing or too short.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	// InvalidMessage is shown when a value is present but malformed.
	InvalidMessage string `json:"invalidMessage,omitempty" yaml:"invalidMessage,omitempty"`
}

// RequiredMessage returns Message or the default.
func (f Field) RequiredMessage() string {
	if msg := strings.TrimSpace(f.Message); msg != "" {
		return msg
	}
	return DefaultRequiredMessage
}

// FormatMessage returns InvalidMessage, falling back to Message and then the
// default.
func (f Field) FormatMessage() string {
	if msg := strings.TrimSpace(f.InvalidMessage); msg != "" {
		return msg
	}
	if msg := strings.TrimSpace(f.Message); msg != "" {
		return msg
	}
	return DefaultInvalidMessage
}

// Choice resolves value against the allowed choices.
func (f Field) Choice(value string) (Choice, bool) {
	for _, choice := range f.Choices {
		if choice.Value == value {
			return choice, true
		}
	}
	return Choice{}, false
}

// Messages holds the form-level feedback texts.
type Messages struct {
	Success string `json:"success,omitempty" yaml:"success,omitempty"`
	Failure string `json:"failure,omitempty" yaml:"failure,omitempty"`
}

// Form is a complete definition.
type Form struct {
	Key   string `json:"key" yaml:"key"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// Subject is sent as _subject. ${field} expands to that field's value.
	Subject string `json:"subject,omitempty" yaml:"subject,omitempty"`
	// ReplyTo names the field whose value is sent as _replyto.
	ReplyTo  string   `json:"replyTo,omitempty" yaml:"replyTo,omitempty"`
	Messages Messages `json:"messages,omitempty" yaml:"messages,omitempty"`
	Fields   []Field  `json:"fields" yaml:"fields"`
}

// Field returns the field with the given name.
func (f Form) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// PhoneField returns the form's phone field, if any.
func (f Form) PhoneField() (Field, bool) {
	for _, field := range f.Fields {
		if field.Kind == KindPhone {
			return field, true
		}
	}
	return Field{}, false
}

// SuccessMessage returns Messages.Success or the default.
func (f Form) SuccessMessage() string {
	if f.Messages.Success != "" {
		return f.Messages.Success
	}
	return DefaultSuccessMessage
}

// FailureMessage returns Messages.Failure or the default.
func (f Form) FailureMessage() string {
	if f.Messages.Failure != "" {
		return f.Messages.Failure
	}
	return DefaultFailureMessage
}

// ExpandSubject substitutes ${field} references with values. Only the form's
// field names are placeholders; any other text, a bare $ included, is kept.
func (f Form) ExpandSubject(values map[string]string) string {
	if f.Subject == "" {
		return ""
	}
	pairs := make([]string, 0, len(f.Fields)*2)
	for _, field := range f.Fields {
		pairs = append(pairs, "${"+field.Name+"}", values[field.Name])
	}
	return strings.NewReplacer(pairs...).Replace(f.Subject)
}
