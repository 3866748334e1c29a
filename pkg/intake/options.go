package intake

import (
	"log/slog"
	"strings"

	"github.com/goliatone/go-phoneform/pkg/formspec"
)

const (
	DefaultMaxBodyBytes   = 64 << 10
	DefaultSuccessMessage = "¡Solicitud enviada con éxito! Te contactaremos en breve."
	DefaultFailureMessage = "Error al enviar el formulario. Por favor, inténtalo de nuevo."
	DefaultInvalidEmail   = "Email inválido"
	DefaultBadRequest     = "Solicitud inválida"
	DefaultMissingFormat  = "El campo %s es requerido"
)

// DefaultRequiredFields are the membership fields the endpoint insists on.
var DefaultRequiredFields = []string{"name", "phone", "email", "age", "vehicle"}

type Options struct {
	RequiredFields []string
	// EmailField is checked for shape when present. Empty disables the check.
	EmailField string
	// Defaults fill optional fields the client left out.
	Defaults       map[string]string
	AllowOrigin    string
	MaxBodyBytes   int64
	SuccessMessage string
	FailureMessage string
	Sink           Sink
	Logger         *slog.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RequiredFields: append([]string(nil), DefaultRequiredFields...),
		EmailField:     "email",
		Defaults:       map[string]string{"comments": "No especificado"},
		AllowOrigin:    "*",
		MaxBodyBytes:   DefaultMaxBodyBytes,
		SuccessMessage: DefaultSuccessMessage,
		FailureMessage: DefaultFailureMessage,
		Logger:         slog.Default(),
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}

	required := opts.RequiredFields[:0:0]
	for _, name := range opts.RequiredFields {
		if name = strings.TrimSpace(name); name != "" {
			required = append(required, name)
		}
	}
	opts.RequiredFields = required
	opts.EmailField = strings.TrimSpace(opts.EmailField)

	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.SuccessMessage == "" {
		opts.SuccessMessage = DefaultSuccessMessage
	}
	if opts.FailureMessage == "" {
		opts.FailureMessage = DefaultFailureMessage
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Sink == nil {
		opts.Sink = DiscardSink{}
	}
	return opts
}

func WithRequiredFields(fields ...string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RequiredFields = append([]string(nil), fields...)
	}
}

// WithForm derives the checks from a form definition: its required fields,
// its first email field and the EmptyValue of its optional fields. The form's
// feedback messages become the endpoint's.
func WithForm(form formspec.Form) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RequiredFields = nil
		o.EmailField = ""
		o.Defaults = make(map[string]string)
		for _, field := range form.Fields {
			if field.Required {
				o.RequiredFields = append(o.RequiredFields, field.Name)
			} else if field.EmptyValue != "" {
				o.Defaults[field.Name] = field.EmptyValue
			}
			if field.Kind == formspec.KindEmail && o.EmailField == "" {
				o.EmailField = field.Name
			}
		}
		o.SuccessMessage = form.SuccessMessage()
		o.FailureMessage = form.FailureMessage()
	}
}

func WithEmailField(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.EmailField = name
	}
}

func WithDefault(field, value string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if o.Defaults == nil {
			o.Defaults = make(map[string]string)
		}
		o.Defaults[field] = value
	}
}

func WithAllowOrigin(origin string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.AllowOrigin = origin
	}
}

func WithMaxBodyBytes(n int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxBodyBytes = n
	}
}

func WithMessages(success, failure string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SuccessMessage = success
		o.FailureMessage = failure
	}
}

func WithSink(sink Sink) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Sink = sink
	}
}

func WithLogger(logger *slog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
