package phonefield

import (
	"strings"

	"github.com/goliatone/go-phoneform/pkg/phone"
)

// Options configures a Field. Only the recognised options below exist;
// anything else a host passes along is simply not represented here.
type Options struct {
	// DefaultCountry is the ISO2 code selected on mount and on Reset.
	DefaultCountry string
	Required       bool
	Placeholder    string
	Messages       phone.Messages
	ErrorRegion    ErrorRegion
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		DefaultCountry: "ES",
		Required:       true,
		Placeholder:    "Número de teléfono",
		Messages:       phone.DefaultMessages,
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
	opts.DefaultCountry = strings.ToUpper(strings.TrimSpace(opts.DefaultCountry))
	if opts.Messages == (phone.Messages{}) {
		opts.Messages = phone.DefaultMessages
	}
	if opts.ErrorRegion == nil {
		opts.ErrorRegion = nopRegion{}
	}
	return opts
}

func WithDefaultCountry(code string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultCountry = code
	}
}

func WithRequired(required bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Required = required
	}
}

func WithPlaceholder(placeholder string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Placeholder = placeholder
	}
}

func WithMessages(messages phone.Messages) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Messages = messages
	}
}

// WithErrorRegion attaches the host's error text region.
func WithErrorRegion(region ErrorRegion) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ErrorRegion = region
	}
}
