package controller

import (
	"context"
	"log/slog"
	"time"

	"github.com/goliatone/go-phoneform/pkg/drafts"
	"github.com/goliatone/go-phoneform/pkg/phonefield"
)

// ResetDelay is how long the success message stays up before the form clears.
const ResetDelay = 1500 * time.Millisecond

// CountrySuffix is appended to the phone field name to store the selected
// country in drafts.
const CountrySuffix = "_country"

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

type Options struct {
	Logger   *slog.Logger
	Feedback Feedback
	Drafts   *drafts.Store
	// DraftKey scopes the draft. Defaults to the form key.
	DraftKey string
	Phone    *phonefield.Field
	Sleep    SleepFunc
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		Logger:   slog.Default(),
		Feedback: NopFeedback{},
		Sleep:    sleepContext,
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
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Feedback == nil {
		opts.Feedback = NopFeedback{}
	}
	if opts.Sleep == nil {
		opts.Sleep = sleepContext
	}
	if opts.Drafts == nil {
		opts.Drafts = drafts.NewStore(nil, drafts.WithLogger(opts.Logger))
	}
	return opts
}

func WithLogger(logger *slog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

func WithFeedback(feedback Feedback) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Feedback = feedback
	}
}

func WithDrafts(store *drafts.Store) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Drafts = store
	}
}

func WithDraftKey(key string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DraftKey = key
	}
}

// WithPhoneField supplies the phone widget. Forms with a phone field get a
// default one otherwise.
func WithPhoneField(field *phonefield.Field) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Phone = field
	}
}

// WithSleep replaces the reset delay wait. Tests use it to skip the delay.
func WithSleep(fn SleepFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Sleep = fn
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
