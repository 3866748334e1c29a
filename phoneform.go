// Package phoneform assembles a phone-enabled form (definition, phone widget,
// draft storage, submission backend and controller) from configuration.
package phoneform

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/goliatone/go-phoneform/internal/config"
	"github.com/goliatone/go-phoneform/pkg/controller"
	"github.com/goliatone/go-phoneform/pkg/drafts"
	redisdrafts "github.com/goliatone/go-phoneform/pkg/drafts/redis"
	"github.com/goliatone/go-phoneform/pkg/formspec"
	"github.com/goliatone/go-phoneform/pkg/phonefield"
	"github.com/goliatone/go-phoneform/pkg/submission"
)

// Outcome aliases controller.Outcome for callers of the top-level package.
type Outcome = controller.Outcome

// Feedback aliases controller.Feedback.
type Feedback = controller.Feedback

// Engine is one mounted form with its collaborators wired from configuration.
type Engine struct {
	Form       formspec.Form
	Phone      *phonefield.Field
	Drafts     *drafts.Store
	Submitter  submission.Submitter
	Controller *controller.Controller

	closers []io.Closer
}

type buildOptions struct {
	logger     *slog.Logger
	feedback   controller.Feedback
	region     phonefield.ErrorRegion
	httpClient *http.Client
	draftKey   string
	submitter  submission.Submitter
}

// Option adjusts how New assembles an Engine.
type Option func(*buildOptions)

func WithLogger(logger *slog.Logger) Option {
	return func(o *buildOptions) { o.logger = logger }
}

func WithFeedback(feedback controller.Feedback) Option {
	return func(o *buildOptions) { o.feedback = feedback }
}

// WithErrorRegion attaches the host surface for phone error text.
func WithErrorRegion(region phonefield.ErrorRegion) Option {
	return func(o *buildOptions) { o.region = region }
}

func WithHTTPClient(client *http.Client) Option {
	return func(o *buildOptions) { o.httpClient = client }
}

// WithDraftKey scopes the draft to a specific form instance.
func WithDraftKey(key string) Option {
	return func(o *buildOptions) { o.draftKey = key }
}

// WithSubmitter bypasses the configured submission backend.
func WithSubmitter(submitter submission.Submitter) Option {
	return func(o *buildOptions) { o.submitter = submitter }
}

// New builds an Engine from cfg. Saved drafts are restored by
// Controller.Mount, which New does not call.
func New(cfg *config.Config, options ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, errors.New("phoneform: config is required")
	}
	opts := buildOptions{logger: slog.Default()}
	for _, option := range options {
		if option != nil {
			option(&opts)
		}
	}
	if opts.logger == nil {
		opts.logger = slog.Default()
	}

	form, err := LoadForm(cfg.Form)
	if err != nil {
		return nil, err
	}

	submitter := opts.submitter
	if submitter == nil {
		submitter, err = NewSubmitter(cfg.Submission, opts.logger, opts.httpClient)
		if err != nil {
			return nil, err
		}
	}

	storage, closer, err := NewDraftStorage(cfg.Drafts)
	if err != nil {
		return nil, err
	}
	engine := &Engine{Form: form, Submitter: submitter}
	if closer != nil {
		engine.closers = append(engine.closers, closer)
	}
	engine.Drafts = drafts.NewStore(storage,
		drafts.WithKeyPrefix(cfg.Drafts.KeyPrefix),
		drafts.WithLogger(opts.logger),
	)

	if phoneSpec, ok := form.PhoneField(); ok {
		fieldOpts := []phonefield.OptionFn{
			phonefield.WithDefaultCountry(cfg.Form.DefaultCountry),
			phonefield.WithRequired(phoneSpec.Required),
			phonefield.WithPlaceholder(cfg.Form.Placeholder),
		}
		if opts.region != nil {
			fieldOpts = append(fieldOpts, phonefield.WithErrorRegion(opts.region))
		}
		engine.Phone = phonefield.New(fieldOpts...)
	}

	ctrl, err := controller.New(form, submitter,
		controller.WithLogger(opts.logger),
		controller.WithFeedback(opts.feedback),
		controller.WithDrafts(engine.Drafts),
		controller.WithDraftKey(opts.draftKey),
		controller.WithPhoneField(engine.Phone),
	)
	if err != nil {
		_ = engine.Close()
		return nil, err
	}
	engine.Controller = ctrl
	return engine, nil
}

// Close releases backend connections.
func (e *Engine) Close() error {
	var errs []error
	for _, closer := range e.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	e.closers = nil
	return errors.Join(errs...)
}

// LoadForm reads the definition at cfg.Path, or the embedded form cfg.Kind.
func LoadForm(cfg config.FormConfig) (formspec.Form, error) {
	if path := strings.TrimSpace(cfg.Path); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return formspec.Form{}, fmt.Errorf("phoneform: read form %s: %w", path, err)
		}
		return formspec.Parse(data, path)
	}
	form, ok := formspec.Embedded().Form(cfg.Kind)
	if !ok {
		return formspec.Form{}, fmt.Errorf("phoneform: unknown form kind %q", cfg.Kind)
	}
	return form, nil
}

// NewSubmitter builds the configured submission collaborator.
func NewSubmitter(cfg config.SubmissionConfig, logger *slog.Logger, client *http.Client) (submission.Submitter, error) {
	if cfg.URL == "" {
		return nil, errors.New("phoneform: submission.url is required")
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	opts := []submission.Option{
		submission.WithHTTPClient(client),
		submission.WithLogger(logger),
	}
	switch cfg.Backend {
	case config.BackendScript:
		return submission.NewScript(cfg.URL, opts...)
	case config.BackendWebhook, "":
		return submission.NewWebhook(cfg.URL, opts...)
	default:
		return nil, fmt.Errorf("phoneform: unknown submission backend %q", cfg.Backend)
	}
}

// NewDraftStorage opens the configured draft backend. The returned closer is
// nil for backends without connections.
func NewDraftStorage(cfg config.DraftsConfig) (drafts.Storage, io.Closer, error) {
	switch cfg.Backend {
	case config.DraftsMemory, "":
		return drafts.NewMemoryStorage(), nil, nil
	case config.DraftsFile:
		storage, err := drafts.NewFileStorage(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		return storage, nil, nil
	case config.DraftsRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		storage, err := redisdrafts.New(redisdrafts.Config{Client: client, TTL: cfg.Redis.TTL})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return storage, client, nil
	default:
		return nil, nil, fmt.Errorf("phoneform: unknown drafts backend %q", cfg.Backend)
	}
}
