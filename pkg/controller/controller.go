package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-phoneform/pkg/drafts"
	"github.com/goliatone/go-phoneform/pkg/formspec"
	"github.com/goliatone/go-phoneform/pkg/phonefield"
	"github.com/goliatone/go-phoneform/pkg/submission"
)

var (
	// ErrBusy is returned by Submit while a previous submission is in flight.
	ErrBusy = errors.New("controller: submission in progress")
	// ErrNoSubmitter is returned by New without a submission collaborator.
	ErrNoSubmitter = errors.New("controller: submitter is required")
	// ErrUnknownField is returned by Set for names the form does not define.
	ErrUnknownField = errors.New("controller: unknown field")
)

// Controller owns one mounted form.
type Controller struct {
	form      formspec.Form
	submitter submission.Submitter
	opts      Options
	draftKey  string
	phoneName string

	mu     sync.Mutex
	state  State
	values map[string]string
	phone  *phonefield.Field
}

// New builds a controller for form. The form is validated first.
func New(form formspec.Form, submitter submission.Submitter, fns ...OptionFn) (*Controller, error) {
	if err := formspec.Validate(form); err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}
	if submitter == nil {
		return nil, ErrNoSubmitter
	}

	opts := NewOptions(fns...)
	c := &Controller{
		form:      form,
		submitter: submitter,
		opts:      opts,
		draftKey:  strings.TrimSpace(opts.DraftKey),
		values:    make(map[string]string),
		state:     StateIdle,
	}
	if c.draftKey == "" {
		c.draftKey = form.Key
	}
	if field, ok := form.PhoneField(); ok {
		c.phoneName = field.Name
		c.phone = opts.Phone
		if c.phone == nil {
			c.phone = phonefield.New(phonefield.WithRequired(field.Required))
		}
	}
	return c, nil
}

// Form returns the definition the controller was built with.
func (c *Controller) Form() formspec.Form {
	return c.form
}

// Phone returns the phone widget, nil when the form has no phone field.
func (c *Controller) Phone() *phonefield.Field {
	return c.phone
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Values returns the tracked values as they would be saved in the draft.
func (c *Controller) Values() drafts.Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Mount repopulates the form from its saved draft.
func (c *Controller) Mount(ctx context.Context) {
	saved := c.opts.Drafts.Load(ctx, c.draftKey)

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, field := range c.form.Fields {
		if field.Kind == formspec.KindPhone {
			raw, hasRaw := saved[field.Name]
			code, hasCode := saved[field.Name+CountrySuffix]
			if hasRaw || hasCode {
				c.phone.Restore(code, raw)
			}
			continue
		}
		if value, ok := saved[field.Name]; ok {
			c.values[field.Name] = value
		}
	}
	if len(saved) > 0 {
		c.opts.Logger.Debug("draft restored", "form", c.form.Key, "fields", len(saved))
	}
}

// Set records the value of a non-phone field and saves the draft. No draft is
// saved while a successful submission waits for its reset.
func (c *Controller) Set(ctx context.Context, name, value string) error {
	field, ok := c.form.Field(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if field.Kind == formspec.KindPhone {
		c.SetPhone(ctx, value)
		return nil
	}

	c.mu.Lock()
	c.values[name] = value
	snapshot := c.snapshotLocked()
	save := c.state != StateSucceeded
	c.mu.Unlock()

	if save {
		c.opts.Drafts.Save(ctx, c.draftKey, snapshot)
	}
	return nil
}

// SetPhone forwards typed input to the phone field and saves the draft.
func (c *Controller) SetPhone(ctx context.Context, raw string) {
	if c.phone == nil {
		return
	}
	c.mu.Lock()
	update := c.phone.SetInput(raw)
	snapshot := c.snapshotLocked()
	save := c.state != StateSucceeded
	c.mu.Unlock()

	update.Apply()
	if save {
		c.opts.Drafts.Save(ctx, c.draftKey, snapshot)
	}
}

// SelectCountry changes the phone country and saves the draft. Unknown codes
// are ignored.
func (c *Controller) SelectCountry(ctx context.Context, code string) bool {
	if c.phone == nil {
		return false
	}
	c.mu.Lock()
	update, ok := c.phone.ChangeCountry(code)
	snapshot := c.snapshotLocked()
	save := ok && c.state != StateSucceeded
	c.mu.Unlock()

	if ok {
		update.Apply()
	}
	if save {
		c.opts.Drafts.Save(ctx, c.draftKey, snapshot)
	}
	return ok
}

// Submit validates every field and, when all pass, hands the payload to the
// submitter exactly once. It blocks through the collaborator call and, on
// success, through ResetDelay before the form is cleared.
func (c *Controller) Submit(ctx context.Context) (Outcome, error) {
	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return Outcome{}, ErrBusy
	}
	c.state = StateValidating
	c.mu.Unlock()
	c.notifyState(StateIdle, StateValidating)
	c.opts.Feedback.ClearErrors()

	c.mu.Lock()
	fieldErrors, region := c.validateLocked()
	var payload submission.Payload
	if len(fieldErrors) == 0 {
		payload = c.payloadLocked()
		c.state = StateSubmitting
	} else {
		c.state = StateFailed
	}
	c.mu.Unlock()
	region.Apply()

	if len(fieldErrors) > 0 {
		c.notifyState(StateValidating, StateFailed)
		c.opts.Feedback.FieldErrors(fieldErrors)
		c.opts.Logger.Debug("form validation failed", "form", c.form.Key, "errors", len(fieldErrors))
		c.toIdle(StateFailed)
		return Outcome{Kind: OutcomeValidationFailed, FieldErrors: fieldErrors}, nil
	}
	c.notifyState(StateValidating, StateSubmitting)

	if err := c.submitter.Submit(ctx, payload); err != nil {
		c.setState(StateFailed)
		c.notifyState(StateSubmitting, StateFailed)
		message := c.form.FailureMessage()
		c.opts.Feedback.GlobalError(message)
		c.opts.Logger.Warn("form submission failed", "form", c.form.Key, "error", err)
		c.toIdle(StateFailed)
		return Outcome{Kind: OutcomeTransportFailed, Message: message, Err: err}, nil
	}

	c.setState(StateSucceeded)
	c.notifyState(StateSubmitting, StateSucceeded)
	message := c.form.SuccessMessage()
	c.opts.Feedback.Success(message)
	c.opts.Logger.Info("form submitted", "form", c.form.Key)

	if err := c.opts.Sleep(ctx, ResetDelay); err != nil {
		c.opts.Logger.Debug("reset delay interrupted", "form", c.form.Key, "error", err)
	}
	c.reset(ctx)
	c.toIdle(StateSucceeded)
	return Outcome{Kind: OutcomeSuccess, Message: message}, nil
}

// reset clears values and the draft together, so edits made during the
// reset delay do not outlive the submission.
func (c *Controller) reset(ctx context.Context) {
	c.mu.Lock()
	c.values = make(map[string]string)
	var region phonefield.RegionUpdate
	if c.phone != nil {
		region = c.phone.Clear()
	}
	c.opts.Drafts.Clear(ctx, c.draftKey)
	c.mu.Unlock()

	region.Apply()
	c.opts.Feedback.ClearErrors()
}

func (c *Controller) setState(state State) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
}

func (c *Controller) toIdle(from State) {
	c.setState(StateIdle)
	c.notifyState(from, StateIdle)
}

func (c *Controller) notifyState(from, to State) {
	c.opts.Feedback.StateChanged(from, to)
}

func (c *Controller) snapshotLocked() drafts.Values {
	out := make(drafts.Values, len(c.values)+2)
	for key, value := range c.values {
		out[key] = value
	}
	if c.phone != nil {
		out[c.phoneName] = c.phone.Raw()
		out[c.phoneName+CountrySuffix] = c.phone.Country().Code
	}
	return out
}
