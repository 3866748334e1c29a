package phonefield

import (
	"github.com/goliatone/go-phoneform/components/countries"
	"github.com/goliatone/go-phoneform/pkg/phone"
)

// State is a snapshot of the widget.
type State struct {
	Country   countries.Country
	Raw       string
	Validated bool
	Message   string
}

// Field owns the state of one phone input: the selected country and the raw
// text as typed. A Field belongs to a single form and is not safe for
// concurrent use.
type Field struct {
	opts     Options
	fallback countries.Country
	state    State
}

// New mounts a field with the configured default country, or the first
// directory entry when the default is not in the directory.
func New(fns ...OptionFn) *Field {
	opts := NewOptions(fns...)
	fallback, ok := countries.Find(opts.DefaultCountry)
	if !ok {
		fallback = countries.First()
	}
	f := &Field{opts: opts, fallback: fallback}
	f.state = State{Country: fallback}
	return f
}

// Options returns the field configuration.
func (f *Field) Options() Options {
	return f.opts
}

// State returns a snapshot of the current state.
func (f *Field) State() State {
	return f.state
}

// Country returns the selected country.
func (f *Field) Country() countries.Country {
	return f.state.Country
}

// Raw returns the input exactly as typed.
func (f *Field) Raw() string {
	return f.state.Raw
}

// SelectCountry changes the selected country. Unknown codes are ignored since
// selections come from the constrained directory dropdown. The typed input is
// kept and re-validated without a verbose message.
func (f *Field) SelectCountry(code string) bool {
	update, ok := f.ChangeCountry(code)
	if ok {
		update.Apply()
	}
	return ok
}

// ChangeCountry is SelectCountry without touching the error region. The
// returned update must be applied by the caller.
func (f *Field) ChangeCountry(code string) (RegionUpdate, bool) {
	country, ok := countries.Find(code)
	if !ok {
		return RegionUpdate{}, false
	}
	f.state.Country = country
	_, update := f.Check(false)
	return update, true
}

// UpdateInput stores raw as typed and runs a terse validation. Input is never
// rejected.
func (f *Field) UpdateInput(raw string) {
	f.SetInput(raw).Apply()
}

// SetInput is UpdateInput without touching the error region.
func (f *Field) SetInput(raw string) RegionUpdate {
	f.state.Raw = raw
	_, update := f.Check(false)
	return update
}

// Validate checks the current input against the selected country. showMessage
// selects the full message (blur, submit) over the terse one (keystrokes).
func (f *Field) Validate(showMessage bool) bool {
	valid, update := f.Check(showMessage)
	update.Apply()
	return valid
}

// Check records the validation result in the field state and returns the
// region update it implies, unapplied.
func (f *Field) Check(showMessage bool) (bool, RegionUpdate) {
	result := phone.Validate(f.state.Raw, f.state.Country.Code)
	message := f.opts.Messages.Message(result, f.state.Country.Name, showMessage)

	f.state.Validated = result.Valid()
	f.state.Message = message
	return f.state.Validated, f.regionUpdate()
}

func (f *Field) regionUpdate() RegionUpdate {
	return RegionUpdate{
		region:  f.opts.ErrorRegion,
		Text:    f.state.Message,
		Visible: f.state.Message != "",
	}
}

// ComposeFullNumber returns the dial prefix followed by the normalised digits.
// ok is false when no digits were entered.
func (f *Field) ComposeFullNumber() (string, bool) {
	digits := phone.Normalize(f.state.Raw)
	if digits == "" {
		return "", false
	}
	return f.state.Country.Prefix + digits, true
}

// Restore sets country and input together, used when repopulating from a
// saved draft. Unknown codes keep the current country.
func (f *Field) Restore(code, raw string) {
	if country, ok := countries.Find(code); ok {
		f.state.Country = country
	}
	f.state.Raw = raw
	f.state.Validated = false
	f.state.Message = ""
}

// Reset returns the field to its mounted state.
func (f *Field) Reset() {
	f.Clear().Apply()
}

// Clear is Reset without touching the error region.
func (f *Field) Clear() RegionUpdate {
	f.state = State{Country: f.fallback}
	return f.regionUpdate()
}
