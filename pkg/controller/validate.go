package controller

import (
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-phoneform/pkg/formspec"
	"github.com/goliatone/go-phoneform/pkg/phone"
	"github.com/goliatone/go-phoneform/pkg/phonefield"
)

// validateLocked checks every field and collects all failures. The phone
// region update is returned unapplied.
func (c *Controller) validateLocked() ([]FieldError, phonefield.RegionUpdate) {
	var (
		errs   []FieldError
		region phonefield.RegionUpdate
	)
	for _, field := range c.form.Fields {
		var (
			message string
			ok      bool
		)
		if field.Kind == formspec.KindPhone {
			message, ok, region = c.checkPhoneLocked(field)
		} else {
			message, ok = c.checkLocked(field)
		}
		if !ok {
			errs = append(errs, FieldError{Field: field.Name, Message: message})
		}
	}
	return errs, region
}

func (c *Controller) checkLocked(field formspec.Field) (string, bool) {
	value := strings.TrimSpace(c.values[field.Name])
	if value == "" {
		if field.Required {
			return field.RequiredMessage(), false
		}
		return "", true
	}

	switch field.Kind {
	case formspec.KindEmail:
		if !formspec.ValidEmail(value) {
			return field.FormatMessage(), false
		}
	case formspec.KindChoice:
		if _, ok := field.Choice(value); !ok {
			return field.RequiredMessage(), false
		}
	}
	if field.MinLength > 0 && utf8.RuneCountInString(value) < field.MinLength {
		return field.RequiredMessage(), false
	}
	return "", true
}

func (c *Controller) checkPhoneLocked(field formspec.Field) (string, bool, phonefield.RegionUpdate) {
	if !field.Required && phone.Normalize(c.phone.Raw()) == "" {
		_, region := c.phone.Check(false)
		return "", true, region
	}
	valid, region := c.phone.Check(true)
	if !valid {
		return c.phone.State().Message, false, region
	}
	return "", true, region
}
