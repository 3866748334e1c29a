package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-phoneform/components/countries"
	"github.com/goliatone/go-phoneform/pkg/controller"
	"github.com/goliatone/go-phoneform/pkg/formspec"
	"github.com/goliatone/go-phoneform/pkg/phone"
)

// Labels returns the field labels of form keyed by name, for Feedback.
func Labels(form formspec.Form) map[string]string {
	out := make(map[string]string, len(form.Fields))
	for _, field := range form.Fields {
		out[field.Name] = labelOf(field)
	}
	return out
}

// Fill asks for every field of the controller's form in order. Values already
// present (a restored draft) are offered as defaults.
func Fill(ctx context.Context, driver Driver, ctrl *controller.Controller) error {
	return fillFields(ctx, driver, ctrl, ctrl.Form().Fields)
}

// Run fills the form and submits it. Fields rejected by validation are asked
// again, and a failed delivery is retried when the user confirms.
func Run(ctx context.Context, driver Driver, ctrl *controller.Controller) (controller.Outcome, error) {
	if err := Fill(ctx, driver, ctrl); err != nil {
		return controller.Outcome{}, err
	}
	for {
		outcome, err := ctrl.Submit(ctx)
		if err != nil {
			return outcome, err
		}

		switch outcome.Kind {
		case controller.OutcomeSuccess:
			return outcome, nil
		case controller.OutcomeValidationFailed:
			var failed []formspec.Field
			for _, fe := range outcome.FieldErrors {
				if field, ok := ctrl.Form().Field(fe.Field); ok {
					failed = append(failed, field)
				}
			}
			if err := fillFields(ctx, driver, ctrl, failed); err != nil {
				return outcome, err
			}
		case controller.OutcomeTransportFailed:
			retry, err := driver.Confirm(ctx, ConfirmConfig{Message: "¿Reintentar el envío?", Default: true})
			if err != nil {
				return outcome, err
			}
			if !retry {
				return outcome, ErrGaveUp
			}
		}
	}
}

func fillFields(ctx context.Context, driver Driver, ctrl *controller.Controller, fields []formspec.Field) error {
	values := ctrl.Values()
	for _, field := range fields {
		var err error
		switch field.Kind {
		case formspec.KindPhone:
			err = askPhone(ctx, driver, ctrl, field)
		case formspec.KindChoice:
			err = askChoice(ctx, driver, ctrl, field, values[field.Name])
		case formspec.KindTextarea:
			err = askTextArea(ctx, driver, ctrl, field, values[field.Name])
		default:
			err = askText(ctx, driver, ctrl, field, values[field.Name])
		}
		if err != nil {
			return fmt.Errorf("prompt: %s: %w", field.Name, err)
		}
	}
	return nil
}

func askText(ctx context.Context, driver Driver, ctrl *controller.Controller, field formspec.Field, current string) error {
	answer, err := driver.Input(ctx, InputConfig{
		Message:   labelOf(field),
		Default:   current,
		Validator: textValidator(field),
	})
	if err != nil {
		return err
	}
	return ctrl.Set(ctx, field.Name, answer)
}

func askTextArea(ctx context.Context, driver Driver, ctrl *controller.Controller, field formspec.Field, current string) error {
	answer, err := driver.TextArea(ctx, TextAreaConfig{
		Message: labelOf(field),
		Default: current,
	})
	if err != nil {
		return err
	}
	return ctrl.Set(ctx, field.Name, answer)
}

func askChoice(ctx context.Context, driver Driver, ctrl *controller.Controller, field formspec.Field, current string) error {
	options := make([]string, len(field.Choices))
	defaultIndex := 0
	for i, choice := range field.Choices {
		options[i] = choice.Label
		if choice.Label == "" {
			options[i] = choice.Value
		}
		if choice.Value == current {
			defaultIndex = i
		}
	}
	idx, err := driver.Select(ctx, SelectConfig{
		Message:      labelOf(field),
		Options:      options,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(field.Choices) {
		return fmt.Errorf("choice index %d out of range", idx)
	}
	return ctrl.Set(ctx, field.Name, field.Choices[idx].Value)
}

func askPhone(ctx context.Context, driver Driver, ctrl *controller.Controller, field formspec.Field) error {
	phoneField := ctrl.Phone()
	if phoneField == nil {
		return errors.New("form has no phone widget")
	}

	list := countries.List()
	options := make([]string, len(list))
	defaultIndex := 0
	for i, country := range list {
		options[i] = countryLabel(country)
		if country.Code == phoneField.Country().Code {
			defaultIndex = i
		}
	}
	idx, err := driver.Select(ctx, SelectConfig{
		Message:      "País",
		Options:      options,
		DefaultIndex: defaultIndex,
		PageSize:     10,
	})
	if err != nil {
		return err
	}
	if idx >= 0 && idx < len(list) {
		ctrl.SelectCountry(ctx, list[idx].Code)
	}

	country := phoneField.Country()
	messages := phoneField.Options().Messages
	answer, err := driver.Input(ctx, InputConfig{
		Message: fmt.Sprintf("%s (%s)", labelOf(field), country.Prefix),
		Default: phoneField.Raw(),
		Help:    "Ejemplo: " + phone.ExampleFor(country.Code),
		Validator: func(raw string) error {
			result := phone.Validate(raw, country.Code)
			if result.Kind == phone.KindEmpty && !field.Required {
				return nil
			}
			if result.Valid() {
				return nil
			}
			return errors.New(messages.Message(result, country.Name, true))
		},
	})
	if err != nil {
		return err
	}
	ctrl.SetPhone(ctx, answer)
	return nil
}

func textValidator(field formspec.Field) func(string) error {
	return func(raw string) error {
		value := strings.TrimSpace(raw)
		if value == "" {
			if field.Required {
				return errors.New(field.RequiredMessage())
			}
			return nil
		}
		if field.Kind == formspec.KindEmail && !formspec.ValidEmail(value) {
			return errors.New(field.FormatMessage())
		}
		if field.MinLength > 0 && utf8.RuneCountInString(value) < field.MinLength {
			return errors.New(field.RequiredMessage())
		}
		return nil
	}
}

func labelOf(field formspec.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}

func countryLabel(country countries.Country) string {
	return fmt.Sprintf("%s %s (%s)", country.Flag, country.Name, country.Prefix)
}
