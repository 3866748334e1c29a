package controller

import (
	"strings"

	"github.com/goliatone/go-phoneform/pkg/formspec"
	"github.com/goliatone/go-phoneform/pkg/submission"
)

// Routing metadata keys understood by form-to-mail services.
const (
	SubjectKey = "_subject"
	ReplyToKey = "_replyto"
)

// payloadLocked composes what the submitter receives: the full phone number,
// trimmed values, choice payload labels, empty-value placeholders and routing
// metadata.
func (c *Controller) payloadLocked() submission.Payload {
	payload := make(submission.Payload, len(c.form.Fields)+2)
	for _, field := range c.form.Fields {
		payload[field.Name] = c.fieldValueLocked(field)
	}

	if subject := c.form.ExpandSubject(payload); subject != "" {
		payload[SubjectKey] = subject
	}
	if c.form.ReplyTo != "" {
		if replyTo := payload[c.form.ReplyTo]; replyTo != "" {
			payload[ReplyToKey] = replyTo
		}
	}
	return payload
}

func (c *Controller) fieldValueLocked(field formspec.Field) string {
	var value string
	switch field.Kind {
	case formspec.KindPhone:
		if full, ok := c.phone.ComposeFullNumber(); ok {
			value = full
		}
	case formspec.KindChoice:
		value = strings.TrimSpace(c.values[field.Name])
		if choice, ok := field.Choice(value); ok && choice.Payload != "" {
			value = choice.Payload
		}
	default:
		value = strings.TrimSpace(c.values[field.Name])
	}
	if value == "" {
		return field.EmptyValue
	}
	return value
}
