package submission

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// SanitizeText strips every HTML element from value and trims it. Entities the
// policy escapes are decoded again so plain text such as "A & B" survives.
func SanitizeText(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	cleaned := textSanitizer().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// Sanitize returns a copy of payload with every value passed through
// SanitizeText. Empty keys are dropped.
func Sanitize(payload Payload) Payload {
	if payload == nil {
		return nil
	}
	out := make(Payload, len(payload))
	for key, value := range payload {
		name := strings.TrimSpace(key)
		if name == "" {
			continue
		}
		out[name] = SanitizeText(value)
	}
	return out
}
