package formspec

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether value has the user@domain.tld shape required of
// email fields. Surrounding spaces are ignored.
func ValidEmail(value string) bool {
	return emailPattern.MatchString(strings.TrimSpace(value))
}
