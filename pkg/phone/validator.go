package phone

import "strings"

// Kind classifies a validation result.
type Kind int

const (
	// KindEmpty means no digits were entered.
	KindEmpty Kind = iota
	// KindInvalid means digits are present but break the country rule.
	KindInvalid
	// KindValid means the digits satisfy the country rule.
	KindValid
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindInvalid:
		return "invalid"
	case KindValid:
		return "valid"
	default:
		return "unknown"
	}
}

// Result is the outcome of Validate.
type Result struct {
	Kind   Kind
	Code   string
	Digits string
	// Example is set for KindInvalid results.
	Example string
}

// Valid reports whether the result is KindValid.
func (r Result) Valid() bool {
	return r.Kind == KindValid
}

// Normalize strips every character that is not an ASCII digit.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Validate checks raw input against the rule for code.
func Validate(raw, code string) Result {
	digits := Normalize(raw)
	result := Result{
		Code:   strings.ToUpper(strings.TrimSpace(code)),
		Digits: digits,
	}
	if digits == "" {
		result.Kind = KindEmpty
		return result
	}
	if !PatternFor(code).Match(digits) {
		result.Kind = KindInvalid
		result.Example = ExampleFor(code)
		return result
	}
	result.Kind = KindValid
	return result
}
