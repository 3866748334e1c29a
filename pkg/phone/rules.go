package phone

import (
	"regexp"
	"strings"
)

// Rule is the digit-count and leading-digit constraint for one country.
type Rule struct {
	// Code is the ISO2 code the rule was resolved for. DefaultRule uses
	// DefaultCode.
	Code      string
	Pattern   *regexp.Regexp
	MinDigits int
	MaxDigits int
	// Leading lists the allowed first digits. Empty means any digit.
	Leading string
}

// DefaultCode identifies the fallback rule.
const DefaultCode = "default"

// Match reports whether a digit string satisfies the rule.
func (r Rule) Match(digits string) bool {
	if r.Pattern == nil {
		return false
	}
	return r.Pattern.MatchString(digits)
}

// IsDefault reports whether the rule is the fallback rule.
func (r Rule) IsDefault() bool {
	return r.Code == DefaultCode
}

var (
	ruleES      = newRule("ES", `^[6-9]\d{8}$`, 9, 9, "6789")
	ruleTen     = newRule("", `^\d{10}$`, 10, 10, "")
	ruleTenElev = newRule("", `^\d{10,11}$`, 10, 11, "")
	ruleFR      = newRule("FR", `^[1-9]\d{8}$`, 9, 9, "123456789")
	ruleIT      = newRule("IT", `^\d{9,10}$`, 9, 10, "")
	ruleTwoNine = newRule("", `^[2-9]\d{8}$`, 9, 9, "23456789")
	ruleCO      = newRule("CO", `^3\d{9}$`, 10, 10, "3")
	rulePE      = newRule("PE", `^\d{9}$`, 9, 9, "")

	// DefaultRule applies to every country without a specific rule.
	DefaultRule = newRule(DefaultCode, `^\d{6,15}$`, 6, 15, "")
)

func newRule(code, pattern string, minDigits, maxDigits int, leading string) Rule {
	return Rule{
		Code:      code,
		Pattern:   regexp.MustCompile(pattern),
		MinDigits: minDigits,
		MaxDigits: maxDigits,
		Leading:   leading,
	}
}

// PatternFor returns the rule for an ISO2 country code. It never fails:
// unknown or empty codes resolve to DefaultRule.
func PatternFor(code string) Rule {
	code = strings.ToUpper(strings.TrimSpace(code))
	switch code {
	case "ES":
		return ruleES
	case "US", "CA", "MX", "AR":
		return withCode(ruleTen, code)
	case "GB", "DE", "BR":
		return withCode(ruleTenElev, code)
	case "FR":
		return ruleFR
	case "IT":
		return ruleIT
	case "PT", "CL":
		return withCode(ruleTwoNine, code)
	case "CO":
		return ruleCO
	case "PE":
		return rulePE
	default:
		return DefaultRule
	}
}

// HasRule reports whether code has a country-specific rule.
func HasRule(code string) bool {
	return !PatternFor(code).IsDefault()
}

func withCode(rule Rule, code string) Rule {
	rule.Code = code
	return rule
}
