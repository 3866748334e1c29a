package phone

import "strings"

// DefaultExample is shown for countries without a curated example.
const DefaultExample = "123 456 789"

// ExampleFor returns a human-readable sample number for the country. Examples
// are independent from rules: a country may have a rule but no example.
func ExampleFor(code string) string {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "ES":
		return "612 345 678"
	case "US":
		return "201 555 0123"
	case "GB":
		return "7911 123456"
	case "FR":
		return "612 345 678"
	case "DE":
		return "171 1234567"
	case "MX":
		return "55 1234 5678"
	case "AR":
		return "11 1234 5678"
	default:
		return DefaultExample
	}
}
