package phone

import "fmt"

// Messages holds the user-facing texts derived from validation results.
type Messages struct {
	Empty        string
	Invalid      string
	InvalidTerse string
	// UnknownCountry replaces the country name when it is not known.
	UnknownCountry string
}

// DefaultMessages are the texts shipped with the forms.
var DefaultMessages = Messages{
	Empty:          "Por favor, introduce tu número de teléfono",
	Invalid:        "Formato inválido para %s. Ejemplo: %s",
	InvalidTerse:   "Formato inválido",
	UnknownCountry: "este país",
}

// Message derives the text for result. verbose selects the full message used
// on blur and submit; the terse form is used while typing, where an empty
// field produces no message at all.
func (m Messages) Message(result Result, countryName string, verbose bool) string {
	switch result.Kind {
	case KindEmpty:
		if !verbose {
			return ""
		}
		return m.Empty
	case KindInvalid:
		if !verbose {
			return m.InvalidTerse
		}
		if countryName == "" {
			countryName = m.UnknownCountry
		}
		return fmt.Sprintf(m.Invalid, countryName, result.Example)
	default:
		return ""
	}
}

// Message derives a text with DefaultMessages.
func Message(result Result, countryName string, verbose bool) string {
	return DefaultMessages.Message(result, countryName, verbose)
}
