package countries

import "strings"

// Country describes a selectable country in a phone input.
type Country struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Prefix string `json:"prefix"`
	Flag   string `json:"flag"`
}

// directory is kept in presentation order. Codes must stay unique.
var directory = []Country{
	{Code: "ES", Name: "España", Prefix: "+34", Flag: "🇪🇸"},
	{Code: "US", Name: "Estados Unidos", Prefix: "+1", Flag: "🇺🇸"},
	{Code: "CA", Name: "Canadá", Prefix: "+1", Flag: "🇨🇦"},
	{Code: "GB", Name: "Reino Unido", Prefix: "+44", Flag: "🇬🇧"},
	{Code: "FR", Name: "Francia", Prefix: "+33", Flag: "🇫🇷"},
	{Code: "DE", Name: "Alemania", Prefix: "+49", Flag: "🇩🇪"},
	{Code: "IT", Name: "Italia", Prefix: "+39", Flag: "🇮🇹"},
	{Code: "PT", Name: "Portugal", Prefix: "+351", Flag: "🇵🇹"},
	{Code: "MX", Name: "México", Prefix: "+52", Flag: "🇲🇽"},
	{Code: "AR", Name: "Argentina", Prefix: "+54", Flag: "🇦🇷"},
	{Code: "CL", Name: "Chile", Prefix: "+56", Flag: "🇨🇱"},
	{Code: "CO", Name: "Colombia", Prefix: "+57", Flag: "🇨🇴"},
	{Code: "BR", Name: "Brasil", Prefix: "+55", Flag: "🇧🇷"},
	{Code: "PE", Name: "Perú", Prefix: "+51", Flag: "🇵🇪"},
	{Code: "AD", Name: "Andorra", Prefix: "+376", Flag: "🇦🇩"},
	{Code: "CH", Name: "Suiza", Prefix: "+41", Flag: "🇨🇭"},
	{Code: "NL", Name: "Países Bajos", Prefix: "+31", Flag: "🇳🇱"},
	{Code: "BE", Name: "Bélgica", Prefix: "+32", Flag: "🇧🇪"},
	{Code: "SE", Name: "Suecia", Prefix: "+46", Flag: "🇸🇪"},
	{Code: "NO", Name: "Noruega", Prefix: "+47", Flag: "🇳🇴"},
	{Code: "DK", Name: "Dinamarca", Prefix: "+45", Flag: "🇩🇰"},
	{Code: "FI", Name: "Finlandia", Prefix: "+358", Flag: "🇫🇮"},
	{Code: "GR", Name: "Grecia", Prefix: "+30", Flag: "🇬🇷"},
	{Code: "RU", Name: "Rusia", Prefix: "+7", Flag: "🇷🇺"},
	{Code: "CN", Name: "China", Prefix: "+86", Flag: "🇨🇳"},
	{Code: "JP", Name: "Japón", Prefix: "+81", Flag: "🇯🇵"},
	{Code: "KR", Name: "Corea del Sur", Prefix: "+82", Flag: "🇰🇷"},
	{Code: "IN", Name: "India", Prefix: "+91", Flag: "🇮🇳"},
	{Code: "AU", Name: "Australia", Prefix: "+61", Flag: "🇦🇺"},
	{Code: "NZ", Name: "Nueva Zelanda", Prefix: "+64", Flag: "🇳🇿"},
}

var byCode = indexByCode(directory)

func indexByCode(list []Country) map[string]int {
	index := make(map[string]int, len(list))
	for i, country := range list {
		index[country.Code] = i
	}
	return index
}

// List returns the full directory in presentation order.
func List() []Country {
	return append([]Country{}, directory...)
}

// Find resolves an ISO2 code. Matching ignores case and surrounding whitespace.
func Find(code string) (Country, bool) {
	idx, ok := byCode[normalizeCode(code)]
	if !ok {
		return Country{}, false
	}
	return directory[idx], true
}

// First returns the first entry of the directory, used when a configured
// default country is not present.
func First() Country {
	return directory[0]
}

// Len reports the number of countries in the directory.
func Len() int {
	return len(directory)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
