package countries

import (
	"sort"
	"strings"
)

// Option is the dropdown representation of a country. Value is the ISO2 code;
// Prefix travels with it so hosts can show the dial prefix for the selection.
type Option struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Prefix string `json:"prefix"`
	Flag   string `json:"flag,omitempty"`
	// Selected marks the configured default country.
	Selected bool `json:"selected,omitempty"`
}

// ToOption converts a country into its dropdown option.
func ToOption(country Country) Option {
	return Option{
		Value:  country.Code,
		Label:  country.Name,
		Prefix: country.Prefix,
		Flag:   country.Flag,
	}
}

// Search filters list by a case-insensitive match against code, name and dial
// prefix. Results that start with the query come first; otherwise directory
// order is preserved.
func Search(list []Country, query string, limit int, opts Options) []Country {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchNone {
			return nil
		}
		if len(list) <= limit {
			return append([]Country{}, list...)
		}
		return append([]Country{}, list[:limit]...)
	}

	q := strings.ToLower(query)
	matches := make([]matchedCountry, 0, 8)
	for idx, country := range list {
		fields := []string{
			strings.ToLower(country.Code),
			strings.ToLower(country.Name),
			country.Prefix,
		}
		matched, prefix := false, false
		for _, field := range fields {
			if strings.Contains(field, q) {
				matched = true
				if strings.HasPrefix(field, q) {
					prefix = true
				}
			}
		}
		if !matched {
			continue
		}
		matches = append(matches, matchedCountry{country: country, order: idx, isPrefix: prefix})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].order < matches[j].order
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]Country, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.country)
	}
	return out
}

// SearchOptions is Search converted to dropdown options, with opts.Selected
// flagged.
func SearchOptions(list []Country, query string, limit int, opts Options) []Option {
	results := Search(list, query, limit, opts)
	if len(results) == 0 {
		return nil
	}

	out := make([]Option, 0, len(results))
	for _, country := range results {
		option := ToOption(country)
		option.Selected = country.Code == opts.Selected
		out = append(out, option)
	}
	return out
}

type matchedCountry struct {
	country  Country
	order    int
	isPrefix bool
}
