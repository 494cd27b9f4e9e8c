// Package locale owns everything the site renders in one of its two
// languages: option-code label tables, field placeholders and the
// service-level messages returned to the frontend. Each concept keeps
// both translations in a single keyed entry so the languages cannot
// drift apart independently.
package locale

// Locale is one of the two supported display languages.
type Locale string

const (
	RU Locale = "ru"
	PL Locale = "pl"
)

// Parse maps a request lang value to a supported locale, defaulting to
// Russian for anything unrecognized.
func Parse(s string) Locale {
	if s == string(PL) {
		return PL
	}
	return RU
}
