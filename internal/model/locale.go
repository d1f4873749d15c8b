package model

// Locale identifies one of the storefront's supported languages.
type Locale string

const (
	LocaleCA Locale = "ca"
	LocaleES Locale = "es"
	LocaleEN Locale = "en"
)

// DefaultLocale is the locale used when none is given and the localization
// fallback target for products missing a requested locale.
const DefaultLocale = LocaleCA

// ParseLocale returns the locale matching s, or DefaultLocale when s is empty
// or unknown.
func ParseLocale(s string) Locale {
	switch Locale(s) {
	case LocaleCA, LocaleES, LocaleEN:
		return Locale(s)
	default:
		return DefaultLocale
	}
}
