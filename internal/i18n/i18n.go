// Package i18n holds the two-locale message catalog for every user-facing
// string: screen titles, notification bodies, and success/error messages.
// Arabic is the canonical locale; English is the secondary one.
package i18n

import "strings"

// Locale identifies one of the two supported display languages.
type Locale string

const (
	LocaleArabic  Locale = "ar"
	LocaleEnglish Locale = "en"

	// DefaultLocale is used when a request carries no locale hint.
	DefaultLocale = LocaleArabic
)

// IsValid checks if the Locale is a supported value.
func (l Locale) IsValid() bool {
	return l == LocaleArabic || l == LocaleEnglish
}

// RTL reports whether the locale is rendered right-to-left.
func (l Locale) RTL() bool {
	return l == LocaleArabic
}

// Parse normalizes a locale hint ("ar", "en", "en-US", "ar_YE") to a
// supported Locale, falling back to the default.
func Parse(s string) Locale {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_,;"); i >= 0 {
		s = s[:i]
	}
	switch Locale(s) {
	case LocaleArabic, LocaleEnglish:
		return Locale(s)
	default:
		return DefaultLocale
	}
}

// Text is a single user-facing string in both locales.
type Text struct {
	Ar string
	En string
}

// In returns the string for the given locale.
func (t Text) In(loc Locale) string {
	if loc == LocaleEnglish {
		return t.En
	}

	return t.Ar
}
