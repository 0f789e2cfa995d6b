// Package i18n serves the storefront translation bundles. Strings are
// compiled into the binary and looked up by dotted key, falling back to
// the key itself so a missing entry degrades visibly instead of blank.
package i18n

import (
	"golang.org/x/text/language"

	"github.com/teruzahostel/minimarket-backend/pkg/enums"
)

var matcher = language.NewMatcher([]language.Tag{
	language.Portuguese, // first entry is the fallback
	language.English,
	language.Spanish,
})

// Lookup resolves a dotted translation key for the given language.
// Unknown keys come back unchanged.
func Lookup(lang enums.Language, key string) string {
	table, ok := translations[lang]
	if !ok {
		table = translations[enums.LanguagePT]
	}
	if value, ok := table[key]; ok {
		return value
	}
	return key
}

// Bundle returns the full translation table for the given language so
// clients can cache it in one round trip.
func Bundle(lang enums.Language) map[string]string {
	table, ok := translations[lang]
	if !ok {
		table = translations[enums.LanguagePT]
	}
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}

// CategoryLabel localizes a category by its Portuguese join-key name.
func CategoryLabel(lang enums.Language, namePT string) string {
	return Lookup(lang, "category."+namePT)
}

// Detect maps an Accept-Language header to a supported language,
// defaulting to Portuguese.
func Detect(acceptLanguage string) enums.Language {
	if acceptLanguage == "" {
		return enums.LanguagePT
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return enums.LanguagePT
	}
	_, index, _ := matcher.Match(tags...)
	switch index {
	case 1:
		return enums.LanguageEN
	case 2:
		return enums.LanguageES
	default:
		return enums.LanguagePT
	}
}
