package enums

import "fmt"

// Language is one of the storefront's supported guest languages.
type Language string

const (
	LanguagePT Language = "pt"
	LanguageEN Language = "en"
	LanguageES Language = "es"
)

var validLanguages = []Language{
	LanguagePT,
	LanguageEN,
	LanguageES,
}

// String implements fmt.Stringer.
func (l Language) String() string {
	return string(l)
}

// IsValid reports whether the value is a supported Language.
func (l Language) IsValid() bool {
	for _, candidate := range validLanguages {
		if candidate == l {
			return true
		}
	}
	return false
}

// Locale returns the BCP 47 locale used when formatting timestamps.
func (l Language) Locale() string {
	switch l {
	case LanguagePT:
		return "pt-BR"
	case LanguageES:
		return "es-ES"
	default:
		return "en-US"
	}
}

// ParseLanguage converts raw input into a Language.
func ParseLanguage(value string) (Language, error) {
	for _, candidate := range validLanguages {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid language %q", value)
}

// Languages returns every supported language in declaration order.
func Languages() []Language {
	out := make([]Language, len(validLanguages))
	copy(out, validLanguages)
	return out
}
