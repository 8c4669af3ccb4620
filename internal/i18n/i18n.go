// Package i18n holds the message catalogue returned to API callers.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

const DefaultLanguage = "no"

var supported = []string{"no", "en"}

var matcher = language.NewMatcher([]language.Tag{
	language.Norwegian,
	language.English,
})

// DetectLanguage picks the best supported language from an Accept-Language header.
func DetectLanguage(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return DefaultLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLanguage
	}
	return supported[idx]
}

// Normalize maps a stored language tag to a catalogue key.
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if _, ok := catalog[lang]; ok {
		return lang
	}
	if lang == "" {
		return DefaultLanguage
	}
	return DetectLanguage(lang)
}

// T returns the translation of code, falling back to the default language
// and finally to the code itself.
func T(lang, code string) string {
	if msg, ok := catalog[Normalize(lang)][code]; ok {
		return msg
	}
	if msg, ok := catalog[DefaultLanguage][code]; ok {
		return msg
	}
	return code
}

func Tf(lang, code string, args ...interface{}) string {
	return fmt.Sprintf(T(lang, code), args...)
}
