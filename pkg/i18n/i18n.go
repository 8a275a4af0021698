// Package i18n provides page string localization and resolution of
// multi-language text fields received from the backend.
// Supported languages: en (English), fr (French), ar (Arabic).
// The message catalogue is compiled into the binary.
package i18n

import "fmt"

// Language is a supported page language code.
type Language string

const (
	English Language = "en"
	French  Language = "fr"
	Arabic  Language = "ar"
)

// Fallback language used when a key or language is not found.
const DefaultLang = English

// Supported lists the page languages in fallback order.
var Supported = []Language{English, French, Arabic}

// ParseLanguage returns the Language for an exact code match.
func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case English, French, Arabic:
		return Language(s), true
	}
	return "", false
}

// Dir returns the text direction for the language.
func (l Language) Dir() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

func (l Language) String() string {
	return string(l)
}

// Translate returns a localized page string for key in lang.
// Extra args are passed to fmt.Sprintf if the translation contains format verbs.
// Falls back to English if lang is unsupported or key is missing.
func Translate(key string, lang Language, args ...interface{}) string {
	if lang == "" {
		lang = DefaultLang
	}

	langMap, ok := translations[key]
	if !ok {
		// Unknown keys render as the key itself.
		return key
	}

	tmpl, ok := langMap[lang]
	if !ok || tmpl == "" {
		tmpl, ok = langMap[DefaultLang]
		if !ok {
			return key
		}
	}

	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// Translator binds Translate to a single language, for use from templates.
type Translator struct {
	Lang Language
}

// T renders the message identified by key.
func (t Translator) T(key string, args ...interface{}) string {
	return Translate(key, t.Lang, args...)
}
