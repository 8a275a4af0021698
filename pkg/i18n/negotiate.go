package i18n

import (
	"golang.org/x/text/language"
)

var matcher = language.NewMatcher([]language.Tag{
	language.English, // first tag is the matcher default
	language.French,
	language.Arabic,
})

// Negotiate picks the page language. An explicit supported query value wins,
// then the best Accept-Language match, then DefaultLang.
func Negotiate(queryLang, acceptLanguage string) Language {
	if l, ok := ParseLanguage(queryLang); ok {
		return l
	}
	if acceptLanguage == "" {
		return DefaultLang
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLang
	}

	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLang
	}
	return Supported[idx]
}
