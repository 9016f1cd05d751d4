package locale

import (
	"strings"

	"golang.org/x/text/language"
)

type Locale string

const (
	English Locale = "en"
	Spanish Locale = "es"

	Default = English
)

func (l Locale) String() string {
	return string(l)
}

func (l Locale) IsValid() bool {
	switch l {
	case English, Spanish:
		return true
	default:
		return false
	}
}

// Resolve maps a path segment, a single tag such as "es-CO" or a full
// Accept-Language value to a supported locale. Tags are tried in quality
// order and the first served base language wins.
func Resolve(tag string, fallback Locale) Locale {
	tags, _, err := language.ParseAcceptLanguage(strings.TrimSpace(tag))
	if err == nil {
		for _, t := range tags {
			base, _ := t.Base()
			if l := Locale(base.String()); l.IsValid() {
				return l
			}
		}
	}
	if fallback.IsValid() {
		return fallback
	}
	return Default
}
