// Package lang handles locales and folding words to the game alphabet.
package lang

import "strings"

// Locale identifies the orthography of imported words and guesses.
type Locale string

const (
	// DE folds umlauts to digraphs before transliteration.
	DE Locale = "de"
	// EN transliterates directly.
	EN Locale = "en"
)

// Default is used when no locale is configured.
const Default = EN

// ParseLocale maps a locale tag to a Locale. Unknown tags fall back to EN.
func ParseLocale(tag string) Locale {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		tag = tag[:i]
	}
	switch Locale(tag) {
	case DE:
		return DE
	default:
		return EN
	}
}

func (l Locale) String() string {
	return string(l)
}
