package lang

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"
)

var umlautDigraphs = strings.NewReplacer(
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
)

// Normalize folds word to ASCII for the given locale.
//
// For DE the umlauts ä, ö and ü become ae, oe and ue first. Every remaining
// non-ASCII character is transliterated to its closest ASCII spelling, so
// ß becomes ss, ŋ becomes ng and Greek or Cyrillic letters are romanized.
// Case is left as is.
func Normalize(word string, locale Locale) string {
	word = norm.NFC.String(word)
	if locale == DE {
		word = umlautDigraphs.Replace(word)
	}
	return unidecode.Unidecode(word)
}
