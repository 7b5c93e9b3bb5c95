package wordlist

import "unicode/utf8"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// LettersOnly keeps words made of lowercase ASCII letters.
func LettersOnly(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}

// Length keeps words of exactly n characters.
func Length(n int) FilterFunc {
	return func(word string) bool {
		return utf8.RuneCountInString(word) == n
	}
}

// All keeps words accepted by every filter.
func All(filters ...FilterFunc) FilterFunc {
	return func(word string) bool {
		for _, f := range filters {
			if !f(word) {
				return false
			}
		}
		return true
	}
}
