// Package game runs a single guessing round against a word base.
package game

// Mark is the feedback for one guessed letter.
type Mark int

const (
	// Miss means the letter is not in the solution, or all its occurrences are already accounted for.
	Miss Mark = iota
	// Present means the letter is in the solution at another position.
	Present
	// Hit means the letter is at the right position.
	Hit
)

func (m Mark) String() string {
	switch m {
	case Hit:
		return "hit"
	case Present:
		return "present"
	default:
		return "miss"
	}
}

// Score compares guess with solution letter by letter.
//
// Hits are marked first; remaining letters are Present while the solution
// still has unmatched occurrences of them. Both words are compared as runes
// and must have the same length, otherwise every mark is Miss.
func Score(guess, solution string) []Mark {
	g, s := []rune(guess), []rune(solution)
	marks := make([]Mark, len(g))
	if len(g) != len(s) {
		return marks
	}

	left := make(map[rune]int, len(s))
	for i := range s {
		if g[i] == s[i] {
			marks[i] = Hit
		} else {
			left[s[i]]++
		}
	}
	for i := range g {
		if marks[i] == Hit {
			continue
		}
		if left[g[i]] > 0 {
			marks[i] = Present
			left[g[i]]--
		}
	}
	return marks
}

// Solved reports whether every mark is Hit.
func Solved(marks []Mark) bool {
	if len(marks) == 0 {
		return false
	}
	for _, m := range marks {
		if m != Hit {
			return false
		}
	}
	return true
}
