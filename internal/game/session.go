package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/fhcli/internal/lang"
	"github.com/verte-zerg/fhcli/internal/model"
	"github.com/verte-zerg/fhcli/internal/wordbase"
)

var (
	// ErrFinished is returned for guesses after the round ended.
	ErrFinished = errors.New("round is over")
	// ErrUnknownWord is returned for guesses missing from the word base.
	ErrUnknownWord = errors.New("the guessed word is not in the word list")
)

// LengthError is returned for guesses of the wrong length.
type LengthError struct {
	Want int
	Got  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("your guess must have %d characters, you entered %d", e.Want, e.Got)
}

// State is the phase of a round.
type State int

const (
	Playing State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Guess is one accepted guess and its feedback.
type Guess struct {
	Word  string
	Marks []Mark
}

// Session is a single round: one secret word and a bounded number of guesses.
// Rejected guesses do not count against the limit.
type Session struct {
	wb         wordbase.WordBase
	solution   model.WordEntry
	locale     lang.Locale
	maxGuesses int
	guesses    []Guess
	state      State
}

// Start picks a random word from wb and opens a round. It returns false when
// the word base has no eligible word.
func Start(ctx context.Context, wb wordbase.WordBase, cfg model.Config) (*Session, bool, error) {
	solution, ok, err := wb.RandomPick(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("pick word: %w", err)
	}
	if !ok {
		return nil, false, nil
	}
	return NewSession(wb, solution, cfg), true, nil
}

// NewSession opens a round for a known solution.
func NewSession(wb wordbase.WordBase, solution model.WordEntry, cfg model.Config) *Session {
	solution.Text = strings.ToLower(solution.Text)
	return &Session{
		wb:         wb,
		solution:   solution,
		locale:     lang.ParseLocale(cfg.Locale),
		maxGuesses: cfg.MaxGuesses,
	}
}

// Guess normalizes and scores input. A winning guess marks the solution as
// used in the word base; a failure to do so is returned together with the
// accepted guess and does not change the outcome.
func (s *Session) Guess(ctx context.Context, input string) (Guess, error) {
	if s.state != Playing {
		return Guess{}, ErrFinished
	}
	word := lang.Normalize(strings.ToLower(strings.TrimSpace(input)), s.locale)
	if got, want := utf8.RuneCountInString(word), s.WordLength(); got != want {
		return Guess{}, &LengthError{Want: want, Got: got}
	}
	if _, ok, err := s.wb.Find(ctx, word); err != nil {
		return Guess{}, fmt.Errorf("look up guess: %w", err)
	} else if !ok {
		return Guess{}, ErrUnknownWord
	}

	guess := Guess{Word: word, Marks: Score(word, s.solution.Text)}
	s.guesses = append(s.guesses, guess)

	switch {
	case Solved(guess.Marks):
		s.state = Won
		outcome, err := s.wb.MarkUsed(ctx, s.solution)
		if err != nil {
			return guess, fmt.Errorf("mark %q used: %w", s.solution.Text, err)
		}
		zerolog.Ctx(ctx).Debug().Str("word", s.solution.Text).Stringer("outcome", outcome).Msg("solution marked used")
	case len(s.guesses) >= s.maxGuesses:
		s.state = Lost
	}
	return guess, nil
}

// State returns the current phase.
func (s *Session) State() State {
	return s.state
}

// Guesses returns the accepted guesses in order.
func (s *Session) Guesses() []Guess {
	return s.guesses
}

// Remaining returns how many guesses are left.
func (s *Session) Remaining() int {
	if left := s.maxGuesses - len(s.guesses); left > 0 {
		return left
	}
	return 0
}

// MaxGuesses returns the guess limit.
func (s *Session) MaxGuesses() int {
	return s.maxGuesses
}

// WordLength returns the length of the solution.
func (s *Session) WordLength() int {
	return utf8.RuneCountInString(s.solution.Text)
}

// Solution returns the secret word.
func (s *Session) Solution() string {
	return s.solution.Text
}
