package tui

import (
	"errors"
	"fmt"

	"github.com/verte-zerg/fhcli/internal/game"
)

const (
	welcomeMessage = "Welcome to fancy hangman CLI! Guess today's word!"
	wonMessage     = "Congratulations! You won!"
	lostMessage    = "Better luck next time!"
	lastGuess      = "This is your last guess."
)

// OutOfWords is printed when the word base has nothing left to pick.
const OutOfWords = "¯\\_(ツ)_/¯ Seems like I ran out of words! Have you tried using the import tool?"

func remainingMessage(s *game.Session) string {
	switch s.Remaining() {
	case 0:
		return ""
	case 1:
		return lastGuess
	default:
		return fmt.Sprintf("You have %d guesses.", s.Remaining())
	}
}

func outcomeMessage(s *game.Session) string {
	switch s.State() {
	case game.Won:
		return wonMessage
	case game.Lost:
		return fmt.Sprintf("%s The word was %q.", lostMessage, s.Solution())
	default:
		return remainingMessage(s)
	}
}

// rejection turns a rejected guess into a user-facing notice. Storage errors
// are returned unchanged.
func rejection(err error) (string, error) {
	var lengthErr *game.LengthError
	switch {
	case errors.As(err, &lengthErr):
		return "Invalid input: " + lengthErr.Error() + ".", nil
	case errors.Is(err, game.ErrUnknownWord):
		return "The guessed word is not in the word list.", nil
	default:
		return "", err
	}
}
