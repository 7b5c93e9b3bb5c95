package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/fhcli/internal/game"
)

// RunLines plays session over plain text, one guess per input line. It is
// used when stdin is not a terminal. End of input ends the round early.
func RunLines(ctx context.Context, in io.Reader, out io.Writer, session *game.Session) error {
	p := printer{w: out}
	p.println(welcomeMessage)
	p.println(placeholder(session.WordLength()))
	p.println(remainingMessage(session))

	scanner := bufio.NewScanner(in)
	for session.State() == game.Playing {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !scanner.Scan() {
			break
		}
		guess, err := session.Guess(ctx, scanner.Text())
		if err != nil && session.State() != game.Won {
			notice, ferr := rejection(err)
			if ferr != nil {
				return ferr
			}
			p.println(notice)
			continue
		}
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to record solved word")
		}
		p.println(plainGuess(guess))
		if msg := outcomeMessage(session); msg != "" {
			p.println(msg)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read guesses: %w", err)
	}
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(line string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, line)
}
