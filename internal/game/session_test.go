package game

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/fhcli/internal/model"
	"github.com/verte-zerg/fhcli/internal/wordbase"
)

func newTable(t *testing.T, words ...string) *wordbase.TableBase {
	t.Helper()
	ctx := context.Background()
	tb, err := wordbase.OpenTable(ctx, filepath.Join(t.TempDir(), "words.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = tb.Close()
	})
	for _, w := range words {
		_, err := tb.Insert(ctx, w)
		require.NoError(t, err)
	}
	return tb
}

func TestStartOnEmptyWordBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	session, ok, err := Start(context.Background(), wordbase.NewText(path), model.Config{MaxGuesses: 6})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, session)
}

func TestStartOnMissingWordFile(t *testing.T) {
	wb := wordbase.NewText(filepath.Join(t.TempDir(), "words.txt"))
	_, ok, err := Start(context.Background(), wb, model.Config{MaxGuesses: 6})
	require.ErrorIs(t, err, wordbase.ErrStorageUnavailable)
	assert.False(t, ok)
}

func TestSessionWinMarksUsed(t *testing.T) {
	ctx := context.Background()
	tb := newTable(t, "mario", "wario")
	solution, ok, err := tb.Find(ctx, "mario")
	require.NoError(t, err)
	require.True(t, ok)

	s := NewSession(tb, solution, model.Config{MaxGuesses: 6, Locale: "en"})
	guess, err := s.Guess(ctx, "Wario")
	require.NoError(t, err)
	assert.Equal(t, "wario", guess.Word)
	assert.Equal(t, Playing, s.State())
	assert.Equal(t, 5, s.Remaining())

	_, err = s.Guess(ctx, "mario")
	require.NoError(t, err)
	assert.Equal(t, Won, s.State())

	stored, ok, err := tb.Find(ctx, "mario")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, stored.Used)

	_, err = s.Guess(ctx, "mario")
	assert.ErrorIs(t, err, ErrFinished)
}

func TestSessionRejectedGuessesDoNotCount(t *testing.T) {
	ctx := context.Background()
	tb := newTable(t, "mario", "wario")
	solution, _, err := tb.Find(ctx, "mario")
	require.NoError(t, err)
	s := NewSession(tb, solution, model.Config{MaxGuesses: 2})

	_, err = s.Guess(ctx, "luigi")
	assert.ErrorIs(t, err, ErrUnknownWord)

	_, err = s.Guess(ctx, "toad")
	var lengthErr *LengthError
	require.True(t, errors.As(err, &lengthErr))
	assert.Equal(t, 5, lengthErr.Want)
	assert.Equal(t, 4, lengthErr.Got)

	assert.Equal(t, 2, s.Remaining())
	assert.Empty(t, s.Guesses())
}

func TestSessionLoses(t *testing.T) {
	ctx := context.Background()
	tb := newTable(t, "mario", "wario")
	solution, _, err := tb.Find(ctx, "mario")
	require.NoError(t, err)
	s := NewSession(tb, solution, model.Config{MaxGuesses: 2})

	for i := 0; i < 2; i++ {
		_, err := s.Guess(ctx, "wario")
		require.NoError(t, err)
	}
	assert.Equal(t, Lost, s.State())
	assert.Zero(t, s.Remaining())

	stored, _, err := tb.Find(ctx, "mario")
	require.NoError(t, err)
	assert.False(t, stored.Used)
}

func TestSessionNormalizesGuessForLocale(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("luege\n"), 0o644))
	wb := wordbase.NewText(path)

	s := NewSession(wb, model.WordEntry{Text: "luege"}, model.Config{MaxGuesses: 6, Locale: "de"})
	guess, err := s.Guess(ctx, "Lüge")
	require.NoError(t, err)
	assert.Equal(t, "luege", guess.Word)
	assert.Equal(t, Won, s.State())
}
