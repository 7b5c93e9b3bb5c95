package wordbase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runContract checks the behaviour every backend shares. newBase must return
// an empty word base.
func runContract(t *testing.T, newBase func(t *testing.T) WordBase) {
	t.Helper()
	ctx := context.Background()

	t.Run("FindOnEmpty", func(t *testing.T) {
		wb := newBase(t)
		_, ok, err := wb.Find(ctx, "ghost")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("RandomPickOnEmpty", func(t *testing.T) {
		wb := newBase(t)
		_, ok, err := wb.RandomPick(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("InsertIsIdempotent", func(t *testing.T) {
		wb := newBase(t)
		inserted, err := wb.Insert(ctx, "crane")
		require.NoError(t, err)
		assert.True(t, inserted)

		inserted, err = wb.Insert(ctx, "crane")
		require.NoError(t, err)
		assert.False(t, inserted)

		inserted, err = wb.Insert(ctx, " CRANE ")
		require.NoError(t, err)
		assert.False(t, inserted)

		summary, err := wb.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Total)
	})

	t.Run("InsertRejectsEmpty", func(t *testing.T) {
		wb := newBase(t)
		_, err := wb.Insert(ctx, "  ")
		require.ErrorIs(t, err, ErrInvalidWord)
	})

	t.Run("FindAfterInsert", func(t *testing.T) {
		wb := newBase(t)
		for _, w := range []string{"apple", "apply", "berry"} {
			_, err := wb.Insert(ctx, w)
			require.NoError(t, err)
		}
		entry, ok, err := wb.Find(ctx, "Apply")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "apply", entry.Text)
		assert.False(t, entry.Used)

		_, ok, err = wb.Find(ctx, "appl")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("RandomPickReturnsStoredWord", func(t *testing.T) {
		wb := newBase(t)
		words := []string{"rusty", "fishy", "busty", "lusty"}
		for _, w := range words {
			_, err := wb.Insert(ctx, w)
			require.NoError(t, err)
		}
		for i := 0; i < 20; i++ {
			entry, ok, err := wb.RandomPick(ctx)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Contains(t, words, entry.Text)
		}
	})
}
