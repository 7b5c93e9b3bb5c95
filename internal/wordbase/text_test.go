package wordbase

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/fhcli/internal/model"
)

func newTestText(t *testing.T) *TextBase {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	writeWords(t, path, "")
	return NewText(path)
}

func writeWords(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestTextContract(t *testing.T) {
	runContract(t, func(t *testing.T) WordBase {
		return newTestText(t)
	})
}

func TestTextKind(t *testing.T) {
	assert.Equal(t, BackendText, Kind(newTestText(t)))
}

func TestTextInsertAppendsLine(t *testing.T) {
	ctx := context.Background()
	tb := newTestText(t)
	writeWords(t, tb.Path(), "apple\napply")

	inserted, err := tb.Insert(ctx, "berry")
	require.NoError(t, err)
	require.True(t, inserted)

	data, err := os.ReadFile(tb.Path())
	require.NoError(t, err)
	assert.Equal(t, "apple\napply\nberry\n", string(data))
}

func TestTextInsertCreatesDirectory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "words.txt")
	tb := NewText(path)

	inserted, err := tb.Insert(ctx, "crane")
	require.NoError(t, err)
	require.True(t, inserted)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "crane\n", string(data))
}

func TestTextInsertFailureLeavesCollectionUnchanged(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	writeWords(t, blocker, "apple\n")

	tb := NewText(filepath.Join(blocker, "words.txt"))
	inserted, err := tb.Insert(ctx, "crane")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.False(t, inserted)

	data, err := os.ReadFile(blocker)
	require.NoError(t, err)
	assert.Equal(t, "apple\n", string(data))
}

func TestTextMissingFileIsUnavailable(t *testing.T) {
	ctx := context.Background()
	tb := NewText(filepath.Join(t.TempDir(), "typo", "wrods.txt"))

	_, ok, err := tb.RandomPick(ctx)
	require.ErrorIs(t, err, ErrStorageUnavailable)
	assert.False(t, ok)

	_, ok, err = tb.Find(ctx, "crane")
	require.ErrorIs(t, err, ErrStorageUnavailable)
	assert.False(t, ok)

	_, err = tb.Stats(ctx)
	require.ErrorIs(t, err, ErrStorageUnavailable)

	inserted, err := tb.Insert(ctx, "crane")
	require.NoError(t, err)
	assert.True(t, inserted)

	entry, ok, err := tb.RandomPick(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "crane", entry.Text)
}

func TestTextRandomPickUnreadable(t *testing.T) {
	ctx := context.Background()
	tb := NewText(t.TempDir())
	_, _, err := tb.RandomPick(ctx)
	require.Error(t, err)
}

func TestTextMarkUsedSkipped(t *testing.T) {
	ctx := context.Background()
	tb := newTestText(t)
	writeWords(t, tb.Path(), "crane\n")

	outcome, err := tb.MarkUsed(ctx, model.WordEntry{Text: "crane"})
	require.NoError(t, err)
	assert.Equal(t, MarkSkipped, outcome)

	entry, ok, err := tb.RandomPick(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "crane", entry.Text)
	assert.Zero(t, entry.ID)
}

func TestTextRandomPickUniform(t *testing.T) {
	ctx := context.Background()
	tb := newTestText(t)
	tb.rnd = rand.New(rand.NewSource(7))
	words := []string{"apple", "apply", "berry", "crane"}
	writeWords(t, tb.Path(), "apple\napply\nberry\ncrane\n")

	const trials = 8000
	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		entry, ok, err := tb.RandomPick(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		counts[entry.Text]++
	}
	expected := float64(trials) / float64(len(words))
	for _, w := range words {
		assert.InDelta(t, expected, float64(counts[w]), expected*0.1, "word %s", w)
	}
}

func TestTextStats(t *testing.T) {
	ctx := context.Background()
	tb := newTestText(t)

	summary, err := tb.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Summary{}, summary)

	writeWords(t, tb.Path(), "apple\n\napply\n")
	summary, err = tb.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Zero(t, summary.Used)
}
