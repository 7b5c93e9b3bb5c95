package sampler

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservoirEmpty(t *testing.T) {
	r := New[string]()
	_, ok := r.Pick()
	assert.False(t, ok)
	assert.Zero(t, r.Seen())
}

func TestReservoirSingle(t *testing.T) {
	r := New[string]()
	r.Offer("only")
	got, ok := r.Pick()
	require.True(t, ok)
	assert.Equal(t, "only", got)
}

func TestReservoirUniform(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	const trials = 50000
	rnd := rand.New(rand.NewSource(42))
	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		r := NewWithRand[string](rnd)
		for _, item := range items {
			r.Offer(item)
		}
		got, ok := r.Pick()
		require.True(t, ok)
		counts[got]++
	}
	expected := float64(trials) / float64(len(items))
	for _, item := range items {
		assert.InDelta(t, expected, float64(counts[item]), expected*0.05, "item %s", item)
	}
}
