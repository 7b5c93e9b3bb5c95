// Package sampler picks uniformly from streams of unknown length.
package sampler

import (
	"math/rand"
	"time"
)

// Reservoir holds a single uniformly chosen item from everything offered.
type Reservoir[T any] struct {
	rnd  *rand.Rand
	seen int
	pick T
}

// New returns a Reservoir seeded with the current time.
func New[T any]() *Reservoir[T] {
	return NewWithRand[T](rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand returns a Reservoir drawing from rnd.
func NewWithRand[T any](rnd *rand.Rand) *Reservoir[T] {
	return &Reservoir[T]{rnd: rnd}
}

// Offer considers v; the n-th offered item replaces the held one with probability 1/n.
func (r *Reservoir[T]) Offer(v T) {
	r.seen++
	if r.rnd.Intn(r.seen) == 0 {
		r.pick = v
	}
}

// Pick returns the held item, or false when nothing was offered.
func (r *Reservoir[T]) Pick() (T, bool) {
	return r.pick, r.seen > 0
}

// Seen returns the number of offered items.
func (r *Reservoir[T]) Seen() int {
	return r.seen
}
