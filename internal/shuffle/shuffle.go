// Package shuffle produces uniformly random permutations of slices.
package shuffle

import (
	"math/rand/v2"
	"sync"
)

// Shuffler permutes slices using its own random source.
type Shuffler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Shuffler backed by rng. A nil rng uses a randomly seeded PCG source.
func New(rng *rand.Rand) *Shuffler {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Shuffler{rng: rng}
}

// NewSeeded returns a Shuffler with a deterministic source, for tests and replays.
func NewSeeded(seed uint64) *Shuffler {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// IntN returns a uniform integer in [0, n).
func (s *Shuffler) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Slice returns a shuffled copy of in. The input is never modified.
func Slice[T any](s *Shuffler, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Fisher-Yates: walk from the last index down, swapping with a uniform j in [0, i].
	for i := len(out) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

var defaultShuffler = New(nil)

// Default returns the process-wide Shuffler.
func Default() *Shuffler {
	return defaultShuffler
}

// Shuffle returns a shuffled copy of in using the process-wide source.
func Shuffle[T any](in []T) []T {
	return Slice(defaultShuffler, in)
}
