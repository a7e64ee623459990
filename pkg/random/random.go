// Package random provides the seedable pseudorandom source used by the
// data generators.
package random

import (
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source draws the random values the generators need. A single Source is
// shared by every phase of a run so one seed reproduces the whole dataset.
type Source struct {
	rng  *rand.Rand
	seed uint64
}

// New returns a Source seeded with seed. A zero seed picks one from the clock.
func New(seed uint64) *Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Source{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// Seed returns the seed the source was created with
func (s *Source) Seed() uint64 {
	return s.seed
}

// Chance returns true with probability p
func (s *Source) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// IntBetween returns a uniform integer in [lo, hi], both inclusive
func (s *Source) IntBetween(lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Int64N(hi-lo+1)
}

// IntN returns a uniform integer in [0, n)
func (s *Source) IntN(n int) int {
	return s.rng.IntN(n)
}

// Uniform returns a uniform float in [lo, hi)
func (s *Source) Uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return distuv.Uniform{Min: lo, Max: hi, Src: s.rng}.Rand()
}

// Pareto returns a Pareto variate with scale 1 and the given shape
func (s *Source) Pareto(shape float64) float64 {
	return distuv.Pareto{Xm: 1, Alpha: shape, Src: s.rng}.Rand()
}

// Pick returns a uniformly chosen element of items. items must not be empty.
func Pick[T any](s *Source, items []T) T {
	return items[s.IntN(len(items))]
}
