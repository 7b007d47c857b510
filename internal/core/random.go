package core

import "math/rand/v2"

// Random is the source of randomness the simulation draws from.
// Games never touch a global RNG; hosts inject one so runs are reproducible.
type Random interface {
	// Range returns a uniform float in [lo, hi).
	Range(lo, hi float64) float64

	// Index returns a uniform integer in [0, n). Returns 0 when n <= 0.
	Index(n int) int
}

// SeededRandom is a deterministic Random backed by a PCG generator.
type SeededRandom struct {
	rng *rand.Rand
}

// NewRandom creates a Random seeded with the given value.
// The same seed always yields the same sequence.
func NewRandom(seed int64) *SeededRandom {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	return &SeededRandom{
		rng: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)),
	}
}

// Range returns a uniform float in [lo, hi).
func (r *SeededRandom) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Float64()*(hi-lo)
}

// Index returns a uniform integer in [0, n).
func (r *SeededRandom) Index(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}
