package prng

import (
	"math/rand"
	"time"
)

// Source draws integers for the maze generator.
//
// Seeded sources derive each draw from the seed concatenated with key, so the
// same (seed, key) pair always yields the same value. Unseeded sources ignore
// the key.
type Source interface {
	// Range returns an integer in [min, max].
	Range(key string, min, max int) int
	// Seeded reports whether draws are reproducible.
	Seeded() bool
	// Seed returns the seed string, or "" for unseeded sources.
	Seed() string
}

// Seeded is a Source backed by SeedRandomRange.
type Seeded struct {
	seed string
}

// NewSeeded creates a reproducible source for seed.
func NewSeeded(seed string) *Seeded {
	return &Seeded{seed: seed}
}

// Range returns SeedRandomRange(seed+key, min, max).
func (s *Seeded) Range(key string, min, max int) int {
	return SeedRandomRange(s.seed+key, min, max)
}

// Seeded always returns true.
func (s *Seeded) Seeded() bool { return true }

// Seed returns the seed string.
func (s *Seeded) Seed() string { return s.seed }

// Unseeded is a Source backed by math/rand.
type Unseeded struct {
	rng *rand.Rand
}

// NewUnseeded wraps rng. A nil rng is replaced with a time-seeded generator.
func NewUnseeded(rng *rand.Rand) *Unseeded {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Unseeded{rng: rng}
}

// Range returns a uniformly distributed integer in [min, max].
func (u *Unseeded) Range(_ string, min, max int) int {
	if max <= min {
		return min
	}
	return min + u.rng.Intn(max-min+1)
}

// Seeded always returns false.
func (u *Unseeded) Seeded() bool { return false }

// Seed returns "".
func (u *Unseeded) Seed() string { return "" }

// FromSeed returns a seeded source when seed is non-empty and an unseeded one
// backed by rng otherwise.
func FromSeed(seed string, rng *rand.Rand) Source {
	if seed == "" {
		return NewUnseeded(rng)
	}
	return NewSeeded(seed)
}
