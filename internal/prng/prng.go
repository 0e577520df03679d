// Package prng provides a small string-seeded pseudo-random generator.
//
// Every draw is a pure function of its seed string: the string is folded into
// a 32-bit state with xmur3 and a single mulberry32 step turns that state into
// a float in [0, 1). Callers vary the string per draw (seed + iteration, seed +
// coordinates) instead of advancing a sequence. The arithmetic is bit-exact so
// a given seed produces the same maze on every platform.
package prng

import (
	"math"
	"unicode/utf16"
)

const (
	xmurInit  = 1779033703
	xmurMul   = 3432918353
	xmurFinA  = 2246822507
	xmurFinB  = 3266489909
	mulberryC = 0x6D2B79F5

	twoPow32 = 4294967296.0
)

// Hash folds s into a 32-bit state (xmur3).
// The string is processed as UTF-16 code units.
func Hash(s string) uint32 {
	units := utf16.Encode([]rune(s))

	h := uint32(xmurInit) ^ uint32(len(units))
	for _, c := range units {
		h = (h ^ uint32(c)) * xmurMul
		h = h<<13 | h>>19
	}
	h = (h ^ h>>16) * xmurFinA
	h = (h ^ h>>13) * xmurFinB
	return h ^ h>>16
}

// Mulberry32 returns the first output of a mulberry32 generator with the given
// state, as a float in [0, 1).
func Mulberry32(state uint32) float64 {
	a := state + mulberryC
	t := (a ^ a>>15) * (1 | a)
	t = (t + (t^t>>7)*(61|t)) ^ t
	return float64(t^t>>14) / twoPow32
}

// SeedRandom returns a deterministic float in [0, 1) for the seed string.
func SeedRandom(seed string) float64 {
	return Mulberry32(Hash(seed))
}

// SeedRandomRange returns a deterministic integer in [min, max] for the seed string.
func SeedRandomRange(seed string, min, max int) int {
	return int(math.Floor(SeedRandom(seed)*float64(max-min+1) + float64(min)))
}
