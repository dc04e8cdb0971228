// Package noise provides the deterministic pseudo-random source used by the
// coastline synthesizer.
package noise

import "hash/fnv"

// Linear-congruential constants (Numerical Recipes). They are part of the
// output contract: changing them changes every generated coastline.
const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
	lcgModulus    = 1 << 32
)

// LCG is a 32-bit linear-congruential generator. The zero value is not usable;
// construct one with New.
type LCG struct {
	state uint32
}

// New returns a generator seeded with seed. A zero seed is coerced to 1.
func New(seed uint32) *LCG {
	if seed == 0 {
		seed = 1
	}
	return &LCG{state: seed}
}

// Next advances the generator and returns a value in [0,1).
func (g *LCG) Next() float64 {
	g.state = g.state*lcgMultiplier + lcgIncrement
	return float64(g.state) / lcgModulus
}

// HashString returns the 32-bit FNV-1a hash of s. Regions without an explicit
// seed derive one from their id with it.
func HashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
