package core

import "math/rand/v2"

// BitGenerator produces single random bits from a 32-bit linear congruential
// state. It is not safe for concurrent use.
type BitGenerator struct {
	seed uint32
}

// NewBitGenerator seeds a generator. Equal seeds yield equal sequences.
func NewBitGenerator(seed uint32) *BitGenerator {
	return &BitGenerator{seed: seed}
}

// Value advances the state and returns 0 or 1.
func (g *BitGenerator) Value() uint8 {
	g.seed = g.seed*1103515245 + 12345
	return uint8((g.seed >> 16) & 1)
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillBinary fills the buffer with 0/1 values using the RNG.
func FillBinary(r *rand.Rand, buf []uint8) {
	for i := range buf {
		buf[i] = uint8(r.IntN(2))
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
