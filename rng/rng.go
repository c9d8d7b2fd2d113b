// Package rng provides a seedable random number generator with a swappable algorithm.
//
// A Rng is not safe for concurrent use. Wrap it using Synchronized when it is
// shared between goroutines.
package rng

import (
	"math/rand/v2"
)

// Algorithm creates the source for a seed.
type Algorithm func(seed uint64) rand.Source

// PCG is the default algorithm, it is fast and has a small state.
func PCG(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// ChaCha8 is a cryptographically strong algorithm. It is slower than PCG.
func ChaCha8(seed uint64) rand.Source {
	var key [32]byte
	for idx := range 4 {
		value := seed + uint64(idx)*0x9e3779b97f4a7c15
		for b := range 8 {
			key[idx*8+b] = byte(value >> (8 * b))
		}
	}

	return rand.NewChaCha8(key)
}

// Source is implemented by Rng and its synchronized variant.
type Source interface {
	Uint64() uint64
	IntN(n int) int
	Float64() float64
	Bool() bool
	Range(min, max int) int
	Die(sides int) int
	Shuffle(n int, swap func(i, j int))
	Reseed(seed uint64)
}

type Rng struct {
	algorithm Algorithm
	seed      uint64
	rand      *rand.Rand
}

var _ Source = (*Rng)(nil)

// New creates a generator using the PCG algorithm.
func New(seed uint64) *Rng {
	return NewWithAlgorithm(seed, PCG)
}

func NewWithAlgorithm(seed uint64, algorithm Algorithm) *Rng {
	r := &Rng{algorithm: algorithm}
	r.Reseed(seed)
	return r
}

// Seed returns the seed the generator was last seeded with.
func (r *Rng) Seed() uint64 {
	return r.seed
}

// Reseed resets the generator to the start of the sequence for the given seed.
func (r *Rng) Reseed(seed uint64) {
	r.seed = seed
	r.rand = rand.New(r.algorithm(seed))
}

func (r *Rng) Uint64() uint64 {
	return r.rand.Uint64()
}

// IntN returns a value in [0, n). It panics if n <= 0.
func (r *Rng) IntN(n int) int {
	return r.rand.IntN(n)
}

// Float64 returns a value in [0, 1).
func (r *Rng) Float64() float64 {
	return r.rand.Float64()
}

func (r *Rng) Bool() bool {
	return r.rand.Uint64()&1 == 1
}

// Range returns a value in [min, max]. If max < min, min is returned.
func (r *Rng) Range(min, max int) int {
	if max <= min {
		return min
	}

	return min + r.rand.IntN(max-min+1)
}

// Die returns the result of rolling a die with the given number of sides, starting at 1.
func (r *Rng) Die(sides int) int {
	return r.Range(1, sides)
}

func (r *Rng) Shuffle(n int, swap func(i, j int)) {
	r.rand.Shuffle(n, swap)
}
