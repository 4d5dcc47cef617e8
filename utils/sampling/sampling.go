// Package sampling implements the generation of deterministic and
// non-deterministic sequences of random bytes and of sample points over
// real intervals.
//
// Every randomized operation takes an explicit [PRNG]; there is no ambient
// process-wide generator, so fixing a key (or seed) makes results
// reproducible.
package sampling

import (
	"encoding/binary"
	"fmt"
)

// RandUint64 reads a random value between 0 and 0xFFFFFFFFFFFFFFFF from prng.
func RandUint64(prng PRNG) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandFloat64 reads a random float between min and max from prng.
func RandFloat64(prng PRNG, min, max float64) float64 {
	f := float64(RandUint64(prng)) / 1.8446744073709552e+19
	return min + f*(max-min)
}

// Uniform draws n independent uniform samples in [min, max) from prng.
func Uniform(prng PRNG, min, max float64, n int) (xs []float64) {
	xs = make([]float64, n)
	for i := range xs {
		xs[i] = RandFloat64(prng, min, max)
	}
	return
}

// Equidistributed returns the steps+1 points x_i = min + i*(max-min)/steps
// for i = 0..steps inclusive.
func Equidistributed(min, max float64, steps int) (xs []float64) {
	if steps < 1 {
		panic(fmt.Sprintf("cannot Equidistributed: steps (%d) < 1", steps))
	}

	delta := (max - min) / float64(steps)

	xs = make([]float64, steps+1)
	for i := range xs {
		xs[i] = min + delta*float64(i)
	}
	return
}
