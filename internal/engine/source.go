package engine

import (
	"math/rand/v2"
	"time"
)

// Source is the random stream every probabilistic action draws from.
// *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// NewSource returns a PCG-backed source. A zero seed is replaced by the
// current time.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// roll returns a die face in [1, sides].
func roll(src Source, sides int) int {
	return src.IntN(sides) + 1
}
