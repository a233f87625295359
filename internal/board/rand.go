package board

import "math/rand/v2"

// Source supplies uniformly distributed integers in [0, n)
type Source interface {
	IntN(n int) int
}

// NewSource returns a deterministic source for the given seed
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func randomSource() *rand.Rand {
	return NewSource(rand.Uint64())
}
