package ga

import (
	"fmt"
	"math/rand"
)

// MutationMethod perturbs a chromosome in place.
type MutationMethod interface {
	Mutate(rng *rand.Rand, child Chromosome)
}

// GaussianMutation displaces each gene, with probability chance, by
// ± coeff × U(0,1); the sign is a separate fair coin flip.
type GaussianMutation struct {
	chance float32
	coeff  float32
}

// NewGaussianMutation creates a mutation operator. chance must lie in
// [0, 1].
func NewGaussianMutation(chance, coeff float32) GaussianMutation {
	if chance < 0 || chance > 1 {
		panic(fmt.Sprintf("ga: mutation chance %v outside [0, 1]", chance))
	}
	return GaussianMutation{chance: chance, coeff: coeff}
}

// Mutate perturbs the chromosome in place. The sign flip is drawn
// before the chance check so that every gene consumes the same number
// of draws regardless of whether it mutates.
func (m GaussianMutation) Mutate(rng *rand.Rand, child Chromosome) {
	for i := range child {
		sign := float32(1)
		if rng.Float64() < 0.5 {
			sign = -1
		}
		if rng.Float64() < float64(m.chance) {
			child[i] += sign * m.coeff * rng.Float32()
		}
	}
}
