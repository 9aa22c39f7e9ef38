package ga

import (
	"fmt"
	"math/rand"
)

// CrossoverMethod combines two parent chromosomes into one child.
type CrossoverMethod interface {
	Crossover(rng *rand.Rand, a, b Chromosome) Chromosome
}

// UniformCrossover copies each gene from either parent with equal
// probability, one draw per gene.
type UniformCrossover struct{}

// Crossover produces a child chromosome. Both parents must have the
// same length.
func (UniformCrossover) Crossover(rng *rand.Rand, a, b Chromosome) Chromosome {
	if a.Len() != b.Len() {
		panic(fmt.Sprintf("ga: crossover of chromosomes with lengths %d and %d", a.Len(), b.Len()))
	}

	child := make(Chromosome, a.Len())
	for i := range child {
		if rng.Float64() < 0.5 {
			child[i] = a[i]
		} else {
			child[i] = b[i]
		}
	}
	return child
}
