package sim

import (
	"math/rand"

	"birdsim/internal/ga"
)

// AnimalIndividual adapts an Animal to the genetic algorithm: fitness
// is the satiation count, the chromosome is the flattened brain. It
// only lives for the duration of one evolution call.
type AnimalIndividual struct {
	fitness    float32
	chromosome ga.Chromosome
}

func individualFromAnimal(a *Animal) AnimalIndividual {
	return AnimalIndividual{
		fitness:    float32(a.satiation),
		chromosome: a.chromosome(),
	}
}

// Fitness returns the source animal's satiation.
func (i AnimalIndividual) Fitness() float32 {
	return i.fitness
}

// Chromosome returns the flattened brain weights.
func (i AnimalIndividual) Chromosome() ga.Chromosome {
	return i.chromosome
}

// Create wraps an evolved chromosome in a fresh individual.
func (i AnimalIndividual) Create(chromosome ga.Chromosome) AnimalIndividual {
	return AnimalIndividual{chromosome: chromosome}
}

// IntoAnimal turns the evolved individual back into an animal with a
// random pose and zero satiation; fitness never carries across
// generations.
func (i AnimalIndividual) IntoAnimal(rng *rand.Rand, eye Eye) *Animal {
	return animalFromChromosome(rng, eye, i.chromosome)
}
