// Package ga implements a generic genetic algorithm: an evolutionary
// loop parameterized by pluggable selection, crossover, and mutation
// strategies, working on any type that exposes a fitness score and a
// chromosome.
package ga

import "math/rand"

// Individual is the capability an evolvable type must expose. Create
// builds a fresh individual of the same kind from an evolved
// chromosome.
type Individual[I any] interface {
	Fitness() float32
	Chromosome() Chromosome
	Create(chromosome Chromosome) I
}

// GeneticAlgorithm runs the evolutionary loop. The three strategies
// are chosen once at construction and reused for every generation.
type GeneticAlgorithm[I Individual[I]] struct {
	selection SelectionMethod
	crossover CrossoverMethod
	mutation  MutationMethod
}

// New creates an engine with the given strategies.
func New[I Individual[I]](selection SelectionMethod, crossover CrossoverMethod, mutation MutationMethod) *GeneticAlgorithm[I] {
	return &GeneticAlgorithm[I]{
		selection: selection,
		crossover: crossover,
		mutation:  mutation,
	}
}

// Evolve produces the next generation, always the same size as the
// input. For each slot it selects two parents independently (with
// replacement), crosses their chromosomes, mutates the child, and
// rebuilds an individual from it. The returned statistics describe the
// input population.
func (g *GeneticAlgorithm[I]) Evolve(rng *rand.Rand, population []I) ([]I, Statistics) {
	if len(population) == 0 {
		panic("ga: evolve on an empty population")
	}

	fitnesses := make([]float32, len(population))
	for i, individual := range population {
		fitnesses[i] = individual.Fitness()
	}
	stats := NewStatistics(fitnesses)

	next := make([]I, len(population))
	for i := range next {
		parentA := population[g.selection.Select(rng, fitnesses)]
		parentB := population[g.selection.Select(rng, fitnesses)]

		child := g.crossover.Crossover(rng, parentA.Chromosome(), parentB.Chromosome())
		g.mutation.Mutate(rng, child)

		next[i] = parentA.Create(child)
	}

	return next, stats
}
