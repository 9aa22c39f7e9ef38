package ga

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testIndividual evolves plain chromosomes; its fitness is the sum of
// its genes.
type testIndividual struct {
	chromosome Chromosome
}

func (i testIndividual) Fitness() float32 {
	var sum float32
	for _, gene := range i.chromosome {
		sum += gene
	}
	return sum
}

func (i testIndividual) Chromosome() Chromosome {
	return i.chromosome
}

func (i testIndividual) Create(chromosome Chromosome) testIndividual {
	return testIndividual{chromosome: chromosome}
}

func testEngine() *GeneticAlgorithm[testIndividual] {
	return New[testIndividual](
		RouletteWheelSelection{},
		UniformCrossover{},
		NewGaussianMutation(0.5, 0.5),
	)
}

func testPopulation() []testIndividual {
	return []testIndividual{
		{chromosome: Chromosome{0, 0, 0}},
		{chromosome: Chromosome{1, 1, 1}},
		{chromosome: Chromosome{1, 2, 1}},
		{chromosome: Chromosome{1, 2, 4}},
	}
}

func TestEvolvePreservesPopulationSize(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	engine := testEngine()

	population := testPopulation()
	for i := 0; i < 10; i++ {
		var stats Statistics
		population, stats = engine.Evolve(rng, population)

		require.Len(t, population, 4)
		assert.LessOrEqual(t, stats.MinFitness, stats.AvgFitness)
		assert.LessOrEqual(t, stats.AvgFitness, stats.MaxFitness)
	}

	for _, individual := range population {
		assert.Equal(t, 3, individual.chromosome.Len())
	}
}

func TestEvolveIsDeterministic(t *testing.T) {
	// Same seed, same call sequence: bit-for-bit identical outcome.
	run := func() []testIndividual {
		rng := rand.New(rand.NewSource(99))
		engine := testEngine()

		population := testPopulation()
		for i := 0; i < 10; i++ {
			population, _ = engine.Evolve(rng, population)
		}
		return population
	}

	assert.Equal(t, run(), run())
}

func TestEvolveStatisticsDescribeInputPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	engine := testEngine()

	// Fitness values are 0, 3, 4, 7.
	_, stats := engine.Evolve(rng, testPopulation())

	assert.Equal(t, float32(0), stats.MinFitness)
	assert.Equal(t, float32(7), stats.MaxFitness)
	assert.Equal(t, float32(3.5), stats.AvgFitness)
}

func TestEvolveEmptyPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	engine := testEngine()

	assert.Panics(t, func() { engine.Evolve(rng, nil) })
}

func TestStatisticsString(t *testing.T) {
	stats := Statistics{MinFitness: 0, MaxFitness: 4, AvgFitness: 1.5}
	assert.Equal(t, "min=0.00, max=4.00, avg=1.50", stats.String())
}
