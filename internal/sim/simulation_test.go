package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"birdsim/internal/ga"
	"birdsim/internal/nn"
)

// testOptions shrinks the world so a full generation runs in a few
// microseconds.
func testOptions() Options {
	opts := DefaultOptions()
	opts.Animals = 5
	opts.Foods = 8
	opts.GenerationLength = 10
	return opts
}

func TestStepEvolvesAfterGenerationLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewSimulation(rng, testOptions())

	for i := 0; i < 10; i++ {
		require.Nil(t, s.Step(rng), "step %d should not evolve", i)
	}
	assert.Equal(t, 10, s.Age())
	assert.Equal(t, 0, s.Generation())

	stats := s.Step(rng)
	require.NotNil(t, stats)
	assert.Equal(t, 0, s.Age())
	assert.Equal(t, 1, s.Generation())
}

func TestTrainRunsExactlyOneGeneration(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	s := NewSimulation(rng, testOptions())

	stats := s.Train(rng)

	assert.Equal(t, 1, s.Generation())
	assert.Equal(t, 0, s.Age())
	assert.LessOrEqual(t, stats.MinFitness, stats.AvgFitness)
	assert.LessOrEqual(t, stats.AvgFitness, stats.MaxFitness)
}

func TestEatingFeedsAnimalAndRespawnsFood(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s := NewSimulation(rng, testOptions())

	// Drop the first animal right on top of the first food.
	animal := s.world.animals[0]
	animal.position = s.world.foods[0].position
	before := s.world.foods[0].position

	s.Step(rng)

	assert.GreaterOrEqual(t, animal.Satiation(), 1)
	assert.NotEqual(t, before, s.world.foods[0].position)
}

func TestStepKeepsAnimalsOnTheTorus(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	s := NewSimulation(rng, testOptions())

	for i := 0; i < 50; i++ {
		s.Step(rng)
	}

	for _, animal := range s.world.animals {
		pos := animal.Position()
		assert.GreaterOrEqual(t, pos.X, float32(0))
		assert.Less(t, pos.X, float32(1))
		assert.GreaterOrEqual(t, pos.Y, float32(0))
		assert.Less(t, pos.Y, float32(1))

		assert.GreaterOrEqual(t, animal.speed, float32(SpeedMin))
		assert.LessOrEqual(t, animal.speed, float32(SpeedMax))
		assert.LessOrEqual(t, animal.Rotation(), float32(math.Pi))
		assert.GreaterOrEqual(t, animal.Rotation(), -float32(math.Pi))
	}
}

func TestSimulationIsDeterministicForASeed(t *testing.T) {
	run := func() []AnimalView {
		rng := rand.New(rand.NewSource(5))
		s := NewSimulation(rng, testOptions())
		for i := 0; i < 25; i++ {
			s.Step(rng)
		}
		return s.Snapshot().Animals
	}

	assert.Equal(t, run(), run())
}

func TestChampionAppearsAfterFirstEvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	s := NewSimulation(rng, testOptions())

	_, _, ok := s.Champion()
	require.False(t, ok)

	stats := s.Train(rng)

	chromosome, fitness, ok := s.Champion()
	require.True(t, ok)
	assert.Equal(t, nn.NumWeights(brainTopology(s.eye)), chromosome.Len())
	assert.InDelta(t, float64(stats.MaxFitness), float64(fitness), 1e-6)
}

func TestSeedBrainsReplacesEveryBrain(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewSimulation(rng, testOptions())

	chromosome := make(ga.Chromosome, nn.NumWeights(brainTopology(s.eye)))
	for i := range chromosome {
		chromosome[i] = 0.25
	}

	require.NoError(t, s.SeedBrains(rng, chromosome))
	for _, animal := range s.world.animals {
		assert.Equal(t, chromosome, animal.chromosome())
	}
}

func TestSeedBrainsRejectsWrongLength(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	s := NewSimulation(rng, testOptions())

	err := s.SeedBrains(rng, make(ga.Chromosome, 3))
	assert.Error(t, err)
}

func TestNewSimulationRejectsBadOptions(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	noAnimals := testOptions()
	noAnimals.Animals = 0
	assert.Panics(t, func() { NewSimulation(rng, noAnimals) })

	negativeFoods := testOptions()
	negativeFoods.Foods = -1
	assert.Panics(t, func() { NewSimulation(rng, negativeFoods) })

	zeroLength := testOptions()
	zeroLength.GenerationLength = 0
	assert.Panics(t, func() { NewSimulation(rng, zeroLength) })
}

func TestIndividualRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	eye := DefaultEye()

	animal := RandomAnimal(rng, eye)
	animal.satiation = 7

	individual := individualFromAnimal(animal)
	assert.Equal(t, float32(7), individual.Fitness())
	assert.Equal(t, animal.chromosome(), individual.Chromosome())

	reborn := individual.IntoAnimal(rng, eye)
	assert.Zero(t, reborn.Satiation())
	assert.Equal(t, animal.chromosome(), reborn.chromosome())
}
