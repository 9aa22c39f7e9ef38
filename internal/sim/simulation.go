// Package sim implements the bird world: animals steered by evolved
// neural networks chase food on a unit torus, and every fixed number
// of steps the population is run through the genetic algorithm.
package sim

import (
	"fmt"
	"math"
	"math/rand"

	"birdsim/internal/ga"
	"birdsim/internal/nn"
)

const (
	// SpeedMin keeps animals from stalling in one place.
	SpeedMin = 0.0001

	// SpeedMax keeps animals from accelerating forever.
	SpeedMax = 0.002

	// SpeedAccel bounds how much the brain can change the speed in a
	// single step; steering is relative, not absolute, because the
	// brain never sees its own speed.
	SpeedAccel = 0.02

	// RotationAccel bounds the per-step turn, in radians.
	RotationAccel = math.Pi / 4

	// GenerationLength is how many steps each generation gets to live
	// before evolution kicks in.
	GenerationLength = 2500

	// eatingRange is the collision distance between an animal and a
	// food.
	eatingRange = 0.01
)

// Options configures a simulation. The zero value is not usable; start
// from DefaultOptions.
type Options struct {
	Eye              Eye
	Animals          int
	Foods            int
	GenerationLength int
	MutationChance   float32
	MutationCoeff    float32
}

// DefaultOptions returns the standard world: 10 animals, 60 foods,
// generations of 2500 steps, and a gentle mutation.
func DefaultOptions() Options {
	return Options{
		Eye:              DefaultEye(),
		Animals:          10,
		Foods:            60,
		GenerationLength: GenerationLength,
		MutationChance:   0.01,
		MutationCoeff:    0.2,
	}
}

// Simulation is the top-level state machine: it owns the world and the
// genetic algorithm, advances one step at a time, and evolves the
// population whenever a generation's steps run out.
type Simulation struct {
	world            *World
	engine           *ga.GeneticAlgorithm[AnimalIndividual]
	eye              Eye
	age              int
	generationLength int
	generation       int

	// Best individual seen at the latest evolution boundary; kept so
	// a champion can be saved after satiation has been reset.
	champion        ga.Chromosome
	championFitness float32
}

// NewSimulation seeds a random world. The options must describe at
// least one animal and a positive generation length.
func NewSimulation(rng *rand.Rand, opts Options) *Simulation {
	if opts.Animals < 1 {
		panic(fmt.Sprintf("sim: animal count %d must be positive", opts.Animals))
	}
	if opts.Foods < 0 {
		panic(fmt.Sprintf("sim: food count %d must not be negative", opts.Foods))
	}
	if opts.GenerationLength < 1 {
		panic(fmt.Sprintf("sim: generation length %d must be positive", opts.GenerationLength))
	}

	return &Simulation{
		world: RandomWorld(rng, opts.Eye, opts.Animals, opts.Foods),
		engine: ga.New[AnimalIndividual](
			ga.RouletteWheelSelection{},
			ga.UniformCrossover{},
			ga.NewGaussianMutation(opts.MutationChance, opts.MutationCoeff),
		),
		eye:              opts.Eye,
		generationLength: opts.GenerationLength,
	}
}

// World returns the live world. Callers must treat it as read-only;
// rendering should prefer Snapshot.
func (s *Simulation) World() *World {
	return s.world
}

// Age returns the number of steps since the last evolution.
func (s *Simulation) Age() int {
	return s.age
}

// Generation returns how many evolutions have happened so far.
func (s *Simulation) Generation() int {
	return s.generation
}

// Step advances the simulation by one tick: collisions, then brain
// inference, then movement. When the generation's steps run out it
// evolves the population and returns that generation's statistics;
// otherwise it returns nil.
func (s *Simulation) Step(rng *rand.Rand) *ga.Statistics {
	s.processCollisions(rng)
	s.processBrains()
	s.processMovements()

	s.age++
	if s.age > s.generationLength {
		stats := s.evolve(rng)
		return &stats
	}
	return nil
}

// Train fast-forwards through exactly one full generation and returns
// its statistics.
func (s *Simulation) Train(rng *rand.Rand) ga.Statistics {
	for {
		if stats := s.Step(rng); stats != nil {
			return *stats
		}
	}
}

func (s *Simulation) processCollisions(rng *rand.Rand) {
	for _, animal := range s.world.animals {
		for i := range s.world.foods {
			if distance(animal.position, s.world.foods[i].position) <= eatingRange {
				animal.satiation++
				s.world.foods[i].position = randomPoint(rng)
			}
		}
	}
}

func (s *Simulation) processBrains() {
	for _, animal := range s.world.animals {
		vision := animal.eye.ProcessVision(animal.position, animal.rotation, s.world.foods)
		response := animal.brain.Propagate(vision)

		speedDelta := clamp(response[0], -SpeedAccel, SpeedAccel)
		rotationDelta := clamp(response[1], -RotationAccel, RotationAccel)

		animal.speed = clamp(animal.speed+speedDelta, SpeedMin, SpeedMax)
		animal.rotation = wrapAngle(animal.rotation + rotationDelta)
	}
}

func (s *Simulation) processMovements() {
	for _, animal := range s.world.animals {
		// Heading of rotation 0 is the +Y axis.
		sin, cos := math.Sincos(float64(animal.rotation))
		animal.position.X = wrap(animal.position.X-float32(sin)*animal.speed, 0, 1)
		animal.position.Y = wrap(animal.position.Y+float32(cos)*animal.speed, 0, 1)
	}
}

func (s *Simulation) evolve(rng *rand.Rand) ga.Statistics {
	s.age = 0
	s.generation++

	population := make([]AnimalIndividual, len(s.world.animals))
	for i, animal := range s.world.animals {
		population[i] = individualFromAnimal(animal)
		if s.champion == nil || population[i].fitness > s.championFitness {
			s.champion = population[i].chromosome
			s.championFitness = population[i].fitness
		}
	}

	evolved, stats := s.engine.Evolve(rng, population)

	for i, individual := range evolved {
		s.world.animals[i] = individual.IntoAnimal(rng, s.eye)
	}
	for i := range s.world.foods {
		s.world.foods[i].position = randomPoint(rng)
	}

	return stats
}

// Champion returns the fittest chromosome seen at any evolution
// boundary so far, or false if no generation has finished yet.
func (s *Simulation) Champion() (ga.Chromosome, float32, bool) {
	if s.champion == nil {
		return nil, 0, false
	}
	return s.champion.Clone(), s.championFitness, true
}

// SeedBrains replaces every animal with a fresh one wired to the given
// chromosome, for watching a saved champion fly. The chromosome length
// must match the eye's brain topology.
func (s *Simulation) SeedBrains(rng *rand.Rand, chromosome ga.Chromosome) error {
	expected := nn.NumWeights(brainTopology(s.eye))
	if chromosome.Len() != expected {
		return fmt.Errorf("sim: chromosome has %d genes, brain needs %d", chromosome.Len(), expected)
	}

	for i := range s.world.animals {
		s.world.animals[i] = animalFromChromosome(rng, s.eye, chromosome)
	}
	return nil
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
