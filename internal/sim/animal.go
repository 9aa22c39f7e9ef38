package sim

import (
	"math"
	"math/rand"

	"birdsim/internal/ga"
	"birdsim/internal/nn"
)

// Animal is one agent: a position and heading on the torus, an eye,
// and a brain deciding how to steer. satiation counts the foods eaten
// in the current generation and doubles as the animal's fitness.
type Animal struct {
	position  Point
	rotation  float32
	speed     float32
	eye       Eye
	brain     *nn.Network
	satiation int
}

// brainTopology is the fixed network shape derived from the eye: one
// input per cell, a hidden layer twice that wide, and two outputs
// (speed delta, rotation delta).
func brainTopology(eye Eye) []nn.LayerTopology {
	return []nn.LayerTopology{
		{Neurons: eye.Cells()},
		{Neurons: 2 * eye.Cells()},
		{Neurons: 2},
	}
}

// RandomAnimal creates an animal with a random pose and a random
// brain.
func RandomAnimal(rng *rand.Rand, eye Eye) *Animal {
	return newAnimal(rng, eye, nn.Random(rng, brainTopology(eye)))
}

// animalFromChromosome rebuilds an animal from an evolved chromosome:
// the brain is decoded from the genes, everything else starts fresh.
func animalFromChromosome(rng *rand.Rand, eye Eye, chromosome ga.Chromosome) *Animal {
	return newAnimal(rng, eye, nn.FromWeights(brainTopology(eye), chromosome))
}

func newAnimal(rng *rand.Rand, eye Eye, brain *nn.Network) *Animal {
	return &Animal{
		position: randomPoint(rng),
		rotation: float32(rng.Float64() * 2 * math.Pi),
		speed:    0.002,
		eye:      eye,
		brain:    brain,
	}
}

func (a *Animal) chromosome() ga.Chromosome {
	// Only the brain is evolved; if other traits (say, eye range)
	// should evolve too, this is the place to append them.
	return ga.Chromosome(a.brain.Weights())
}

// Position returns the animal's position.
func (a *Animal) Position() Point {
	return a.position
}

// Rotation returns the animal's heading in radians.
func (a *Animal) Rotation() float32 {
	return a.rotation
}

// Satiation returns how many foods the animal ate this generation.
func (a *Animal) Satiation() int {
	return a.satiation
}
