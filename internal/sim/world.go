package sim

import "math/rand"

// World holds the current generation's animals and foods. Both counts
// stay fixed for the simulation's lifetime; entities are allowed to
// overlap spatially.
type World struct {
	animals []*Animal
	foods   []Food
}

// RandomWorld populates a world with randomly placed animals and
// foods.
func RandomWorld(rng *rand.Rand, eye Eye, numAnimals, numFoods int) *World {
	animals := make([]*Animal, numAnimals)
	for i := range animals {
		animals[i] = RandomAnimal(rng, eye)
	}

	foods := make([]Food, numFoods)
	for i := range foods {
		foods[i] = RandomFood(rng)
	}

	return &World{animals: animals, foods: foods}
}

// Animals returns the world's animals.
func (w *World) Animals() []*Animal {
	return w.animals
}

// Foods returns the world's foods.
func (w *World) Foods() []Food {
	return w.foods
}
