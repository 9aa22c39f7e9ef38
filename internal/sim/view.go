package sim

// WorldView is a plain-value snapshot of the world for rendering. It
// shares no memory with the live simulation.
type WorldView struct {
	Animals []AnimalView
	Foods   []FoodView
}

// AnimalView is the render-facing slice of an animal's state.
type AnimalView struct {
	X        float32
	Y        float32
	Rotation float32
}

// FoodView is a food's position.
type FoodView struct {
	X float32
	Y float32
}

// Snapshot copies the current animal poses and food positions.
func (s *Simulation) Snapshot() WorldView {
	view := WorldView{
		Animals: make([]AnimalView, len(s.world.animals)),
		Foods:   make([]FoodView, len(s.world.foods)),
	}

	for i, animal := range s.world.animals {
		view.Animals[i] = AnimalView{
			X:        animal.position.X,
			Y:        animal.position.Y,
			Rotation: animal.rotation,
		}
	}
	for i, food := range s.world.foods {
		view.Foods[i] = FoodView{X: food.position.X, Y: food.position.Y}
	}

	return view
}
