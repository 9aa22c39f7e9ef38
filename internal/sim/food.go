package sim

import "math/rand"

// Food is a point the animals try to reach. Eaten food is relocated,
// never removed, so the world's food count stays fixed.
type Food struct {
	position Point
}

// RandomFood places a food uniformly on the torus.
func RandomFood(rng *rand.Rand) Food {
	return Food{position: randomPoint(rng)}
}

// Position returns the food's position.
func (f Food) Position() Point {
	return f.position
}
