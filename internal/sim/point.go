package sim

import (
	"math"
	"math/rand"
)

// Point is a position on the unit torus [0,1)×[0,1).
type Point struct {
	X, Y float32
}

func randomPoint(rng *rand.Rand) Point {
	return Point{
		X: float32(rng.Float64()),
		Y: float32(rng.Float64()),
	}
}

func distance(a, b Point) float32 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return float32(math.Sqrt(dx*dx + dy*dy))
}

// wrap folds v into [min, max).
func wrap(v, min, max float32) float32 {
	width := float64(max - min)
	r := math.Mod(float64(v)-float64(min), width)
	if r < 0 {
		r += width
	}
	w := min + float32(r)
	// Rounding can push a value just below max onto max itself; on a
	// torus that is the same point as min.
	if w >= max {
		w = min
	}
	return w
}
