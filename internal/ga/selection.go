package ga

import (
	"math/rand"
)

// SelectionMethod picks one individual from a population, given every
// individual's fitness; it returns the chosen index.
type SelectionMethod interface {
	Select(rng *rand.Rand, fitnesses []float32) int
}

// RouletteWheelSelection is fitness-proportionate selection: the
// probability of picking an individual is its share of the population's
// total fitness.
type RouletteWheelSelection struct{}

// Select draws one index. When every fitness is zero (common in the
// very first generation), it falls back to a uniform draw.
func (RouletteWheelSelection) Select(rng *rand.Rand, fitnesses []float32) int {
	if len(fitnesses) == 0 {
		panic("ga: selection from an empty population")
	}

	var total float64
	for _, f := range fitnesses {
		total += float64(f)
	}
	if total == 0 {
		return rng.Intn(len(fitnesses))
	}

	target := rng.Float64() * total
	var acc float64
	for i, f := range fitnesses {
		acc += float64(f)
		if target < acc {
			return i
		}
	}
	return len(fitnesses) - 1
}
