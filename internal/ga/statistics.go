package ga

import "fmt"

// Statistics summarizes one generation's fitness distribution. It is
// computed over the population that went *into* an evolution step.
type Statistics struct {
	MinFitness float32
	MaxFitness float32
	AvgFitness float32
}

// NewStatistics computes min/max/mean over the given fitness values.
func NewStatistics(fitnesses []float32) Statistics {
	if len(fitnesses) == 0 {
		panic("ga: statistics over an empty population")
	}

	min, max := fitnesses[0], fitnesses[0]
	var sum float64
	for _, f := range fitnesses {
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
		sum += float64(f)
	}

	return Statistics{
		MinFitness: min,
		MaxFitness: max,
		AvgFitness: float32(sum / float64(len(fitnesses))),
	}
}

func (s Statistics) String() string {
	return fmt.Sprintf("min=%.2f, max=%.2f, avg=%.2f", s.MinFitness, s.MaxFitness, s.AvgFitness)
}
