// Package bench runs independent trainings across several seeds and
// aggregates their outcomes, to judge whether a configuration learns
// reliably rather than by luck of one seed.
package bench

import (
	"math"
	"math/rand"
	"sync"

	"birdsim/internal/ga"
	"birdsim/internal/sim"
)

// Result is the outcome of one seeded training run.
type Result struct {
	Seed  int64
	Final ga.Statistics // statistics of the last generation
	Best  float32       // champion fitness across the whole run
}

// Run trains one fresh simulation per seed, each for the given number
// of generations, spreading runs across workers. Every run owns its
// own RNG, so results are reproducible per seed regardless of
// scheduling.
func Run(opts sim.Options, seeds []int64, generations, workers int) []Result {
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(seeds))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for i, seed := range seeds {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, seed int64) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = runOne(opts, seed, generations)
		}(i, seed)
	}
	wg.Wait()

	return results
}

func runOne(opts sim.Options, seed int64, generations int) Result {
	rng := rand.New(rand.NewSource(seed))
	s := sim.NewSimulation(rng, opts)

	var final ga.Statistics
	for g := 0; g < generations; g++ {
		final = s.Train(rng)
	}

	best := float32(0)
	if _, fitness, ok := s.Champion(); ok {
		best = fitness
	}

	return Result{Seed: seed, Final: final, Best: best}
}

// Summary aggregates results across seeds.
type Summary struct {
	Runs    int
	AvgMean float64 // mean of the final generations' average fitness
	AvgStd  float64 // spread of that value across seeds
	Best    float32 // best champion fitness over all runs
}

// Summarize computes the cross-seed aggregate.
func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results)}
	if s.Runs == 0 {
		return s
	}

	var sum float64
	for _, r := range results {
		sum += float64(r.Final.AvgFitness)
		if r.Best > s.Best {
			s.Best = r.Best
		}
	}
	s.AvgMean = sum / float64(s.Runs)

	var variance float64
	for _, r := range results {
		diff := float64(r.Final.AvgFitness) - s.AvgMean
		variance += diff * diff
	}
	s.AvgStd = math.Sqrt(variance / float64(s.Runs))

	return s
}
