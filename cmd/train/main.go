package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"birdsim/internal/bench"
	"birdsim/internal/config"
	"birdsim/internal/logging"
	"birdsim/internal/sim"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults used when empty)")
	generations := flag.Int("generations", 100, "number of generations to run")
	benchSeeds := flag.Int("bench", 0, "instead of training, benchmark this many seeds")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *benchSeeds > 0 {
		runBench(cfg, *benchSeeds, *generations)
		return
	}

	fmt.Printf("Bird Trainer - Animals: %d, Foods: %d, Generation length: %d\n",
		cfg.World.Animals, cfg.World.Foods, cfg.World.GenerationLength)
	fmt.Printf("Eye: range=%.2f, angle=%.2f rad, cells=%d\n",
		cfg.Eye.FovRange, cfg.Eye.FovAngle, cfg.Eye.Cells)
	fmt.Printf("Mutation: chance=%.2f, coeff=%.2f\n", cfg.GA.MutationChance, cfg.GA.MutationCoeff)
	fmt.Println("---")

	rng := rand.New(rand.NewSource(cfg.Seed))
	s := sim.NewSimulation(rng, cfg.SimOptions())

	logger, err := logging.NewLogger(cfg.Logging.CSVPath, cfg.Logging.JSONPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	startTime := time.Now()

	for gen := 1; gen <= *generations; gen++ {
		stats := s.Train(rng)
		logger.LogGeneration(gen, stats)

		if cfg.Logging.SaveChampionEvery > 0 && gen%cfg.Logging.SaveChampionEvery == 0 {
			saveChampion(s, filepath.Join("artifacts", fmt.Sprintf("champion_gen%d.json", gen)))
		}
	}

	elapsed := time.Since(startTime)
	fmt.Println("---")
	fmt.Printf("Training complete! %d generations in %v\n", *generations, elapsed)

	if genome, fitness, ok := s.Champion(); ok {
		fmt.Printf("Best ever: fitness=%.0f (%d genes)\n", fitness, genome.Len())
		saveChampion(s, filepath.Join("artifacts", "champion_final.json"))
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func saveChampion(s *sim.Simulation, path string) {
	genome, fitness, ok := s.Champion()
	if !ok {
		return
	}
	if err := logging.SaveChampion(path, s.Generation(), fitness, genome); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save champion: %v\n", err)
	}
}

func runBench(cfg *config.Config, numSeeds, generations int) {
	fmt.Printf("Benchmarking %d seeds x %d generations\n", numSeeds, generations)

	seeds := make([]int64, numSeeds)
	for i := range seeds {
		seeds[i] = cfg.Seed + int64(i)
	}

	start := time.Now()
	results := bench.Run(cfg.SimOptions(), seeds, generations, runtime.NumCPU())
	summary := bench.Summarize(results)

	for _, r := range results {
		fmt.Printf("  seed %6d | final %s | best=%.0f\n", r.Seed, r.Final, r.Best)
	}
	fmt.Println("---")
	fmt.Printf("Final avg fitness: mean=%.2f, std=%.2f | best champion=%.0f | took %v\n",
		summary.AvgMean, summary.AvgStd, summary.Best, time.Since(start))
}
