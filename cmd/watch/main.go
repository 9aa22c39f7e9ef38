package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/exec"
	"runtime"
	"time"

	"birdsim/internal/config"
	"birdsim/internal/logging"
	"birdsim/internal/sim"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults used when empty)")
	championPath := flag.String("champion", "", "path to champion JSON to seed the brains from")
	seed := flag.Int64("seed", 0, "random seed (config seed when 0)")
	pretrain := flag.Int("train", 0, "fast-forward this many generations before watching")
	delay := flag.Int("delay", 50, "delay between frames in milliseconds")
	width := flag.Int("width", 60, "display width in cells")
	height := flag.Int("height", 30, "display height in cells")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *seed == 0 {
		*seed = cfg.Seed
	}

	rng := rand.New(rand.NewSource(*seed))
	s := sim.NewSimulation(rng, cfg.SimOptions())

	if *championPath != "" {
		champion, err := logging.LoadChampion(*championPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading champion: %v\n", err)
			os.Exit(1)
		}
		if err := s.SeedBrains(rng, champion.Genome); err != nil {
			fmt.Fprintf(os.Stderr, "Error seeding brains: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Loaded champion from gen %d (fitness=%.0f)\n", champion.Generation, champion.Fitness)
	}

	for g := 0; g < *pretrain; g++ {
		stats := s.Train(rng)
		fmt.Printf("Pre-train gen %3d | %s\n", g+1, stats)
	}

	fmt.Println("Press Ctrl+C to exit")
	display := NewDisplay(*width, *height, cfg.World.GenerationLength)
	frameDelay := time.Duration(*delay) * time.Millisecond

	for {
		display.Render(s)
		s.Step(rng)
		time.Sleep(frameDelay)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// Display renders world snapshots as an ASCII grid.
type Display struct {
	width     int
	height    int
	genLength int
}

// NewDisplay creates a new display
func NewDisplay(width, height, genLength int) *Display {
	return &Display{width: width, height: height, genLength: genLength}
}

// Render draws the current world state to the terminal.
func (d *Display) Render(s *sim.Simulation) {
	clearScreen()

	grid := make([][]rune, d.height)
	for y := range grid {
		grid[y] = make([]rune, d.width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	view := s.Snapshot()

	for _, food := range view.Foods {
		x, y := d.cell(food.X, food.Y)
		grid[y][x] = '·'
	}
	for _, animal := range view.Animals {
		x, y := d.cell(animal.X, animal.Y)
		grid[y][x] = headingGlyph(animal.Rotation)
	}

	fmt.Print("┌")
	for x := 0; x < d.width; x++ {
		fmt.Print("─")
	}
	fmt.Println("┐")

	for y := 0; y < d.height; y++ {
		fmt.Print("│")
		for x := 0; x < d.width; x++ {
			fmt.Printf("%c", grid[y][x])
		}
		fmt.Println("│")
	}

	fmt.Print("└")
	for x := 0; x < d.width; x++ {
		fmt.Print("─")
	}
	fmt.Println("┘")

	fmt.Printf("  Gen: %d | Age: %d/%d\n", s.Generation(), s.Age(), d.genLength)
}

// cell maps torus coordinates to grid indices, rendering +Y upward.
func (d *Display) cell(x, y float32) (int, int) {
	col := int(x * float32(d.width))
	if col > d.width-1 {
		col = d.width - 1
	}
	row := d.height - 1 - int(y*float32(d.height))
	if row < 0 {
		row = 0
	}
	if row > d.height-1 {
		row = d.height - 1
	}
	return col, row
}

func headingGlyph(rotation float32) rune {
	// Heading of rotation 0 is +Y; the screen's up.
	dx := -math.Sin(float64(rotation))
	dy := math.Cos(float64(rotation))

	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return '▶'
		}
		return '◀'
	}
	if dy > 0 {
		return '▲'
	}
	return '▼'
}

func clearScreen() {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = os.Stdout
	cmd.Run()
}
