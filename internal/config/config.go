package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"birdsim/internal/sim"
)

// Config is the root configuration structure
type Config struct {
	Seed    int64       `yaml:"seed"`
	World   WorldConfig `yaml:"world"`
	Eye     EyeConfig   `yaml:"eye"`
	GA      GAConfig    `yaml:"ga"`
	Logging LogConfig   `yaml:"logging"`
}

// WorldConfig defines the world's population sizes and pacing
type WorldConfig struct {
	Animals          int `yaml:"animals"`
	Foods            int `yaml:"foods"`
	GenerationLength int `yaml:"generation_length"`
}

// EyeConfig defines the vision parameters shared by all animals
type EyeConfig struct {
	FovRange float32 `yaml:"fov_range"`
	FovAngle float32 `yaml:"fov_angle"` // radians
	Cells    int     `yaml:"cells"`
}

// GAConfig defines genetic algorithm parameters
type GAConfig struct {
	MutationChance float32 `yaml:"mutation_chance"`
	MutationCoeff  float32 `yaml:"mutation_coeff"`
}

// LogConfig defines logging and artifact parameters
type LogConfig struct {
	CSVPath           string `yaml:"csv_path"`
	JSONPath          string `yaml:"json_path"`
	SaveChampionEvery int    `yaml:"save_champion_every"`
}

// Load reads a YAML config file and returns a Config
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Seed == 0 {
		cfg.Seed = 1337
	}
	if cfg.World.Animals == 0 {
		cfg.World.Animals = 10
	}
	if cfg.World.Foods == 0 {
		cfg.World.Foods = 60
	}
	if cfg.World.GenerationLength == 0 {
		cfg.World.GenerationLength = sim.GenerationLength
	}
	if cfg.Eye.FovRange == 0 {
		cfg.Eye.FovRange = sim.FovRange
	}
	if cfg.Eye.FovAngle == 0 {
		cfg.Eye.FovAngle = sim.FovAngle
	}
	if cfg.Eye.Cells == 0 {
		cfg.Eye.Cells = sim.Cells
	}
	if cfg.GA.MutationChance == 0 {
		cfg.GA.MutationChance = 0.01
	}
	if cfg.GA.MutationCoeff == 0 {
		cfg.GA.MutationCoeff = 0.2
	}
	if cfg.Logging.CSVPath == "" {
		cfg.Logging.CSVPath = "runs/run.csv"
	}
	if cfg.Logging.JSONPath == "" {
		cfg.Logging.JSONPath = "runs/run.jsonl"
	}
	if cfg.Logging.SaveChampionEvery == 0 {
		cfg.Logging.SaveChampionEvery = 25
	}
}

// Validate rejects configurations the core would refuse: the core
// fail-fasts on bad preconditions, so the host checks them here first.
func (c *Config) Validate() error {
	if c.World.Animals < 1 {
		return fmt.Errorf("config: world.animals must be at least 1, got %d", c.World.Animals)
	}
	if c.World.Foods < 0 {
		return fmt.Errorf("config: world.foods must not be negative, got %d", c.World.Foods)
	}
	if c.World.GenerationLength < 1 {
		return fmt.Errorf("config: world.generation_length must be positive, got %d", c.World.GenerationLength)
	}
	if c.Eye.FovRange <= 0 {
		return fmt.Errorf("config: eye.fov_range must be positive, got %v", c.Eye.FovRange)
	}
	if c.Eye.FovAngle <= 0 || c.Eye.FovAngle > 2*math.Pi {
		return fmt.Errorf("config: eye.fov_angle must be in (0, 2*pi], got %v", c.Eye.FovAngle)
	}
	if c.Eye.Cells < 1 {
		return fmt.Errorf("config: eye.cells must be positive, got %d", c.Eye.Cells)
	}
	if c.GA.MutationChance < 0 || c.GA.MutationChance > 1 {
		return fmt.Errorf("config: ga.mutation_chance must be in [0, 1], got %v", c.GA.MutationChance)
	}
	return nil
}

// SimOptions converts the config into simulation options.
func (c *Config) SimOptions() sim.Options {
	return sim.Options{
		Eye:              sim.NewEye(c.Eye.FovRange, c.Eye.FovAngle, c.Eye.Cells),
		Animals:          c.World.Animals,
		Foods:            c.World.Foods,
		GenerationLength: c.World.GenerationLength,
		MutationChance:   c.GA.MutationChance,
		MutationCoeff:    c.GA.MutationCoeff,
	}
}
