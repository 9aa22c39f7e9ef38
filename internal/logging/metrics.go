package logging

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"birdsim/internal/ga"
)

// Logger writes per-generation training output: a CSV for spreadsheets,
// a JSONL stream for tooling, and a console summary line.
type Logger struct {
	csvPath     string
	jsonPath    string
	csvFile     *os.File
	csvWriter   *csv.Writer
	jsonFile    *os.File
	initialized bool
}

// NewLogger creates a logger and makes sure the output directories
// exist.
func NewLogger(csvPath, jsonPath string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(csvPath), 0755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(jsonPath), 0755); err != nil {
		return nil, err
	}

	return &Logger{csvPath: csvPath, jsonPath: jsonPath}, nil
}

// Init opens the log files and writes the CSV header.
func (l *Logger) Init() error {
	var err error

	l.csvFile, err = os.Create(l.csvPath)
	if err != nil {
		return err
	}
	l.csvWriter = csv.NewWriter(l.csvFile)

	header := []string{"generation", "min_fitness", "max_fitness", "avg_fitness"}
	if err := l.csvWriter.Write(header); err != nil {
		return err
	}

	l.jsonFile, err = os.OpenFile(l.jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	l.initialized = true
	return nil
}

// Close flushes and closes all log files.
func (l *Logger) Close() {
	if l.csvWriter != nil {
		l.csvWriter.Flush()
	}
	if l.csvFile != nil {
		l.csvFile.Close()
	}
	if l.jsonFile != nil {
		l.jsonFile.Close()
	}
}

// GenerationSummary holds one generation's statistics
type GenerationSummary struct {
	Generation int     `json:"generation"`
	MinFitness float32 `json:"min_fitness"`
	MaxFitness float32 `json:"max_fitness"`
	AvgFitness float32 `json:"avg_fitness"`
}

// LogGeneration records one generation's fitness statistics.
func (l *Logger) LogGeneration(gen int, stats ga.Statistics) {
	if !l.initialized {
		return
	}

	row := []string{
		fmt.Sprintf("%d", gen),
		fmt.Sprintf("%.2f", stats.MinFitness),
		fmt.Sprintf("%.2f", stats.MaxFitness),
		fmt.Sprintf("%.2f", stats.AvgFitness),
	}
	l.csvWriter.Write(row)
	l.csvWriter.Flush()

	summary := GenerationSummary{
		Generation: gen,
		MinFitness: stats.MinFitness,
		MaxFitness: stats.MaxFitness,
		AvgFitness: stats.AvgFitness,
	}
	jsonLine, _ := json.Marshal(summary)
	l.jsonFile.WriteString(string(jsonLine) + "\n")

	fmt.Printf("Gen %4d | %s\n", gen, stats)
}

// ChampionData is the saved champion format
type ChampionData struct {
	Generation int       `json:"generation"`
	Fitness    float32   `json:"fitness"`
	Genome     []float32 `json:"genome"`
}

// SaveChampion writes a champion chromosome to a JSON file.
func SaveChampion(path string, gen int, fitness float32, genome ga.Chromosome) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data := ChampionData{
		Generation: gen,
		Fitness:    fitness,
		Genome:     genome,
	}
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, jsonData, 0644)
}

// LoadChampion reads a champion chromosome back from a JSON file.
func LoadChampion(path string) (*ChampionData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var champion ChampionData
	if err := json.Unmarshal(data, &champion); err != nil {
		return nil, err
	}
	return &champion, nil
}
