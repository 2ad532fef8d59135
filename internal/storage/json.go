package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cpprun/internal/domain"
)

// Summarize builds the report for a finished run
func Summarize(mode domain.Mode, results []domain.RunResult, duration time.Duration) *domain.RunOutput {
	meta := domain.RunMeta{
		Mode:            mode,
		TotalFiles:      len(results),
		Duration:        duration.String(),
		DurationSeconds: duration.Seconds(),
		Timestamp:       time.Now().Format(time.RFC3339),
	}
	for _, r := range results {
		switch r.Status {
		case domain.StatusPassed:
			meta.PassedFiles++
		case domain.StatusCrashed:
			meta.CrashedFiles++
		case domain.StatusCompileFailed:
			meta.CompileFailures++
		case domain.StatusSkipped:
			meta.SkippedFiles++
		}
		meta.FailedCases += len(r.FailedCases)
	}

	return &domain.RunOutput{Meta: meta, Results: results}
}

// Save writes the run results to the configured JSON output file.
func (s *JSONStorage) Save(mode domain.Mode, results []domain.RunResult, duration time.Duration) (*domain.RunOutput, error) {
	output := Summarize(mode, results, duration)
	return output, s.SaveOutput(output)
}

// Load reads the last run report from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file.
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
