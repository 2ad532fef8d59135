package discovery

import (
	"path/filepath"
	"strings"

	"cpprun/internal/config"
	"cpprun/internal/domain"
)

// Classifier assigns a category to a source path from its base name
type Classifier struct {
	// benchmarkSuites treats a file named exactly benchmark.cpp as an aggregate benchmark
	benchmarkSuites bool
}

// NewClassifier creates a new Classifier
func NewClassifier(benchmarkSuites bool) *Classifier {
	return &Classifier{benchmarkSuites: benchmarkSuites}
}

// Classify returns the category of path
func (c *Classifier) Classify(path string) domain.Category {
	name := filepath.Base(path)
	switch {
	case IsTest(name):
		return domain.CategoryTest
	case IsBenchmark(name):
		return domain.CategoryBenchmark
	case c.benchmarkSuites && name == config.BenchmarkSuite:
		return domain.CategoryBenchmark
	default:
		return domain.CategoryOther
	}
}

// IsTest reports whether name is a test source: an infix .test.cpp or exactly test.cpp
func IsTest(name string) bool {
	return strings.Contains(name, config.TestInfix) || name == config.TestSuite
}

// IsBenchmark reports whether name contains the .benchmark.cpp infix
func IsBenchmark(name string) bool {
	return strings.Contains(name, config.BenchmarkInfix)
}
