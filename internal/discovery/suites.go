package discovery

import (
	"path/filepath"

	"cpprun/internal/config"
	"cpprun/internal/domain"
)

// DedupeSuites drops individual test files already covered by a test.cpp
// aggregate in the same directory. Aggregates come first, in input order,
// followed by every other surviving file in input order. Benchmarks are only
// suppressed by a benchmark.cpp aggregate, and only when the classifier
// recognizes benchmark suites.
func DedupeSuites(files []string, classifier *Classifier) []string {
	testSuites := make(map[string]struct{})
	benchSuites := make(map[string]struct{})
	var selected []string

	for _, file := range files {
		dir, name := filepath.Split(file)
		dir = filepath.Clean(dir)
		switch {
		case name == config.TestSuite:
			testSuites[dir] = struct{}{}
		case isBenchmarkSuite(name, classifier):
			benchSuites[dir] = struct{}{}
		default:
			continue
		}
		selected = append(selected, file)
	}

	for _, file := range files {
		dir, name := filepath.Split(file)
		dir = filepath.Clean(dir)
		if name == config.TestSuite || isBenchmarkSuite(name, classifier) {
			continue
		}

		covered := testSuites
		if classifier.Classify(file) == domain.CategoryBenchmark {
			covered = benchSuites
		}
		if _, ok := covered[dir]; ok {
			continue
		}
		selected = append(selected, file)
	}

	return selected
}

func isBenchmarkSuite(name string, classifier *Classifier) bool {
	return name == config.BenchmarkSuite && classifier.Classify(name) == domain.CategoryBenchmark
}
