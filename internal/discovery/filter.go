package discovery

import (
	"path/filepath"
	"strings"

	"cpprun/internal/domain"
)

// Filter narrows candidate lists
type Filter struct {
	classifier *Classifier
}

// NewFilter creates a new Filter
func NewFilter(classifier *Classifier) *Filter {
	return &Filter{classifier: classifier}
}

// FilterValid keeps only tests and benchmarks and drops repeated paths,
// keeping the first occurrence
func (f *Filter) FilterValid(candidates []string) []string {
	seen := make(map[string]struct{}, len(candidates))
	var valid []string

	for _, candidate := range candidates {
		path := filepath.Clean(candidate)
		if _, ok := seen[path]; ok {
			continue
		}
		if !f.classifier.Classify(path).Runnable() {
			continue
		}
		seen[path] = struct{}{}
		valid = append(valid, path)
	}

	return valid
}

// FilterByMode keeps the files whose category the mode accepts
func (f *Filter) FilterByMode(files []string, mode domain.Mode) []string {
	var filtered []string
	for _, file := range files {
		if mode.Accepts(f.classifier.Classify(file)) {
			filtered = append(filtered, file)
		}
	}
	return filtered
}

// FilterByName filters files by name pattern using wildcard matching
// Supports patterns like "*.test.cpp" or "*trie*"
func (f *Filter) FilterByName(files []string, pattern string) []string {
	if pattern == "" {
		return files
	}

	var filtered []string

	for _, file := range files {
		name := filepath.Base(file)

		// filepath.Match supports * and ? wildcards
		matched, err := filepath.Match(pattern, name)
		if err == nil && matched {
			filtered = append(filtered, file)
			continue
		}

		// Fall back to matching every literal part of the pattern in order-free
		// substring fashion, so "*trie*" also catches "x-fast-trie.test.cpp"
		if strings.Contains(pattern, "*") {
			if matchParts(name, strings.Split(pattern, "*")) {
				filtered = append(filtered, file)
			}
			continue
		}

		// No wildcards: simple contains check
		if !strings.Contains(pattern, "?") && strings.Contains(name, pattern) {
			filtered = append(filtered, file)
		}
	}

	return filtered
}

func matchParts(name string, parts []string) bool {
	nonEmpty := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		nonEmpty = true
		if !strings.Contains(name, part) {
			return false
		}
	}
	return nonEmpty
}
