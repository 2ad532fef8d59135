package discovery

import (
	"cpprun/internal/config"
	"cpprun/internal/domain"
)

// Selector turns user-supplied paths into the ordered list of sources to compile
type Selector struct {
	scanner    *Scanner
	classifier *Classifier
	filter     *Filter
}

// NewSelector creates a new Selector
func NewSelector(scanner *Scanner, classifier *Classifier, filter *Filter) *Selector {
	return &Selector{
		scanner:    scanner,
		classifier: classifier,
		filter:     filter,
	}
}

// Select validates paths and returns the final selection for mode. With no
// paths, root is searched as if it had been passed as the only directory.
// namePattern narrows the result further when non-empty.
func (s *Selector) Select(root string, paths []string, mode domain.Mode, namePattern string) ([]string, error) {
	var candidates []string
	if len(paths) == 0 {
		found, err := s.scanner.Scan(root, config.SourceSuffix)
		if err != nil {
			return nil, err
		}
		candidates = found
	} else {
		if err := ValidatePaths(paths); err != nil {
			return nil, err
		}
		expanded, err := s.scanner.Expand(paths)
		if err != nil {
			return nil, err
		}
		candidates = expanded
	}

	files := s.filter.FilterValid(candidates)
	files = DedupeSuites(files, s.classifier)
	files = s.filter.FilterByMode(files, mode)
	return s.filter.FilterByName(files, namePattern), nil
}

// Classify exposes the selector's classifier to callers compiling the selection
func (s *Selector) Classify(path string) domain.Category {
	return s.classifier.Classify(path)
}
