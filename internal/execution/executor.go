package execution

import (
	"context"
	"time"

	"cpprun/internal/domain"
)

// Executor compiles and runs source files and returns results
type Executor interface {
	Execute(ctx context.Context, files []string) ([]domain.RunResult, time.Duration, error)
}

// Classifier assigns categories to selected files
type Classifier interface {
	Classify(path string) domain.Category
}
