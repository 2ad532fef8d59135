package cli

import (
	"fmt"

	"cpprun/internal/config"
	"cpprun/internal/domain"
)

// Flags holds command-line flags
type Flags struct {
	Root               string
	Compiler           string
	Standard           string
	Artifact           string
	NameFilter         string
	Mode               string
	Performance        bool
	FailFast           bool
	SuppressBenchmarks bool
	NoColor            bool
	Cases              bool

	// SuppressBenchmarksSet is true when --suppress-benchmarks was passed
	SuppressBenchmarksSet bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Root:                  f.Root,
		Compiler:              f.Compiler,
		Standard:              f.Standard,
		Artifact:              f.Artifact,
		NameFilter:            f.NameFilter,
		Performance:           f.Performance,
		FailFast:              f.FailFast,
		SuppressBenchmarks:    f.SuppressBenchmarks,
		SuppressBenchmarksSet: f.SuppressBenchmarksSet,
		NoColor:               f.NoColor,
	}
}

// ParseMode converts the --mode flag value into a domain.Mode
func ParseMode(s string) (domain.Mode, error) {
	switch s {
	case "", "all", "run":
		return domain.ModeAll, nil
	case "test", "tests":
		return domain.ModeTest, nil
	case "bench", "benchmark", "benchmarks":
		return domain.ModeBenchmark, nil
	default:
		return "", fmt.Errorf("invalid mode %q: expected all, test or bench", s)
	}
}
