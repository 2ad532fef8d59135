package toolchain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"cpprun/internal/config"
	"cpprun/internal/domain"
)

var execCommandContext = exec.CommandContext

// Compiler builds a single C++ source into the configured artifact
type Compiler struct {
	config *config.Config
}

// NewCompiler creates a new Compiler
func NewCompiler(cfg *config.Config) *Compiler {
	return &Compiler{config: cfg}
}

// Args returns the compiler arguments for file. Tests link googletest and its
// main; benchmarks link google benchmark and are optimized.
func (c *Compiler) Args(file string, category domain.Category) ([]string, error) {
	args := []string{file, "-std=" + c.config.Standard}

	var libs []string
	switch category {
	case domain.CategoryTest:
		libs = config.DefaultTestLibs
	case domain.CategoryBenchmark:
		args = append(args, config.DefaultBenchmarkOpt)
		libs = config.DefaultBenchmarkLibs
	default:
		return nil, fmt.Errorf("%s is neither a test nor a benchmark", file)
	}

	args = append(args, c.config.ExtraFlags...)
	args = append(args, libs...)
	return append(args, "-o", c.config.GetArtifactPath()), nil
}

// Compile runs the compiler on file and returns its combined output. A
// non-zero compiler exit is not an error; callers check Compiled instead.
func (c *Compiler) Compile(ctx context.Context, file string, category domain.Category) (string, error) {
	args, err := c.Args(file, category)
	if err != nil {
		return "", err
	}

	cmd := execCommandContext(ctx, c.config.Compiler, args...)
	output, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return string(output), fmt.Errorf("run %s: %w", c.config.Compiler, err)
	}
	return string(output), nil
}

// Compiled reports whether the artifact exists
func (c *Compiler) Compiled() bool {
	_, err := os.Stat(c.config.GetArtifactPath())
	return err == nil
}

// ArtifactSize returns the size of the artifact in bytes, or 0 if it is absent
func (c *Compiler) ArtifactSize() int64 {
	info, err := os.Stat(c.config.GetArtifactPath())
	if err != nil {
		return 0
	}
	return info.Size()
}

// Clean removes the artifact if it exists
func (c *Compiler) Clean() error {
	err := os.Remove(c.config.GetArtifactPath())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove artifact: %w", err)
	}
	return nil
}
