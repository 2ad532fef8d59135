package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"cpprun/internal/config"
)

// Runner executes the compiled artifact with the console attached
type Runner struct {
	config *config.Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a new Runner writing to stdout and stderr
func NewRunner(cfg *config.Config, stdout, stderr io.Writer) *Runner {
	return &Runner{
		config: cfg,
		stdin:  os.Stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Command returns the path used to execute the artifact. A bare name gets a
// ./ prefix so it is not looked up in PATH.
func (r *Runner) Command() string {
	path := r.config.GetArtifactPath()
	if filepath.IsAbs(path) || strings.ContainsRune(path, filepath.Separator) {
		return path
	}
	return "." + string(filepath.Separator) + path
}

// Run executes the artifact to completion and returns its exit code. When
// capture is non-nil it receives a copy of standard output. An error is
// returned only when the artifact could not be started.
func (r *Runner) Run(ctx context.Context, capture io.Writer) (int, error) {
	cmd := execCommandContext(ctx, r.Command())
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	if capture != nil {
		cmd.Stdout = io.MultiWriter(r.stdout, capture)
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("run %s: %w", r.Command(), err)
}
