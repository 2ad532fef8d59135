package commands

import (
	"fmt"

	"cpprun/internal/config"
	"cpprun/internal/domain"

	"github.com/spf13/cobra"
)

// RunCommand handles the run, test and bench commands
type RunCommand struct {
	config *config.Config
	deps   *Dependencies
	mode   domain.Mode
}

// NewRunCommand creates a new RunCommand for mode
func NewRunCommand(cfg *config.Config, deps *Dependencies, mode domain.Mode) *RunCommand {
	return &RunCommand{
		config: cfg,
		deps:   deps,
		mode:   mode,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Invalid paths abort here, before anything is compiled
	files, err := rc.deps.Selector.Select(rc.config.Root, args, rc.mode, rc.config.Flags.NameFilter)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		rc.deps.Printer.Warn("No files to execute")
		return nil
	}

	if rc.config.Flags.Performance {
		// Non-fatal; a warning has already been printed
		_ = rc.deps.Performance.Enable(ctx)
	}

	rc.deps.Formatter.PrintFiles(files)

	rc.deps.Executor.SetFailFast(rc.config.Flags.FailFast)
	results, duration, runErr := rc.deps.Executor.Execute(ctx, files)

	output, saveErr := rc.deps.Storage.Save(rc.mode, results, duration)

	rc.deps.Formatter.PrintSummary(output)

	if runErr != nil {
		return runErr
	}
	if saveErr != nil {
		return fmt.Errorf("failed to save run results: %w", saveErr)
	}
	return nil
}
