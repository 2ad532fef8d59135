package commands

import (
	"path/filepath"

	"cpprun/internal/config"
	"cpprun/internal/domain"

	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	deps      *Dependencies
	mode      domain.Mode
	showCases bool
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, deps *Dependencies, mode domain.Mode, showCases bool) *ListCommand {
	return &ListCommand{
		config:    cfg,
		deps:      deps,
		mode:      mode,
		showCases: showCases,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	files, err := lc.deps.Selector.Select(lc.config.Root, args, lc.mode, lc.config.Flags.NameFilter)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		lc.deps.Printer.Warn("No files found")
		return nil
	}

	lc.deps.Formatter.PrintSelection(files, lc.deps.Selector.Classify, lc.showCases, lc.failedPaths())
	return nil
}

// failedPaths returns the files that failed in the last run, if there was one
func (lc *ListCommand) failedPaths() map[string]struct{} {
	failed := make(map[string]struct{})
	output, err := lc.deps.Storage.Load()
	if err != nil {
		return failed
	}
	for _, r := range output.Failures() {
		failed[filepath.Clean(r.Path)] = struct{}{}
	}
	return failed
}
