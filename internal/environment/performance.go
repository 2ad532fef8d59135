package environment

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"cpprun/internal/config"
	"cpprun/internal/ui"
)

var execCommandContext = exec.CommandContext

// PerformanceMode switches the CPU scaling governor to "performance"
type PerformanceMode struct {
	printer ui.Printer
	command []string
}

// NewPerformanceMode creates a PerformanceMode that runs the cpupower command
func NewPerformanceMode(printer ui.Printer) *PerformanceMode {
	return &PerformanceMode{
		printer: printer,
		command: config.PerformanceCommand,
	}
}

// Enable attempts to elevate the governor. Failure only prints a warning; the
// returned error is informational and callers are expected to continue.
func (pm *PerformanceMode) Enable(ctx context.Context) error {
	ui.Banner(pm.printer, "ENABLING PERFORMANCE MODE")

	cmd := execCommandContext(ctx, pm.command[0], pm.command[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = pm.printer.Writer()
	cmd.Stderr = pm.printer.Writer()

	if err := cmd.Run(); err != nil {
		pm.printer.Plain("%v", err)
		ui.Warning(pm.printer, "failed to enable performance mode")
		pm.printer.Plain("try running with sudo and ensure cpupower is installed")
		return fmt.Errorf("enable performance mode: %w", err)
	}

	ui.Banner(pm.printer, "ENABLED PERFORMANCE MODE")
	return nil
}
