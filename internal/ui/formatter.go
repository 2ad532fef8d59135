package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"cpprun/internal/discovery"
	"cpprun/internal/domain"
)

// Formatter formats and displays selections and run summaries
type Formatter struct {
	printer Printer
	parser  *discovery.Parser
}

// NewFormatter creates a new Formatter
func NewFormatter(printer Printer, parser *discovery.Parser) *Formatter {
	return &Formatter{
		printer: printer,
		parser:  parser,
	}
}

func (f *Formatter) paint(attr color.Attribute, format string, a ...any) string {
	c := color.New(attr)
	if f.printer.Colored() {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprintf(format, a...)
}

func (f *Formatter) line(format string, a ...any) {
	fmt.Fprintf(f.printer.Writer(), format+"\n", a...)
}

// PrintFiles prints the selection in run order under the FILES banner
func (f *Formatter) PrintFiles(files []string) {
	Banner(f.printer, "FILES")
	for _, file := range files {
		f.printer.Plain("%s", file)
	}
}

// PrintSelection prints the selection as a tree, optionally with the cases
// each file registers. Files in failed are marked with [F] from the last run.
func (f *Formatter) PrintSelection(files []string, classify func(string) domain.Category, showCases bool, failed map[string]struct{}) {
	f.printer.OK("Found %d file(s):\n", len(files))

	for i, file := range files {
		isLastFile := i == len(files)-1

		marker := ""
		if _, ok := failed[filepath.Clean(file)]; ok {
			marker = " " + f.paint(color.FgRed, "[F]")
		}

		connector := "├── "
		if isLastFile {
			connector = "└── "
		}
		f.line("%s%s %s%s", connector, f.paint(color.FgCyan, "%s", file), f.paint(color.FgHiBlack, "(%s)", classify(file)), marker)

		if !showCases {
			continue
		}

		childPrefix := "│   "
		if isLastFile {
			childPrefix = "    "
		}

		cases, err := f.parser.FindCases(file)
		if err != nil {
			f.line("%s└── %s", childPrefix, f.paint(color.FgRed, "error reading file: %v", err))
			continue
		}
		if len(cases) == 0 {
			f.line("%s└── %s", childPrefix, f.paint(color.FgRed, "(no cases found)"))
			continue
		}
		for j, name := range cases {
			caseConnector := "├── "
			if j == len(cases)-1 {
				caseConnector = "└── "
			}
			f.line("%s%s%s", childPrefix, caseConnector, f.paint(color.FgYellow, "%s", name))
		}
	}
}

// PrintSummary prints the statistics table for a finished run
func (f *Formatter) PrintSummary(output *domain.RunOutput) {
	meta := output.Meta

	f.line("")
	f.line("%s", f.paint(color.FgCyan, "╔═══════════════════════════════════════════════════════════════╗"))
	f.line("%s", f.paint(color.FgCyan, "║                        Run Statistics                         ║"))
	f.line("%s", f.paint(color.FgCyan, "╚═══════════════════════════════════════════════════════════════╝"))

	rows := []struct {
		label string
		value string
		attr  color.Attribute
	}{
		{"Mode", string(meta.Mode), color.FgWhite},
		{"Total Files", fmt.Sprintf("%d", meta.TotalFiles), color.FgWhite},
		{"Passed", fmt.Sprintf("%d", meta.PassedFiles), color.FgGreen},
		{"Crashed", fmt.Sprintf("%d", meta.CrashedFiles), color.FgRed},
		{"Compile Failures", fmt.Sprintf("%d", meta.CompileFailures), color.FgRed},
		{"Skipped", fmt.Sprintf("%d", meta.SkippedFiles), color.FgYellow},
		{"Failed Test Cases", fmt.Sprintf("%d", meta.FailedCases), color.FgRed},
		{"Duration", fmt.Sprintf("%.2fs", meta.DurationSeconds), color.FgWhite},
	}

	f.line("┌─────────────────────────────────┬─────────────────────────────┐")
	for i, row := range rows {
		f.line("│ %-31s │ %s │", row.label, f.paint(row.attr, "%-27s", row.value))
		if i < len(rows)-1 {
			f.line("├─────────────────────────────────┼─────────────────────────────┤")
		}
	}
	f.line("└─────────────────────────────────┴─────────────────────────────┘")

	f.line("")
	failures := output.Failures()
	if len(failures) == 0 {
		f.printer.OK("✓ All %d file(s) passed", meta.TotalFiles-meta.SkippedFiles)
		return
	}

	f.printer.Error("✗ %d file(s) failed", len(failures))
	for _, r := range failures {
		f.line("  %s %s", f.paint(color.FgYellow, "%s", r.Path), f.describe(r))
		for j, name := range r.FailedCases {
			connector := "├── "
			if j == len(r.FailedCases)-1 {
				connector = "└── "
			}
			f.line("    %s%s", connector, f.paint(color.FgRed, "%s", name))
		}
	}
}

func (f *Formatter) describe(r domain.RunResult) string {
	switch r.Status {
	case domain.StatusCompileFailed:
		return f.paint(color.FgRed, "failed to compile")
	case domain.StatusCrashed:
		return f.paint(color.FgRed, "crashed with error code %d", r.ExitCode)
	default:
		return string(r.Status)
	}
}

// DescribeRun returns a one-line description of when a stored run happened
func DescribeRun(meta domain.RunMeta) string {
	ts, err := time.Parse(time.RFC3339, meta.Timestamp)
	if err != nil {
		return fmt.Sprintf("%d file(s)", meta.TotalFiles)
	}
	return fmt.Sprintf("%d file(s), %s", meta.TotalFiles, humanize.Time(ts))
}

// FormatArtifactSize returns a human readable binary size
func FormatArtifactSize(size int64) string {
	if size <= 0 {
		return "-"
	}
	return humanize.Bytes(uint64(size))
}

// TrimLines shortens output to at most limit lines, returning how many were dropped
func TrimLines(output string, limit int) (string, int) {
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) <= limit {
		return strings.Join(lines, "\n"), 0
	}
	return strings.Join(lines[:limit], "\n"), len(lines) - limit
}
