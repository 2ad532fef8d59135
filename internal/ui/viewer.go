package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"cpprun/internal/domain"
	"cpprun/internal/storage"
)

// viewerDiagnosticLines caps the compiler output shown in the details pane
const viewerDiagnosticLines = 200

// Viewer displays run failures
type Viewer interface {
	View(output *domain.RunOutput) error
}

// FailureViewer displays failures of the last run in an interactive TUI
type FailureViewer struct {
	printer Printer
	storage storage.Storage
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(printer Printer, st storage.Storage) *FailureViewer {
	return &FailureViewer{
		printer: printer,
		storage: st,
	}
}

// View lists failed files on the left and diagnostics on the right. R toggles
// the resolved mark, which is written back to storage.
func (fv *FailureViewer) View(output *domain.RunOutput) error {
	// Indexes into output.Results of failed files
	var failed []int
	for i, r := range output.Results {
		if r.Failed() {
			failed = append(failed, i)
		}
	}

	if len(failed) == 0 {
		fv.printer.OK("✓ No failures in the last run (%s)", DescribeRun(output.Meta))
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	itemText := func(n int) string {
		return fv.formatItem(n+1, output.Results[failed[n]])
	}

	for n := range failed {
		list.AddItem(itemText(n), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		unresolved := 0
		for _, i := range failed {
			if !output.Results[i].Resolved {
				unresolved++
			}
		}
		headerView.SetText(fmt.Sprintf(" Failures (%d total, %d unresolved) | %s | ↑↓ navigate, [yellow]R[white] resolve, → details, ← back, Ctrl+C exit ",
			len(failed), unresolved, DescribeRun(output.Meta)))
	}

	updateDetails := func() {
		n := list.GetCurrentItem()
		if n < 0 || n >= len(failed) {
			return
		}
		r := output.Results[failed[n]]
		statsView.SetText(fv.formatStats(r))
		detailsView.SetText(fv.formatDetails(r))
		detailsView.ScrollToBeginning()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				n := list.GetCurrentItem()
				if n >= 0 && n < len(failed) {
					i := failed[n]
					output.Results[i].Resolved = !output.Results[i].Resolved
					list.SetItemText(n, itemText(n), "")
					updateHeader()
					// Best effort; the viewer keeps working if the report is read-only
					_ = fv.storage.SaveOutput(output)
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateHeader()
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatItem formats the list entry for the number-th failure
func (fv *FailureViewer) formatItem(number int, r domain.RunResult) string {
	if r.Resolved {
		return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", number, tview.Escape(r.Path))
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", number, tview.Escape(r.Path))
}

// formatStats formats the header line for a failed file
func (fv *FailureViewer) formatStats(r domain.RunResult) string {
	return fmt.Sprintf("[cyan]path:[white] [yellow]%s[white] ([cyan]%s[white])\n", tview.Escape(r.Path), r.Category)
}

// formatDetails formats a failed file for display using tview color tags
func (fv *FailureViewer) formatDetails(r domain.RunResult) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	switch r.Status {
	case domain.StatusCompileFailed:
		fmt.Fprintf(w, "[red]✗ Failed to compile[white]\n\n")
	case domain.StatusCrashed:
		fmt.Fprintf(w, "[red]✗ Crashed with error code %d[white]\n\n", r.ExitCode)
	}

	fmt.Fprintf(w, "[yellow]Compile time:[white]\t%s\n", r.CompileDuration.Round(time.Millisecond))
	if r.Status == domain.StatusCrashed {
		fmt.Fprintf(w, "[yellow]Run time:[white]\t%s\n", r.RunDuration.Round(time.Millisecond))
		fmt.Fprintf(w, "[yellow]Binary size:[white]\t%s\n", FormatArtifactSize(r.ArtifactSize))
	}
	fmt.Fprintf(w, "\n")

	if len(r.FailedCases) > 0 {
		fmt.Fprintf(w, "[yellow]Failed Cases:[white] (%d passed)\n", r.PassedCases)
		for _, name := range r.FailedCases {
			fmt.Fprintf(w, "  [red]✗[white] %s\n", tview.Escape(name))
		}
		fmt.Fprintf(w, "\n")
	}

	if r.Error != "" {
		fmt.Fprintf(w, "[yellow]Error:[white]\n%s\n\n", tview.Escape(r.Error))
	}

	if r.CompilerOutput != "" {
		trimmed, dropped := TrimLines(r.CompilerOutput, viewerDiagnosticLines)
		fmt.Fprintf(w, "[yellow]Compiler Output:[white]\n%s\n", tview.Escape(trimmed))
		if dropped > 0 {
			fmt.Fprintf(w, "  [gray]... and %d more lines[white]\n", dropped)
		}
	}

	w.Flush()
	return builder.String()
}
