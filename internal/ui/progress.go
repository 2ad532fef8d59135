package ui

import (
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

const spinnerInterval = 100 * time.Millisecond

// Spinner shows an indeterminate progress indicator while a child process runs
type Spinner struct {
	bar  *progressbar.ProgressBar
	done chan struct{}
	wg   sync.WaitGroup
}

// NewSpinner creates and starts a spinner on the printer's writer. A printer without colors gets
// a no-op spinner so redirected output stays free of control sequences.
func NewSpinner(p Printer, description string) *Spinner {
	if !p.Colored() {
		return &Spinner{}
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(color.CyanString(description)),
		progressbar.OptionSetWriter(p.Writer()),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)

	s := &Spinner{bar: bar, done: make(chan struct{})}
	s.wg.Add(1)
	go s.spin()
	return s
}

func (s *Spinner) spin() {
	defer s.wg.Done()
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.bar.Add(1)
		}
	}
}

// Stop halts the spinner and clears its line
func (s *Spinner) Stop() {
	if s.bar == nil {
		return
	}
	close(s.done)
	s.wg.Wait()
	s.bar.Finish()
}
