package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Printer writes status lines to the console. Implementations are chosen once
// at startup by DetectPrinter and passed to the components that report progress.
type Printer interface {
	// OK prints a success/status line (green when colored)
	OK(format string, a ...any)
	// Warn prints a warning line (yellow when colored)
	Warn(format string, a ...any)
	// Error prints an error line (red when colored)
	Error(format string, a ...any)
	// Plain prints an uncolored line
	Plain(format string, a ...any)
	// Writer is where lines and child process output go
	Writer() io.Writer
	// Colored reports whether the printer emits ANSI colors
	Colored() bool
}

// DetectPrinter returns a colored printer when w is a terminal, NO_COLOR is
// unset and noColor is false, and a plain printer otherwise
func DetectPrinter(w io.Writer, noColor bool) Printer {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return NewPlainPrinter(w)
	}
	if f, ok := w.(*os.File); ok {
		fd := f.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return NewColorPrinter(w)
		}
	}
	return NewPlainPrinter(w)
}

type colorPrinter struct {
	w      io.Writer
	ok     *color.Color
	warn   *color.Color
	danger *color.Color
}

// NewColorPrinter returns a Printer that always emits colors
func NewColorPrinter(w io.Writer) Printer {
	newColor := func(attr color.Attribute) *color.Color {
		c := color.New(attr)
		c.EnableColor()
		return c
	}
	return &colorPrinter{
		w:      w,
		ok:     newColor(color.FgGreen),
		warn:   newColor(color.FgYellow),
		danger: newColor(color.FgRed),
	}
}

func (p *colorPrinter) OK(format string, a ...any) {
	p.ok.Fprintln(p.w, fmt.Sprintf(format, a...))
}

func (p *colorPrinter) Warn(format string, a ...any) {
	p.warn.Fprintln(p.w, fmt.Sprintf(format, a...))
}

func (p *colorPrinter) Error(format string, a ...any) {
	p.danger.Fprintln(p.w, fmt.Sprintf(format, a...))
}

func (p *colorPrinter) Plain(format string, a ...any) {
	fmt.Fprintf(p.w, format+"\n", a...)
}

func (p *colorPrinter) Writer() io.Writer { return p.w }

func (p *colorPrinter) Colored() bool { return true }

type plainPrinter struct {
	w io.Writer
}

// NewPlainPrinter returns a Printer without colors
func NewPlainPrinter(w io.Writer) Printer {
	return &plainPrinter{w: w}
}

func (p *plainPrinter) OK(format string, a ...any)    { p.Plain(format, a...) }
func (p *plainPrinter) Warn(format string, a ...any)  { p.Plain(format, a...) }
func (p *plainPrinter) Error(format string, a ...any) { p.Plain(format, a...) }

func (p *plainPrinter) Plain(format string, a ...any) {
	fmt.Fprintf(p.w, format+"\n", a...)
}

func (p *plainPrinter) Writer() io.Writer { return p.w }

func (p *plainPrinter) Colored() bool { return false }

// Banner prints a "*** TITLE ***" status line
func Banner(p Printer, title string) {
	p.OK("*** %s ***", title)
}

// Warning prints the warning banner followed by an explanation line
func Warning(p Printer, format string, a ...any) {
	p.Warn("*** WARNING ***")
	p.Plain(format, a...)
}
