package execution

import (
	"bytes"
	"context"
	"io"
	"strings"
	"time"

	"cpprun/internal/domain"
	"cpprun/internal/parser"
	"cpprun/internal/toolchain"
	"cpprun/internal/ui"
)

// diagnosticLines caps the compiler output echoed after a failed compile
const diagnosticLines = 40

// SequentialExecutor compiles and runs one file at a time. All files share a
// single artifact path, which is removed after every file.
type SequentialExecutor struct {
	compiler   *toolchain.Compiler
	runner     *toolchain.Runner
	classifier Classifier
	parser     parser.Parser
	printer    ui.Printer
	failFast   bool
}

// NewSequentialExecutor creates a new SequentialExecutor. The parser reads
// case results from test binaries; it may be nil.
func NewSequentialExecutor(compiler *toolchain.Compiler, runner *toolchain.Runner, classifier Classifier, testParser parser.Parser, printer ui.Printer) *SequentialExecutor {
	return &SequentialExecutor{
		compiler:   compiler,
		runner:     runner,
		classifier: classifier,
		parser:     testParser,
		printer:    printer,
	}
}

// SetFailFast stops the batch after the first file that fails to compile or crashes
func (e *SequentialExecutor) SetFailFast(failFast bool) {
	e.failFast = failFast
}

// Execute runs every file in order. Per-file failures are reported and the
// batch continues; only cancellation of ctx ends it early with an error.
// Files never reached are reported as skipped.
func (e *SequentialExecutor) Execute(ctx context.Context, files []string) ([]domain.RunResult, time.Duration, error) {
	startTime := time.Now()

	// Stale artifact from an interrupted run
	e.clean()

	results := make([]domain.RunResult, 0, len(files))
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			results = append(results, skipped(e.classifier, files[i:])...)
			return results, time.Since(startTime), err
		}

		result := e.executeFile(ctx, file)
		results = append(results, result)

		if e.failFast && result.Failed() {
			results = append(results, skipped(e.classifier, files[i+1:])...)
			break
		}
	}

	return results, time.Since(startTime), ctx.Err()
}

func (e *SequentialExecutor) executeFile(ctx context.Context, file string) domain.RunResult {
	result := domain.RunResult{
		Path:     file,
		Category: e.classifier.Classify(file),
	}
	defer e.clean()

	ui.Banner(e.printer, "CURRENT FILE")
	e.printer.Plain("%s", file)

	ui.Banner(e.printer, "COMPILING")
	compileStart := time.Now()
	spinner := ui.NewSpinner(e.printer, "compiling "+file)
	output, err := e.compiler.Compile(ctx, file, result.Category)
	spinner.Stop()
	result.CompileDuration = time.Since(compileStart)
	result.CompilerOutput = output

	// Interrupted while compiling; the compiler was killed, not the build
	if ctxErr := ctx.Err(); ctxErr != nil {
		result.Status = domain.StatusSkipped
		result.Error = ctxErr.Error()
		return result
	}

	if err != nil {
		result.Status = domain.StatusCompileFailed
		result.Error = err.Error()
		ui.Warning(e.printer, "%s failed to compile: %v", file, err)
		return result
	}

	if !e.compiler.Compiled() {
		result.Status = domain.StatusCompileFailed
		ui.Warning(e.printer, "%s failed to compile", file)
		e.printDiagnostics(output)
		return result
	}
	result.ArtifactSize = e.compiler.ArtifactSize()

	var captured *bytes.Buffer
	if e.parser != nil && result.Category == domain.CategoryTest {
		captured = &bytes.Buffer{}
	}

	ui.Banner(e.printer, "RUNNING")
	runStart := time.Now()
	code, err := e.runner.Run(ctx, writerOrNil(captured))
	result.RunDuration = time.Since(runStart)
	result.ExitCode = code

	if captured != nil {
		result.PassedCases, _ = e.parser.ParseCounts(captured.String())
		result.FailedCases = e.parser.ParseFailures(captured.String())
	}

	switch {
	case err != nil:
		result.Status = domain.StatusCrashed
		result.Error = err.Error()
		ui.Warning(e.printer, "program could not be started: %v", err)
	case code != 0:
		result.Status = domain.StatusCrashed
		ui.Warning(e.printer, "program crashed with error code %d", code)
		if len(result.FailedCases) > 0 {
			e.printer.Error("failed cases: %s", strings.Join(result.FailedCases, ", "))
		}
	default:
		result.Status = domain.StatusPassed
	}

	return result
}

func (e *SequentialExecutor) printDiagnostics(output string) {
	if output == "" {
		return
	}
	trimmed, dropped := ui.TrimLines(output, diagnosticLines)
	e.printer.Plain("%s", trimmed)
	if dropped > 0 {
		e.printer.Plain("... and %d more lines", dropped)
	}
}

func (e *SequentialExecutor) clean() {
	if err := e.compiler.Clean(); err != nil {
		ui.Warning(e.printer, "%v", err)
	}
}

// writerOrNil avoids handing the runner a non-nil interface holding a nil buffer
func writerOrNil(b *bytes.Buffer) io.Writer {
	if b == nil {
		return nil
	}
	return b
}

func skipped(classifier Classifier, files []string) []domain.RunResult {
	results := make([]domain.RunResult, 0, len(files))
	for _, file := range files {
		results = append(results, domain.RunResult{
			Path:     file,
			Category: classifier.Classify(file),
			Status:   domain.StatusSkipped,
		})
	}
	return results
}
