package domain

import "time"

// Status is the outcome of compiling and running a single source file
type Status string

const (
	StatusPassed        Status = "passed"
	StatusCompileFailed Status = "compile-failed"
	StatusCrashed       Status = "crashed"
	StatusSkipped       Status = "skipped"
)

// RunResult represents the result of compiling and executing one source file
type RunResult struct {
	Path            string        `json:"path"`
	Category        Category      `json:"category"`
	Status          Status        `json:"status"`
	ExitCode        int           `json:"exit_code"`
	CompilerOutput  string        `json:"compiler_output,omitempty"`
	ArtifactSize    int64         `json:"artifact_size,omitempty"`
	PassedCases     int           `json:"passed_cases,omitempty"`
	FailedCases     []string      `json:"failed_cases,omitempty"` // googletest cases reported as FAILED
	CompileDuration time.Duration `json:"compile_duration"`
	RunDuration     time.Duration `json:"run_duration"`
	Error           string        `json:"error,omitempty"`
	Resolved        bool          `json:"resolved,omitempty"` // marked in the failures viewer
}

// Failed reports whether the file did not compile or its binary exited non-zero
func (r RunResult) Failed() bool {
	return r.Status == StatusCompileFailed || r.Status == StatusCrashed
}

// RunMeta contains metadata about a run
type RunMeta struct {
	Mode            Mode    `json:"mode"`
	TotalFiles      int     `json:"total_files"`
	PassedFiles     int     `json:"passed_files"`
	CrashedFiles    int     `json:"crashed_files"`
	CompileFailures int     `json:"compile_failures"`
	SkippedFiles    int     `json:"skipped_files"`
	FailedCases     int     `json:"failed_cases"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted structure for a run
type RunOutput struct {
	Meta    RunMeta     `json:"meta"`
	Results []RunResult `json:"results"`
}

// Failures returns the failed results in run order
func (o *RunOutput) Failures() []RunResult {
	var failed []RunResult
	for _, r := range o.Results {
		if r.Failed() {
			failed = append(failed, r)
		}
	}
	return failed
}
