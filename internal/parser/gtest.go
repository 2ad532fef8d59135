package parser

import (
	"regexp"
	"strconv"
)

var (
	passedPattern  = regexp.MustCompile(`(?m)^\[\s+PASSED\s+\]\s+(\d+)\s+tests?\.`)
	failedPattern  = regexp.MustCompile(`(?m)^\[\s+FAILED\s+\]\s+(\d+)\s+tests?, listed below`)
	failurePattern = regexp.MustCompile(`(?m)^\[\s+FAILED\s+\]\s+([A-Za-z_][\w/]*\.[\w/]+)`)
)

// GTestParser parses googletest console output
type GTestParser struct{}

// NewGTestParser creates a new GTestParser
func NewGTestParser() *GTestParser {
	return &GTestParser{}
}

// ParseCounts extracts passed and failed case counts from the final summary.
// Output without a summary (e.g. a crash mid-run) yields zeros.
func (p *GTestParser) ParseCounts(output string) (passed, failed int) {
	if m := passedPattern.FindStringSubmatch(output); len(m) == 2 {
		passed, _ = strconv.Atoi(m[1])
	}
	if m := failedPattern.FindStringSubmatch(output); len(m) == 2 {
		failed, _ = strconv.Atoi(m[1])
	}
	return passed, failed
}

// ParseFailures returns the names of failed cases in the order first reported.
// Each failure appears twice in googletest output (when it ends and again in
// the summary); duplicates are dropped.
func (p *GTestParser) ParseFailures(output string) []string {
	seen := make(map[string]bool)
	var failures []string

	for _, match := range failurePattern.FindAllStringSubmatch(output, -1) {
		name := match[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		failures = append(failures, name)
	}

	return failures
}
