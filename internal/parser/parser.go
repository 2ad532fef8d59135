package parser

// Parser extracts case-level results from a test binary's output
type Parser interface {
	ParseCounts(output string) (passed, failed int)
	ParseFailures(output string) []string
}
