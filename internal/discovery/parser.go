package discovery

import (
	"fmt"
	"os"
	"regexp"
	"sort"
)

var (
	// TEST(Suite, Name), TEST_F(Fixture, Name), TEST_P(...), TYPED_TEST(...)
	testMacroPattern        = regexp.MustCompile(`(?m)^\s*(?:TEST|TEST_F|TEST_P|TYPED_TEST|TYPED_TEST_P)\s*\(\s*(\w+)\s*,\s*(\w+)\s*\)`)
	// BENCHMARK(BM_Name) and BENCHMARK_F(Fixture, Name)
	benchmarkMacroPattern   = regexp.MustCompile(`(?m)^\s*BENCHMARK\s*\(\s*(\w+)\s*\)`)
	benchmarkFixturePattern = regexp.MustCompile(`(?m)^\s*BENCHMARK_(?:DEFINE_)?F\s*\(\s*(\w+)\s*,\s*(\w+)\s*\)`)
)

// Parser parses source files to extract the cases they register
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// FindCases finds all googletest and google benchmark cases in a source file
func (p *Parser) FindCases(filePath string) ([]string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	source := string(content)
	cases := make(map[string]bool) // fixtures may be both defined and registered

	for _, match := range testMacroPattern.FindAllStringSubmatch(source, -1) {
		cases[match[1]+"."+match[2]] = true
	}
	for _, match := range benchmarkFixturePattern.FindAllStringSubmatch(source, -1) {
		cases[match[1]+"/"+match[2]] = true
	}
	for _, match := range benchmarkMacroPattern.FindAllStringSubmatch(source, -1) {
		cases[match[1]] = true
	}

	var names []string
	for name := range cases {
		names = append(names, name)
	}

	// Sort for consistent output
	sort.Strings(names)

	return names, nil
}
