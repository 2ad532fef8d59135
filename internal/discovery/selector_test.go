package discovery

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpprun/internal/domain"
)

func newTestSelector(benchmarkSuites bool) *Selector {
	classifier := NewClassifier(benchmarkSuites)
	return NewSelector(NewScanner(), classifier, NewFilter(classifier))
}

func TestSelector_Select(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		links    map[string]string // link name -> target, relative to the tree
		paths    []string
		mode     domain.Mode
		suites   bool
		expected []string
	}{
		{
			name:     "aggregate suite covers individual tests",
			files:    []string{"trie/test.cpp", "trie/a.test.cpp", "trie/b.test.cpp"},
			paths:    []string{"trie"},
			expected: []string{"trie/test.cpp"},
		},
		{
			name:     "individual tests run without aggregate",
			files:    []string{"trie/a.test.cpp", "trie/b.test.cpp"},
			paths:    []string{"trie"},
			expected: []string{"trie/a.test.cpp", "trie/b.test.cpp"},
		},
		{
			name:     "benchmarks are never suppressed by test suites",
			files:    []string{"trie/perf.benchmark.cpp", "trie/test.cpp"},
			paths:    []string{"trie"},
			expected: []string{"trie/test.cpp", "trie/perf.benchmark.cpp"},
		},
		{
			name:     "same file twice is selected once",
			files:    []string{"trie/a.test.cpp"},
			paths:    []string{"trie/a.test.cpp", "trie/a.test.cpp"},
			expected: []string{"trie/a.test.cpp"},
		},
		{
			name:     "overlapping directory and file",
			files:    []string{"trie/a.test.cpp", "trie/b.test.cpp"},
			paths:    []string{"trie/b.test.cpp", "trie"},
			expected: []string{"trie/b.test.cpp", "trie/a.test.cpp"},
		},
		{
			name:     "aggregates come first",
			files:    []string{"a/x.test.cpp", "b/test.cpp", "b/y.test.cpp"},
			paths:    []string{"a", "b"},
			expected: []string{"b/test.cpp", "a/x.test.cpp"},
		},
		{
			name:     "suites only cover their own directory",
			files:    []string{"a/test.cpp", "a/nested/x.test.cpp"},
			paths:    []string{"a"},
			expected: []string{"a/test.cpp", "a/nested/x.test.cpp"},
		},
		{
			name:     "other sources are dropped",
			files:    []string{"src/main.cpp", "src/tree.h", "src/tree.example.cpp"},
			paths:    []string{"src"},
			expected: nil,
		},
		{
			name:     "test mode keeps only tests",
			files:    []string{"a/x.test.cpp", "a/y.benchmark.cpp"},
			paths:    []string{"a"},
			mode:     domain.ModeTest,
			expected: []string{"a/x.test.cpp"},
		},
		{
			name:     "benchmark mode keeps only benchmarks",
			files:    []string{"a/x.test.cpp", "a/y.benchmark.cpp"},
			paths:    []string{"a"},
			mode:     domain.ModeBenchmark,
			expected: []string{"a/y.benchmark.cpp"},
		},
		{
			name:     "benchmark suite ignored when disabled",
			files:    []string{"bench/benchmark.cpp", "bench/a.benchmark.cpp"},
			paths:    []string{"bench"},
			expected: []string{"bench/a.benchmark.cpp"},
		},
		{
			name:     "benchmark suite covers individual benchmarks when enabled",
			files:    []string{"bench/benchmark.cpp", "bench/a.benchmark.cpp", "bench/test.cpp"},
			paths:    []string{"bench"},
			suites:   true,
			expected: []string{"bench/benchmark.cpp", "bench/test.cpp"},
		},
		{
			name:     "no paths searches the root",
			files:    []string{"x/test.cpp", "x/a.test.cpp", "y/b.benchmark.cpp"},
			expected: []string{"x/test.cpp", "y/b.benchmark.cpp"},
		},
		{
			name:     "symlinked directory is expanded under the link name",
			files:    []string{"real/a.test.cpp", "real/b.benchmark.cpp"},
			links:    map[string]string{"link": "real"},
			paths:    []string{"link"},
			expected: []string{"link/a.test.cpp", "link/b.benchmark.cpp"},
		},
		{
			name:     "hidden files are skipped",
			files:    []string{"a/.scratch.test.cpp", "a/x.test.cpp", "a/.tmp/y.test.cpp"},
			paths:    []string{"a"},
			expected: []string{"a/x.test.cpp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeTree(t, dir, tt.files...)
			for link, target := range tt.links {
				if runtime.GOOS == "windows" {
					t.Skip("symlinks need privileges on windows")
				}
				require.NoError(t, os.Symlink(target, filepath.Join(dir, link)))
			}
			chdir(t, dir)

			mode := tt.mode
			if mode == "" {
				mode = domain.ModeAll
			}

			selector := newTestSelector(tt.suites)
			selected, err := selector.Select(".", tt.paths, mode, "")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, selected)
		})
	}
}

func TestSelector_SelectIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir,
		"test/x-fast-trie/test.cpp",
		"test/x-fast-trie/min.test.cpp",
		"test/y-fast-trie/size.test.cpp",
		"benchmark/y-fast-trie/successor.benchmark.cpp",
		"src/constants.h",
	)
	chdir(t, dir)

	selector := newTestSelector(false)
	paths := []string{"test", "benchmark", "test/y-fast-trie"}

	first, err := selector.Select(".", paths, domain.ModeAll, "")
	require.NoError(t, err)
	second, err := selector.Select(".", paths, domain.ModeAll, "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}

func TestSelector_SelectOnlyRunnable(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir,
		"a/one.test.cpp",
		"a/two.cpp",
		"a/b/three.benchmark.cpp",
		"a/b/four.example.cpp",
		"a/b/c/test.cpp",
		"a/b/c/five.demo.cpp",
	)
	chdir(t, dir)

	classifier := NewClassifier(false)
	selected, err := newTestSelector(false).Select(".", []string{"a"}, domain.ModeAll, "")
	require.NoError(t, err)

	for _, file := range selected {
		assert.True(t, classifier.Classify(file).Runnable(), "unexpected selection %s", file)
	}
	assert.Len(t, selected, 3)
}

func TestSelector_SelectRejectsMissingPath(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, "a/one.test.cpp")
	chdir(t, dir)

	_, err := newTestSelector(false).Select(".", []string{"a", "missing"}, domain.ModeAll, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPathNotFound))
	assert.Contains(t, err.Error(), "missing")
}

func TestSelector_SelectWithNamePattern(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, "a/min.test.cpp", "a/max.test.cpp")
	chdir(t, dir)

	selected, err := newTestSelector(false).Select(".", nil, domain.ModeTest, "*min*")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/min.test.cpp"}, selected)
}

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		path     string
		suites   bool
		expected domain.Category
	}{
		{"dir/test.cpp", false, domain.CategoryTest},
		{"dir/min.test.cpp", false, domain.CategoryTest},
		{"dir/insert.benchmark.cpp", false, domain.CategoryBenchmark},
		{"dir/benchmark.cpp", false, domain.CategoryOther},
		{"dir/benchmark.cpp", true, domain.CategoryBenchmark},
		{"dir/mytest.cpp", false, domain.CategoryOther},
		{"dir/main.cpp", false, domain.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewClassifier(tt.suites).Classify(tt.path))
		})
	}
}
