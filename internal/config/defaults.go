package config

const (
	// DefaultRoot is the directory searched when no paths are given
	DefaultRoot = "."
	// DefaultCompiler is the C++ compiler driver
	DefaultCompiler = "g++"
	// DefaultStandard is the value passed to -std=
	DefaultStandard = "c++17"
	// DefaultArtifact is the conventional output binary name
	DefaultArtifact = "exec"
	// DefaultOutputJSONFile is the default report file name
	DefaultOutputJSONFile = "last-run.json"
	// DefaultOutputJSONDir is the default report directory
	DefaultOutputJSONDir = ".cpprun"
	// DefaultEnvFile is loaded from the root before reading CPPRUN_* variables
	DefaultEnvFile = ".env"
)

// Naming conventions
const (
	SourceSuffix   = ".cpp"
	TestInfix      = ".test.cpp"
	BenchmarkInfix = ".benchmark.cpp"
	TestSuite      = "test.cpp"
	BenchmarkSuite = "benchmark.cpp"
)

// DefaultTestLibs are linked into every test binary
var DefaultTestLibs = []string{"-lgtest", "-lgtest_main", "-lpthread"}

// DefaultBenchmarkLibs are linked into every benchmark binary
var DefaultBenchmarkLibs = []string{"-lbenchmark", "-lpthread"}

// DefaultBenchmarkOpt is the optimization level for benchmarks
const DefaultBenchmarkOpt = "-O3"

// PerformanceCommand elevates the CPU scaling governor
var PerformanceCommand = []string{"sudo", "cpupower", "frequency-set", "-g", "performance"}
