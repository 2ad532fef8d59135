package domain

// Category classifies a C++ source file by its naming convention
type Category string

const (
	CategoryTest      Category = "test"
	CategoryBenchmark Category = "benchmark"
	CategoryOther     Category = "other"
)

// Runnable reports whether files of this category are compiled and executed
func (c Category) Runnable() bool {
	return c == CategoryTest || c == CategoryBenchmark
}

// Mode selects which categories a command runs
type Mode string

const (
	ModeAll       Mode = "all"       // category inferred per file
	ModeTest      Mode = "test"      // tests only
	ModeBenchmark Mode = "benchmark" // benchmarks only
)

// Accepts reports whether a file of the given category belongs to the mode
func (m Mode) Accepts(c Category) bool {
	switch m {
	case ModeTest:
		return c == CategoryTest
	case ModeBenchmark:
		return c == CategoryBenchmark
	default:
		return c.Runnable()
	}
}
