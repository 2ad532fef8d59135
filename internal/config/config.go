package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load
const (
	EnvCompiler           = "CPPRUN_CXX"
	EnvStandard           = "CPPRUN_STD"
	EnvArtifact           = "CPPRUN_ARTIFACT"
	EnvExtraFlags         = "CPPRUN_CXXFLAGS"
	EnvSuppressBenchmarks = "CPPRUN_SUPPRESS_BENCHMARKS"
)

// Config holds all configuration for the application
type Config struct {
	// Root is the working tree searched when no paths are given
	Root string

	// Toolchain settings
	Compiler   string
	Standard   string
	Artifact   string
	ExtraFlags []string

	// Selection settings
	SuppressBenchmarks bool

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Root               string
	Compiler           string
	Standard           string
	Artifact           string
	NameFilter         string
	Performance        bool
	FailFast           bool
	SuppressBenchmarks bool
	NoColor            bool

	// SuppressBenchmarksSet marks --suppress-benchmarks as given explicitly,
	// so false overrides the environment
	SuppressBenchmarksSet bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		Root:           DefaultRoot,
		Compiler:       DefaultCompiler,
		Standard:       DefaultStandard,
		Artifact:       DefaultArtifact,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
}

// Load creates a config from defaults, the root's .env file and CPPRUN_* variables.
// A missing .env file is not an error.
func Load(root string) (*Config, error) {
	cfg := New()
	if root != "" {
		cfg.Root = root
	}

	envPath := filepath.Join(cfg.Root, DefaultEnvFile)
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load %s: %w", envPath, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvCompiler); v != "" {
		c.Compiler = v
	}
	if v := os.Getenv(EnvStandard); v != "" {
		c.Standard = v
	}
	if v := os.Getenv(EnvArtifact); v != "" {
		c.Artifact = v
	}
	if v := os.Getenv(EnvExtraFlags); v != "" {
		c.ExtraFlags = strings.Fields(v)
	}
	if v := os.Getenv(EnvSuppressBenchmarks); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSuppressBenchmarks, v, err)
		}
		c.SuppressBenchmarks = b
	}
	return nil
}

// Apply copies parsed flags into the config. Empty string flags keep the
// configured value.
func (c *Config) Apply(flags Flags) {
	c.Flags = flags

	if flags.Root != "" {
		c.Root = flags.Root
	}
	if flags.Compiler != "" {
		c.Compiler = flags.Compiler
	}
	if flags.Standard != "" {
		c.Standard = flags.Standard
	}
	if flags.Artifact != "" {
		c.Artifact = flags.Artifact
	}
	if flags.SuppressBenchmarks || flags.SuppressBenchmarksSet {
		c.SuppressBenchmarks = flags.SuppressBenchmarks
	}
}

// GetArtifactPath returns the path of the compiled binary, relative to the working directory
func (c *Config) GetArtifactPath() string {
	return filepath.Clean(c.Artifact)
}

// GetOutputPath returns the full path to the run report.
// Resolves to an absolute path so run and failures always read/write the same file.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.Root, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
