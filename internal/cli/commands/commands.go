package commands

import (
	"io"

	"cpprun/internal/cli"
	"cpprun/internal/config"
	"cpprun/internal/discovery"
	"cpprun/internal/domain"
	"cpprun/internal/environment"
	"cpprun/internal/execution"
	"cpprun/internal/parser"
	"cpprun/internal/storage"
	"cpprun/internal/toolchain"
	"cpprun/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Dependencies are built after flags are parsed so the printer reflects --no-color
type Dependencies struct {
	Printer     ui.Printer
	Selector    *discovery.Selector
	Executor    *execution.SequentialExecutor
	Storage     storage.Storage
	Formatter   *ui.Formatter
	Performance *environment.PerformanceMode
	Viewer      ui.Viewer
}

// NewDependencies wires every component from cfg, writing console output to out
func NewDependencies(cfg *config.Config, out io.Writer) *Dependencies {
	printer := ui.DetectPrinter(out, cfg.Flags.NoColor)

	classifier := discovery.NewClassifier(cfg.SuppressBenchmarks)
	selector := discovery.NewSelector(discovery.NewScanner(), classifier, discovery.NewFilter(classifier))
	compiler := toolchain.NewCompiler(cfg)
	runner := toolchain.NewRunner(cfg, out, out)
	executor := execution.NewSequentialExecutor(compiler, runner, classifier, parser.NewGTestParser(), printer)
	jsonStorage := storage.NewJSONStorage(cfg)

	return &Dependencies{
		Printer:     printer,
		Selector:    selector,
		Executor:    executor,
		Storage:     jsonStorage,
		Formatter:   ui.NewFormatter(printer, discovery.NewParser()),
		Performance: environment.NewPerformanceMode(printer),
		Viewer:      ui.NewFailureViewer(printer, jsonStorage),
	}
}

// Commands holds all CLI commands
type Commands struct {
	config *config.Config
	out    io.Writer
	deps   *Dependencies
}

// NewCommands creates the command set writing console output to out
func NewCommands(cfg *config.Config, out io.Writer) *Commands {
	return &Commands{
		config: cfg,
		out:    out,
	}
}

// prepare loads configuration for the parsed flags and wires dependencies
func (c *Commands) prepare(cmd *cobra.Command, flags *cli.Flags) error {
	flags.SuppressBenchmarksSet = cmd.Flags().Changed("suppress-benchmarks")

	loaded, err := config.Load(flags.Root)
	if err != nil {
		return err
	}
	*c.config = *loaded
	c.config.Apply(flags.ToConfigFlags())
	c.deps = NewDependencies(c.config, c.out)
	return nil
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags) {
	rootCmd.PersistentFlags().StringVarP(&flags.Root, "root", "r", "", "Directory searched when no paths are given (also holds .env and the run report)")
	rootCmd.PersistentFlags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter files by name pattern (supports wildcards, e.g., '*trie*' or 'min.test.cpp')")
	rootCmd.PersistentFlags().BoolVar(&flags.SuppressBenchmarks, "suppress-benchmarks", false, "Let a benchmark.cpp aggregate cover the *.benchmark.cpp files in its directory")
	rootCmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(c.runCommand(flags, "run", domain.ModeAll, true,
		"Compile and run tests and benchmarks",
		"Compile and run every *.test.cpp, test.cpp and *.benchmark.cpp under the given files or directories, inferring how to build each from its name"))
	rootCmd.AddCommand(c.runCommand(flags, "test", domain.ModeTest, false,
		"Compile and run tests",
		"Compile each test against googletest and run it. A test.cpp in a directory replaces the individual *.test.cpp files beside it"))
	rootCmd.AddCommand(c.runCommand(flags, "bench", domain.ModeBenchmark, true,
		"Compile and run benchmarks",
		"Compile each *.benchmark.cpp with optimizations against google benchmark and run it"))

	listCmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List selected files",
		Long:  "Show which files would be compiled, in order, without compiling them",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.prepare(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := cli.ParseMode(flags.Mode)
			if err != nil {
				return err
			}
			return NewListCommand(c.config, c.deps, mode, flags.Cases).Execute(cmd, args)
		},
	}
	listCmd.Flags().StringVarP(&flags.Mode, "mode", "m", "all", "Which files to list: all, test or bench")
	listCmd.Flags().BoolVarP(&flags.Cases, "cases", "c", false, "List the test and benchmark cases each file registers")
	rootCmd.AddCommand(listCmd)

	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View failures interactively",
		Long:  "Display compile failures and crashes from the last run in an interactive viewer",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.prepare(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewFailuresCommand(c.deps).Execute(cmd, args)
		},
	}
	rootCmd.AddCommand(failuresCmd)
}

// runCommand builds one of the compile-and-run commands. Each keeps its own
// --performance default.
func (c *Commands) runCommand(flags *cli.Flags, use string, mode domain.Mode, performance bool, short, long string) *cobra.Command {
	var perf bool

	cmd := &cobra.Command{
		Use:   use + " [paths...]",
		Short: short,
		Long:  long,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			flags.Performance = perf
			return c.prepare(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewRunCommand(c.config, c.deps, mode).Execute(cmd, args)
		},
	}

	addToolchainFlags(cmd.Flags(), flags)
	cmd.Flags().BoolVar(&perf, "performance", performance, "Switch the CPU governor to performance mode before running")
	cmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop after the first file that fails to compile or crashes")

	return cmd
}

// addToolchainFlags registers the compiler overrides shared by run, test and bench
func addToolchainFlags(fs *pflag.FlagSet, flags *cli.Flags) {
	fs.StringVar(&flags.Compiler, "cxx", "", "C++ compiler driver (default "+config.DefaultCompiler+", or $"+config.EnvCompiler+")")
	fs.StringVar(&flags.Standard, "std", "", "Language standard passed as -std= (default "+config.DefaultStandard+", or $"+config.EnvStandard+")")
	fs.StringVarP(&flags.Artifact, "artifact", "o", "", "Name of the temporary binary (default "+config.DefaultArtifact+", or $"+config.EnvArtifact+")")
}
