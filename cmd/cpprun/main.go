package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"cpprun/internal/cli"
	"cpprun/internal/cli/commands"
	"cpprun/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "cpprun",
		Short:         "Compile and run C++ tests and benchmarks",
		Long:          `Discover *.test.cpp, test.cpp and *.benchmark.cpp sources, compile each against googletest or google benchmark, run the binary and report crashes and compile failures.`,
		Version:       version,
		SilenceErrors: true,
	}

	// Defaults; .env, environment and flags are applied once a command is parsed
	cfg := config.New()

	var flags cli.Flags

	cmds := commands.NewCommands(cfg, os.Stdout)
	cmds.Register(rootCmd, &flags)

	// Ctrl+C stops the running compiler or binary and ends the batch
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
