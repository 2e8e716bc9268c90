// Package main provides the entry point for the persona CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version    = "0.1.0-dev"
	globalSeed int64
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "persona",
		Short:   "A procedural generator for fictional characters",
		Version: version,
	}

	rootCmd.PersistentFlags().Int64VarP(&globalSeed, "seed", "s", 0, "Random seed (0 picks one at random)")

	rootCmd.AddCommand(
		newInitCmd(),
		newGenerateCmd(),
		newNeedsCmd(),
		newRollCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
