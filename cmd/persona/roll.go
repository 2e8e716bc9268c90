package main

import (
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ersonp/persona-core/internal/domain/services"
)

func newRollCmd() *cobra.Command {
	var (
		table   string
		samples int
	)

	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Sample a standard weight table",
		Long:  "Draws from one of the standard weight tables and prints a histogram of the results.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoll(table, samples)
		},
	}

	cmd.Flags().StringVarP(&table, "table", "t", "3-18", "Table to sample: 3-18 or 1-10")
	cmd.Flags().IntVarP(&samples, "samples", "m", DefaultRollSamples, "Number of samples to draw")

	return cmd
}

func runRoll(table string, samples int) error {
	var wt *services.WeightTable
	switch table {
	case "3-18":
		wt = services.Normal3to18
	case "1-10":
		wt = services.Normal1to10
	default:
		return fmt.Errorf("unknown table %q (want 3-18 or 1-10)", table)
	}

	if samples < 1 {
		return fmt.Errorf("samples must be positive, got %d", samples)
	}

	return withRNG(func(rng *rand.Rand) error {
		counts := make(map[int]int)
		for i := 0; i < samples; i++ {
			counts[wt.Sample(rng)]++
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "VALUE\tCOUNT")
		for v := wt.Lo(); v <= wt.Hi(); v++ {
			fmt.Fprintf(w, "%d\t%d\n", v, counts[v])
		}
		w.Flush()

		return nil
	})
}
