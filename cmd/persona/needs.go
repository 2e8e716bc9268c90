package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newNeedsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "needs",
		Short: "Inspect the need taxonomy",
		Long:  "List the registered need categories or check a category/subtype pair.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNeedsList()
		},
	}

	cmd.AddCommand(newNeedsListCmd())
	cmd.AddCommand(newNeedsCheckCmd())

	return cmd
}

func newNeedsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all need categories and their subtypes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNeedsList()
		},
	}
}

func runNeedsList() error {
	return withDeps(func(d *Deps) error {
		entries := d.TaxonomyHandler.HandleList()
		if len(entries) == 0 {
			fmt.Println("No need categories registered.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tSUBTYPES")
		for _, entry := range entries {
			fmt.Fprintf(w, "%s\t%s\n", entry.Type, strings.Join(entry.Subtypes, ", "))
		}
		w.Flush()

		return nil
	})
}

func newNeedsCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <category> <subtype>",
		Short: "Check whether a subtype is valid for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNeedsCheck(args[0], args[1])
		},
	}
}

func runNeedsCheck(category, subtype string) error {
	return withDeps(func(d *Deps) error {
		need, err := d.TaxonomyHandler.HandleCheck(category, subtype)
		if err != nil {
			return fmt.Errorf("checking need: %w", err)
		}

		fmt.Printf("%s / %s is valid\n", need.Type, need.Subtype)
		return nil
	})
}
