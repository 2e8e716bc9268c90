package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ersonp/persona-core/internal/domain/entities"
)

func newGenerateCmd() *cobra.Command {
	var (
		count   int
		culture string
		relate  bool
		output  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a population of characters",
		Long:  "Generates a population of characters and prints it sorted by name.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(count, culture, relate, output, verbose)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of characters to generate (default from config)")
	cmd.Flags().StringVarP(&culture, "culture", "c", "", "Culture to draw names from (default from config)")
	cmd.Flags().BoolVar(&relate, "relate", false, "Link random friend pairs")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json, or yaml")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print stats, alignment, and needs per character")

	return cmd
}

func runGenerate(count int, culture string, relate bool, output string, verbose bool) error {
	return withDeps(func(d *Deps) error {
		if count == 0 {
			count = d.Config.Generation.Count
		}
		if culture == "" {
			culture = d.Config.Generation.Culture
		}

		people, err := d.GenerateHandler.HandleGenerate(count, culture, relate)
		if err != nil {
			return fmt.Errorf("generating population: %w", err)
		}

		switch output {
		case "text":
			displayPeople(people, verbose)
			return nil
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(buildViews(people))
		case "yaml":
			return yaml.NewEncoder(os.Stdout).Encode(buildViews(people))
		default:
			return fmt.Errorf("unknown output format %q (want text, json, or yaml)", output)
		}
	})
}

func displayPeople(people []*entities.Person, verbose bool) {
	for _, p := range people {
		if !verbose {
			fmt.Println(p.Name)
			continue
		}
		displayPerson(p)
	}
}

func displayPerson(p *entities.Person) {
	fmt.Printf("%s\n", p.Name)
	fmt.Printf("  Alignment: %s %s\n", p.Alignment.Law, p.Alignment.Good)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, st := range entities.StatTypes() {
		fmt.Fprintf(w, "  %s\t%d\n", st, p.Stats[st])
	}
	w.Flush()

	for _, t := range entities.NeedTypes() {
		needs := p.Demands[t]
		if len(needs) == 0 {
			continue
		}
		fmt.Printf("  Needs (%s):", t)
		for _, n := range needs {
			fmt.Printf(" %s", n.Subtype)
		}
		fmt.Println()
	}
	if len(p.Relationships) > 0 {
		fmt.Printf("  Relationships: %d\n", len(p.Relationships))
	}
	fmt.Println()
}

// personView is the serialized form of a person for json/yaml output. Stats
// and demands are keyed by their canonical type names.
type personView struct {
	ID            string                  `json:"id" yaml:"id"`
	Name          string                  `json:"name" yaml:"name"`
	Stats         map[string]int          `json:"stats" yaml:"stats"`
	Alignment     entities.Alignment      `json:"alignment" yaml:"alignment"`
	Demands       map[string][]needView   `json:"demands,omitempty" yaml:"demands,omitempty"`
	Relationships []entities.Relationship `json:"relationships,omitempty" yaml:"relationships,omitempty"`
}

type needView struct {
	Subtype string   `json:"subtype" yaml:"subtype"`
	Weight  *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

func buildViews(people []*entities.Person) []personView {
	views := make([]personView, 0, len(people))
	for _, p := range people {
		v := personView{
			ID:            p.ID,
			Name:          p.Name.String(),
			Stats:         make(map[string]int, len(p.Stats)),
			Alignment:     p.Alignment,
			Relationships: p.Relationships,
		}
		for st, val := range p.Stats {
			v.Stats[st.String()] = val
		}
		if len(p.Demands) > 0 {
			v.Demands = make(map[string][]needView, len(p.Demands))
			for t, needs := range p.Demands {
				list := make([]needView, 0, len(needs))
				for _, n := range needs {
					nv := needView{Subtype: n.Subtype}
					if n.Weight != entities.DefaultWeight {
						w := n.Weight
						nv.Weight = &w
					}
					list = append(list, nv)
				}
				v.Demands[t.String()] = list
			}
		}
		views = append(views, v)
	}
	return views
}
