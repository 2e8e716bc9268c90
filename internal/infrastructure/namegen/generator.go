// Package namegen provides the built-in table-based name source.
package namegen

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/ersonp/persona-core/internal/domain/ports"
)

// Gender tags reported alongside generated names.
const (
	Masculine = "MASCULINE"
	Feminine  = "FEMININE"
)

// DefaultCulture is used when no culture selector is given.
const DefaultCulture = "fantasy"

// partList is one name-part slot: a grammatical label plus the candidate
// parts for it. roman, when non-nil, carries the romanized form of each
// native part at the same index.
type partList struct {
	label  string
	native []string
	roman  []string
}

// culture describes how names are built for one nationality: which part
// slots exist, in display order, and the gendered given-name lists.
type culture struct {
	nationality string
	masculine   partList
	feminine    partList
	rest        []partList
	givenLast   bool
}

// Generator is a deterministic, table-driven NameSource.
type Generator struct {
	rng      *rand.Rand
	cultures map[string]culture
}

var _ ports.NameSource = (*Generator)(nil)

// New creates a Generator over the built-in culture tables.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng, cultures: builtinCultures}
}

// Cultures lists the known culture selectors, sorted.
func (g *Generator) Cultures() []string {
	names := make([]string, 0, len(g.cultures))
	for name := range g.cultures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate produces one raw name for the given culture selector. The labels
// list is always the same length as the part lists.
func (g *Generator) Generate(selector string) (ports.RawName, error) {
	c, ok := g.cultures[selector]
	if !ok {
		return ports.RawName{}, fmt.Errorf("unknown culture %q (known: %v)", selector, g.Cultures())
	}

	gender := Masculine
	given := c.masculine
	if g.rng.Intn(2) == 1 {
		gender = Feminine
		given = c.feminine
	}

	slots := make([]partList, 0, len(c.rest)+1)
	if c.givenLast {
		slots = append(slots, c.rest...)
		slots = append(slots, given)
	} else {
		slots = append(slots, given)
		slots = append(slots, c.rest...)
	}

	raw := ports.RawName{
		Gender:      gender,
		Nationality: c.nationality,
	}
	for _, slot := range slots {
		idx := g.rng.Intn(len(slot.native))
		raw.Native = append(raw.Native, slot.native[idx])
		if slot.roman != nil {
			raw.Romanized = append(raw.Romanized, slot.roman[idx])
		}
		raw.Labels = append(raw.Labels, slot.label)
	}
	return raw, nil
}
