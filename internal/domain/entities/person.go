package entities

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// StatType is one of the fixed character statistics.
type StatType int

const (
	Strength StatType = iota
	Dexterity
	Constitution
	Intelligence
	Wisdom
	Charisma
	Predictability
	Lawfullness
)

var statTypeNames = [...]string{
	Strength:       "STRENGTH",
	Dexterity:      "DEXTERITY",
	Constitution:   "CONSTITUTION",
	Intelligence:   "INTELLIGENCE",
	Wisdom:         "WISDOM",
	Charisma:       "CHARISMA",
	Predictability: "PREDICTABILITY",
	Lawfullness:    "LAWFULLNESS",
}

// String returns the canonical uppercase name of the stat type.
func (t StatType) String() string {
	if t < 0 || int(t) >= len(statTypeNames) {
		return fmt.Sprintf("StatType(%d)", int(t))
	}
	return statTypeNames[t]
}

// StatTypes returns all stat types in declaration order.
func StatTypes() []StatType {
	types := make([]StatType, len(statTypeNames))
	for i := range types {
		types[i] = StatType(i)
	}
	return types
}

// ParseStatType resolves a case-insensitive stat name to its StatType.
func ParseStatType(s string) (StatType, error) {
	for i, name := range statTypeNames {
		if strings.EqualFold(s, name) {
			return StatType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown stat type %q", s)
}

// Law-chaos axis labels.
const (
	LawLawful  = "LAWFUL"
	LawNeutral = "NEUTRAL"
	LawChaotic = "CHAOTIC"
)

// Good-evil axis labels.
const (
	MoralGood    = "GOOD"
	MoralNeutral = "NEUTRAL"
	MoralEvil    = "EVIL"
)

// Alignment is the two-axis classification derived from a person's stats.
type Alignment struct {
	Law  string `json:"law" yaml:"law"`
	Good string `json:"good" yaml:"good"`
}

// DeriveAlignment classifies a stat block on both alignment axes. The
// PREDICTABILITY stat feeds the law-chaos axis and the LAWFULLNESS stat feeds
// the good-evil axis. Deterministic, no side effects.
func DeriveAlignment(stats map[StatType]int) Alignment {
	var a Alignment

	switch pred := stats[Predictability]; {
	case pred >= 13:
		a.Law = LawNeutral
	case pred >= 8:
		a.Law = LawLawful
	default:
		a.Law = LawChaotic
	}

	switch law := stats[Lawfullness]; {
	case law >= 13:
		a.Good = MoralGood
	case law >= 8:
		a.Good = MoralNeutral
	default:
		a.Good = MoralEvil
	}

	return a
}

// Person is a generated character: a name, a stat block, the alignment
// derived from it, and the person's relationships and needs.
type Person struct {
	ID            string              `json:"id" yaml:"id"`
	Name          Name                `json:"-" yaml:"-"`
	Relationships []Relationship      `json:"relationships,omitempty" yaml:"relationships,omitempty"`
	Demands       map[NeedType][]Need `json:"demands,omitempty" yaml:"demands,omitempty"`
	Stats         map[StatType]int    `json:"stats" yaml:"stats"`
	Alignment     Alignment           `json:"alignment" yaml:"alignment"`
}

// NewPerson builds a Person from a name and a complete stat block. Alignment
// is derived once here and never recomputed.
func NewPerson(name Name, stats map[StatType]int) *Person {
	return &Person{
		ID:        uuid.New().String(),
		Name:      name,
		Demands:   make(map[NeedType][]Need),
		Stats:     stats,
		Alignment: DeriveAlignment(stats),
	}
}

// AddDemand appends a need under its category, creating the category's list
// on first use.
func (p *Person) AddDemand(n Need) {
	p.Demands[n.Type] = append(p.Demands[n.Type], n)
}

// AddRelationship attaches a relationship edge to the person.
func (p *Person) AddRelationship(r Relationship) {
	p.Relationships = append(p.Relationships, r)
}
