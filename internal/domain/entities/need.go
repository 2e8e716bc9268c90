// Package entities contains core domain data structures.
package entities

import (
	"fmt"
	"strings"
)

// NeedType is one tier of the closed, ordered need hierarchy (Maslow-style).
// The zero value is Physiological, the lowest tier.
type NeedType int

const (
	Physiological NeedType = iota
	Safety
	Belonging
	Esteem
	Cognitive
	Aesthetic
	SelfActualization
	Transcendence
)

var needTypeNames = [...]string{
	Physiological:     "PHYSIOLOGICAL",
	Safety:            "SAFETY",
	Belonging:         "BELONGING",
	Esteem:            "ESTEEM",
	Cognitive:         "COGNITIVE",
	Aesthetic:         "AESTHETIC",
	SelfActualization: "SELFACTUALIZATION",
	Transcendence:     "TRANSCENDENCE",
}

// String returns the canonical uppercase name of the need type.
func (t NeedType) String() string {
	if t < 0 || int(t) >= len(needTypeNames) {
		return fmt.Sprintf("NeedType(%d)", int(t))
	}
	return needTypeNames[t]
}

// NeedTypes returns all need types in hierarchy order, lowest tier first.
func NeedTypes() []NeedType {
	types := make([]NeedType, len(needTypeNames))
	for i := range types {
		types[i] = NeedType(i)
	}
	return types
}

// ParseNeedType resolves a case-insensitive category name to its NeedType.
func ParseNeedType(s string) (NeedType, error) {
	for i, name := range needTypeNames {
		if strings.EqualFold(s, name) {
			return NeedType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown need category %q", s)
}

// DefaultWeight is the sentinel weight meaning "use the category default".
const DefaultWeight float64 = -1

// Need is a single validated motivational need. Needs are created through
// the need service, which checks the subtype against the registered taxonomy.
type Need struct {
	Type    NeedType `json:"type" yaml:"type"`
	Subtype string   `json:"subtype" yaml:"subtype"`
	Weight  float64  `json:"weight" yaml:"weight"`
}
