// Package ports defines interfaces for external collaborators.
package ports

// RawName is the raw material an external name generator produces for one
// person. Labels describe the grammatical role of each part and must be the
// same length as whichever part list the consumer selects; the consumer
// treats a mismatch as a contract violation.
type RawName struct {
	Native      []string
	Romanized   []string
	Gender      string
	Nationality string
	Labels      []string
}

// NameSource generates raw names for a culture.
type NameSource interface {
	// Generate produces one raw name for the given culture selector.
	Generate(culture string) (RawName, error)
	// Cultures lists the culture selectors the source understands.
	Cultures() []string
}
