// Package mocks provides mock implementations for testing.
package mocks

import "github.com/ersonp/persona-core/internal/domain/ports"

// NameSource is a mock implementation of ports.NameSource. It replays the
// configured names in order, cycling when exhausted.
type NameSource struct {
	Names []ports.RawName
	Err   error

	next int
}

// Generate returns the next configured raw name or the configured error.
func (m *NameSource) Generate(culture string) (ports.RawName, error) {
	if m.Err != nil {
		return ports.RawName{}, m.Err
	}
	raw := m.Names[m.next%len(m.Names)]
	m.next++
	return raw, nil
}

// Cultures returns a single mock culture.
func (m *NameSource) Cultures() []string {
	return []string{"mock"}
}
