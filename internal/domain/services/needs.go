package services

import (
	"fmt"
	"strings"

	"github.com/ersonp/persona-core/internal/domain/entities"
)

// NeedService holds the registry of allowed need subtypes per category and
// validates need creation against it. Categories must be registered before
// needs are created for them.
type NeedService struct {
	registered map[entities.NeedType][]string
}

// NewNeedService creates a NeedService with an empty registry.
func NewNeedService() *NeedService {
	return &NeedService{
		registered: make(map[entities.NeedType][]string),
	}
}

// LoadDefaults seeds the built-in taxonomy into the registry.
func (s *NeedService) LoadDefaults() {
	for _, entry := range entities.DefaultTaxonomy {
		s.Register(entry.Type, entry.Subtypes...)
	}
}

// Register stores the allowed subtypes for a category, uppercased,
// overwriting any prior registration for that category.
func (s *NeedService) Register(t entities.NeedType, subtypes ...string) {
	upper := make([]string, len(subtypes))
	for i, sub := range subtypes {
		upper[i] = strings.ToUpper(sub)
	}
	s.registered[t] = upper
}

// Subtypes returns the registered subtypes for a category, or false when the
// category has never been registered. The returned slice must not be
// modified by callers.
func (s *NeedService) Subtypes(t entities.NeedType) ([]string, bool) {
	subs, ok := s.registered[t]
	return subs, ok
}

// Create validates the subtype against the category's registered set and
// returns a new Need. The subtype is uppercased before the check. An
// unregistered category fails the same way an unknown subtype does.
func (s *NeedService) Create(t entities.NeedType, subtype string, weight float64) (entities.Need, error) {
	subtype = strings.ToUpper(subtype)

	allowed := s.registered[t]
	for _, sub := range allowed {
		if sub == subtype {
			return entities.Need{Type: t, Subtype: subtype, Weight: weight}, nil
		}
	}
	return entities.Need{}, fmt.Errorf("%s is not an allowed %s subtype (allowed: %s)", subtype, t, strings.Join(allowed, ", "))
}

// CreateDefault creates a need carrying the category-default weight
// sentinel.
func (s *NeedService) CreateDefault(t entities.NeedType, subtype string) (entities.Need, error) {
	return s.Create(t, subtype, entities.DefaultWeight)
}
