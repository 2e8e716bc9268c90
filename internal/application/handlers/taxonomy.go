package handlers

import (
	"github.com/ersonp/persona-core/internal/domain/entities"
	"github.com/ersonp/persona-core/internal/domain/services"
)

// TaxonomyEntry is one need category with its registered subtypes.
type TaxonomyEntry struct {
	Type     entities.NeedType
	Subtypes []string
}

// TaxonomyHandler handles need taxonomy operations.
type TaxonomyHandler struct {
	needs *services.NeedService
}

// NewTaxonomyHandler creates a new TaxonomyHandler.
func NewTaxonomyHandler(needs *services.NeedService) *TaxonomyHandler {
	return &TaxonomyHandler{
		needs: needs,
	}
}

// HandleList returns the registered taxonomy in hierarchy order. Categories
// without a registration are skipped.
func (h *TaxonomyHandler) HandleList() []TaxonomyEntry {
	var list []TaxonomyEntry
	for _, t := range entities.NeedTypes() {
		if subs, ok := h.needs.Subtypes(t); ok {
			list = append(list, TaxonomyEntry{Type: t, Subtypes: subs})
		}
	}
	return list
}

// HandleCheck validates a category/subtype pair by attempting to create the
// need with the default weight.
func (h *TaxonomyHandler) HandleCheck(category, subtype string) (entities.Need, error) {
	t, err := entities.ParseNeedType(category)
	if err != nil {
		return entities.Need{}, err
	}
	return h.needs.CreateDefault(t, subtype)
}
