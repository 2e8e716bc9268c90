// Package handlers contains application-level handlers that bridge the CLI
// and domain services.
package handlers

import (
	"github.com/ersonp/persona-core/internal/domain/entities"
	"github.com/ersonp/persona-core/internal/domain/services"
)

// GenerateHandler handles population generation.
type GenerateHandler struct {
	assembler *services.AssemblerService
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(assembler *services.AssemblerService) *GenerateHandler {
	return &GenerateHandler{
		assembler: assembler,
	}
}

// HandleGenerate generates a population of count persons sorted by name,
// optionally linking random friend pairs.
func (h *GenerateHandler) HandleGenerate(count int, culture string, relate bool) ([]*entities.Person, error) {
	people, err := h.assembler.Population(count, culture)
	if err != nil {
		return nil, err
	}
	if relate {
		h.assembler.Relate(people, count/2)
	}
	return people, nil
}
