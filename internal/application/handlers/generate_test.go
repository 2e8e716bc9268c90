package handlers

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/persona-core/internal/domain/entities"
	"github.com/ersonp/persona-core/internal/domain/services"
	"github.com/ersonp/persona-core/internal/infrastructure/namegen"
)

func newTestGenerateHandler(seed int64) *GenerateHandler {
	rng := rand.New(rand.NewSource(seed))
	needs := services.NewNeedService()
	needs.LoadDefaults()
	assembler := services.NewAssemblerService(namegen.New(rng), services.NewStatService(rng), needs, rng)
	return NewGenerateHandler(assembler)
}

func TestGenerateHandler_EndToEnd(t *testing.T) {
	handler := newTestGenerateHandler(42)

	people, err := handler.HandleGenerate(50, "fantasy", false)
	require.NoError(t, err)
	require.Len(t, people, 50)

	for i, p := range people {
		require.Len(t, p.Stats, 8)
		for _, v := range p.Stats {
			assert.GreaterOrEqual(t, v, 3)
			assert.LessOrEqual(t, v, 18)
		}
		assert.Len(t, p.Demands[entities.Physiological], 2)
		assert.Empty(t, p.Relationships)

		if i > 0 {
			assert.LessOrEqual(t, people[i-1].Name.Compare(p.Name), 0, "population not sorted at %d", i)
		}
	}
}

func TestGenerateHandler_Relate(t *testing.T) {
	handler := newTestGenerateHandler(7)

	people, err := handler.HandleGenerate(20, "northern", true)
	require.NoError(t, err)

	total := 0
	for _, p := range people {
		total += len(p.Relationships)
	}
	assert.Positive(t, total)
}

func TestGenerateHandler_UnknownCulture(t *testing.T) {
	handler := newTestGenerateHandler(1)

	_, err := handler.HandleGenerate(3, "atlantean", false)
	assert.Error(t, err)
}

func TestTaxonomyHandler_ListAndCheck(t *testing.T) {
	needs := services.NewNeedService()
	needs.LoadDefaults()
	handler := NewTaxonomyHandler(needs)

	entries := handler.HandleList()
	require.Len(t, entries, 8)
	assert.Equal(t, entities.Physiological, entries[0].Type)
	assert.Contains(t, entries[0].Subtypes, "FOOD")

	need, err := handler.HandleCheck("physiological", "drink")
	require.NoError(t, err)
	assert.Equal(t, "DRINK", need.Subtype)

	_, err = handler.HandleCheck("physiological", "Gold")
	assert.Error(t, err)

	_, err = handler.HandleCheck("wealth", "Gold")
	assert.Error(t, err)
}
