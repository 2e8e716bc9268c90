package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/persona-core/internal/domain/entities"
)

func TestNeedService_CreateUppercasesSubtype(t *testing.T) {
	svc := NewNeedService()
	svc.Register(entities.Physiological, "Food", "Drink")

	need, err := svc.Create(entities.Physiological, "drink", 0.8)
	require.NoError(t, err)
	assert.Equal(t, entities.Physiological, need.Type)
	assert.Equal(t, "DRINK", need.Subtype)
	assert.Equal(t, 0.8, need.Weight)
}

func TestNeedService_CreateRejectsUnknownSubtype(t *testing.T) {
	svc := NewNeedService()
	svc.Register(entities.Physiological, "Food", "Drink")

	_, err := svc.Create(entities.Physiological, "Sleep", entities.DefaultWeight)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SLEEP")
	assert.Contains(t, err.Error(), "FOOD")
}

func TestNeedService_CreateRejectsUnregisteredCategory(t *testing.T) {
	svc := NewNeedService()
	svc.Register(entities.Physiological, "Food")

	_, err := svc.Create(entities.Aesthetic, "Art", entities.DefaultWeight)
	assert.Error(t, err)
}

func TestNeedService_RegisterOverwrites(t *testing.T) {
	svc := NewNeedService()
	svc.Register(entities.Safety, "Security", "Order")
	svc.Register(entities.Safety, "Stability")

	_, err := svc.Create(entities.Safety, "Security", entities.DefaultWeight)
	assert.Error(t, err)

	need, err := svc.Create(entities.Safety, "stability", entities.DefaultWeight)
	require.NoError(t, err)
	assert.Equal(t, "STABILITY", need.Subtype)
}

func TestNeedService_CreateDefaultUsesSentinel(t *testing.T) {
	svc := NewNeedService()
	svc.LoadDefaults()

	need, err := svc.CreateDefault(entities.Transcendence, "Spiritual")
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultWeight, need.Weight)
}

func TestNeedService_LoadDefaultsRegistersEveryCategory(t *testing.T) {
	svc := NewNeedService()
	svc.LoadDefaults()

	for _, nt := range entities.NeedTypes() {
		subs, ok := svc.Subtypes(nt)
		require.True(t, ok, "category %s not registered", nt)
		assert.NotEmpty(t, subs)
	}

	subs, _ := svc.Subtypes(entities.Physiological)
	assert.Equal(t, []string{"FOOD", "DRINK", "SHELTER", "CLIMATE", "SLEEP"}, subs)
}
