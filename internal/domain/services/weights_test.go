package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeightTable_RejectsMismatchedWeights(t *testing.T) {
	tests := []struct {
		name    string
		lo, hi  int
		weights []float64
	}{
		{name: "too few weights", lo: 1, hi: 3, weights: []float64{1, 1}},
		{name: "too many weights", lo: 1, hi: 3, weights: []float64{1, 1, 1, 1}},
		{name: "empty range", lo: 5, hi: 4, weights: []float64{}},
		{name: "negative weight", lo: 1, hi: 2, weights: []float64{1, -1}},
		{name: "zero total", lo: 1, hi: 2, weights: []float64{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWeightTable(tt.lo, tt.hi, tt.weights)
			assert.Error(t, err)
		})
	}
}

func TestWeightTable_SampleStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 10000; i++ {
		v := Normal3to18.Sample(rng)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 18)
	}
}

func TestWeightTable_DistributionFollowsWeights(t *testing.T) {
	table, err := NewWeightTable(1, 3, []float64{1, 2, 1})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	const draws = 40000

	counts := make(map[int]int)
	for i := 0; i < draws; i++ {
		counts[table.Sample(rng)]++
	}

	// Expected shares 25% / 50% / 25%, within a loose tolerance.
	assert.InDelta(t, draws/4, counts[1], draws*0.02)
	assert.InDelta(t, draws/2, counts[2], draws*0.02)
	assert.InDelta(t, draws/4, counts[3], draws*0.02)
}

func TestWeightTable_ZeroWeightValueNeverDrawn(t *testing.T) {
	table, err := NewWeightTable(1, 3, []float64{1, 0, 1})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 5000; i++ {
		assert.NotEqual(t, 2, table.Sample(rng))
	}
}

func TestStandardTables_Ranges(t *testing.T) {
	assert.Equal(t, 1, Normal1to10.Lo())
	assert.Equal(t, 10, Normal1to10.Hi())
	assert.Equal(t, 3, Normal3to18.Lo())
	assert.Equal(t, 18, Normal3to18.Hi())
}
