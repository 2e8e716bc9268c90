// Package services contains the domain logic for character generation.
package services

import (
	"fmt"
	"math/rand"
)

// WeightTable maps an inclusive integer range onto relative sampling weights.
// Position i of the weight list corresponds to the value lo+i.
type WeightTable struct {
	lo, hi int
	cum    []float64
	total  float64
}

// NewWeightTable builds a table over [lo, hi]. The weight list must have
// exactly hi-lo+1 entries and a positive total.
func NewWeightTable(lo, hi int, weights []float64) (*WeightTable, error) {
	size := hi - lo + 1
	if size < 1 {
		return nil, fmt.Errorf("invalid range [%d, %d]", lo, hi)
	}
	if len(weights) != size {
		return nil, fmt.Errorf("weight list has %d entries for range [%d, %d] of size %d", len(weights), lo, hi, size)
	}

	cum := make([]float64, size)
	total := 0.0
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("negative weight %v for value %d", w, lo+i)
		}
		total += w
		cum[i] = total
	}
	if total <= 0 {
		return nil, fmt.Errorf("weight total must be positive, got %v", total)
	}

	return &WeightTable{lo: lo, hi: hi, cum: cum, total: total}, nil
}

// mustTable is for the package-defined standard tables, whose shapes are
// known good.
func mustTable(lo, hi int, weights []float64) *WeightTable {
	t, err := NewWeightTable(lo, hi, weights)
	if err != nil {
		panic(err)
	}
	return t
}

// Standard bell-shaped tables used for character generation.
var (
	// Normal1to10 approximates a normal distribution over 1..10.
	Normal1to10 = mustTable(1, 10, []float64{
		1, 2, 2.62, 4.24, 6.85, 6.85, 4.24, 2.62, 2, 1,
	})

	// Normal3to18 approximates the 3d6 curve over 3..18, used for ability
	// scores.
	Normal3to18 = mustTable(3, 18, []float64{
		0.46, 1.39, 2.78, 4.63, 6.94, 9.72, 11.57, 12.50,
		12.50, 11.57, 9.72, 6.94, 4.63, 2.78, 1.39, 0.46,
	})
)

// Lo returns the inclusive lower bound of the table's range.
func (t *WeightTable) Lo() int { return t.lo }

// Hi returns the inclusive upper bound of the table's range.
func (t *WeightTable) Hi() int { return t.hi }

// Sample draws one value from the table using the weights as relative
// probabilities. Draws are independent.
func (t *WeightTable) Sample(rng *rand.Rand) int {
	target := rng.Float64() * t.total
	for i, c := range t.cum {
		if target < c {
			return t.lo + i
		}
	}
	return t.hi
}
