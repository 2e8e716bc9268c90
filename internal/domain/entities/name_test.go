package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustName(t *testing.T, parts []string, order []int) Name {
	t.Helper()
	n, err := NewName(parts, order)
	require.NoError(t, err)
	return n
}

func TestNewName_DefaultsToIdentityOrder(t *testing.T) {
	n := mustName(t, []string{"Bob", "T", "Smith"}, nil)
	assert.Equal(t, []int{0, 1, 2}, n.SortOrder())
	assert.Equal(t, []string{"Bob", "T", "Smith"}, n.Parts())
}

func TestNewName_ValidatesPermutation(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		order []int
	}{
		{
			name:  "too short",
			parts: []string{"Zee", "Atlantic"},
			order: []int{0},
		},
		{
			name:  "too long",
			parts: []string{"Zee", "Atlantic"},
			order: []int{0, 1, 1},
		},
		{
			name:  "duplicate index",
			parts: []string{"Zee", "Atlantic"},
			order: []int{1, 1},
		},
		{
			name:  "index out of range",
			parts: []string{"Zee", "Atlantic"},
			order: []int{0, 2},
		},
		{
			name:  "negative index",
			parts: []string{"Zee", "Atlantic"},
			order: []int{-1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewName(tt.parts, tt.order)
			assert.Error(t, err)
		})
	}
}

func TestName_SortOrderInvariant(t *testing.T) {
	n := mustName(t, []string{"Zee", "Atlantic"}, []int{1, 0})

	order := n.SortOrder()
	require.Len(t, order, len(n.Parts()))

	seen := make(map[int]bool)
	for _, idx := range order {
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, len(n.Parts()))
		assert.False(t, seen[idx], "index %d appears twice", idx)
		seen[idx] = true
	}
}

func TestName_Ordering(t *testing.T) {
	// Display order and comparison order diverge: "Bob T Smith" renders
	// before "Zee Atlantic" but compares after "Atlantic"-first.
	name1 := mustName(t, []string{"Bob", "T", "Smith"}, nil)
	name2 := mustName(t, []string{"Zee", "Atlantic"}, []int{1, 0})
	name3 := mustName(t, []string{"Zee", "Atlantic"}, []int{0, 1})
	name4 := mustName(t, []string{"Zee", "Atlantic"}, nil)

	assert.True(t, name2.Less(name1))
	assert.Less(t, name1.String(), name2.String())
	assert.True(t, name1.Less(name3))
	assert.True(t, name1.Less(name4))
	assert.True(t, name3.Equal(name4))
}

func TestName_CaseInsensitiveByDefault(t *testing.T) {
	a := mustName(t, []string{"Ana"}, nil)
	b := mustName(t, []string{"ana"}, nil)

	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, a.Compare(b))
}

func TestName_CaseSensitiveComparison(t *testing.T) {
	SetCaseSensitive(true)
	t.Cleanup(func() { SetCaseSensitive(false) })

	a := mustName(t, []string{"Ana"}, nil)
	b := mustName(t, []string{"ana"}, nil)

	assert.False(t, a.Equal(b))
	// Uppercase sorts before lowercase in byte order.
	assert.True(t, a.Less(b))
}

func TestName_TotalOrderProperties(t *testing.T) {
	names := []Name{
		mustName(t, []string{"Bob", "T", "Smith"}, nil),
		mustName(t, []string{"Zee", "Atlantic"}, []int{1, 0}),
		mustName(t, []string{"Ana"}, nil),
		mustName(t, []string{"ana"}, nil),
	}

	for _, n := range names {
		assert.Equal(t, 0, n.Compare(n), "reflexive: %s", n)
	}

	for _, a := range names {
		for _, b := range names {
			assert.Equal(t, a.Compare(b), -b.Compare(a), "antisymmetric: %s vs %s", a, b)
			for _, c := range names {
				if a.Compare(b) <= 0 && b.Compare(c) <= 0 {
					assert.LessOrEqual(t, a.Compare(c), 0, "transitive: %s, %s, %s", a, b, c)
				}
			}
		}
	}
}

func TestCompareValues_RejectsNonNames(t *testing.T) {
	n := mustName(t, []string{"Ana"}, nil)

	_, err := CompareValues(n, "Ana")
	assert.ErrorIs(t, err, ErrNotComparable)

	_, err = CompareValues(42, n)
	assert.ErrorIs(t, err, ErrNotComparable)

	got, err := CompareValues(n, mustName(t, []string{"ana"}, nil))
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestName_StringUsesDisplayOrderAndSeparator(t *testing.T) {
	n := mustName(t, []string{"Zee", "Atlantic"}, []int{1, 0})
	assert.Equal(t, "Zee Atlantic", n.String())

	SetSeparator("-")
	t.Cleanup(func() { SetSeparator(" ") })
	assert.Equal(t, "Zee-Atlantic", n.String())
}
