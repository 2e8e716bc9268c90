package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotComparable is returned when a Name is compared against a value of
// another type.
var ErrNotComparable = errors.New("value is not a Name")

// Process-wide rendering and comparison settings shared by every Name.
// Set once at startup, before any Name is compared or printed.
var (
	nameSeparator     = " "
	nameCaseSensitive = false
)

// SetSeparator sets the string placed between parts when rendering a Name.
func SetSeparator(sep string) { nameSeparator = sep }

// Separator returns the current display separator.
func Separator() string { return nameSeparator }

// SetCaseSensitive toggles case-sensitive Name comparison. Comparison is
// case-insensitive by default.
func SetCaseSensitive(v bool) { nameCaseSensitive = v }

// CaseSensitive reports whether Name comparison is case-sensitive.
func CaseSensitive() bool { return nameCaseSensitive }

// Name is an ordered sequence of name parts together with a sort order: a
// permutation of the part indices dictating the order in which parts are
// concatenated for comparison. Display order and comparison order differ in
// cultures where the family name leads socially but not grammatically (or
// vice versa). A Name is immutable once constructed.
type Name struct {
	parts     []string
	sortOrder []int
}

// NewName builds a Name from its parts and an optional sort order. A nil
// sortOrder means identity order. A non-nil sortOrder must be a permutation
// of 0..len(parts)-1.
func NewName(parts []string, sortOrder []int) (Name, error) {
	p := make([]string, len(parts))
	copy(p, parts)

	if sortOrder == nil {
		order := make([]int, len(p))
		for i := range order {
			order[i] = i
		}
		return Name{parts: p, sortOrder: order}, nil
	}

	if len(sortOrder) != len(p) {
		return Name{}, fmt.Errorf("sort order has %d entries for %d name parts", len(sortOrder), len(p))
	}
	seen := make([]bool, len(p))
	for _, idx := range sortOrder {
		if idx < 0 || idx >= len(p) || seen[idx] {
			return Name{}, fmt.Errorf("sort order %v is not a permutation of the part indices", sortOrder)
		}
		seen[idx] = true
	}

	order := make([]int, len(sortOrder))
	copy(order, sortOrder)
	return Name{parts: p, sortOrder: order}, nil
}

// Parts returns a copy of the name parts in display order.
func (n Name) Parts() []string {
	p := make([]string, len(n.parts))
	copy(p, n.parts)
	return p
}

// SortOrder returns a copy of the comparison permutation.
func (n Name) SortOrder() []int {
	order := make([]int, len(n.sortOrder))
	copy(order, n.sortOrder)
	return order
}

// sortKey concatenates the parts in sortOrder sequence. The key is lowercased
// unless case-sensitive comparison is enabled.
func (n Name) sortKey() string {
	var b strings.Builder
	for _, idx := range n.sortOrder {
		b.WriteString(n.parts[idx])
	}
	if nameCaseSensitive {
		return b.String()
	}
	return strings.ToLower(b.String())
}

// Compare orders two Names by their sort keys. It returns -1, 0, or +1 in the
// manner of strings.Compare.
func (n Name) Compare(other Name) int {
	return strings.Compare(n.sortKey(), other.sortKey())
}

// Equal reports whether two Names have the same sort key.
func (n Name) Equal(other Name) bool { return n.Compare(other) == 0 }

// Less reports whether n sorts before other.
func (n Name) Less(other Name) bool { return n.Compare(other) < 0 }

// CompareValues compares two values that are expected to be Names. It returns
// ErrNotComparable when either value is of another type, rather than a
// default ordering.
func CompareValues(a, b any) (int, error) {
	na, ok := a.(Name)
	if !ok {
		return 0, fmt.Errorf("comparing %T: %w", a, ErrNotComparable)
	}
	nb, ok := b.(Name)
	if !ok {
		return 0, fmt.Errorf("comparing %T: %w", b, ErrNotComparable)
	}
	return na.Compare(nb), nil
}

// String renders the parts in display order joined by the shared separator.
// Rendering is independent of the sort order.
func (n Name) String() string {
	return strings.Join(n.parts, nameSeparator)
}
