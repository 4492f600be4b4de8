package chips

import (
	"fmt"
	"sort"
)

// Denomination is a fixed chip value together with its display colours.
type Denomination struct {
	Value      int
	Foreground string
	Background string
	Selected   string
}

func (d Denomination) String() string {
	return fmt.Sprintf("$%d", d.Value)
}

// Table is an immutable set of denominations ordered by descending value.
type Table struct {
	denominations []Denomination
	byValue       map[int]Denomination
}

// NewTable validates the denominations and returns a table sorted by
// descending value.
func NewTable(ds ...Denomination) (*Table, error) {
	if len(ds) == 0 {
		return nil, ErrNoDenominations
	}

	byValue := make(map[int]Denomination, len(ds))
	sorted := make([]Denomination, 0, len(ds))
	for _, d := range ds {
		if d.Value <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidDenomination, d.Value)
		}
		if _, exists := byValue[d.Value]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateDenomination, d.Value)
		}
		byValue[d.Value] = d
		sorted = append(sorted, d)
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})

	return &Table{denominations: sorted, byValue: byValue}, nil
}

// DefaultTable returns the canonical 1/5/25/100 chip set.
func DefaultTable() *Table {
	t, err := NewTable(DefaultDenominations()...)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultDenominations returns the standard chip colours.
func DefaultDenominations() []Denomination {
	return []Denomination{
		{Value: 1, Foreground: "#000000", Background: "#cccccc", Selected: "#ffff00"},
		{Value: 5, Foreground: "#000000", Background: "#cc0000", Selected: "#ffff00"},
		{Value: 25, Foreground: "#000000", Background: "#00cc00", Selected: "#ffff00"},
		{Value: 100, Foreground: "#ffdd00", Background: "#222222", Selected: "#ffff00"},
	}
}

// Denominations returns a copy of the table, largest value first.
func (t *Table) Denominations() []Denomination {
	out := make([]Denomination, len(t.denominations))
	copy(out, t.denominations)
	return out
}

// Values returns the denomination values, largest first.
func (t *Table) Values() []int {
	out := make([]int, len(t.denominations))
	for i, d := range t.denominations {
		out[i] = d.Value
	}
	return out
}

// Lookup returns the denomination with the given value.
func (t *Table) Lookup(value int) (Denomination, bool) {
	d, ok := t.byValue[value]
	return d, ok
}

// Smallest returns the lowest denomination value.
func (t *Table) Smallest() int {
	return t.denominations[len(t.denominations)-1].Value
}

// HasUnit reports whether every non-negative amount can be split exactly.
func (t *Table) HasUnit() bool {
	_, ok := t.byValue[1]
	return ok
}
