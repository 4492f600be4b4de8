package chips

import "fmt"

// Ledger counts chips per denomination value within one pile.
type Ledger map[int]int

// NewLedger returns a ledger with a zero count for every value in the table.
func NewLedger(t *Table) Ledger {
	l := make(Ledger, len(t.denominations))
	for _, d := range t.denominations {
		l[d.Value] = 0
	}
	return l
}

// Count returns the number of chips of the given value.
func (l Ledger) Count(value int) int {
	return l[value]
}

// TotalValue returns the currency value of every chip in the ledger.
func (l Ledger) TotalValue() int {
	total := 0
	for value, count := range l {
		total += value * count
	}
	return total
}

// Chips returns the number of physical chips in the ledger.
func (l Ledger) Chips() int {
	n := 0
	for _, count := range l {
		n += count
	}
	return n
}

// IsEmpty reports whether the ledger holds no chips.
func (l Ledger) IsEmpty() bool {
	return l.Chips() == 0
}

// Clone returns an independent copy.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for value, count := range l {
		out[value] = count
	}
	return out
}

// Merge adds every chip in other to l.
func (l Ledger) Merge(other Ledger) {
	for value, count := range other {
		l[value] += count
	}
}

// Reset zeroes every count while keeping the keys.
func (l Ledger) Reset() {
	for value := range l {
		l[value] = 0
	}
}

// Transfer moves quantity chips of value from one ledger to another. On
// error neither ledger is modified.
func Transfer(from, to Ledger, value, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	if from[value] < quantity {
		return fmt.Errorf("%w: want %d x $%d, have %d", ErrInsufficientChips, quantity, value, from[value])
	}
	from[value] -= quantity
	to[value] += quantity
	return nil
}

// Split decomposes amount into chips, largest denomination first, and adds
// them to l. An amount that leaves a remainder is rejected and l is left
// untouched.
func (t *Table) Split(amount int, l Ledger) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAmount, amount)
	}

	scratch := make(Ledger, len(t.denominations))
	remaining := amount
	for _, d := range t.denominations {
		if n := remaining / d.Value; n > 0 {
			scratch[d.Value] += n
			remaining -= n * d.Value
		}
	}
	if remaining > 0 {
		return fmt.Errorf("%w: %d left over from %d", ErrAmountNotRepresentable, remaining, amount)
	}

	l.Merge(scratch)
	return nil
}

// Stack is one denomination's entry in a pile snapshot.
type Stack struct {
	Denomination Denomination `json:"-"`
	Value        int          `json:"value"`
	Count        int          `json:"count"`
}

// Stacks lists the ledger's counts in table order, skipping empty stacks
// unless includeEmpty is set.
func (t *Table) Stacks(l Ledger, includeEmpty bool) []Stack {
	stacks := make([]Stack, 0, len(t.denominations))
	for _, d := range t.denominations {
		count := l[d.Value]
		if count == 0 && !includeEmpty {
			continue
		}
		stacks = append(stacks, Stack{Denomination: d, Value: d.Value, Count: count})
	}
	return stacks
}
