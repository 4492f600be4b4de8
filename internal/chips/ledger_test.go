package chips

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		values  []int
		wantErr error
	}{
		{name: "empty", values: nil, wantErr: ErrNoDenominations},
		{name: "zero value", values: []int{1, 0}, wantErr: ErrInvalidDenomination},
		{name: "negative value", values: []int{-5}, wantErr: ErrInvalidDenomination},
		{name: "duplicate", values: []int{5, 1, 5}, wantErr: ErrDuplicateDenomination},
		{name: "unsorted input", values: []int{5, 100, 1, 25}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ds := make([]Denomination, len(tc.values))
			for i, v := range tc.values {
				ds[i] = Denomination{Value: v}
			}

			table, err := NewTable(ds...)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, table)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []int{100, 25, 5, 1}, table.Values())
			assert.Equal(t, 1, table.Smallest())
			assert.True(t, table.HasUnit())
		})
	}
}

func TestDefaultTableColours(t *testing.T) {
	t.Parallel()

	table := DefaultTable()
	d, ok := table.Lookup(100)
	require.True(t, ok)
	assert.Equal(t, "#ffdd00", d.Foreground)
	assert.Equal(t, "#222222", d.Background)

	_, ok = table.Lookup(50)
	assert.False(t, ok)
}

func TestSplitScenario(t *testing.T) {
	t.Parallel()

	table := DefaultTable()
	ledger := NewLedger(table)

	require.NoError(t, table.Split(144, ledger))

	assert.Equal(t, Ledger{100: 1, 25: 1, 5: 3, 1: 4}, ledger)
	assert.Equal(t, 144, ledger.TotalValue())
	assert.Equal(t, 9, ledger.Chips())
}

func TestSplitLargeAmount(t *testing.T) {
	t.Parallel()

	table := DefaultTable()
	ledger := NewLedger(table)
	const amount = 1 << 40

	require.NoError(t, table.Split(amount, ledger))

	assert.Equal(t, 10995116277, ledger.Count(100))
	assert.Equal(t, 3, ledger.Count(25))
	assert.Equal(t, 0, ledger.Count(5))
	assert.Equal(t, 1, ledger.Count(1))
	assert.Equal(t, amount, ledger.TotalValue())
}

func TestSplitZeroLeavesLedgerUnchanged(t *testing.T) {
	t.Parallel()

	table := DefaultTable()
	ledger := NewLedger(table)
	require.NoError(t, table.Split(0, ledger))
	assert.True(t, ledger.IsEmpty())

	ledger[5] = 2
	require.NoError(t, table.Split(0, ledger))
	assert.Equal(t, Ledger{100: 0, 25: 0, 5: 2, 1: 0}, ledger)
}

func TestSplitAddsToExistingCounts(t *testing.T) {
	t.Parallel()

	table := DefaultTable()
	ledger := Ledger{100: 1}
	require.NoError(t, table.Split(88, ledger))

	assert.Equal(t, 188, ledger.TotalValue())
	assert.Equal(t, 1, ledger[100])
	assert.Equal(t, 3, ledger[25])
	assert.Equal(t, 2, ledger[5])
	assert.Equal(t, 3, ledger[1])
}

func TestSplitRejectsNegative(t *testing.T) {
	t.Parallel()

	table := DefaultTable()
	ledger := NewLedger(table)
	err := table.Split(-1, ledger)
	require.ErrorIs(t, err, ErrNegativeAmount)
	assert.True(t, ledger.IsEmpty())
}

func TestSplitWithoutUnitChip(t *testing.T) {
	t.Parallel()

	table, err := NewTable(Denomination{Value: 5}, Denomination{Value: 25})
	require.NoError(t, err)
	assert.False(t, table.HasUnit())

	ledger := NewLedger(table)
	require.NoError(t, table.Split(35, ledger))
	assert.Equal(t, Ledger{25: 1, 5: 2}, ledger)

	before := ledger.Clone()
	err = table.Split(37, ledger)
	require.ErrorIs(t, err, ErrAmountNotRepresentable)
	assert.Contains(t, err.Error(), "2 left over")
	assert.Equal(t, before, ledger, "rejected split must not touch the ledger")
}

// minChips computes the optimal chip count by dynamic programming.
func minChips(values []int, amount int) int {
	best := make([]int, amount+1)
	for a := 1; a <= amount; a++ {
		best[a] = -1
		for _, v := range values {
			if v <= a && best[a-v] >= 0 && (best[a] < 0 || best[a-v]+1 < best[a]) {
				best[a] = best[a-v] + 1
			}
		}
	}
	return best[amount]
}

func TestSplitIsExactAndMinimalForCanonicalSet(t *testing.T) {
	t.Parallel()

	table := DefaultTable()
	for amount := 0; amount <= 500; amount++ {
		ledger := NewLedger(table)
		require.NoError(t, table.Split(amount, ledger))
		require.Equal(t, amount, ledger.TotalValue(), "amount %d", amount)
		require.Equal(t, minChips(table.Values(), amount), ledger.Chips(), "amount %d", amount)
	}
}

func TestTransfer(t *testing.T) {
	t.Parallel()

	t.Run("moves chips and conserves value", func(t *testing.T) {
		from := Ledger{100: 1, 25: 1, 5: 3, 1: 4}
		to := Ledger{}
		before := from.TotalValue() + to.TotalValue()

		require.NoError(t, Transfer(from, to, 5, 3))
		require.NoError(t, Transfer(from, to, 25, 1))

		assert.Equal(t, 0, from[5])
		assert.Equal(t, 3, to[5])
		assert.Equal(t, before, from.TotalValue()+to.TotalValue())
		assert.Equal(t, 40, to.TotalValue())
	})

	t.Run("rejects more than available", func(t *testing.T) {
		from := Ledger{5: 2}
		to := Ledger{5: 1}

		err := Transfer(from, to, 5, 3)
		require.True(t, errors.Is(err, ErrInsufficientChips))
		assert.Equal(t, Ledger{5: 2}, from)
		assert.Equal(t, Ledger{5: 1}, to)
	})

	t.Run("rejects missing denomination", func(t *testing.T) {
		from := Ledger{5: 2}
		to := Ledger{}
		require.ErrorIs(t, Transfer(from, to, 100, 1), ErrInsufficientChips)
		assert.Empty(t, to)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		from := Ledger{5: 2}
		to := Ledger{}
		require.ErrorIs(t, Transfer(from, to, 5, 0), ErrInvalidQuantity)
		assert.Equal(t, 2, from[5])
	})
}

func TestLedgerMergeReset(t *testing.T) {
	t.Parallel()

	l := Ledger{25: 1, 1: 2}
	l.Merge(Ledger{25: 2, 5: 1})
	assert.Equal(t, Ledger{25: 3, 5: 1, 1: 2}, l)

	clone := l.Clone()
	l.Reset()
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 82, clone.TotalValue())
}

func TestStacks(t *testing.T) {
	t.Parallel()

	table := DefaultTable()
	l := Ledger{25: 2, 1: 1}

	stacks := table.Stacks(l, false)
	require.Len(t, stacks, 2)
	assert.Equal(t, 25, stacks[0].Value)
	assert.Equal(t, 2, stacks[0].Count)
	assert.Equal(t, "#00cc00", stacks[0].Denomination.Background)
	assert.Equal(t, 1, stacks[1].Value)

	assert.Len(t, table.Stacks(l, true), 4)
}
