package chips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDragQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		offset     int
		chipHeight int
		available  int
		want       int
	}{
		{"top of first chip", 0, 9, 5, 1},
		{"inside first chip", 8, 9, 5, 1},
		{"second chip boundary", 9, 9, 5, 2},
		{"third chip", 20, 9, 5, 3},
		{"clamped to available", 200, 9, 5, 5},
		{"negative offset", -4, 9, 5, 1},
		{"empty stack", 12, 9, 0, 0},
		{"zero chip height treated as one row", 2, 0, 5, 3},
		{"terminal rows", 1, 1, 3, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DragQuantity(tc.offset, tc.chipHeight, tc.available))
		})
	}
}
