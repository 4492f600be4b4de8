package chips

// DefaultChipHeight is the rendered height of one chip in pixels.
const DefaultChipHeight = 9

// DragQuantity converts a pointer offset into a stack into a chip count:
// the chip under the pointer plus every chip above it. The result is
// clamped to [1, available], or 0 when the stack is empty.
func DragQuantity(offset, chipHeight, available int) int {
	if available <= 0 {
		return 0
	}
	if chipHeight <= 0 {
		chipHeight = 1
	}
	if offset < 0 {
		offset = 0
	}

	q := offset/chipHeight + 1
	if q > available {
		q = available
	}
	return q
}
