package slot

// SlotCount returns the number of storage slots the given ordering
// occupies. The pack is a streaming greedy fold: only the most recently
// opened slot is ever a placement candidate, and a variable that does
// not fit there closes it and opens a fresh one. There is no
// first-fit-across-slots, repacking, or backtracking; this is the
// defining packing semantics the search reproduces for every candidate
// ordering.
//
// Fails on the first variable whose type cannot be sized.
func SlotCount(ordering []Variable) (int, error) {
	widths := make([]int, len(ordering))
	for i, v := range ordering {
		w, err := v.NumBits()
		if err != nil {
			return 0, err
		}
		widths[i] = w
	}
	return packWidths(widths), nil
}

// packWidths folds pre-resolved bit widths into a slot count.
//
// The accumulator has two states: no slot open, or a slot open with
// fill bits used. A variable always opens a slot when none is open, so
// any non-empty input costs at least one slot.
func packWidths(widths []int) int {
	slots := 0
	fill := 0
	open := false
	for _, w := range widths {
		if !open || fill+w > WordBits {
			slots++
			fill = w
			open = true
		} else {
			fill += w
		}
	}
	return slots
}
