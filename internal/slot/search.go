package slot

// Result holds the outcome of an exhaustive layout search.
type Result struct {
	// OriginalSlots is the slot count of the unpermuted input ordering.
	OriginalSlots int

	// MinSlots is the minimum slot count over all orderings.
	MinSlots int

	// MaxSlots is the maximum slot count over all orderings. Reported
	// for information only; selection never uses it.
	MaxSlots int

	// WinningOrder is the selected minimal-slot ordering: the one that
	// is lexicographically smallest by variable name among all
	// orderings achieving MinSlots. It is always a rearrangement of
	// exactly the input variables.
	WinningOrder []Variable
}

// FindOptimalOrdering scores every ordering of variables and selects a
// deterministic winner among those consuming the fewest slots.
//
// All widths are resolved before the search starts, so a TypeError
// surfaces immediately with no partial result. The search itself cannot
// fail.
//
// The enumeration is intentionally exhaustive, O(n!) in the variable
// count. Contract layouts rarely exceed a dozen variables; full
// enumeration is what guarantees MinSlots is a true optimum.
//
// An empty input yields a trivial result: all counts zero, nil winner.
func FindOptimalOrdering(variables []Variable) (*Result, error) {
	widths := make([]int, len(variables))
	for i, v := range variables {
		w, err := v.NumBits()
		if err != nil {
			return nil, err
		}
		widths[i] = w
	}

	res := &Result{OriginalSlots: packWidths(widths)}

	idx := make([]int, len(variables))
	for i := range idx {
		idx[i] = i
	}

	// cand and candWidths are reused across the n! visits; best keeps
	// its own backing array and is only overwritten on a strict
	// improvement, so the first-encountered candidate survives ties
	// between name-equal orderings.
	cand := make([]Variable, len(variables))
	candWidths := make([]int, len(variables))
	var best []Variable
	first := true

	forEachPermutation(idx, func(perm []int) {
		for i, j := range perm {
			cand[i] = variables[j]
			candWidths[i] = widths[j]
		}
		slots := packWidths(candWidths)

		if first {
			res.MinSlots, res.MaxSlots = slots, slots
			best = append(best[:0], cand...)
			first = false
			return
		}
		if slots > res.MaxSlots {
			res.MaxSlots = slots
		}
		if slots < res.MinSlots {
			res.MinSlots = slots
			best = append(best[:0], cand...)
		} else if slots == res.MinSlots && CompareNames(cand, best) < 0 {
			best = append(best[:0], cand...)
		}
	})

	res.WinningOrder = best
	return res, nil
}
