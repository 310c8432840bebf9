package slot

// forEachPermutation visits every arrangement of idx exactly once,
// permuting idx in place via Heap's algorithm. The visit order is fixed
// for a given starting arrangement, which makes the search's
// first-encountered tie resolution deterministic. The slice passed to
// visit is reused between calls; callers must copy what they keep.
//
// An empty idx is visited once, as the single (empty) arrangement.
func forEachPermutation(idx []int, visit func([]int)) {
	if len(idx) == 0 {
		visit(idx)
		return
	}
	heapPermute(idx, len(idx), visit)
}

func heapPermute(idx []int, k int, visit func([]int)) {
	if k == 1 {
		visit(idx)
		return
	}
	for i := 0; i < k-1; i++ {
		heapPermute(idx, k-1, visit)
		if k%2 == 0 {
			idx[i], idx[k-1] = idx[k-1], idx[i]
		} else {
			idx[0], idx[k-1] = idx[k-1], idx[0]
		}
	}
	heapPermute(idx, k-1, visit)
}
