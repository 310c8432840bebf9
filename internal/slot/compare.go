package slot

import "strings"

// EqualNames reports whether two orderings carry the same variable
// names in the same positions. Types are deliberately not compared:
// the original tie-break design identifies orderings by name alone,
// and that behavior is preserved here (see DESIGN.md).
func EqualNames(a, b []Variable) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name {
			return false
		}
	}
	return true
}

// CompareNames is a total order over orderings: lexicographic by
// variable name, position by position. A strict prefix sorts before
// the longer sequence. Returns -1, 0, or +1.
func CompareNames(a, b []Variable) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := strings.Compare(a[i].Name, b[i].Name); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
