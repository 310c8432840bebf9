package slot

import (
	"strconv"
	"strings"
)

// WordBits is the width of one storage slot in bits.
const WordBits = 256

// Variable is one declared state variable. Name is used for display and
// as the tie-break key during winner selection; it is not semantically
// validated. Variables are immutable once constructed.
type Variable struct {
	Type string
	Name string
}

// String renders the variable as it would appear in a declaration.
func (v Variable) String() string {
	return v.Type + " " + v.Name
}

// NumBits returns the number of bits the variable occupies in storage.
//
// The type vocabulary is fixed and checked in order, first match wins:
//
//	T[] (any array)  256
//	bool             8
//	uintN / intN     N, or 256 when unsuffixed
//	address          160
//	byte             8
//	bytes            256
//	bytesN           N * 8
//	string           256
//
// Any other type tag fails with UNRECOGNIZED_TYPE; a width suffix that
// is present but not all digits fails with MALFORMED_WIDTH_SUFFIX.
func (v Variable) NumBits() (int, error) {
	switch {
	case strings.HasSuffix(v.Type, "[]"):
		return WordBits, nil
	case v.Type == "bool":
		return 8, nil
	case strings.HasPrefix(v.Type, "uint"):
		return v.suffixBits(v.Type[len("uint"):], 1)
	case strings.HasPrefix(v.Type, "int"):
		return v.suffixBits(v.Type[len("int"):], 1)
	case v.Type == "address":
		return 160, nil
	case v.Type == "byte":
		return 8, nil
	case v.Type == "bytes":
		return WordBits, nil
	case strings.HasPrefix(v.Type, "bytes"):
		return v.suffixBits(v.Type[len("bytes"):], 8)
	case v.Type == "string":
		return WordBits, nil
	}
	return 0, newUnrecognizedType(v)
}

// suffixBits resolves a numeric width suffix. An empty suffix means the
// full word; a non-digit suffix is malformed. The scale is 1 for
// uintN/intN (suffix counts bits) and 8 for bytesN (suffix counts
// bytes). The exact-match cases in NumBits guarantee suffix is
// non-empty for bytesN.
func (v Variable) suffixBits(suffix string, scale int) (int, error) {
	if suffix == "" {
		return WordBits, nil
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return 0, newMalformedWidthSuffix(v)
		}
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		// all-digit but out of int range
		return 0, newMalformedWidthSuffix(v)
	}
	return n * scale, nil
}
