package slot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumBits_WidthTable(t *testing.T) {
	cases := []struct {
		typ  string
		bits int
	}{
		{"bool", 8},
		{"byte", 8},
		{"address", 160},
		{"uint", 256},
		{"uint8", 8},
		{"uint128", 128},
		{"uint256", 256},
		{"int", 256},
		{"int48", 48},
		{"int256", 256},
		{"bytes", 256},
		{"bytes1", 8},
		{"bytes4", 32},
		{"bytes32", 256},
		{"string", 256},
		{"uint256[]", 256},
		{"bool[]", 256},
		{"string[]", 256},
		{"address[]", 256},
	}

	for _, tc := range cases {
		t.Run(tc.typ, func(t *testing.T) {
			v := Variable{Type: tc.typ, Name: "x"}
			bits, err := v.NumBits()
			require.NoError(t, err)
			assert.Equal(t, tc.bits, bits)
		})
	}
}

func TestNumBits_UnrecognizedType(t *testing.T) {
	for _, typ := range []string{"foo", "UINT8", "mapping", "Bool", ""} {
		t.Run(typ, func(t *testing.T) {
			v := Variable{Type: typ, Name: "x"}
			_, err := v.NumBits()
			require.Error(t, err)
			assert.True(t, IsUnrecognizedType(err), "expected UNRECOGNIZED_TYPE for %q", typ)
			assert.False(t, IsMalformedWidthSuffix(err))
		})
	}
}

func TestNumBits_MalformedWidthSuffix(t *testing.T) {
	for _, typ := range []string{"uint300x", "uintx", "int8x", "bytesX", "uint+8", "int-8"} {
		t.Run(typ, func(t *testing.T) {
			v := Variable{Type: typ, Name: "x"}
			_, err := v.NumBits()
			require.Error(t, err)
			assert.True(t, IsMalformedWidthSuffix(err), "expected MALFORMED_WIDTH_SUFFIX for %q", typ)
		})
	}
}

func TestNumBits_ErrorCarriesVariable(t *testing.T) {
	v := Variable{Type: "foo", Name: "counter"}
	_, err := v.NumBits()
	require.Error(t, err)

	te, ok := err.(*TypeError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeUnrecognizedType, te.Code)
	assert.Equal(t, "foo", te.Type)
	assert.Equal(t, "counter", te.Name)
	assert.Contains(t, te.Error(), "foo")
	assert.Contains(t, te.Error(), "counter")
}

func TestVariable_String(t *testing.T) {
	v := Variable{Type: "uint128", Name: "balance"}
	assert.Equal(t, "uint128 balance", v.String())
}
