package slot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vars(decls ...[2]string) []Variable {
	out := make([]Variable, len(decls))
	for i, d := range decls {
		out[i] = Variable{Type: d[0], Name: d[1]}
	}
	return out
}

func TestSlotCount_ExactWordPair(t *testing.T) {
	// 128 + 128 fill slot 1 exactly, c alone in slot 2.
	ordering := vars([2]string{"uint128", "a"}, [2]string{"uint128", "b"}, [2]string{"uint128", "c"})
	slots, err := SlotCount(ordering)
	require.NoError(t, err)
	assert.Equal(t, 2, slots)
}

func TestSlotCount_FullWordThenSmall(t *testing.T) {
	// A full 256-bit word leaves no room; the bool always needs its own slot.
	xy := vars([2]string{"uint256", "x"}, [2]string{"bool", "y"})
	slots, err := SlotCount(xy)
	require.NoError(t, err)
	assert.Equal(t, 2, slots)

	yx := vars([2]string{"bool", "y"}, [2]string{"uint256", "x"})
	slots, err = SlotCount(yx)
	require.NoError(t, err)
	assert.Equal(t, 2, slots)
}

func TestSlotCount_SmallVariablesShareOneSlot(t *testing.T) {
	ordering := vars(
		[2]string{"bool", "a"}, [2]string{"bool", "b"},
		[2]string{"bool", "c"}, [2]string{"bool", "d"},
	)
	slots, err := SlotCount(ordering)
	require.NoError(t, err)
	assert.Equal(t, 1, slots)
}

func TestSlotCount_AddressPlusWordRemainder(t *testing.T) {
	// 160 + 96 = 256 packs into one slot; 160 + 128 does not.
	fits := vars([2]string{"address", "owner"}, [2]string{"uint96", "nonce"})
	slots, err := SlotCount(fits)
	require.NoError(t, err)
	assert.Equal(t, 1, slots)

	overflows := vars([2]string{"address", "owner"}, [2]string{"uint128", "nonce"})
	slots, err = SlotCount(overflows)
	require.NoError(t, err)
	assert.Equal(t, 2, slots)
}

func TestSlotCount_GreedyNeverRevisitsClosedSlots(t *testing.T) {
	// 128 | 192 | 128: the third variable would fit slot 1's remaining
	// 128 bits, but only the open slot is a placement candidate.
	ordering := vars(
		[2]string{"uint128", "a"},
		[2]string{"uint192", "b"},
		[2]string{"uint128", "c"},
	)
	slots, err := SlotCount(ordering)
	require.NoError(t, err)
	assert.Equal(t, 3, slots)
}

func TestSlotCount_NonEmptyInputCostsAtLeastOneSlot(t *testing.T) {
	// Even a zero-width degenerate type opens a slot.
	for _, typ := range []string{"bool", "uint8", "uint256", "bytes0", "uint0"} {
		t.Run(typ, func(t *testing.T) {
			slots, err := SlotCount(vars([2]string{typ, "x"}))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, slots, 1)
		})
	}
}

func TestSlotCount_Empty(t *testing.T) {
	slots, err := SlotCount(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, slots)
}

func TestSlotCount_Deterministic(t *testing.T) {
	ordering := vars(
		[2]string{"uint128", "a"}, [2]string{"address", "b"},
		[2]string{"bool", "c"}, [2]string{"bytes4", "d"},
	)
	first, err := SlotCount(ordering)
	require.NoError(t, err)
	second, err := SlotCount(ordering)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSlotCount_PropagatesTypeError(t *testing.T) {
	ordering := vars([2]string{"uint128", "a"}, [2]string{"foo", "b"})
	_, err := SlotCount(ordering)
	require.Error(t, err)
	assert.True(t, IsUnrecognizedType(err))
}
