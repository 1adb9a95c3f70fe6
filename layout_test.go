package ethabi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinearizeFixedTuple(t *testing.T) {
	b := &builder{isSequence: false}
	w1 := EncodeUint(1, 64)
	w2 := EncodeUint(2, 64)
	b.push(fixedNode(w1[:]))
	b.push(fixedNode(w2[:]))

	n := b.linearize()
	require.Equal(t, nodeFixed, n.kind)
	require.Len(t, n.head, 64)
}

func TestLinearizeTupleWithDynamicChildBecomesDynamic(t *testing.T) {
	b := &builder{isSequence: false}
	w1 := EncodeUint(1, 64)
	b.push(fixedNode(w1[:]))
	b.push(dynamicNode(EncodeBytesDynamic([]byte("x"))))

	n := b.linearize()
	require.Equal(t, nodeDynamic, n.kind)
	// head: one fixed word + one offset word = 64 bytes
	offsetWord := Word{}
	copy(offsetWord[:], n.payload[32:64])
	offset, err := DecodeUint(offsetWord, 64)
	require.NoError(t, err)
	require.EqualValues(t, 64, offset)
}

func TestLinearizeSequenceAlwaysDynamic(t *testing.T) {
	b := &builder{isSequence: true}
	n := b.linearize()
	require.Equal(t, nodeDynamic, n.kind)

	lenWord := Word{}
	copy(lenWord[:], n.payload[:32])
	count, err := DecodeUint(lenWord, 64)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}

func TestLinearizeRootPrependsOffset(t *testing.T) {
	n := dynamicNode([]byte("hello"))
	out := linearizeRoot(n)
	require.Len(t, out, 32+5)

	var offsetWord Word
	copy(offsetWord[:], out[:32])
	offset, err := DecodeUint(offsetWord, 64)
	require.NoError(t, err)
	require.EqualValues(t, 32, offset)
}

func TestLinearizeRootFixedHasNoOffset(t *testing.T) {
	w := EncodeUint(42, 64)
	n := fixedNode(w[:])
	out := linearizeRoot(n)
	require.Equal(t, w[:], out)
}

func TestLinearizeEmptyTuple(t *testing.T) {
	b := &builder{isSequence: false}
	n := b.linearize()
	require.Equal(t, nodeFixed, n.kind)
	require.Empty(t, n.head)
	require.Empty(t, linearizeRoot(n))
}
