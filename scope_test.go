package ethabi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScopeStackPushPopTop(t *testing.T) {
	var s scopeStack
	require.True(t, s.empty())
	require.Nil(t, s.top())

	s.push(scopeFrame{anchor: 0, isSequence: true})
	s.push(scopeFrame{anchor: 32, isSequence: false})
	require.Equal(t, 2, s.depth())
	require.Equal(t, 32, s.top().anchor)

	f := s.pop()
	require.Equal(t, 32, f.anchor)
	require.Equal(t, 1, s.depth())

	f = s.pop()
	require.Equal(t, 0, f.anchor)
	require.True(t, s.empty())
}

func TestStreamReadWordPeekRestoresPosition(t *testing.T) {
	w1 := EncodeUint(1, 64)
	w2 := EncodeUint(2, 64)
	buf := append(append([]byte{}, w1[:]...), w2[:]...)
	s := &stream{buf: buf, remaining: defaultMaxBytes}

	peeked, err := s.peekWord()
	require.NoError(t, err)
	require.Equal(t, w1, peeked)
	require.Equal(t, 0, s.position())

	got, err := s.readWord()
	require.NoError(t, err)
	require.Equal(t, w1, got)
	require.Equal(t, 32, s.position())

	got, err = s.readWord()
	require.NoError(t, err)
	require.Equal(t, w2, got)
}

func TestStreamReadWordInsufficientBytes(t *testing.T) {
	s := &stream{buf: make([]byte, 10), remaining: defaultMaxBytes}
	_, err := s.readWord()
	require.Error(t, err)
	abiErr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, KindData, abiErr.Kind)
	require.Equal(t, msgInsufficientBytes, abiErr.Msg)
}

func TestStreamCheckAllocationCeiling(t *testing.T) {
	s := &stream{buf: nil, remaining: 10}
	require.NoError(t, s.checkAllocation(10))
	require.Equal(t, 0, s.remaining)

	s = &stream{buf: nil, remaining: 10}
	err := s.checkAllocation(11)
	require.Error(t, err)
	abiErr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, KindData, abiErr.Kind)
}

func TestStreamRequireEnd(t *testing.T) {
	s := &stream{buf: []byte{1, 2, 3}}
	require.Error(t, s.requireEnd())

	s.watermark = 3
	require.NoError(t, s.requireEnd())
}
