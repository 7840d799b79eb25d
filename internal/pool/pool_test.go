package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := GetPayloadBuffer()
	defer PutPayloadBuffer(bb)

	require.Zero(t, bb.Len())

	bb.MustWrite([]byte{1, 2, 3})
	require.Equal(t, 3, bb.Len())
	require.Equal(t, []byte{1, 2, 3}, bb.Bytes())

	bb.Reset()
	require.Zero(t, bb.Len())
	require.GreaterOrEqual(t, cap(bb.B), PayloadBufferDefaultSize)
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte{1, 2})

	bb.Grow(100)
	require.Equal(t, 2, bb.Len())
	require.GreaterOrEqual(t, cap(bb.B), 102)
	require.Equal(t, []byte{1, 2}, bb.Bytes())
}

func TestGetInt16Slice_LengthAndReuse(t *testing.T) {
	s, cleanup := GetInt16Slice(64)
	require.Len(t, s, 64)
	cleanup()

	// A smaller request reuses the pooled backing array.
	s2, cleanup2 := GetInt16Slice(16)
	defer cleanup2()
	require.Len(t, s2, 16)
}
