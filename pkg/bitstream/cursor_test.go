package bitstream

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCursorErrors(t *testing.T) {
	_, err := NewCursor(nil, 0, LSBFirst)
	require.ErrorIs(t, err, ErrNilSource)
	_, err = NewCursor([]byte{1}, -1, LSBFirst)
	require.ErrorIs(t, err, ErrNegativeOffset)
	_, err = NewCursor([]byte{1}, 0, Ordering(7))
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestConsumeLSBFirst(t *testing.T) {
	c, err := NewCursor([]byte{0xb0, 0x01}, 0, LSBFirst)
	require.NoError(t, err)

	// low nibble of byte 0, high nibble of byte 0, then all of byte 1
	v, err := c.Consume(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x0), v)
	v, err = c.Consume(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xb), v)
	v, err = c.Consume(8)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01), v)
	assert.Equal(t, 0, c.Held())
}

func TestConsumeMSBFirst(t *testing.T) {
	c, err := NewCursor([]byte{0x8f, 0x55}, 0, MSBFirst)
	require.NoError(t, err)

	want := []struct {
		bits int
		v    uint32
	}{{4, 0x8}, {3, 0x7}, {3, 0x5}, {6, 0x15}}
	for _, w := range want {
		v, err := c.Consume(w.bits)
		require.NoError(t, err)
		assert.Equal(t, w.v, v)
	}
}

func TestConsumeZeroBits(t *testing.T) {
	c, err := NewCursor([]byte{0xff}, 0, LSBFirst)
	require.NoError(t, err)
	v, err := c.Consume(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), v)
	assert.Equal(t, 0, c.Held())
	assert.Equal(t, 0, c.Offset())
}

func TestBitCountBounds(t *testing.T) {
	c, err := NewCursor([]byte{0xff, 0xff, 0xff, 0xff, 0xff}, 0, LSBFirst)
	require.NoError(t, err)
	_, err = c.Consume(33)
	require.ErrorIs(t, err, ErrBitCount)
	_, err = c.Consume(-1)
	require.ErrorIs(t, err, ErrBitCount)
	_, err = c.Pull(0)
	require.ErrorIs(t, err, ErrBitCount)
	_, err = c.Pull(33)
	require.ErrorIs(t, err, ErrBitCount)
}

func TestPullTriState(t *testing.T) {
	c, err := NewCursor([]byte{0xaa}, 0, LSBFirst)
	require.NoError(t, err)
	ok, err := c.Pull(12)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 8, c.Held())

	ok, err = c.Pull(8)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConsumeExhausted(t *testing.T) {
	c, err := NewCursor([]byte{0xaa}, 0, MSBFirst)
	require.NoError(t, err)
	_, err = c.Consume(12)
	require.ErrorIs(t, err, ErrExhausted)
	// exactly the bits that were available stay buffered
	assert.Equal(t, 8, c.Held())

	v, err := c.Consume(8)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xaa), v)
}

func TestConsume32ResetsAccumulator(t *testing.T) {
	src := []byte{0x78, 0x56, 0x34, 0x12}

	c, err := NewCursor(src, 0, LSBFirst)
	require.NoError(t, err)
	v, err := c.Consume(32)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), v)
	assert.Equal(t, 0, c.Held())

	c, err = NewCursor(src, 0, MSBFirst)
	require.NoError(t, err)
	v, err = c.Consume(32)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x78563412), v)
	assert.Equal(t, 0, c.Held())
}

func TestConsume32DiscardsExcessBits(t *testing.T) {
	// Consume(1) leaves 7 buffered bits, so the following Consume(32) pulls
	// to 39. The call must hand back the 32 bits the legacy 32-bit register
	// would have held and throw the other 7 away on reset.
	src := []byte{0xff, 0x78, 0x56, 0x34, 0x12, 0xee}

	c, err := NewCursor(src, 0, LSBFirst)
	require.NoError(t, err)
	v, err := c.Consume(1)
	require.NoError(t, err)
	require.Equal(t, uint32(1), v)
	v, err = c.Consume(32)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x1a2b3c7f), v)
	assert.Equal(t, 0, c.Held())
	assert.Equal(t, 5, c.Offset())

	c, err = NewCursor(src, 0, MSBFirst)
	require.NoError(t, err)
	v, err = c.Consume(1)
	require.NoError(t, err)
	require.Equal(t, uint32(1), v)
	v, err = c.Consume(32)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xfef0ac68), v)
	assert.Equal(t, 0, c.Held())
	assert.Equal(t, 5, c.Offset())
}

func TestReposition(t *testing.T) {
	c, err := NewCursor([]byte{0x0f, 0xf0}, 0, LSBFirst)
	require.NoError(t, err)
	_, err = c.Consume(3)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Held())

	require.ErrorIs(t, c.Reposition(-1), ErrNegativeOffset)

	require.NoError(t, c.Reposition(1))
	assert.Equal(t, 0, c.Held())
	assert.Equal(t, 1, c.Offset())
	v, err := c.Consume(8)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xf0), v)
}

func TestStartOffsetPastEnd(t *testing.T) {
	c, err := NewCursor([]byte{1, 2}, 5, LSBFirst)
	require.NoError(t, err)
	ok, err := c.Pull(1)
	require.NoError(t, err)
	assert.False(t, ok)
	_, err = c.Consume(1)
	require.ErrorIs(t, err, ErrExhausted)
}

func TestWriterFlushPadding(t *testing.T) {
	w := NewWriter(LSBFirst, 1)
	require.NoError(t, w.WriteBits(0b101, 3))
	w.Flush()
	assert.Equal(t, []byte{0x05}, w.Bytes())

	w = NewWriter(MSBFirst, 1)
	require.NoError(t, w.WriteBits(0b101, 3))
	w.Flush()
	assert.Equal(t, []byte{0xa0}, w.Bytes())
}

func TestWriterMatchesDocExample(t *testing.T) {
	// MSBFirst writes of 0x8/4, 0x7/3, 0x5/3, 0x15/6 lay out as 0x8f 0x55.
	w := NewWriter(MSBFirst, 2)
	require.NoError(t, w.WriteBits(0x8, 4))
	require.NoError(t, w.WriteBits(0x7, 3))
	require.NoError(t, w.WriteBits(0x5, 3))
	require.NoError(t, w.WriteBits(0x15, 6))
	w.Flush()
	assert.Equal(t, []byte{0x8f, 0x55}, w.Bytes())
}

func TestWriterCursorRoundTrip(t *testing.T) {
	for _, ord := range []Ordering{LSBFirst, MSBFirst} {
		condition := func(vals []uint32) bool {
			w := NewWriter(ord, len(vals)*4)
			widths := make([]int, len(vals))
			for i, v := range vals {
				widths[i] = int(v%32) + 1
				if err := w.WriteBits(v, widths[i]); err != nil {
					return false
				}
			}
			w.Flush()
			c, err := NewCursor(w.Bytes(), 0, ord)
			if err != nil {
				return false
			}
			for i, v := range vals {
				got, err := c.Consume(widths[i])
				if err != nil {
					return false
				}
				if got != v&(1<<widths[i]-1) {
					return false
				}
			}
			return true
		}
		require.NoError(t, quick.Check(condition, &quick.Config{}))
	}
}
