// Package bitstream extracts and emits arbitrary-width bit fields (1-32 bits)
// over plain byte slices, under either of the two packing conventions used by
// the packed codecs: LSBFirst, where the earliest byte of the stream occupies
// the lowest bit positions, and MSBFirst, where it occupies the highest.
package bitstream

import (
	"errors"

	"github.com/rawbytedev/packbits/internal/common"
)

// Ordering selects how pulled bytes are merged into the accumulator. It is
// fixed at construction.
type Ordering uint8

const (
	// LSBFirst merges each new byte above the bits already held; consumed
	// fields are masked off the low end, then the accumulator shifts right.
	LSBFirst Ordering = iota
	// MSBFirst shifts held bits up by 8 and merges the new byte at the low
	// end; consumed fields are taken from the high end and the remainder
	// re-masked.
	MSBFirst
)

var (
	ErrNilSource      = errors.New("bitstream: nil source")
	ErrNegativeOffset = errors.New("bitstream: negative offset")
	ErrBitCount       = errors.New("bitstream: bit count out of range")
	ErrExhausted      = errors.New("bitstream: source exhausted")
	ErrInvalidState   = errors.New("bitstream: invalid cursor state")
)

// Cursor reads bit fields from a borrowed byte slice. The slice is never
// copied or mutated; the caller must keep it alive and unmodified for the
// cursor's lifetime. A Cursor is not safe for concurrent use.
type Cursor struct {
	src []byte
	off int    // next unread byte
	acc uint64 // bits pulled but not yet consumed
	n   int    // valid bits in acc
	ord Ordering
}

// NewCursor returns a cursor over src positioned at offset with an empty
// accumulator. An offset past the end of src is allowed; pulls will simply
// report exhaustion.
func NewCursor(src []byte, offset int, ord Ordering) (*Cursor, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if offset < 0 {
		return nil, ErrNegativeOffset
	}
	if ord != LSBFirst && ord != MSBFirst {
		return nil, ErrInvalidState
	}
	return &Cursor{src: src, off: offset, ord: ord}, nil
}

// Pull draws bytes from the source until at least bits (1..32) are buffered
// or the source runs out. It reports whether the request was satisfied; the
// error is reserved for malformed cursor state, not for running out of data.
func (c *Cursor) Pull(bits int) (bool, error) {
	if bits < 1 || bits > 32 {
		return false, ErrBitCount
	}
	if c.ord != LSBFirst && c.ord != MSBFirst {
		return false, ErrInvalidState
	}
	for c.n < bits && c.off < len(c.src) {
		b := c.src[c.off]
		c.off++
		if c.ord == LSBFirst {
			c.acc |= uint64(b) << c.n
		} else {
			c.acc = c.acc<<8 | uint64(b)
		}
		c.n += 8
	}
	return c.n >= bits, nil
}

// Consume returns the next bits (0..32) as the low bits of the result and
// removes them from the stream, pulling from the source as needed. Consuming
// 0 bits returns 0 without touching state. If the source cannot supply the
// request, ErrExhausted is returned and Held reports the bits actually
// available. Consuming exactly 32 bits hands back the whole accumulator and
// resets it, matching the legacy 32-bit register behavior.
func (c *Cursor) Consume(bits int) (uint32, error) {
	if bits < 0 || bits > 32 {
		return 0, ErrBitCount
	}
	if bits == 0 {
		return 0, nil
	}
	if c.n < bits {
		ok, err := c.Pull(bits)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, ErrExhausted
		}
	}
	if bits == 32 {
		var v uint32
		if c.ord == LSBFirst {
			v = uint32(c.acc)
		} else {
			v = uint32(c.acc >> (c.n - 32))
		}
		c.acc, c.n = 0, 0
		return v, nil
	}
	var v uint32
	if c.ord == LSBFirst {
		v = uint32(c.acc) & common.Mask32(bits)
		c.acc >>= bits
		c.n -= bits
	} else {
		shift := c.n - bits
		v = uint32(c.acc>>shift) & common.Mask32(bits)
		c.n = shift
		c.acc &= common.Mask64(shift)
	}
	return v, nil
}

// Reposition moves the cursor to a byte offset and discards any buffered
// bits. Resuming always happens on a byte boundary, never mid-byte.
func (c *Cursor) Reposition(offset int) error {
	if offset < 0 {
		return ErrNegativeOffset
	}
	c.off = offset
	c.acc, c.n = 0, 0
	return nil
}

// Held returns the number of buffered bits not yet consumed.
func (c *Cursor) Held() int { return c.n }

// Offset returns the index of the next unread source byte.
func (c *Cursor) Offset() int { return c.off }
