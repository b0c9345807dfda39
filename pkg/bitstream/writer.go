package bitstream

import "github.com/rawbytedev/packbits/internal/common"

// Writer is the dual of Cursor: it packs bit fields into a growing byte
// buffer under the same two orderings. Flush pads the final partial byte
// with zero bits.
type Writer struct {
	buf []byte
	acc uint64
	n   int
	ord Ordering
}

// NewWriter returns a writer with the given ordering. sizeHint pre-allocates
// the output buffer; zero is fine.
func NewWriter(ord Ordering, sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, sizeHint), ord: ord}
}

// WriteBits appends the low bits (0..32) of v to the stream.
func (w *Writer) WriteBits(v uint32, bits int) error {
	if bits < 0 || bits > 32 {
		return ErrBitCount
	}
	if bits == 0 {
		return nil
	}
	v &= common.Mask32(bits)
	if w.ord == LSBFirst {
		w.acc |= uint64(v) << w.n
		w.n += bits
		for w.n >= 8 {
			w.buf = append(w.buf, byte(w.acc))
			w.acc >>= 8
			w.n -= 8
		}
	} else {
		w.acc = w.acc<<bits | uint64(v)
		w.n += bits
		for w.n >= 8 {
			w.buf = append(w.buf, byte(w.acc>>(w.n-8)))
			w.n -= 8
			w.acc &= common.Mask64(w.n)
		}
	}
	return nil
}

// Flush writes out any partial byte, padding the unused bits with zeros.
func (w *Writer) Flush() {
	if w.n == 0 {
		return
	}
	if w.ord == LSBFirst {
		w.buf = append(w.buf, byte(w.acc))
	} else {
		w.buf = append(w.buf, byte(w.acc<<(8-w.n)))
	}
	w.acc, w.n = 0, 0
}

// Bytes returns the bytes emitted so far. Unflushed partial bits are not
// included.
func (w *Writer) Bytes() []byte { return w.buf }

// Reset discards all written data, keeping the ordering and buffer capacity.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
	w.acc, w.n = 0, 0
}
