// Package packbits implements the variable-width packed-character codec used
// by legacy 7-bit compaction schemes: a stream whose first byte is stored
// verbatim (the seed) and whose remaining bytes carry consecutive 7-bit
// fields, least-significant bits first.
package packbits

import (
	"errors"

	"github.com/rawbytedev/packbits/internal/common"
	"github.com/rawbytedev/packbits/pkg/bitstream"
)

var (
	ErrNilBuffer    = errors.New("packbits: nil buffer")
	ErrSizeOverflow = errors.New("packbits: size exceeds maximum")
	ErrTooSmall     = errors.New("packbits: packed stream needs a seed byte plus data")
	ErrShortBuffer  = errors.New("packbits: destination too small")
)

const fieldBits = 7

// UnpackedSize returns the number of units Unpack produces for a packed
// stream of the given bytes: 1 + (len-1)*8/7, computed without reading the
// data. A packed stream of one byte carries no information and is rejected.
//
// A stream whose trailing padding bits are nonzero yields one extra residual
// unit on top of this; see Unpack.
func UnpackedSize(packed []byte) (int, error) {
	if packed == nil {
		return 0, ErrNilBuffer
	}
	if !common.FitsMul8(len(packed)) {
		return 0, ErrSizeOverflow
	}
	if len(packed) <= 1 {
		return 0, ErrTooSmall
	}
	return 1 + (len(packed)-1)*8/fieldBits, nil
}

// Unpack expands a packed stream into dst and returns the number of units
// written. dst must hold at least UnpackedSize(packed) bytes; no byte of dst
// is written before that is verified.
//
// The seed byte is copied verbatim, then every full 7-bit field of the
// remaining bytes is emitted in order. A final short residual of nonzero
// bits is emitted as one more unit; an all-zero residual is dropped. The
// asymmetry is a quirk of the format kept for compatibility with existing
// packed data: a stream not produced by Pack may therefore need one unit
// beyond UnpackedSize, and ErrShortBuffer is returned if dst cannot take it.
func Unpack(dst, packed []byte) (int, error) {
	size, err := UnpackedSize(packed)
	if err != nil {
		return 0, err
	}
	if dst == nil {
		return 0, ErrNilBuffer
	}
	if len(dst) < size {
		return 0, ErrShortBuffer
	}

	dst[0] = packed[0]
	n := 1

	cur, err := bitstream.NewCursor(packed, 1, bitstream.LSBFirst)
	if err != nil {
		return 0, err
	}
	totalBits := (len(packed) - 1) * 8
	for i := 0; i < totalBits/fieldBits; i++ {
		v, err := cur.Consume(fieldBits)
		if err != nil {
			return n, err
		}
		dst[n] = byte(v)
		n++
	}
	if rem := totalBits % fieldBits; rem > 0 {
		v, err := cur.Consume(rem)
		if err != nil {
			return n, err
		}
		if v != 0 {
			if n >= len(dst) {
				return n, ErrShortBuffer
			}
			dst[n] = byte(v)
			n++
		}
	}
	return n, nil
}

// PackedSize returns the number of bytes Pack produces for src: one seed
// byte plus ceil((len-1)*7/8) packed bytes. src must hold the seed and at
// least one unit.
func PackedSize(src []byte) (int, error) {
	if src == nil {
		return 0, ErrNilBuffer
	}
	if !common.FitsMul8(len(src)) {
		return 0, ErrSizeOverflow
	}
	if len(src) <= 1 {
		return 0, ErrTooSmall
	}
	return 1 + ((len(src)-1)*fieldBits+7)/8, nil
}

// Pack is the inverse of Unpack: the seed byte is copied verbatim and the
// low 7 bits of every following unit are written LSB-first, the final byte
// zero-padded. Unit values above 0x7f are masked to 7 bits. Returns the
// number of bytes written to dst.
func Pack(dst, src []byte) (int, error) {
	size, err := PackedSize(src)
	if err != nil {
		return 0, err
	}
	if dst == nil {
		return 0, ErrNilBuffer
	}
	if len(dst) < size {
		return 0, ErrShortBuffer
	}

	w := bitstream.NewWriter(bitstream.LSBFirst, size-1)
	for _, u := range src[1:] {
		if err := w.WriteBits(uint32(u)&common.Mask32(fieldBits), fieldBits); err != nil {
			return 0, err
		}
	}
	w.Flush()

	dst[0] = src[0]
	copy(dst[1:], w.Bytes())
	return 1 + len(w.Bytes()), nil
}
