package common

import "math"

// FitsMul8 reports whether n*8 stays representable in an int. Sizes past
// this bound would wrap around in later signed size arithmetic.
func FitsMul8(n int) bool {
	return n >= 0 && n <= math.MaxInt/8
}

// Mask32 returns a mask covering the low n bits, n in 0..32.
func Mask32(n int) uint32 {
	if n >= 32 {
		return math.MaxUint32
	}
	return 1<<n - 1
}

// Mask64 returns a mask covering the low n bits, n in 0..63.
func Mask64(n int) uint64 {
	return 1<<n - 1
}

// WriteVarUint appends a varint to buf (allocating if needed).
func WriteVarUint(buf []byte, x uint64) []byte {
	for x >= 0x80 {
		buf = append(buf, byte(x)|0x80)
		x >>= 7
	}
	return append(buf, byte(x))
}

// WriteVarUintTo appends varint-encoded x to dst using a small stack scratch.
func WriteVarUintTo(dst []byte, x uint64) []byte {
	var scratch [10]byte
	i := 0
	for x >= 0x80 {
		scratch[i] = byte(x) | 0x80
		x >>= 7
		i++
	}
	scratch[i] = byte(x)
	i++
	return append(dst, scratch[:i]...)
}

// ReadVarUint decodes a varint from b returning value and bytes consumed.
func ReadVarUint(b []byte) (uint64, int) {
	var x uint64
	var s uint
	for i, c := range b {
		x |= uint64(c&0x7F) << s
		if c&0x80 == 0 {
			return x, i + 1
		}
		s += 7
	}
	return 0, 0
}
