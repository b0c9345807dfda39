// Package checksum bundles the single-pass reductions shipped with the tool:
// the Fletcher and XOR families plus the standard library's Adler-32 and
// CRC-64. All of them are closed-form loops over a byte buffer with no
// internal state between calls.
package checksum

import (
	"errors"
	"hash/adler32"
	"hash/crc64"
)

var ErrUnknownAlgorithm = errors.New("checksum: unknown algorithm")

// Func is a one-shot checksum over a buffer, widened to uint64 so every
// algorithm fits one signature.
type Func func(data []byte) uint64

// Algorithm IDs are stable on the wire; the container frame stores them.
const (
	IDNone byte = iota
	IDFletcher32
	IDFletcher64
	IDXOR32
	IDXOR64
	IDAdler32
	IDCRC64
)

var isoTable = crc64.MakeTable(crc64.ISO)

type algorithm struct {
	id   byte
	name string
	fn   Func
}

var algorithms = []algorithm{
	{IDFletcher32, "fletcher32", func(b []byte) uint64 { return uint64(Fletcher32(b)) }},
	{IDFletcher64, "fletcher64", Fletcher64},
	{IDXOR32, "xor32", func(b []byte) uint64 { return uint64(XOR32(b)) }},
	{IDXOR64, "xor64", XOR64},
	{IDAdler32, "adler32", func(b []byte) uint64 { return uint64(adler32.Checksum(b)) }},
	{IDCRC64, "crc64", func(b []byte) uint64 { return crc64.Checksum(b, isoTable) }},
}

// ByName resolves an algorithm name to its function.
func ByName(name string) (Func, error) {
	for _, a := range algorithms {
		if a.name == name {
			return a.fn, nil
		}
	}
	return nil, ErrUnknownAlgorithm
}

// ByID resolves a wire ID to its function.
func ByID(id byte) (Func, error) {
	for _, a := range algorithms {
		if a.id == id {
			return a.fn, nil
		}
	}
	return nil, ErrUnknownAlgorithm
}

// IDByName resolves an algorithm name to its wire ID.
func IDByName(name string) (byte, error) {
	for _, a := range algorithms {
		if a.name == name {
			return a.id, nil
		}
	}
	return IDNone, ErrUnknownAlgorithm
}

// Names lists every registered algorithm in wire-ID order.
func Names() []string {
	out := make([]string, 0, len(algorithms))
	for _, a := range algorithms {
		out = append(out, a.name)
	}
	return out
}

// Fletcher32 sums the buffer as little-endian 16-bit words modulo 65535,
// zero-padding an odd tail byte.
func Fletcher32(data []byte) uint32 {
	var s1, s2 uint64
	for i := 0; i < len(data); i += 2 {
		w := uint64(data[i])
		if i+1 < len(data) {
			w |= uint64(data[i+1]) << 8
		}
		s1 = (s1 + w) % 65535
		s2 = (s2 + s1) % 65535
	}
	return uint32(s2)<<16 | uint32(s1)
}

// Fletcher64 sums the buffer as little-endian 32-bit words modulo 2^32-1,
// zero-padding the tail.
func Fletcher64(data []byte) uint64 {
	const mod = 0xffffffff
	var s1, s2 uint64
	for i := 0; i < len(data); i += 4 {
		var w uint64
		for j := 0; j < 4 && i+j < len(data); j++ {
			w |= uint64(data[i+j]) << (8 * j)
		}
		s1 = (s1 + w) % mod
		s2 = (s2 + s1) % mod
	}
	return s2<<32 | s1
}

// XOR32 folds the buffer as little-endian 32-bit words with XOR,
// zero-padding the tail.
func XOR32(data []byte) uint32 {
	var r uint32
	for i := 0; i < len(data); i += 4 {
		var w uint32
		for j := 0; j < 4 && i+j < len(data); j++ {
			w |= uint32(data[i+j]) << (8 * j)
		}
		r ^= w
	}
	return r
}

// XOR64 folds the buffer as little-endian 64-bit words with XOR,
// zero-padding the tail.
func XOR64(data []byte) uint64 {
	var r uint64
	for i := 0; i < len(data); i += 8 {
		var w uint64
		for j := 0; j < 8 && i+j < len(data); j++ {
			w |= uint64(data[i+j]) << (8 * j)
		}
		r ^= w
	}
	return r
}
