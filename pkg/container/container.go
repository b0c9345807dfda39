// Package container frames a packed payload for storage: magic, frame type,
// total length, flags, the compression codec ID, an optional checksum of the
// original data, the payload size before compression, the payload itself and
// a CRC-32 trailer guarding the whole frame.
package container

import "errors"

const (
	magic0 = 'p'
	magic1 = 'b'

	// TypeData is the only frame type written today; the byte exists so the
	// format can grow index or metadata frames without a magic bump.
	TypeData byte = 0x01
)

const (
	// FlagCompressed marks a payload run through one of the compress codecs.
	FlagCompressed byte = 1 << iota
	// FlagHasChecksum marks a frame carrying a checksum section.
	FlagHasChecksum
)

// fixed header bytes before the optional sections: magic(2) + type(1) +
// length(4) + flags(1) + codec(1)
const headerSize = 9

const checksumSize = 1 + 8 // algorithm id + value

const trailerSize = 4 // crc32

var (
	ErrNotContainer  = errors.New("container: bad magic or frame type")
	ErrTruncated     = errors.New("container: truncated frame")
	ErrLength        = errors.New("container: length mismatch")
	ErrCRC           = errors.New("container: crc mismatch")
	ErrFrameTooLarge = errors.New("container: frame exceeds length field range")
)

// Frame is one data frame. RawSize records the payload length before
// compression so the reader can size its decode buffer up front.
type Frame struct {
	Flags   byte
	CodecID byte
	SumAlgo byte
	Sum     uint64
	RawSize uint64
	Payload []byte
}
