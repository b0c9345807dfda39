package container

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"math"

	"github.com/rawbytedev/packbits/internal/common"
)

// Encode serializes a data frame. The checksum section is written only when
// FlagHasChecksum is set on the frame.
func Encode(f *Frame) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte(magic0)
	buf.WriteByte(magic1)
	buf.WriteByte(TypeData)

	// length placeholder, filled below
	binary.Write(buf, binary.LittleEndian, uint32(0))
	buf.WriteByte(f.Flags)
	buf.WriteByte(f.CodecID)

	if f.Flags&FlagHasChecksum != 0 {
		buf.WriteByte(f.SumAlgo)
		binary.Write(buf, binary.LittleEndian, f.Sum)
	}

	buf.Write(common.WriteVarUintTo(nil, f.RawSize))
	buf.Write(f.Payload)

	out := buf.Bytes()
	total := len(out) + trailerSize
	if total > math.MaxUint32 {
		return nil, ErrFrameTooLarge
	}
	binary.LittleEndian.PutUint32(out[3:], uint32(total))

	// CRC covers everything after the magic, including the length field
	crc := crc32.ChecksumIEEE(out[2:])
	out = append(out, 0, 0, 0, 0)
	binary.LittleEndian.PutUint32(out[len(out)-4:], crc)
	return out, nil
}
