package container

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/rawbytedev/packbits/internal/common"
)

// Decode parses a data frame, verifying magic, declared length and the CRC
// trailer before handing back the payload. The payload slice aliases data;
// the caller keeps ownership of the buffer.
func Decode(data []byte) (*Frame, error) {
	if len(data) < headerSize+trailerSize {
		return nil, ErrTruncated
	}
	if data[0] != magic0 || data[1] != magic1 || data[2] != TypeData {
		return nil, ErrNotContainer
	}
	if length := binary.LittleEndian.Uint32(data[3:]); int(length) != len(data) {
		return nil, ErrLength
	}

	want := binary.LittleEndian.Uint32(data[len(data)-trailerSize:])
	if crc32.ChecksumIEEE(data[2:len(data)-trailerSize]) != want {
		return nil, ErrCRC
	}

	f := &Frame{Flags: data[7], CodecID: data[8]}
	pos := headerSize
	if f.Flags&FlagHasChecksum != 0 {
		if len(data) < pos+checksumSize+trailerSize {
			return nil, ErrTruncated
		}
		f.SumAlgo = data[pos]
		f.Sum = binary.LittleEndian.Uint64(data[pos+1:])
		pos += checksumSize
	}

	raw, n := common.ReadVarUint(data[pos : len(data)-trailerSize])
	if n == 0 {
		return nil, ErrTruncated
	}
	f.RawSize = raw
	pos += n

	f.Payload = data[pos : len(data)-trailerSize]
	return f, nil
}
