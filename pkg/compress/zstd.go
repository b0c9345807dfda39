package compress

import "github.com/klauspost/compress/zstd"

// Zstd compresses with Zstandard. A zero Level means
// zstd.SpeedBetterCompression.
type Zstd struct {
	Level zstd.EncoderLevel
}

func (*Zstd) String() string { return "zstd" }

func (*Zstd) ID() byte { return 2 }

func (c *Zstd) Encode(dst, src []byte) ([]byte, error) {
	level := c.Level
	if level == 0 {
		level = zstd.SpeedBetterCompression
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
	if err != nil {
		return dst, err
	}
	out := enc.EncodeAll(src, dst[:0])
	if err := enc.Close(); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Zstd) Decode(dst, src []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return dst, err
	}
	defer dec.Close()
	return dec.DecodeAll(src, dst[:0])
}
