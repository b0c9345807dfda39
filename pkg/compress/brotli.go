package compress

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"
)

// Brotli compresses with brotli. Quality 0 lets the library pick; range is
// 0 to 11.
type Brotli struct {
	Quality int
}

func (*Brotli) String() string { return "brotli" }

func (*Brotli) ID() byte { return 4 }

func (c *Brotli) Encode(dst, src []byte) ([]byte, error) {
	buf := bytes.NewBuffer(dst[:0])
	w := brotli.NewWriterOptions(buf, brotli.WriterOptions{Quality: c.Quality})
	if _, err := w.Write(src); err != nil {
		return buf.Bytes(), err
	}
	if err := w.Close(); err != nil {
		return buf.Bytes(), err
	}
	return buf.Bytes(), nil
}

func (*Brotli) Decode(dst, src []byte) ([]byte, error) {
	r := brotli.NewReader(bytes.NewReader(src))
	buf := bytes.NewBuffer(dst[:0])
	if _, err := io.Copy(buf, r); err != nil {
		return buf.Bytes(), err
	}
	return buf.Bytes(), nil
}
