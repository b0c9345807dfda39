package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
)

// Flate is raw DEFLATE. A zero Level means flate.DefaultCompression.
type Flate struct {
	Level int
}

func (*Flate) String() string { return "flate" }

func (*Flate) ID() byte { return 1 }

func (c *Flate) Encode(dst, src []byte) ([]byte, error) {
	level := c.Level
	if level == 0 {
		level = flate.DefaultCompression
	}
	buf := bytes.NewBuffer(dst[:0])
	w, err := flate.NewWriter(buf, level)
	if err != nil {
		return dst, err
	}
	if _, err := w.Write(src); err != nil {
		return buf.Bytes(), err
	}
	if err := w.Close(); err != nil {
		return buf.Bytes(), err
	}
	return buf.Bytes(), nil
}

func (c *Flate) Decode(dst, src []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(src))
	defer r.Close()
	buf := bytes.NewBuffer(dst[:0])
	if _, err := io.Copy(buf, r); err != nil {
		return buf.Bytes(), err
	}
	return buf.Bytes(), nil
}
