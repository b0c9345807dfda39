package compress

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4 uses the lz4 frame format.
type LZ4 struct{}

func (*LZ4) String() string { return "lz4" }

func (*LZ4) ID() byte { return 3 }

func (*LZ4) Encode(dst, src []byte) ([]byte, error) {
	buf := bytes.NewBuffer(dst[:0])
	w := lz4.NewWriter(buf)
	if _, err := w.Write(src); err != nil {
		return buf.Bytes(), err
	}
	if err := w.Close(); err != nil {
		return buf.Bytes(), err
	}
	return buf.Bytes(), nil
}

func (*LZ4) Decode(dst, src []byte) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(src))
	buf := bytes.NewBuffer(dst[:0])
	if _, err := io.Copy(buf, r); err != nil {
		return buf.Bytes(), err
	}
	return buf.Bytes(), nil
}
