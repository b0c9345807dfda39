// Package compress provides the byte-slice compression codecs the tool can
// layer under the container frame. Codecs delegate to existing libraries;
// none of the token-level compression logic lives here.
package compress

import "errors"

var ErrUnknownCodec = errors.New("compress: unknown codec")

// Codec compresses and decompresses whole byte slices. dst is reused as
// scratch when its capacity allows; the returned slice is the result.
type Codec interface {
	String() string
	// ID is the stable one-byte code recorded in container frames.
	ID() byte
	Encode(dst, src []byte) ([]byte, error)
	Decode(dst, src []byte) ([]byte, error)
}

var codecs = []Codec{
	&Uncompressed{},
	&Flate{},
	&Zstd{},
	&LZ4{},
	&Brotli{},
}

// Lookup resolves a codec by name.
func Lookup(name string) (Codec, error) {
	for _, c := range codecs {
		if c.String() == name {
			return c, nil
		}
	}
	return nil, ErrUnknownCodec
}

// ByID resolves a codec by its wire ID.
func ByID(id byte) (Codec, error) {
	for _, c := range codecs {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, ErrUnknownCodec
}

// Names lists every registered codec.
func Names() []string {
	out := make([]string, 0, len(codecs))
	for _, c := range codecs {
		out = append(out, c.String())
	}
	return out
}
