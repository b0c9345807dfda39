package compress

// Uncompressed passes data through untouched.
type Uncompressed struct{}

func (*Uncompressed) String() string { return "uncompressed" }

func (*Uncompressed) ID() byte { return 0 }

func (*Uncompressed) Encode(dst, src []byte) ([]byte, error) {
	return append(dst[:0], src...), nil
}

func (*Uncompressed) Decode(dst, src []byte) ([]byte, error) {
	return append(dst[:0], src...), nil
}
