package format

// Binary is an owned byte sequence of explicit length carried by Text values.
//
// No character encoding is implied: the bytes are transmitted and returned
// exactly as given.
type Binary []byte

// NewBinary returns a Binary holding a copy of b.
func NewBinary(b []byte) Binary {
	if b == nil {
		return Binary{}
	}

	out := make(Binary, len(b))
	copy(out, b)

	return out
}

// BinaryString returns a Binary holding the raw bytes of s.
func BinaryString(s string) Binary {
	return Binary(s)
}

// Len returns the payload length in bytes.
func (b Binary) Len() int {
	return len(b)
}

// String converts the raw bytes to a Go string without validating them.
func (b Binary) String() string {
	return string(b)
}
