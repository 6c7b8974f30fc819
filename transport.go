package huffpack

// BitReader is the bit-level input transport.  *bitio.Reader satisfies it.
type BitReader interface {
	// ReadBits reads n bits and returns them as the lowest n bits of u,
	// with the first bit read in the most significant position.
	ReadBits(n uint8) (u uint64, err error)

	// ReadBool reads a single bit.
	ReadBool() (bool, error)
}

// BitWriter is the bit-level output transport.  *bitio.Writer satisfies it.
// Whoever constructs the underlying writer owns closing it; closing flushes
// and pads the trailing partial byte.
type BitWriter interface {
	// WriteBits writes the lowest n bits of r, most significant first.
	WriteBits(r uint64, n uint8) error

	// WriteBool writes a single bit.
	WriteBool(b bool) error
}
