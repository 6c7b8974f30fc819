package huffpack

// Symbol represents a symbol in the compressed alphabet.  Values 0 through
// 255 are literal bytes; EOF is the reserved end-of-stream sentinel.
// Negative symbols are not valid.
type Symbol int32

const (
	// EOF is the pseudo end-of-stream symbol.  It is counted exactly once
	// per input, and its code terminates the compressed body.
	EOF = Symbol(256)

	// AlphabetSize is the number of symbols in the alphabet: 256 literal
	// byte values plus the EOF sentinel.
	AlphabetSize = 257
)

// InvalidSymbol marks nodes that do not carry a symbol value.
const InvalidSymbol = Symbol(-1)

// symbolBits is the width of the symbol field in a serialized leaf.  Nine
// bits, because EOF does not fit in eight.
const symbolBits = 9

// magicNumber identifies a stream that carries a preorder tree header.
const magicNumber uint32 = 0xface8201
