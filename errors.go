package huffpack

import "errors"

// Errors reported by Decompress and its component stages.  All of them are
// fatal: decoding stops where it is, and bytes already written to the output
// stay written.
var (
	// ErrFormat means the input does not begin with the huffpack magic
	// number.
	ErrFormat = errors.New("huffpack: not a huffpack stream")

	// ErrTruncated means the input ran out of bits in the middle of the
	// tree header or the coded body.
	ErrTruncated = errors.New("huffpack: truncated stream")

	// ErrCorrupt means the body bits are inconsistent with the tree
	// header, or the header itself is malformed.
	ErrCorrupt = errors.New("huffpack: corrupt stream")
)
