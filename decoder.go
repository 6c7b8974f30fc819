package huffpack

import (
	"fmt"
	"io"
)

// Decode walks the tree one bit at a time: a 0 bit descends left, a 1 bit
// descends right.  Reaching a literal leaf emits its byte and resets the
// walk to the root; reaching the EOF leaf terminates.  Running out of bits
// first is a truncation; a bit with no child to follow means the body is
// inconsistent with the tree header.
func Decode(r BitReader, root *Node, w io.ByteWriter) error {
	current := root
	for {
		bit, err := r.ReadBool()
		if err != nil {
			return fmt.Errorf("%w: reading body: %v", ErrTruncated, err)
		}
		if bit {
			current = current.Right
		} else {
			current = current.Left
		}
		if current == nil {
			return fmt.Errorf("%w: body walked off the tree", ErrCorrupt)
		}
		if !current.IsLeaf() {
			continue
		}
		if current.Symbol == EOF {
			return nil
		}
		if err := w.WriteByte(byte(current.Symbol)); err != nil {
			return err
		}
		current = root
	}
}
