package huffpack

import "fmt"

// maxTreeDepth bounds header recursion.  A tree over a 257-symbol alphabet
// can never nest deeper than AlphabetSize, so anything deeper is malformed.
const maxTreeDepth = AlphabetSize

// WriteTree serializes the tree rooted at root in preorder: a 0 bit for an
// internal node followed by its left and right subtrees, or a 1 bit and a
// 9-bit symbol field for a leaf.
func WriteTree(w BitWriter, root *Node) error {
	if root.IsLeaf() {
		if err := w.WriteBool(true); err != nil {
			return err
		}
		return w.WriteBits(uint64(root.Symbol), symbolBits)
	}
	if err := w.WriteBool(false); err != nil {
		return err
	}
	if err := WriteTree(w, root.Left); err != nil {
		return err
	}
	return WriteTree(w, root.Right)
}

// ReadTree rebuilds a tree from its preorder serialization.  The result has
// the same shape and leaf symbols as the tree WriteTree was given;
// reconstructed nodes carry no meaningful weight.
func ReadTree(r BitReader) (*Node, error) {
	return readTree(r, 0)
}

func readTree(r BitReader, depth int) (*Node, error) {
	if depth > maxTreeDepth {
		return nil, fmt.Errorf("%w: tree header nests deeper than %d", ErrCorrupt, maxTreeDepth)
	}
	leaf, err := r.ReadBool()
	if err != nil {
		return nil, fmt.Errorf("%w: reading tree header: %v", ErrTruncated, err)
	}
	if leaf {
		value, err := r.ReadBits(symbolBits)
		if err != nil {
			return nil, fmt.Errorf("%w: reading leaf symbol: %v", ErrTruncated, err)
		}
		if value >= AlphabetSize {
			return nil, fmt.Errorf("%w: leaf symbol %d out of range", ErrCorrupt, value)
		}
		return &Node{Symbol: Symbol(value)}, nil
	}
	left, err := readTree(r, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := readTree(r, depth+1)
	if err != nil {
		return nil, err
	}
	return &Node{Symbol: InvalidSymbol, Left: left, Right: right}, nil
}
