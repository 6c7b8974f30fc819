package huffpack

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Codes walks the tree and derives the code table: descending into a left
// child appends a 0 bit, descending into a right child appends a 1 bit, and
// each leaf records the accumulated path as its code.  The walk uses an
// explicit stack, so deeply skewed trees cannot exhaust the call stack.
//
// The codes are prefix-free by construction, since every code ends at a
// distinct leaf of one tree.
func (n *Node) Codes() (CodeTable, error) {
	if n == nil || n.IsLeaf() {
		return nil, fmt.Errorf("huffpack: tree root has no children")
	}

	type frame struct {
		n  *Node
		hc Code
	}

	codes := make(CodeTable, AlphabetSize)
	stack := make([]frame, 0, AlphabetSize)
	stack = append(stack, frame{n, Code{}})
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.n.IsLeaf() {
			assert.Assertf(top.n.Symbol >= 0 && top.n.Symbol < AlphabetSize, "leaf symbol %d out of range", top.n.Symbol)
			codes[top.n.Symbol] = top.hc
			continue
		}

		assert.Assertf(top.n.Left != nil && top.n.Right != nil, "internal node with a missing child")
		size := top.hc.Size + 1
		assert.Assertf(size <= maxCodeBits, "code longer than %d bits", maxCodeBits)
		stack = append(stack, frame{top.n.Right, MakeCode(size, top.hc.Bits<<1|1)})
		stack = append(stack, frame{top.n.Left, MakeCode(size, top.hc.Bits<<1)})
	}
	return codes, nil
}
