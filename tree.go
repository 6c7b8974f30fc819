package huffpack

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is a node in a Huffman tree.  A leaf carries a Symbol and has no
// children; an internal node carries InvalidSymbol and always has exactly
// two children.  Children are exclusively owned by their parent: no sharing,
// no cycles, no back-references.
type Node struct {
	Symbol Symbol
	Left   *Node
	Right  *Node

	weight uint64
	seq    int
}

// IsLeaf reports whether n is a leaf.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// BuildTree builds a Huffman tree from the given frequency table, which is
// indexed by symbol; symbols with a zero count do not participate.  The two
// lowest-weight nodes are repeatedly merged until one root remains.
//
// Ties between equal weights are broken by insertion sequence: leaves enter
// in ascending symbol order, internal nodes in creation order, and the node
// removed first always becomes the left child.  Equal frequency tables
// therefore always yield the same tree, the same codes, and byte-identical
// compressed output.
func BuildTree(freqs []uint32) *Node {
	assert.Assertf(len(freqs) <= AlphabetSize, "len(freqs) %d > AlphabetSize %d", len(freqs), AlphabetSize)

	h := nodeHeap{list: make([]*Node, 0, len(freqs))}
	for symbol := Symbol(0); symbol < Symbol(len(freqs)); symbol++ {
		if freq := freqs[symbol]; freq != 0 {
			h.list = append(h.list, &Node{
				Symbol: symbol,
				weight: uint64(freq),
				seq:    len(h.list),
			})
		}
	}
	assert.Assertf(h.Len() > 0, "frequency table has no nonzero entries")

	seq := h.Len()
	if h.Len() == 1 {
		// A lone leaf can never receive a non-empty code through a
		// root-to-leaf walk, so wrap it in an internal root next to a
		// filler leaf whose symbol never occurs in the counted input.
		lone := h.list[0]
		filler := Symbol(0)
		if lone.Symbol == filler {
			filler = 1
		}
		return &Node{
			Symbol: InvalidSymbol,
			Left:   lone,
			Right:  &Node{Symbol: filler, seq: seq},
			weight: lone.weight,
			seq:    seq + 1,
		}
	}

	h.Init()
	for h.Len() > 1 {
		left := heap.Pop(&h).(*Node)
		right := heap.Pop(&h).(*Node)
		heap.Push(&h, &Node{
			Symbol: InvalidSymbol,
			Left:   left,
			Right:  right,
			weight: left.weight + right.weight,
			seq:    seq,
		})
		seq++
	}
	return heap.Pop(&h).(*Node)
}

// Dump writes a programmer-readable debugging dump of the tree rooted at n
// to the given writer.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	n.dump(&buf, 1)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (n *Node) dump(buf *bytes.Buffer, depth int) {
	indent := strings.Repeat("\t", depth)
	if n.IsLeaf() {
		fmt.Fprintf(buf, "%sLeaf(%d)\n", indent, n.Symbol)
		return
	}
	fmt.Fprintf(buf, "%sInternal{\n", indent)
	n.Left.dump(buf, depth+1)
	n.Right.dump(buf, depth+1)
	fmt.Fprintf(buf, "%s}\n", indent)
}

// type nodeHeap {{{

type nodeHeap struct {
	list []*Node
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*Node))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
