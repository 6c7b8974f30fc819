package huffpack

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// maxCodeBits is the widest code that Code.Bits can hold.
const maxCodeBits = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit of the
	// root-to-leaf path is the most significant of the low Size bits, so
	// writing the low Size bits most-significant-first replays the path.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}

// IsPrefixOf reports whether hc is a proper prefix of other, i.e. whether a
// decoder that has consumed hc's bits could still be on the way to other's
// leaf.  Codes from one tree are never prefixes of each other.
func (hc Code) IsPrefixOf(other Code) bool {
	if hc.Size == 0 || hc.Size >= other.Size {
		return false
	}
	return other.Bits>>(other.Size-hc.Size) == hc.Bits
}

// CodeTable maps each Symbol to its code.  Symbols absent from the frequency
// table that produced the tree have a zero-Size entry.
type CodeTable []Code

// Code returns the code assigned to the given symbol.
func (ct CodeTable) Code(symbol Symbol) Code {
	return ct[symbol]
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.  Symbols without a code are omitted.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for symbol := Symbol(0); symbol < Symbol(len(ct)); symbol++ {
		hc := ct[symbol]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tCode(%d) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
