package huffpack

import (
	"io"

	"github.com/chronos-tachyon/assert"
)

// Encode re-reads the input from its start and writes each byte's code to w,
// most significant bit first, followed by the EOF code once the input is
// exhausted.  Every byte seen here was already seen by the counting pass, so
// a zero-size code is an internal-consistency fault, not an input error.
func Encode(r io.Reader, codes CodeTable, w BitWriter) error {
	buf := make([]byte, 64*1024)
	for {
		n, rerr := r.Read(buf)
		for _, b := range buf[:n] {
			hc := codes[b]
			assert.Assertf(hc.Size != 0, "no code for symbol %d", b)
			if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
				return err
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return rerr
		}
	}
	hc := codes[EOF]
	assert.Assertf(hc.Size != 0, "no code for the EOF symbol")
	return w.WriteBits(hc.Bits, hc.Size)
}
