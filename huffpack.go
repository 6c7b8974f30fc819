package huffpack

import (
	"bufio"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

var (
	_ BitReader = (*bitio.Reader)(nil)
	_ BitWriter = (*bitio.Writer)(nil)
)

// Compress reads all of in twice, once to count frequencies and once to
// encode, and writes the compressed stream to out: the magic number, the
// preorder tree header, then the coded body terminated by the EOF code.
// The bit writer is closed on every exit path, so the trailing partial byte
// is always flushed.
func Compress(in io.ReadSeeker, out io.Writer) (err error) {
	bw := bitio.NewWriter(out)
	defer func() {
		if cerr := bw.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	freqs, err := CountFrequencies(in)
	if err != nil {
		return err
	}
	root := BuildTree(freqs)
	codes, err := root.Codes()
	if err != nil {
		return err
	}

	if err := bw.WriteBits(uint64(magicNumber), 32); err != nil {
		return err
	}
	if err := WriteTree(bw, root); err != nil {
		return err
	}
	if _, err := in.Seek(0, io.SeekStart); err != nil {
		return err
	}
	return Encode(in, codes, bw)
}

// Decompress reads a compressed stream from in and writes the recovered
// bytes to out.  The output is bit-identical to the input Compress was
// given.  Bytes written before a fatal error stay written; there is no
// rollback.
func Decompress(in io.Reader, out io.Writer) (err error) {
	br := bitio.NewReader(in)

	m, err := br.ReadBits(32)
	if err != nil {
		return fmt.Errorf("%w: reading magic number: %v", ErrTruncated, err)
	}
	if uint32(m) != magicNumber {
		return fmt.Errorf("%w: magic number %#x", ErrFormat, m)
	}

	root, err := ReadTree(br)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	defer func() {
		if ferr := w.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}()
	return Decode(br, root, w)
}
