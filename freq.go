package huffpack

import "io"

// CountFrequencies scans r to exhaustion and tallies how many times each
// byte value occurs.  The returned slice has AlphabetSize entries, indexed
// by symbol; the EOF sentinel's entry is always exactly 1, even when r is
// empty.  Callers that intend to encode the same content afterwards must
// hold a rewindable source.
func CountFrequencies(r io.Reader) ([]uint32, error) {
	freqs := make([]uint32, AlphabetSize)
	buf := make([]byte, 64*1024)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			freqs[b]++
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	freqs[EOF] = 1
	return freqs, nil
}
