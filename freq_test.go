package huffpack

import (
	"bytes"
	"testing"
)

func makeScenarioFreqs() []uint32 {
	freqs, err := CountFrequencies(bytes.NewReader([]byte{65, 65, 65, 66}))
	if err != nil {
		panic(err)
	}
	return freqs
}

func TestCountFrequencies(t *testing.T) {
	freqs := makeScenarioFreqs()

	if len(freqs) != AlphabetSize {
		t.Fatalf("wrong table size: expect %d, actual %d", AlphabetSize, len(freqs))
	}
	for symbol, count := range freqs {
		var expect uint32
		switch Symbol(symbol) {
		case 65:
			expect = 3
		case 66:
			expect = 1
		case EOF:
			expect = 1
		}
		if count != expect {
			t.Errorf("wrong count for symbol %d: expect %d, actual %d", symbol, expect, count)
		}
	}
}

func TestCountFrequencies_Empty(t *testing.T) {
	freqs, err := CountFrequencies(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("CountFrequencies failed: %v", err)
	}

	var total uint64
	for _, count := range freqs {
		total += uint64(count)
	}
	if total != 1 {
		t.Errorf("expected only the EOF count, got total %d", total)
	}
	if freqs[EOF] != 1 {
		t.Errorf("expected EOF count 1, got %d", freqs[EOF])
	}
}
