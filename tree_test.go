package huffpack

import (
	"bytes"
	"strings"
	"testing"
)

func dumpTree(root *Node) string {
	var buf strings.Builder
	_, _ = root.Dump(&buf)
	return buf.String()
}

func TestBuildTree(t *testing.T) {
	root := BuildTree(makeScenarioFreqs())

	// 66 and EOF carry weight 1 each and merge first; their parent
	// (weight 2) then merges with 65 (weight 3).
	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tInternal{\n",
		"\t\tInternal{\n",
		"\t\t\tLeaf(66)\n",
		"\t\t\tLeaf(256)\n",
		"\t\t}\n",
		"\t\tLeaf(65)\n",
		"\t}\n",
		"}\n",
	}, "")

	actualDump := dumpTree(root)
	if expectDump != actualDump {
		t.Errorf("wrong tree:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestBuildTree_TieBreak(t *testing.T) {
	freqs, err := CountFrequencies(bytes.NewReader([]byte{1, 2, 3, 4}))
	if err != nil {
		t.Fatalf("CountFrequencies failed: %v", err)
	}
	root := BuildTree(freqs)

	// All five leaves weigh 1, so the shape is decided entirely by the
	// tie-break: (1,2) merge, then (3,4), then (EOF, (1,2)).
	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tInternal{\n",
		"\t\tInternal{\n",
		"\t\t\tLeaf(3)\n",
		"\t\t\tLeaf(4)\n",
		"\t\t}\n",
		"\t\tInternal{\n",
		"\t\t\tLeaf(256)\n",
		"\t\t\tInternal{\n",
		"\t\t\t\tLeaf(1)\n",
		"\t\t\t\tLeaf(2)\n",
		"\t\t\t}\n",
		"\t\t}\n",
		"\t}\n",
		"}\n",
	}, "")

	actualDump := dumpTree(root)
	if expectDump != actualDump {
		t.Errorf("wrong tree:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestBuildTree_SingleLeaf(t *testing.T) {
	freqs := make([]uint32, AlphabetSize)
	freqs[EOF] = 1
	root := BuildTree(freqs)

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tInternal{\n",
		"\t\tLeaf(256)\n",
		"\t\tLeaf(0)\n",
		"\t}\n",
		"}\n",
	}, "")

	actualDump := dumpTree(root)
	if expectDump != actualDump {
		t.Errorf("wrong tree:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}
