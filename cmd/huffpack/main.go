// Command huffpack compresses a file with Huffman coding, or restores one
// with -d.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/huffpack/huffpack"
)

var decompress = flag.Bool("d", false, "decompress instead of compress")

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffpack: ")
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: huffpack [-d] <input> <output>")
		os.Exit(2)
	}

	in, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	out, err := os.Create(flag.Arg(1))
	if err != nil {
		log.Fatal(err)
	}

	if *decompress {
		err = huffpack.Decompress(in, out)
	} else {
		err = huffpack.Compress(in, out)
	}
	if err != nil {
		out.Close()
		log.Fatal(err)
	}
	if err := out.Close(); err != nil {
		log.Fatal(err)
	}
}
