// Package huffpack implements lossless Huffman compression of byte streams
// using a self-describing stream format: the code tree travels in front of
// the body it decodes, serialized in preorder, and a reserved end-of-stream
// symbol terminates the body instead of a length field.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffpack
