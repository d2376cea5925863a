// Package huffman builds optimal prefix-free binary codes.
//
// Given the probability of each symbol in an alphabet,
// Build constructs a Huffman tree by repeatedly merging
// the two least likely nodes,
// and Tree.Codes reads a code for each symbol
// off the path from the root to its leaf.
//
// Prefix-free codes are codes where for any two codes X and Y,
// X is not a prefix of Y.
// This allows a stream of concatenated codes to be decoded unambiguously:
// as soon as the bits read so far match a code, that symbol is complete.
//
// Trees are deterministic.
// Nodes of equal probability are ordered by when they entered the tree:
// leaves first in ascending symbol order,
// then merged nodes in the order they were created.
// The same table therefore always produces the same codes.
package huffman
