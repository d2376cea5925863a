// Package codec encodes sequences of symbols with a prefix-free code table
// and decodes them back.
//
// Code tables map each symbol to a string of '0' and '1' characters,
// as produced by the huffman package.
// EncodeString and DecodeString work with those strings directly.
// Encoder and Decoder pack the bits into bytes.
package codec
