package codec

import (
	"errors"
	"fmt"

	"github.com/abhinav/huffcode/internal/stringobj"
)

// ErrTruncated indicates that the input ended partway through a code.
var ErrTruncated = errors.New("input ends inside a code")

// UnknownSymbolError is returned when encoding a symbol
// that has no code.
type UnknownSymbolError[S any] struct {
	Symbol S
}

func (e *UnknownSymbolError[S]) Error() string {
	return "no code for symbol " + stringobj.Quote(e.Symbol)
}

// InvalidCodeError is returned for a code table entry
// that is empty or contains characters other than '0' and '1'.
type InvalidCodeError[S any] struct {
	Symbol S
	Code   string
}

func (e *InvalidCodeError[S]) Error() string {
	return fmt.Sprintf("invalid code %q for symbol %s: must be a non-empty string of 0s and 1s", e.Code, stringobj.Quote(e.Symbol))
}

// AmbiguousCodeError is returned for a code table
// where one code is a prefix of another.
type AmbiguousCodeError[S any] struct {
	// Prefix is the symbol whose code is a prefix of the other.
	Prefix S
	Symbol S
}

func (e *AmbiguousCodeError[S]) Error() string {
	return fmt.Sprintf("code for %s is a prefix of the code for %s", stringobj.Quote(e.Prefix), stringobj.Quote(e.Symbol))
}

// InvalidBitError is returned when decoding a bitstring
// that contains a character other than '0' or '1'.
type InvalidBitError struct {
	Offset int
	Char   rune
}

func (e *InvalidBitError) Error() string {
	return fmt.Sprintf("invalid bit %q at offset %d", e.Char, e.Offset)
}

// UnmatchedBitsError is returned when the bits starting at Offset
// don't match any code in the table.
// This only happens with tables that are not complete,
// for example, ones that don't come from a Huffman tree.
type UnmatchedBitsError struct {
	Offset int
}

func (e *UnmatchedBitsError) Error() string {
	return fmt.Sprintf("bits at offset %d do not match any code", e.Offset)
}
