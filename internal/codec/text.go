package codec

import (
	"cmp"
	"iter"
	"strings"
	"unicode/utf8"
)

// EncodeString concatenates the codes for the symbols in seq.
// It fails with an *UnknownSymbolError if a symbol has no code.
func EncodeString[S comparable](seq iter.Seq[S], codes map[S]string) (string, error) {
	var out strings.Builder
	for sym := range seq {
		code, ok := codes[sym]
		if !ok {
			return "", &UnknownSymbolError[S]{Symbol: sym}
		}
		out.WriteString(code)
	}
	return out.String(), nil
}

// DecodeString splits a string of '0' and '1' characters
// into the symbols whose codes it concatenates.
//
// The code table must be prefix-free; see NewTrie.
func DecodeString[S cmp.Ordered](bits string, codes map[S]string) ([]S, error) {
	trie, err := NewTrie(codes)
	if err != nil {
		return nil, err
	}

	var (
		syms  []S
		start int // offset of the current code
	)
	c := cursor[S]{trie: trie}
	for i := 0; i < len(bits); i++ {
		bit, ok := bitOf(bits[i])
		if !ok {
			r, _ := utf8.DecodeRuneInString(bits[i:])
			return nil, &InvalidBitError{Offset: i, Char: r}
		}

		sym, done, ok := c.Step(bit)
		if !ok {
			return nil, &UnmatchedBitsError{Offset: start}
		}
		if done {
			syms = append(syms, sym)
			start = i + 1
		}
	}

	if !c.AtRoot() {
		return nil, ErrTruncated
	}
	return syms, nil
}
