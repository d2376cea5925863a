package codec

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/icza/bitio"
)

//go:generate mockgen -destination mock_bitwriter_test.go -package codec github.com/abhinav/huffcode/internal/codec BitWriter

// BitWriter is the destination for an Encoder.
// *bitio.Writer satisfies this interface.
type BitWriter interface {
	// WriteBool writes a single bit: 1 for true, 0 for false.
	WriteBool(b bool) error

	// Close flushes any partially written byte, padding it with zeros.
	Close() error
}

var _ BitWriter = (*bitio.Writer)(nil)

// Encoder writes the codes for symbols as packed bits.
// The final byte is padded with zeros when the Encoder is closed,
// so the reader must know how many symbols to expect.
type Encoder[S comparable] struct {
	w     BitWriter
	codes map[S]string
}

// NewEncoder builds an Encoder that writes to w.
func NewEncoder[S comparable](w io.Writer, codes map[S]string) *Encoder[S] {
	return NewBitEncoder(bitio.NewWriter(w), codes)
}

// NewBitEncoder builds an Encoder that writes to the given BitWriter.
func NewBitEncoder[S comparable](w BitWriter, codes map[S]string) *Encoder[S] {
	return &Encoder[S]{w: w, codes: codes}
}

// Encode writes the codes for all symbols in seq,
// returning the number of bits written.
//
// It fails with an *UnknownSymbolError if a symbol has no code.
// Nothing is written for that symbol.
func (e *Encoder[S]) Encode(seq iter.Seq[S]) (nbits int, err error) {
	for sym := range seq {
		code, ok := e.codes[sym]
		if !ok {
			return nbits, &UnknownSymbolError[S]{Symbol: sym}
		}

		for i := 0; i < len(code); i++ {
			if err := e.w.WriteBool(code[i] == '1'); err != nil {
				return nbits, fmt.Errorf("write bit %d: %w", nbits, err)
			}
			nbits++
		}
	}
	return nbits, nil
}

// Close flushes the last partial byte.
// It does not close the underlying io.Writer.
func (e *Encoder[S]) Close() error {
	return e.w.Close()
}

// BitReader is the source for a Decoder.
// *bitio.Reader satisfies this interface.
type BitReader interface {
	// ReadBool reads a single bit.
	// It returns io.EOF when there are no more bits.
	ReadBool() (bool, error)
}

var _ BitReader = (*bitio.Reader)(nil)

// Decoder reads symbols from packed bits written by an Encoder.
type Decoder[S cmp.Ordered] struct {
	r    BitReader
	trie *Trie[S]
	off  int // bits consumed
}

// NewDecoder builds a Decoder that reads from r.
// The code table must be prefix-free; see NewTrie.
func NewDecoder[S cmp.Ordered](r io.Reader, codes map[S]string) (*Decoder[S], error) {
	return NewBitDecoder(bitio.NewReader(r), codes)
}

// NewBitDecoder builds a Decoder that reads from the given BitReader.
func NewBitDecoder[S cmp.Ordered](r BitReader, codes map[S]string) (*Decoder[S], error) {
	trie, err := NewTrie(codes)
	if err != nil {
		return nil, err
	}
	return &Decoder[S]{r: r, trie: trie}, nil
}

// Decode reads exactly n symbols.
//
// If the input runs out between symbols,
// it returns the symbols read so far with io.ErrUnexpectedEOF.
// If it runs out inside a code, the error matches ErrTruncated.
func (d *Decoder[S]) Decode(n int) ([]S, error) {
	syms := make([]S, 0, n)
	c := cursor[S]{trie: d.trie}
	start := d.off
	for len(syms) < n {
		b, err := d.r.ReadBool()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if c.AtRoot() {
					err = io.ErrUnexpectedEOF
				} else {
					err = ErrTruncated
				}
			}
			return syms, fmt.Errorf("decode symbol %d: %w", len(syms), err)
		}

		var bit int
		if b {
			bit = 1
		}

		sym, done, ok := c.Step(bit)
		if !ok {
			return syms, &UnmatchedBitsError{Offset: start}
		}
		d.off++
		if done {
			syms = append(syms, sym)
			start = d.off
		}
	}
	return syms, nil
}
