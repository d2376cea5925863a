package main

import (
	"bytes"
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/abhinav/huffcode/internal/entropy"
	"github.com/mattn/go-runewidth"
)

// report is the output of a huffcode run.
type report struct {
	Freqs entropy.FrequencyTable[string]
	Probs entropy.ProbabilityTable[string]
	Codes map[string]string

	Entropy  float64 // bits per symbol
	Expected float64 // bits per symbol

	Bits  int // size of the encoded text
	Bytes int // size of the packed encoded text

	Encoded string // optional
}

// WriteTo writes the report: a table of symbols followed by a summary.
// Symbols are sorted by descending count, then by value.
func (r *report) WriteTo(w io.Writer) (int64, error) {
	syms := make([]string, 0, len(r.Freqs))
	for sym := range r.Freqs {
		syms = append(syms, sym)
	}
	slices.SortFunc(syms, func(a, b string) int {
		if c := cmp.Compare(r.Freqs[b], r.Freqs[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	rows := make([][]string, 0, len(syms)+1)
	rows = append(rows, []string{"SYMBOL", "COUNT", "PROBABILITY", "CODE"})
	for _, sym := range syms {
		rows = append(rows, []string{
			strconv.Quote(sym),
			strconv.Itoa(r.Freqs[sym]),
			strconv.FormatFloat(r.Probs[sym], 'f', 4, 64),
			r.Codes[sym],
		})
	}

	var buf bytes.Buffer
	writeTable(&buf, rows)
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "entropy: %.4f bits/symbol\n", r.Entropy)
	fmt.Fprintf(&buf, "expected length: %.4f bits/symbol\n", r.Expected)
	if r.Expected > 0 {
		fmt.Fprintf(&buf, "efficiency: %.2f%%\n", 100*r.Entropy/r.Expected)
	}
	fmt.Fprintf(&buf, "encoded bits: %d\n", r.Bits)
	fmt.Fprintf(&buf, "packed bytes: %d\n", r.Bytes)
	if len(r.Encoded) > 0 {
		fmt.Fprintf(&buf, "encoded: %s\n", r.Encoded)
	}

	return buf.WriteTo(w)
}

// writeTable writes rows with columns aligned by display width,
// separated by two spaces. The last column is not padded.
func writeTable(buf *bytes.Buffer, rows [][]string) {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				buf.WriteString("  ")
			}
			if i < len(row)-1 {
				cell = runewidth.FillRight(cell, widths[i])
			}
			buf.WriteString(cell)
		}
		buf.WriteString("\n")
	}
}
