// Package symbols splits text into the symbols that get counted and coded.
package symbols

import (
	"flag"
	"fmt"
	"iter"

	"github.com/rivo/uniseg"
)

// Runes yields each code point in s as its own symbol.
func Runes(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, r := range s {
			if !yield(string(r)) {
				return
			}
		}
	}
}

// Graphemes yields each user-perceived character in s as its own symbol.
// For example, "e" followed by a combining acute accent is one symbol,
// as is a flag emoji made up of two regional indicators.
func Graphemes(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		g := uniseg.NewGraphemes(s)
		for g.Next() {
			if !yield(g.Str()) {
				return
			}
		}
	}
}

// Mode selects how text is split into symbols.
type Mode int

// Supported modes.
const (
	RuneMode     Mode = iota // code points
	GraphemeMode             // grapheme clusters
)

var _ flag.Value = (*Mode)(nil)

func (m Mode) String() string {
	switch m {
	case RuneMode:
		return "runes"
	case GraphemeMode:
		return "graphemes"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Set parses the name of a mode.
func (m *Mode) Set(name string) error {
	switch name {
	case "runes":
		*m = RuneMode
	case "graphemes":
		*m = GraphemeMode
	default:
		return fmt.Errorf("unknown split mode %q: expected runes or graphemes", name)
	}
	return nil
}

// Split splits s into symbols according to this mode.
func (m Mode) Split(s string) iter.Seq[string] {
	if m == GraphemeMode {
		return Graphemes(s)
	}
	return Runes(s)
}
