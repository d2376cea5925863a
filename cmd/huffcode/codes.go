package main

import (
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/mattn/go-shellwords"
)

// codeAssignments is a code table supplied on the command line
// as shell words of the form SYM=BITS.
type codeAssignments map[string]string

var _ flag.Value = (*codeAssignments)(nil)

func (ca *codeAssignments) String() string {
	if ca == nil {
		return ""
	}

	syms := make([]string, 0, len(*ca))
	for sym := range *ca {
		syms = append(syms, sym)
	}
	slices.Sort(syms)

	words := make([]string, len(syms))
	for i, sym := range syms {
		words[i] = shellQuote(sym + "=" + (*ca)[sym])
	}
	return strings.Join(words, " ")
}

// Set adds the assignments in s to the table.
// The flag may be repeated, but a symbol may be assigned only once.
func (ca *codeAssignments) Set(s string) error {
	parser := shellwords.NewParser()
	words, err := parser.Parse(s)
	if err != nil {
		return fmt.Errorf("parse code assignments: %w", err)
	}
	if pos := parser.Position; pos >= 0 {
		// The parser stops at shell operators like ';' and '|'.
		return fmt.Errorf("unexpected %q at offset %d: quote symbols that contain it", []rune(s)[pos], pos)
	}

	if *ca == nil {
		*ca = make(codeAssignments, len(words))
	}

	var dupes []string
	for _, word := range words {
		idx := strings.LastIndexByte(word, '=')
		if idx <= 0 {
			return fmt.Errorf("invalid code assignment %q: expected SYM=BITS", word)
		}

		sym, bits := word[:idx], word[idx+1:]
		if len(bits) == 0 || strings.Trim(bits, "01") != "" {
			return fmt.Errorf("invalid code %q for %q: must be a non-empty string of 0s and 1s", bits, sym)
		}

		if _, ok := (*ca)[sym]; ok {
			dupes = append(dupes, sym)
			continue
		}
		(*ca)[sym] = bits
	}

	if len(dupes) > 0 {
		slices.Sort(dupes)
		return fmt.Errorf("symbols assigned more than once: %q", slices.Compact(dupes))
	}
	return nil
}

// shellQuote quotes s so that shellwords.Parse reads it back as one word.
func shellQuote(s string) string {
	plain := strings.IndexFunc(s, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return false
		case strings.ContainsRune("=_-.,:/+@%", r):
			return false
		default:
			return r < 0x80 // quote ASCII punctuation and whitespace
		}
	}) < 0
	if plain && len(s) > 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
