// Package entropy measures symbol distributions:
// how often each symbol occurs, how likely it is,
// and how many bits a code spends on it on average.
//
// Symbols are any ordered type.
// Code points (rune) and grapheme clusters (string) are the common choices.
// Functions that reduce over a table visit symbols in ascending order
// so that floating point results are reproducible across runs.
package entropy

import "iter"

// FrequencyTable maps each symbol to the number of times it occurred.
type FrequencyTable[S comparable] map[S]int

// Frequency counts the occurrences of each symbol in seq.
// An empty sequence yields an empty table.
func Frequency[S comparable](seq iter.Seq[S]) FrequencyTable[S] {
	freqs := make(FrequencyTable[S])
	for sym := range seq {
		freqs[sym]++
	}
	return freqs
}

// CountRunes counts the code points in s.
func CountRunes(s string) FrequencyTable[rune] {
	freqs := make(FrequencyTable[rune])
	for _, r := range s {
		freqs[r]++
	}
	return freqs
}

// Total reports the sum of all counts in the table.
func (f FrequencyTable[S]) Total() int {
	var total int
	for _, n := range f {
		total += n
	}
	return total
}
