package entropy

import (
	"cmp"
	"maps"
	"math"
	"slices"
)

// ProbabilityTable maps each symbol to its probability.
// The values of a table built by FreqToProb sum to 1.
type ProbabilityTable[S comparable] map[S]float64

// FreqToProb normalizes counts into probabilities
// by dividing each count by the total.
//
// An empty table, or one whose counts sum to zero,
// yields an empty table.
func FreqToProb[S comparable](freqs FrequencyTable[S]) ProbabilityTable[S] {
	probs := make(ProbabilityTable[S], len(freqs))

	total := float64(freqs.Total())
	if total == 0 {
		return probs
	}

	for sym, n := range freqs {
		probs[sym] = float64(n) / total
	}
	return probs
}

// Entropy computes the Shannon entropy of the distribution in bits:
// the sum of -p*log2(p) over all symbols.
//
// Symbols with zero probability contribute nothing.
// An empty table has zero entropy.
func Entropy[S cmp.Ordered](probs ProbabilityTable[S]) float64 {
	var h float64
	for _, sym := range slices.Sorted(maps.Keys(probs)) {
		if p := probs[sym]; p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}
