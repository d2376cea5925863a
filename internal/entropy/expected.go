package entropy

import (
	"cmp"
	"maps"
	"slices"

	"go.uber.org/multierr"
)

// Expected computes the expected code length in bits per symbol
// of the given code assignment under the given distribution:
// the sum of p(sym) * len(codes[sym]).
//
// Each code is a string of '0' and '1' characters, one per bit.
//
// The symbols of probs and codes must match exactly.
// Every mismatch is reported as a *SymbolMappingError:
// symbols without a code first, then codes without a symbol,
// each in ascending order, combined with multierr.
// Use errors.As to inspect the first one,
// or multierr.Errors to list all of them.
func Expected[S cmp.Ordered](probs ProbabilityTable[S], codes map[S]string) (float64, error) {
	var (
		total float64
		err   error
	)

	for _, sym := range slices.Sorted(maps.Keys(probs)) {
		code, ok := codes[sym]
		if !ok {
			err = multierr.Append(err, &SymbolMappingError[S]{
				Kind:   SymbolNotFoundInCodes,
				Symbol: sym,
			})
			continue
		}
		total += probs[sym] * float64(len(code))
	}

	for _, sym := range slices.Sorted(maps.Keys(codes)) {
		if _, ok := probs[sym]; !ok {
			err = multierr.Append(err, &SymbolMappingError[S]{
				Kind:   ExtraSymbolInCodes,
				Symbol: sym,
			})
		}
	}

	if err != nil {
		return 0, err
	}
	return total, nil
}
