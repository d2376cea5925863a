package entropy

import (
	"fmt"
	"strconv"

	"github.com/abhinav/huffcode/internal/stringobj"
)

// MappingErrorKind is the way in which a code table
// disagrees with a distribution.
type MappingErrorKind int

const (
	// SymbolNotFoundInCodes indicates that a symbol of the distribution
	// has no code.
	SymbolNotFoundInCodes MappingErrorKind = iota + 1

	// ExtraSymbolInCodes indicates that a code was assigned to a symbol
	// that is not part of the distribution.
	ExtraSymbolInCodes
)

func (k MappingErrorKind) String() string {
	switch k {
	case SymbolNotFoundInCodes:
		return "SymbolNotFoundInCodes"
	case ExtraSymbolInCodes:
		return "ExtraSymbolInCodes"
	default:
		return "MappingErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// SymbolMappingError reports a symbol present in one of
// a distribution and a code table but not the other.
type SymbolMappingError[S any] struct {
	Kind   MappingErrorKind
	Symbol S
}

func (e *SymbolMappingError[S]) Error() string {
	sym := stringobj.Quote(e.Symbol)
	switch e.Kind {
	case SymbolNotFoundInCodes:
		return fmt.Sprintf("symbol %s found in frequencies but not in codes", sym)
	case ExtraSymbolInCodes:
		return fmt.Sprintf("extra symbol %s found in codes but not in frequencies", sym)
	default:
		return fmt.Sprintf("symbol %s: %v", sym, e.Kind)
	}
}
