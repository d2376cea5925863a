// Package stringobj aids in writing String methods for objects
// with a JSON-like output.
package stringobj

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Builder helps build String functions for objects that skip zero-value
// attributes. Attributes are printed in the order they were added.
type Builder struct {
	attrs []string
}

// Put adds the given attribute-value pair to the builder, skipping it if the
// value is a zero value.
func (b *Builder) Put(name string, value any) {
	if value == nil || reflect.ValueOf(value).IsZero() {
		return
	}
	b.attrs = append(b.attrs, fmt.Sprintf("%s: %v", name, value))
}

// String returns the final string representation.
func (b *Builder) String() string {
	return "{" + strings.Join(b.attrs, ", ") + "}"
}

// Quote formats a symbol for messages.
// Strings and runes are quoted Go-style; other values use %v.
func Quote(v any) string {
	switch v := v.(type) {
	case string:
		return strconv.Quote(v)
	case rune:
		return strconv.QuoteRune(v)
	default:
		return fmt.Sprint(v)
	}
}
