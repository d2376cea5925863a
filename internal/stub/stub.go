// Package stub swaps package-level variables in tests.
package stub

import "testing"

// Replace sets *dst to val and restores the old value
// when the test finishes.
//
// Tests that replace globals must not run in parallel with tests
// that read them.
func Replace[V any](t testing.TB, dst *V, val V) {
	old := *dst
	*dst = val
	t.Cleanup(func() { *dst = old })
}
