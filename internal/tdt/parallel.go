// Package tdt adapts go-testdeep to the table-driven style
// used in this repository.
package tdt

import (
	"testing"

	"github.com/maxatome/go-testdeep/td"
)

// Parallel marks t as parallel and wraps it in a td.T.
func Parallel(t *testing.T) *td.T {
	t.Parallel()
	return td.NewT(t)
}
