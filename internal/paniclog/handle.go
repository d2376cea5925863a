// Package paniclog turns panics into errors,
// logging the panic and its stack trace on the way.
package paniclog

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/abhinav/huffcode/internal/log"
)

// Handle handles a panic value, logging it with its stack to the given
// logger. Returns the error version of the panic, if any.
func Handle(pval any, logger *log.Logger) error {
	if pval == nil {
		return nil
	}

	logger.Error("panic", "value", fmt.Sprint(pval), "stack", string(debug.Stack()))

	switch pval := pval.(type) {
	case string:
		return errors.New(pval)
	case error:
		return pval
	default:
		return fmt.Errorf("panic: %v", pval)
	}
}

// Recover recovers a panic and places it into the given error pointer,
// replacing any error already there.
//
//	defer paniclog.Recover(&err, logger)
func Recover(err *error, logger *log.Logger) {
	if pval := recover(); pval != nil {
		*err = Handle(pval, logger)
	}
}
