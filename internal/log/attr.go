package log

import "log/slog"

// OmitEmpty builds an attribute using the given constructor function,
// but skips the attribute if the value is the zero value for its type.
//
//	logger.Info("reading input", log.OmitEmpty(slog.String, "file", path))
func OmitEmpty[T comparable](fn func(string, T) slog.Attr, name string, value T) slog.Attr {
	var zero T
	if value == zero {
		return slog.Attr{} // handlers drop empty attributes
	}
	return fn(name, value)
}
