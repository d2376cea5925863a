// Package log provides leveled, structured logging
// on top of log/slog.
//
// Messages are written one per line as
//
//	LEVEL message key=value key=value
//
// with optional terminal colors.
package log

import (
	"io"
	"log/slog"
)

// Level specifies the level of logging.
type Level = slog.Level

// Supported log levels.
const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Warn  = slog.LevelWarn
	Error = slog.LevelError
)

// Logger logs messages at or above a level.
type Logger struct{ *slog.Logger }

// New builds a logger that writes plain text to the given writer,
// dropping messages below lvl.
func New(w io.Writer, lvl Level) *Logger {
	return &Logger{slog.New(&handler{W: w, Level: lvl})}
}

// NewColor is like New, but it highlights levels, messages, and attribute
// names with ANSI escape codes for display in a terminal.
func NewColor(w io.Writer, lvl Level) *Logger {
	return &Logger{slog.New(&handler{W: w, Level: lvl, Color: true})}
}

// WithName builds a new logger with the provided name.
// Attributes logged with the returned logger are prefixed with the name.
// The returned logger is safe to use concurrently with this logger.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{l.WithGroup(name)}
}

// With builds a new logger that includes the given attributes
// in every message.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{l.Logger.With(args...)}
}
