package log

import (
	"io"
	"log/slog"
)

// Discard is a logger that discards all its operations.
var Discard = &Logger{slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
	Level: slog.Level(1 << 30),
}))}
