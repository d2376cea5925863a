package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

type handler struct {
	W     io.Writer
	Level Level
	Color bool

	attrs []byte // pre-rendered attributes from WithAttrs
	group []byte // dot-separated group prefix
}

var _ slog.Handler = (*handler)(nil)

func (h *handler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return lvl >= h.Level
}

var (
	_reset = []byte("\x1b[0m")
	_bold  = []byte("\x1b[1m")
	_dim   = []byte("\x1b[2m")

	_boldDim          = []byte("\x1b[2;1m")
	_brightBoldRed    = []byte("\x1b[91;1m")
	_brightBoldYellow = []byte("\x1b[93;1m")
	_brightBoldGreen  = []byte("\x1b[92;1m")
)

func levelStyle(lvl slog.Level) []byte {
	switch {
	case lvl >= slog.LevelError:
		return _brightBoldRed
	case lvl >= slog.LevelWarn:
		return _brightBoldYellow
	case lvl >= slog.LevelInfo:
		return _brightBoldGreen
	default:
		return _boldDim
	}
}

func (h *handler) Handle(ctx context.Context, rec slog.Record) error {
	bufp := getBuf()
	defer putBuf(bufp)
	buf := *bufp

	lvl, err := rec.Level.MarshalText()
	if err != nil {
		return err
	}

	buf = h.appendStyled(buf, levelStyle(rec.Level), lvl)
	buf = append(buf, ' ')
	buf = h.appendStyled(buf, _bold, []byte(strings.TrimRight(rec.Message, "\n")))

	if len(h.attrs) > 0 {
		buf = append(buf, ' ')
		buf = append(buf, h.attrs...)
	}

	rec.Attrs(func(a slog.Attr) bool {
		buf = h.appendAttr(buf, h.group, a)
		return true
	})

	buf = append(buf, '\n')
	*bufp = buf
	_, err = h.W.Write(buf)
	return err
}

func (h *handler) appendStyled(buf, style, text []byte) []byte {
	if !h.Color {
		return append(buf, text...)
	}
	buf = append(buf, style...)
	buf = append(buf, text...)
	return append(buf, _reset...)
}

func (h *handler) appendAttr(buf []byte, group []byte, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}

	if a.Value.Kind() == slog.KindGroup {
		group := group
		if len(group) > 0 {
			group = append(group, '.')
		}
		group = append(group, a.Key...)
		for _, a := range a.Value.Group() {
			buf = h.appendAttr(buf, group, a)
		}
		return buf
	}

	if len(buf) > 0 && buf[len(buf)-1] != ' ' {
		buf = append(buf, ' ')
	}

	key := make([]byte, 0, len(group)+len(a.Key)+2)
	if len(group) > 0 {
		key = append(key, group...)
		key = append(key, '.')
	}
	key = append(key, a.Key...)
	key = append(key, '=')
	buf = h.appendStyled(buf, _dim, key)

	switch a.Value.Kind() {
	case slog.KindString:
		if s := a.Value.String(); needsQuote(s) {
			buf = strconv.AppendQuote(buf, s)
		} else {
			buf = append(buf, s...)
		}

	case slog.KindInt64:
		buf = strconv.AppendInt(buf, a.Value.Int64(), 10)

	case slog.KindUint64:
		buf = strconv.AppendUint(buf, a.Value.Uint64(), 10)

	case slog.KindFloat64:
		buf = strconv.AppendFloat(buf, a.Value.Float64(), 'f', -1, 64)

	case slog.KindBool:
		buf = strconv.AppendBool(buf, a.Value.Bool())

	case slog.KindDuration:
		buf = append(buf, a.Value.Duration().String()...)

	case slog.KindTime:
		buf = append(buf, a.Value.Time().String()...)

	default:
		buf = fmt.Appendf(buf, "%v", a.Value.Any())
	}

	return buf
}

func needsQuote(s string) bool {
	if len(s) == 0 || strings.ContainsAny(s, ` \"=`) {
		return true
	}
	for _, r := range s {
		if !strconv.IsPrint(r) {
			return true
		}
	}
	return false
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := *h
	out.attrs = append([]byte(nil), h.attrs...)
	for _, a := range attrs {
		out.attrs = out.appendAttr(out.attrs, h.group, a)
	}
	return &out
}

func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	out := *h
	out.group = append([]byte(nil), h.group...)
	if len(out.group) > 0 {
		out.group = append(out.group, '.')
	}
	out.group = append(out.group, name...)
	return &out
}

var _bufPool = sync.Pool{
	New: func() any {
		bs := make([]byte, 0, 1024)
		return &bs
	},
}

func getBuf() *[]byte {
	return _bufPool.Get().(*[]byte)
}

func putBuf(bs *[]byte) {
	*bs = (*bs)[:0]
	_bufPool.Put(bs)
}
