package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// TimeFormat is the ISO-8601 layout prefixed to every log line.
const TimeFormat = time.RFC3339

// LineHandler is a slog.Handler that writes one plain line per record,
// prefixed with the record's timestamp. The output is suitable both for a
// terminal and for a log file.
type LineHandler struct {
	w     io.Writer
	mu    *sync.Mutex
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewLineHandler creates a new LineHandler writing to the provided writer.
func NewLineHandler(w io.Writer, opts *slog.HandlerOptions) *LineHandler {
	if w == nil {
		w = os.Stdout
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &LineHandler{
		w:     w,
		mu:    &sync.Mutex{},
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *LineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *LineHandler) Handle(_ context.Context, r slog.Record) error {
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	var b strings.Builder
	b.WriteString(ts.Format(TimeFormat))
	b.WriteString("  ")

	switch {
	case r.Level >= slog.LevelError:
		b.WriteString("ERROR: ")
	case r.Level >= slog.LevelWarn:
		b.WriteString("WARN: ")
	}
	b.WriteString(r.Message)

	for _, attr := range h.attrs {
		b.WriteString(" " + formatAttr(h.group, attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		b.WriteString(" " + formatAttr(h.group, attr))
		return true
	})
	b.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *LineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)

	return &LineHandler{
		w:     h.w,
		mu:    h.mu,
		level: h.level,
		attrs: newAttrs,
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *LineHandler) WithGroup(name string) slog.Handler {
	return &LineHandler{
		w:     h.w,
		mu:    h.mu,
		level: h.level,
		attrs: h.attrs,
		group: name,
	}
}

func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}
