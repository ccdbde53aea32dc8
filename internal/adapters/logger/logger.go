// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jeremyj563/vsts-ahk-build/internal/core/ports"
)

const bannerMinWidth = 48

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// metadataer describes an error carrying key/value context, as zerr.Error does.
type metadataer interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	out    io.Writer
	now    func() time.Time
	mu     sync.RWMutex
}

var _ ports.Logger = (*Logger)(nil)

// New creates a new Logger writing to standard output.
func New() ports.Logger {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a new Logger writing to w.
func NewWithWriter(w io.Writer) *Logger {
	l := &Logger{now: time.Now}
	l.SetOutput(w)
	return l
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stdout is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stdout
	}
	l.out = w
	l.logger = slog.New(NewLineHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Info logs a timestamped informational line.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a timestamped warning line.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error together with its causes.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// Event writes a bordered banner containing label and the current time.
func (l *Logger) Event(label string) {
	content := " " + label + " | " + l.now().Format(TimeFormat) + " "
	border := strings.Repeat("=", max(len(content), bannerMinWidth))

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.out, "%s\n%s\n%s\n", border, content, border)
}

// Line writes text verbatim followed by a newline.
func (l *Logger) Line(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, strings.TrimSuffix(text, "\n")+"\n")
}

// collectErrorEntries flattens an error chain into one message per link.
// Joined errors contribute each of their branches in order.
func collectErrorEntries(err error) []string {
	var entries []string

	// zerr.With on a foreign error adds a link with an empty message.
	// Its metadata is carried onto the next entry.
	var pending string

	var walk func(error)
	walk = func(current error) {
		for current != nil {
			if m, ok := current.(messager); ok {
				if m.Message() == "" {
					pending += formatMetadata(current)
				} else {
					entries = append(entries, m.Message()+formatMetadata(current)+pending)
					pending = ""
				}
				current = errors.Unwrap(current)
				continue
			}
			if joined, ok := current.(interface{ Unwrap() []error }); ok {
				for _, branch := range joined.Unwrap() {
					walk(branch)
				}
				return
			}
			entries = append(entries, current.Error()+pending)
			pending = ""
			return
		}
	}
	walk(err)

	return entries
}

func formatMetadata(err error) string {
	md, ok := err.(metadataer)
	if !ok {
		return ""
	}
	meta := md.Metadata()
	if len(meta) == 0 {
		return ""
	}

	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, meta[k]))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

// formatErrorEntries renders the first entry as the error and the rest as causes.
func formatErrorEntries(entries []string) string {
	var lines []string

	for i, entry := range entries {
		parts := strings.Split(entry, "\n")

		if i == 0 {
			lines = append(lines, parts[0])
			for _, line := range parts[1:] {
				lines = append(lines, "    "+line)
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "  Caused by:")
		}
		lines = append(lines, "    → "+parts[0])
		for _, line := range parts[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}
