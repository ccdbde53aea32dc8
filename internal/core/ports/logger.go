// Package ports defines the core interfaces for the application.
package ports

import "io"

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info writes a timestamped line.
	Info(msg string)
	// Warn writes a timestamped warning line.
	Warn(msg string)
	// Error writes a timestamped error report including the cause chain.
	Error(err error)
	// Event writes a bordered banner containing label.
	Event(label string)
	// Line writes text verbatim.
	Line(text string)
	// SetOutput redirects all subsequent output to w.
	SetOutput(w io.Writer)
}
