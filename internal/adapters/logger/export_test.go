// export_test.go exports private functions for white-box testing.
package logger

import "time"

// ExportErrorFormatting exports the private error formatting functions for testing.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

// SetClock replaces the clock used for banners.
func (l *Logger) SetClock(now func() time.Time) {
	l.now = now
}
