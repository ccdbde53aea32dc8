// export_test.go exports private fields for white-box testing.
package builder

import "time"

// SetClock replaces the clock used for build timestamps.
func (b *Builder) SetClock(now func() time.Time) {
	b.now = now
}
