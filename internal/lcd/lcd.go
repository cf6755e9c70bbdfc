// Package lcd drives a 16x2 HD44780 character display behind a PCF8574
// I2C backpack. An absent display is tolerated: the daemon degrades to the
// remaining renderers.
package lcd

// Display renders two lines of status text.
type Display interface {
	// WriteLines replaces both lines. Lines longer than the display
	// width are truncated.
	WriteLines(line1, line2 string) error

	// Clear blanks the display.
	Clear() error

	// Close clears the display, switches the backlight off, and
	// releases the bus.
	Close() error
}

// DefaultAddr is the usual PCF8574 backpack address.
const DefaultAddr = 0x27

// Columns is the display width in characters.
const Columns = 16

// FitLine truncates a line to the display width.
func FitLine(s string) string {
	if len(s) > Columns {
		return s[:Columns]
	}
	return s
}
