// Package sevenseg drives a single-digit seven-segment display through a
// 74HC595 shift register. The real implementation bit-bangs the register
// over the Linux GPIO character device; a noop implementation backs
// degraded operation when the display is absent.
package sevenseg

import (
	"time"

	"github.com/GCZ79/Embedded-Systems/internal/logic"
)

// Glyph is an active-low segment pattern. Bit 7 is the decimal point;
// clearing a bit lights the segment.
type Glyph byte

// Segment patterns for the glyphs the thermostat shows.
const (
	GlyphO     Glyph = 0xC0 // off state (also the digit 0)
	GlyphC     Glyph = 0xC6 // cool state / Celsius
	GlyphF     Glyph = 0x8E // Fahrenheit
	GlyphH     Glyph = 0x89 // heat state
	GlyphU     Glyph = 0xE3 // setpoint up
	GlyphD     Glyph = 0xA1 // setpoint down
	GlyphBlank Glyph = 0xFF // all segments off
)

// WithDot lights the decimal point, used when blinking a scale change
// ("C." / "F.").
func (g Glyph) WithDot() Glyph {
	return g & 0x7F
}

// ForState returns the glyph shown for a thermostat state.
func ForState(s logic.State) Glyph {
	switch s {
	case logic.StateHeat:
		return GlyphH
	case logic.StateCool:
		return GlyphC
	default:
		return GlyphO
	}
}

// ForScale returns the glyph blinked when the scale changes.
func ForScale(s logic.Scale) Glyph {
	if s == logic.Celsius {
		return GlyphC
	}
	return GlyphF
}

// spinFrames chases segments a→f for the activity animation shown while a
// serial report is being sent.
var spinFrames = []Glyph{0xFE, 0xFD, 0xFB, 0xF7, 0xEF, 0xDF, 0xFE}

// Display renders glyphs on the seven-segment display.
type Display interface {
	// Show latches a glyph onto the display.
	Show(g Glyph) error

	// Clear blanks the display.
	Clear() error

	// Blink alternates g and blank; it blocks for 2*times*interval.
	Blink(g Glyph, times int, interval time.Duration) error

	// Spin runs the segment chase animation, then blanks the display.
	// It blocks for rotations*len(frames)*step.
	Spin(rotations int, step time.Duration) error

	// Close blanks the display and releases GPIO resources.
	Close() error
}

// 74HC595 pin definitions (BCM numbering), overridable via config.
const (
	DefaultPinData  = 17 // DS
	DefaultPinLatch = 27 // ST_CP
	DefaultPinClock = 22 // SH_CP
)
