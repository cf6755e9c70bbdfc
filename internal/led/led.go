// Package led drives the heat and cool indicator LEDs. Pulse mode fades
// the LED in and out with a software PWM goroutine; the hardware has no
// PWM on these pins.
package led

import "github.com/GCZ79/Embedded-Systems/internal/logic"

// LED sets an indicator's mode.
type LED interface {
	// SetMode switches the LED to off, solid, or pulse. Setting the
	// current mode again is a no-op.
	SetMode(m logic.LEDMode) error

	// Close turns the LED off and releases GPIO resources.
	Close() error
}

// Pin definitions (BCM numbering), overridable via config.
const (
	DefaultPinHeat = 18 // red
	DefaultPinCool = 23 // blue
)
