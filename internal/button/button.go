// Package button turns GPIO edges into classified press events.
// The real implementation uses the Linux GPIO character device.
// The fake implementation allows testing without hardware.
package button

import (
	"time"

	"github.com/GCZ79/Embedded-Systems/internal/logic"
)

// ID identifies a physical button.
type ID string

const (
	// Mode cycles the thermostat state; a long press toggles the scale.
	Mode ID = "mode"
	// Up raises the setpoint by one degree.
	Up ID = "up"
	// Down lowers the setpoint by one degree.
	Down ID = "down"
)

// Event is a classified press delivered to the control loop.
type Event struct {
	Button ID
	Kind   logic.PressKind
	Time   time.Time
}

// Handler delivers press events in the order they occurred.
type Handler interface {
	// Events returns the channel the control loop consumes.
	Events() <-chan Event

	// Close releases GPIO resources and stops event delivery.
	Close() error
}

// Pin definitions (BCM numbering), overridable via config.
const (
	DefaultPinMode = 24
	DefaultPinUp   = 16
	DefaultPinDown = 25
)
