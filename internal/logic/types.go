// Package logic contains the pure thermostat control logic: operating
// state, setpoint, scale, press classification, and the LED decision.
// This package has NO hardware or OS dependencies; time is always
// injectable via time.Time parameters.
package logic

import "time"

// State is the thermostat operating state.
type State string

const (
	StateOff  State = "off"
	StateHeat State = "heat"
	StateCool State = "cool"
)

// Scale is the temperature unit used for display and setpoint.
type Scale string

const (
	Fahrenheit Scale = "F"
	Celsius    Scale = "C"
)

// DefaultSetpoint is the power-on setpoint, in Fahrenheit.
const DefaultSetpoint = 72

// Reading is a single sensor sample. Temperature is stored in Celsius
// (the sensor's native unit) and converted for display on demand.
type Reading struct {
	TempC    float64
	Humidity float64
	Time     time.Time
}

// TempIn returns the sample temperature in the given scale.
func (r Reading) TempIn(s Scale) float64 {
	if s == Fahrenheit {
		return CToF(r.TempC)
	}
	return r.TempC
}

// LEDMode is the target mode for a state LED.
type LEDMode int

const (
	// LEDOff turns the LED off.
	LEDOff LEDMode = iota
	// LEDSolid lights the LED steadily: the setpoint has been reached.
	LEDSolid
	// LEDPulse fades the LED in and out: actively driving toward the setpoint.
	LEDPulse
)

func (m LEDMode) String() string {
	switch m {
	case LEDSolid:
		return "solid"
	case LEDPulse:
		return "pulse"
	default:
		return "off"
	}
}

// Indicator holds the target modes for both state LEDs.
type Indicator struct {
	Heat LEDMode
	Cool LEDMode
}

// Feedback is the seven-segment directive attached to an Update.
type Feedback int

const (
	// FeedbackNone leaves the seven-segment display untouched.
	FeedbackNone Feedback = iota
	// FeedbackState shows the glyph for the current state.
	FeedbackState
	// FeedbackUp acknowledges a setpoint increase.
	FeedbackUp
	// FeedbackDown acknowledges a setpoint decrease.
	FeedbackDown
	// FeedbackScale blinks the new scale's glyph, then restores the state glyph.
	FeedbackScale
)

// Update is the immutable result of a controller operation. Exactly one
// Update is produced per input event or sensor observation; the control
// loop turns it into render calls.
type Update struct {
	State    State
	Scale    Scale
	Setpoint int
	LEDs     Indicator
	Feedback Feedback
}

// EventCounts tracks the number of each event type since startup.
type EventCounts struct {
	Cycles       int
	ScaleToggles int
	SetpointUp   int
	SetpointDown int
	SensorErrors int
	Reports      int
}
