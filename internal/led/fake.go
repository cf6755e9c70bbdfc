package led

import "github.com/GCZ79/Embedded-Systems/internal/logic"

// FakeLED records mode changes for test assertions.
type FakeLED struct {
	// Modes contains every mode passed to SetMode, in order.
	Modes []logic.LEDMode

	// Closed tracks if Close was called.
	Closed bool

	// SetError, if set, will be returned by SetMode.
	SetError error
}

// NewFakeLED creates a FakeLED for testing.
func NewFakeLED() *FakeLED {
	return &FakeLED{}
}

// SetMode records the mode.
func (f *FakeLED) SetMode(m logic.LEDMode) error {
	if f.SetError != nil {
		return f.SetError
	}
	f.Modes = append(f.Modes, m)
	return nil
}

// Mode returns the most recent mode, or LEDOff if none was set.
func (f *FakeLED) Mode() logic.LEDMode {
	if len(f.Modes) == 0 {
		return logic.LEDOff
	}
	return f.Modes[len(f.Modes)-1]
}

// Close marks the LED as closed.
func (f *FakeLED) Close() error {
	f.Closed = true
	return nil
}
