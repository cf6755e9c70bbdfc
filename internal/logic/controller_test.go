package logic

import (
	"errors"
	"testing"
	"time"
)

func TestNewControllerDefaults(t *testing.T) {
	c := NewController()
	if c.State() != StateOff {
		t.Errorf("expected initial state off, got %s", c.State())
	}
	if c.Scale() != Fahrenheit {
		t.Errorf("expected initial scale F, got %s", c.Scale())
	}
	if c.Setpoint() != 72 {
		t.Errorf("expected initial setpoint 72, got %d", c.Setpoint())
	}
	if _, _, ok := c.Reading(); ok {
		t.Error("expected no reading before first observation")
	}
}

func TestCycleOrder(t *testing.T) {
	c := NewController()

	want := []State{StateHeat, StateCool, StateOff}
	for i, expected := range want {
		u := c.Cycle()
		if u.State != expected {
			t.Errorf("press %d: expected state %s, got %s", i+1, expected, u.State)
		}
		if u.Feedback != FeedbackState {
			t.Errorf("press %d: expected state feedback, got %v", i+1, u.Feedback)
		}
	}

	// Three presses return to off; the cycle has length exactly 3.
	if c.State() != StateOff {
		t.Errorf("expected off after three presses, got %s", c.State())
	}
	if c.Counts().Cycles != 3 {
		t.Errorf("expected 3 cycles counted, got %d", c.Counts().Cycles)
	}
}

func TestToggleScaleConvertsSetpoint(t *testing.T) {
	c := NewController()

	u := c.ToggleScale()
	if u.Scale != Celsius {
		t.Errorf("expected scale C, got %s", u.Scale)
	}
	if u.Setpoint != 22 {
		t.Errorf("expected setpoint 22°C, got %d", u.Setpoint)
	}
	if u.Feedback != FeedbackScale {
		t.Errorf("expected scale feedback, got %v", u.Feedback)
	}

	// Toggling twice is an involution on the setpoint.
	u = c.ToggleScale()
	if u.Scale != Fahrenheit {
		t.Errorf("expected scale F, got %s", u.Scale)
	}
	if u.Setpoint != 72 {
		t.Errorf("expected setpoint restored to 72°F, got %d", u.Setpoint)
	}
}

func TestToggleScaleInvolutionAcrossRange(t *testing.T) {
	for sp := 40; sp <= 100; sp++ {
		c := NewController()
		c.setpointF = sp
		c.ToggleScale()
		u := c.ToggleScale()
		if u.Setpoint != sp {
			t.Errorf("setpoint %d: double toggle gave %d", sp, u.Setpoint)
		}
	}
}

func TestToggleScaleIsAtomic(t *testing.T) {
	c := NewController()
	u := c.ToggleScale()
	// The Update carries the new scale and the converted setpoint together.
	if u.Scale != Celsius || u.Setpoint != 22 {
		t.Errorf("expected (C, 22) in a single update, got (%s, %d)", u.Scale, u.Setpoint)
	}
	if c.Scale() != u.Scale || c.Setpoint() != u.Setpoint {
		t.Error("controller state diverged from the update")
	}
}

func TestAdjustSetpoint(t *testing.T) {
	c := NewController()

	u := c.AdjustSetpoint(1)
	if u.Setpoint != 73 {
		t.Errorf("expected 73 after up, got %d", u.Setpoint)
	}
	if u.Feedback != FeedbackUp {
		t.Errorf("expected up feedback, got %v", u.Feedback)
	}

	u = c.AdjustSetpoint(-1)
	if u.Setpoint != 72 {
		t.Errorf("expected 72 after down, got %d", u.Setpoint)
	}
	if u.Feedback != FeedbackDown {
		t.Errorf("expected down feedback, got %v", u.Feedback)
	}

	counts := c.Counts()
	if counts.SetpointUp != 1 || counts.SetpointDown != 1 {
		t.Errorf("expected 1 up / 1 down, got %d / %d", counts.SetpointUp, counts.SetpointDown)
	}
}

func TestSetpointFahrenheit(t *testing.T) {
	c := NewController()
	if got := c.SetpointFahrenheit(); got != 72 {
		t.Errorf("expected 72, got %d", got)
	}
	c.ToggleScale() // displays 22°C
	if got := c.SetpointFahrenheit(); got != 72 {
		t.Errorf("expected 72 while displaying Celsius, got %d", got)
	}
}

func TestSetpointFahrenheitInvariantUnderToggle(t *testing.T) {
	// The wire setpoint must not drift when the display scale changes,
	// including values whose Celsius rounding is lossy (74°F shows as
	// 23°C, which would convert back to 73°F).
	c := NewController()
	c.AdjustSetpoint(1)
	c.AdjustSetpoint(1) // 74°F

	c.ToggleScale()
	if got := c.SetpointFahrenheit(); got != 74 {
		t.Errorf("after toggle to C: expected 74, got %d", got)
	}
	c.ToggleScale()
	if got := c.Setpoint(); got != 74 {
		t.Errorf("after toggle back: expected 74, got %d", got)
	}
}

func TestAdjustSetpointCelsius(t *testing.T) {
	c := NewController()
	c.ToggleScale() // displays 22°C

	u := c.AdjustSetpoint(1)
	if u.Setpoint != 23 {
		t.Errorf("expected 23°C after up, got %d", u.Setpoint)
	}
	if got := c.SetpointFahrenheit(); got != 73 {
		t.Errorf("expected canonical 73°F, got %d", got)
	}

	u = c.AdjustSetpoint(-1)
	if u.Setpoint != 22 {
		t.Errorf("expected 22°C after down, got %d", u.Setpoint)
	}
}

func TestObserveReadingStoresSample(t *testing.T) {
	c := NewController()
	at := time.Date(2026, 2, 19, 8, 0, 0, 0, time.UTC)

	u := c.ObserveReading(Reading{TempC: 21.5, Humidity: 40, Time: at}, nil)
	if u.Feedback != FeedbackNone {
		t.Errorf("sensor update must not touch the seven-segment display, got %v", u.Feedback)
	}

	r, stale, ok := c.Reading()
	if !ok {
		t.Fatal("expected a reading")
	}
	if stale {
		t.Error("fresh reading marked stale")
	}
	if r.TempC != 21.5 {
		t.Errorf("expected 21.5°C, got %v", r.TempC)
	}
}

func TestObserveReadingErrorRetainsLast(t *testing.T) {
	c := NewController()
	c.ObserveReading(Reading{TempC: 20}, nil)

	c.ObserveReading(Reading{}, errors.New("i2c timeout"))

	r, stale, ok := c.Reading()
	if !ok {
		t.Fatal("expected the previous reading to survive a failed poll")
	}
	if !stale {
		t.Error("expected the reading to be marked stale")
	}
	if r.TempC != 20 {
		t.Errorf("expected last-known 20°C, got %v", r.TempC)
	}
	if c.Counts().SensorErrors != 1 {
		t.Errorf("expected 1 sensor error counted, got %d", c.Counts().SensorErrors)
	}

	// A later successful poll clears staleness.
	c.ObserveReading(Reading{TempC: 20.5}, nil)
	if _, stale, _ := c.Reading(); stale {
		t.Error("expected staleness cleared after recovery")
	}
}

func TestLEDDecision(t *testing.T) {
	tests := []struct {
		name      string
		presses   int // cycles from off
		scale     Scale
		setpointF int
		tempC     float64
		haveRead  bool
		want      Indicator
	}{
		{"off state no leds", 0, Fahrenheit, 72, 25, true, Indicator{}},
		{"heat below setpoint pulses", 1, Fahrenheit, 72, 20, true, Indicator{Heat: LEDPulse}},
		{"heat at setpoint solid", 1, Fahrenheit, 72, 22.3, true, Indicator{Heat: LEDSolid}}, // 72.1°F floors to 72
		{"heat above setpoint solid", 1, Fahrenheit, 72, 25, true, Indicator{Heat: LEDSolid}},
		{"cool above setpoint pulses", 2, Fahrenheit, 72, 25, true, Indicator{Cool: LEDPulse}},
		{"cool at setpoint solid", 2, Fahrenheit, 72, 22.3, true, Indicator{Cool: LEDSolid}},
		{"cool below setpoint solid", 2, Fahrenheit, 72, 20, true, Indicator{Cool: LEDSolid}},
		{"heat without reading pulses", 1, Fahrenheit, 72, 0, false, Indicator{Heat: LEDPulse}},
		// 72°F displays as 22°C; the comparison runs in the active scale.
		{"heat celsius below pulses", 1, Celsius, 72, 20, true, Indicator{Heat: LEDPulse}},
		{"heat celsius reached solid", 1, Celsius, 72, 22.9, true, Indicator{Heat: LEDSolid}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController()
			for i := 0; i < tt.presses; i++ {
				c.Cycle()
			}
			c.scale = tt.scale
			c.setpointF = tt.setpointF
			var u Update
			if tt.haveRead {
				u = c.ObserveReading(Reading{TempC: tt.tempC}, nil)
			} else {
				u = c.Refresh()
			}
			if u.LEDs != tt.want {
				t.Errorf("got %+v, want %+v", u.LEDs, tt.want)
			}
		})
	}
}

func TestRefreshDoesNotMutate(t *testing.T) {
	c := NewController()
	c.Cycle()
	before := c.Counts()

	u := c.Refresh()
	if u.State != StateHeat || u.Feedback != FeedbackState {
		t.Errorf("unexpected refresh update: %+v", u)
	}
	if c.Counts() != before {
		t.Error("refresh must not change counts")
	}
}
