package logic

import (
	"math"

	"github.com/anggasct/fluo"
)

// eventCycle is the only transition trigger the state machine knows.
const eventCycle = "cycle"

// Controller holds the thermostat state: operating state, setpoint, and
// scale. It is the sole owner and mutator of these fields and is not safe
// for concurrent use; the control loop is its single caller.
//
// The setpoint is kept in Fahrenheit whatever the display scale, converted
// only at the edges. That makes the serial report invariant under a scale
// toggle and a double toggle an exact involution for every degree.
type Controller struct {
	machine   fluo.Machine
	setpointF int
	scale     Scale

	reading  Reading
	haveRead bool
	stale    bool

	counts EventCounts
}

// NewController creates a controller in the off state with the default
// setpoint and scale.
func NewController() *Controller {
	def := fluo.NewMachine().
		State(string(StateOff)).Initial().
		To(string(StateHeat)).On(eventCycle).
		State(string(StateHeat)).
		To(string(StateCool)).On(eventCycle).
		State(string(StateCool)).
		To(string(StateOff)).On(eventCycle).
		Build()

	m := def.CreateInstance()
	_ = m.Start()

	return &Controller{
		machine:   m,
		setpointF: DefaultSetpoint,
		scale:     Fahrenheit,
	}
}

// State returns the current operating state.
func (c *Controller) State() State {
	return State(c.machine.CurrentState())
}

// Scale returns the active temperature scale.
func (c *Controller) Scale() Scale { return c.scale }

// Setpoint returns the setpoint in the active scale.
func (c *Controller) Setpoint() int {
	if c.scale == Celsius {
		return SetpointFToC(c.setpointF)
	}
	return c.setpointF
}

// SetpointFahrenheit returns the canonical setpoint. Serial reports always
// use Fahrenheit.
func (c *Controller) SetpointFahrenheit() int { return c.setpointF }

// Reading returns the last sensor sample and whether it is stale.
// ok is false until the first successful read.
func (c *Controller) Reading() (r Reading, stale bool, ok bool) {
	return c.reading, c.stale, c.haveRead
}

// Counts returns the event counts since startup.
func (c *Controller) Counts() EventCounts { return c.counts }

// Cycle advances the state off → heat → cool → off.
func (c *Controller) Cycle() Update {
	c.machine.HandleEvent(eventCycle, nil)
	c.counts.Cycles++
	return c.update(FeedbackState)
}

// ToggleScale switches between Fahrenheit and Celsius. The displayed
// setpoint is recomputed from the canonical value, so the physical
// threshold never moves. Scale and setpoint change together in the same
// Update.
func (c *Controller) ToggleScale() Update {
	if c.scale == Fahrenheit {
		c.scale = Celsius
	} else {
		c.scale = Fahrenheit
	}
	c.counts.ScaleToggles++
	return c.update(FeedbackScale)
}

// AdjustSetpoint moves the setpoint by delta degrees in the active scale.
func (c *Controller) AdjustSetpoint(delta int) Update {
	if c.scale == Celsius {
		c.setpointF = SetpointCToF(c.Setpoint() + delta)
	} else {
		c.setpointF += delta
	}
	fb := FeedbackUp
	if delta < 0 {
		fb = FeedbackDown
		c.counts.SetpointDown++
	} else {
		c.counts.SetpointUp++
	}
	return c.update(fb)
}

// ObserveReading records a sensor sample. On error the last reading is
// retained and marked stale; the next poll retries.
func (c *Controller) ObserveReading(r Reading, err error) Update {
	if err != nil {
		c.stale = true
		c.counts.SensorErrors++
	} else {
		c.reading = r
		c.haveRead = true
		c.stale = false
	}
	return c.update(FeedbackNone)
}

// CountReport records a successfully sent serial report.
func (c *Controller) CountReport() { c.counts.Reports++ }

// Refresh re-renders the current state without changing it. Used at
// startup to light the initial state glyph.
func (c *Controller) Refresh() Update {
	return c.update(FeedbackState)
}

func (c *Controller) update(fb Feedback) Update {
	return Update{
		State:    c.State(),
		Scale:    c.scale,
		Setpoint: c.Setpoint(),
		LEDs:     c.leds(),
		Feedback: fb,
	}
}

// leds decides pulsing vs solid: pulsing while actively driving toward the
// setpoint, solid once it is reached. The comparison uses the floored
// temperature in the active scale with no hysteresis. Before the first
// successful read the temperature is unknown and the LED pulses.
func (c *Controller) leds() Indicator {
	var ind Indicator
	sp := c.Setpoint()
	switch c.State() {
	case StateHeat:
		if !c.haveRead || c.flooredTemp() < sp {
			ind.Heat = LEDPulse
		} else {
			ind.Heat = LEDSolid
		}
	case StateCool:
		if !c.haveRead || c.flooredTemp() > sp {
			ind.Cool = LEDPulse
		} else {
			ind.Cool = LEDSolid
		}
	}
	return ind
}

func (c *Controller) flooredTemp() int {
	return int(math.Floor(c.reading.TempIn(c.scale)))
}
