package logic

import "time"

// PressKind classifies a button press by hold duration.
type PressKind int

const (
	// PressShort cycles the thermostat state.
	PressShort PressKind = iota
	// PressLong toggles the temperature scale.
	PressLong
)

func (k PressKind) String() string {
	if k == PressLong {
		return "long"
	}
	return "short"
}

// DefaultHoldThreshold is the hold duration that makes a press long.
const DefaultHoldThreshold = 2 * time.Second

// Classifier turns press/release edges into short and long presses. A long
// press fires as soon as the hold threshold elapses while the button is
// still down; the following release is swallowed so a single hold never
// also produces a short press. All methods take the caller's clock.
type Classifier struct {
	threshold time.Duration
	pressed   bool
	pressedAt time.Time
	longFired bool
}

// NewClassifier creates a classifier with the given hold threshold.
// A non-positive threshold falls back to DefaultHoldThreshold.
func NewClassifier(threshold time.Duration) *Classifier {
	if threshold <= 0 {
		threshold = DefaultHoldThreshold
	}
	return &Classifier{threshold: threshold}
}

// Press records the button going down.
func (c *Classifier) Press(t time.Time) {
	c.pressed = true
	c.pressedAt = t
	c.longFired = false
}

// Tick checks whether a held button has crossed the hold threshold.
// It returns PressLong exactly once per hold.
func (c *Classifier) Tick(t time.Time) (PressKind, bool) {
	if !c.pressed || c.longFired {
		return PressShort, false
	}
	if t.Sub(c.pressedAt) >= c.threshold {
		c.longFired = true
		return PressLong, true
	}
	return PressShort, false
}

// Release records the button going up. It returns PressShort unless the
// hold already fired a long press, or PressLong when the threshold was
// crossed between ticks.
func (c *Classifier) Release(t time.Time) (PressKind, bool) {
	if !c.pressed {
		return PressShort, false
	}
	c.pressed = false
	if c.longFired {
		c.longFired = false
		return PressShort, false
	}
	if t.Sub(c.pressedAt) >= c.threshold {
		return PressLong, true
	}
	return PressShort, true
}
