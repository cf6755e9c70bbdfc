package sevenseg

import "time"

// FakeDisplay records render calls for test assertions.
type FakeDisplay struct {
	// Shown contains every glyph passed to Show, in order.
	Shown []Glyph

	// Blinks records Blink calls.
	Blinks []BlinkCall

	// Spins counts Spin calls.
	Spins int

	// Cleared counts Clear calls.
	Cleared int

	// Closed tracks if Close was called.
	Closed bool

	// ShowError, if set, will be returned by Show.
	ShowError error
}

// BlinkCall records the arguments of one Blink call.
type BlinkCall struct {
	Glyph    Glyph
	Times    int
	Interval time.Duration
}

// NewFakeDisplay creates a FakeDisplay for testing.
func NewFakeDisplay() *FakeDisplay {
	return &FakeDisplay{}
}

// Show records the glyph.
func (f *FakeDisplay) Show(g Glyph) error {
	if f.ShowError != nil {
		return f.ShowError
	}
	f.Shown = append(f.Shown, g)
	return nil
}

// Clear counts the call.
func (f *FakeDisplay) Clear() error {
	f.Cleared++
	return nil
}

// Blink records the call without sleeping.
func (f *FakeDisplay) Blink(g Glyph, times int, interval time.Duration) error {
	f.Blinks = append(f.Blinks, BlinkCall{Glyph: g, Times: times, Interval: interval})
	return nil
}

// Spin counts the call without sleeping.
func (f *FakeDisplay) Spin(rotations int, step time.Duration) error {
	f.Spins++
	return nil
}

// Close marks the display as closed.
func (f *FakeDisplay) Close() error {
	f.Closed = true
	return nil
}

// LastShown returns the most recent glyph, or GlyphBlank if none.
func (f *FakeDisplay) LastShown() Glyph {
	if len(f.Shown) == 0 {
		return GlyphBlank
	}
	return f.Shown[len(f.Shown)-1]
}
