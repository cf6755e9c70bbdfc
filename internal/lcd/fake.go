package lcd

// FakeDisplay records written lines for test assertions.
type FakeDisplay struct {
	// Lines contains every WriteLines call, in order.
	Lines [][2]string

	// Cleared counts Clear calls.
	Cleared int

	// Closed tracks if Close was called.
	Closed bool

	// WriteError, if set, will be returned by WriteLines.
	WriteError error
}

// NewFakeDisplay creates a FakeDisplay for testing.
func NewFakeDisplay() *FakeDisplay {
	return &FakeDisplay{}
}

// WriteLines records both lines, truncated like the real display.
func (f *FakeDisplay) WriteLines(line1, line2 string) error {
	if f.WriteError != nil {
		return f.WriteError
	}
	f.Lines = append(f.Lines, [2]string{FitLine(line1), FitLine(line2)})
	return nil
}

// Last returns the most recent lines, or empty strings if none.
func (f *FakeDisplay) Last() (string, string) {
	if len(f.Lines) == 0 {
		return "", ""
	}
	last := f.Lines[len(f.Lines)-1]
	return last[0], last[1]
}

// Clear counts the call.
func (f *FakeDisplay) Clear() error {
	f.Cleared++
	return nil
}

// Close marks the display as closed.
func (f *FakeDisplay) Close() error {
	f.Closed = true
	return nil
}
