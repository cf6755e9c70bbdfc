package serial

// FakeReporter records report lines for test assertions.
type FakeReporter struct {
	// Lines contains every reported line, in order.
	Lines []string

	// ReportError, if set, will be returned by Report.
	ReportError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeReporter creates a FakeReporter for testing.
func NewFakeReporter() *FakeReporter {
	return &FakeReporter{}
}

// Report records the line.
func (f *FakeReporter) Report(line string) error {
	if f.ReportError != nil {
		return f.ReportError
	}
	f.Lines = append(f.Lines, line)
	return nil
}

// Close marks the reporter as closed.
func (f *FakeReporter) Close() error {
	f.Closed = true
	return nil
}
