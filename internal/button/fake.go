package button

import (
	"time"

	"github.com/GCZ79/Embedded-Systems/internal/logic"
)

// FakeHandler is a test double whose channel tests push scripted events into.
type FakeHandler struct {
	// Ch is the event channel; Push sends into it.
	Ch chan Event

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeHandler creates a FakeHandler with a buffered event channel.
func NewFakeHandler() *FakeHandler {
	return &FakeHandler{Ch: make(chan Event, 16)}
}

// Events returns the scripted event channel.
func (f *FakeHandler) Events() <-chan Event {
	return f.Ch
}

// Push delivers a scripted press event.
func (f *FakeHandler) Push(b ID, k logic.PressKind, t time.Time) {
	f.Ch <- Event{Button: b, Kind: k, Time: t}
}

// Close marks the handler as closed.
func (f *FakeHandler) Close() error {
	f.Closed = true
	return nil
}
