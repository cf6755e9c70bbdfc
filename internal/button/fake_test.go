package button

import (
	"testing"
	"time"

	"github.com/GCZ79/Embedded-Systems/internal/logic"
)

func TestFakeHandlerPreservesOrder(t *testing.T) {
	f := NewFakeHandler()
	now := time.Date(2026, 2, 19, 8, 0, 0, 0, time.UTC)

	f.Push(Mode, logic.PressShort, now)
	f.Push(Up, logic.PressShort, now.Add(time.Second))
	f.Push(Mode, logic.PressLong, now.Add(2*time.Second))

	want := []Event{
		{Button: Mode, Kind: logic.PressShort, Time: now},
		{Button: Up, Kind: logic.PressShort, Time: now.Add(time.Second)},
		{Button: Mode, Kind: logic.PressLong, Time: now.Add(2 * time.Second)},
	}
	for i, expected := range want {
		got := <-f.Events()
		if got != expected {
			t.Errorf("event %d: got %+v, want %+v", i, got, expected)
		}
	}
}

func TestFakeHandlerClose(t *testing.T) {
	f := NewFakeHandler()
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !f.Closed {
		t.Error("expected Closed to be set")
	}
}
