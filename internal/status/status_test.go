package status

import (
	"sync"
	"testing"
	"time"

	"github.com/GCZ79/Embedded-Systems/internal/logic"
)

func TestNewTracker(t *testing.T) {
	start := time.Date(2026, 2, 19, 8, 0, 0, 0, time.UTC)
	cfg := Config{SensorPollMs: 1000, ReportMs: 30000, SerialPort: "/dev/ttyS0"}
	tr := NewTracker(start, cfg)

	snap := tr.Snapshot()
	if snap.State != logic.StateOff {
		t.Errorf("expected off, got %s", snap.State)
	}
	if snap.Scale != logic.Fahrenheit {
		t.Errorf("expected F, got %s", snap.Scale)
	}
	if snap.Setpoint != logic.DefaultSetpoint {
		t.Errorf("expected %d, got %d", logic.DefaultSetpoint, snap.Setpoint)
	}
	if !snap.StartTime.Equal(start) {
		t.Errorf("expected start time %v, got %v", start, snap.StartTime)
	}
	if snap.Config != cfg {
		t.Errorf("expected config %+v, got %+v", cfg, snap.Config)
	}
}

func TestUpdateAndSnapshot(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})

	tr.Update(logic.Update{
		State:    logic.StateHeat,
		Scale:    logic.Celsius,
		Setpoint: 22,
	}, logic.EventCounts{Cycles: 1, ScaleToggles: 1})

	snap := tr.Snapshot()
	if snap.State != logic.StateHeat {
		t.Errorf("expected heat, got %s", snap.State)
	}
	if snap.Scale != logic.Celsius {
		t.Errorf("expected C, got %s", snap.Scale)
	}
	if snap.Setpoint != 22 {
		t.Errorf("expected 22, got %d", snap.Setpoint)
	}
	if snap.Counts.Cycles != 1 || snap.Counts.ScaleToggles != 1 {
		t.Errorf("unexpected counts: %+v", snap.Counts)
	}
}

func TestSetReading(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})
	at := time.Date(2026, 2, 19, 8, 0, 0, 0, time.UTC)

	tr.SetReading(logic.Reading{TempC: 21.5, Humidity: 40, Time: at}, true, false)

	snap := tr.Snapshot()
	if !snap.HaveRead {
		t.Error("expected HaveRead")
	}
	if snap.Stale {
		t.Error("expected not stale")
	}
	if snap.Reading.TempC != 21.5 {
		t.Errorf("expected 21.5, got %v", snap.Reading.TempC)
	}

	tr.SetReading(snap.Reading, true, true)
	if snap := tr.Snapshot(); !snap.Stale {
		t.Error("expected stale after failed poll")
	}
}

func TestSnapshotUptime(t *testing.T) {
	start := time.Now().Add(-90 * time.Second)
	tr := NewTracker(start, Config{})

	snap := tr.Snapshot()
	if up := snap.Uptime(); up < 89*time.Second || up > 92*time.Second {
		t.Errorf("expected ~90s uptime, got %v", up)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})
	snap := tr.Snapshot()

	tr.Update(logic.Update{State: logic.StateCool, Scale: logic.Fahrenheit, Setpoint: 70}, logic.EventCounts{})

	if snap.State == logic.StateCool {
		t.Error("snapshot mutated by a later update")
	}
}

func TestConcurrentAccess(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tr.Update(logic.Update{State: logic.StateHeat, Scale: logic.Fahrenheit, Setpoint: 72}, logic.EventCounts{Cycles: j})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = tr.Snapshot()
			}
		}()
	}
	wg.Wait()
}
