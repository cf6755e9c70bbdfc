// Package status provides a thread-safe status tracker for the thermostat
// daemon. The control loop is the single writer; the display goroutine and
// shutdown path read point-in-time snapshots.
package status

import (
	"sync"
	"time"

	"github.com/GCZ79/Embedded-Systems/internal/logic"
)

// Config contains daemon configuration for display and reporting.
type Config struct {
	SensorPollMs int64
	ReportMs     int64
	SerialPort   string
}

// Snapshot is a point-in-time view of the thermostat.
// It is a value type — safe to use after the lock is released.
type Snapshot struct {
	State     logic.State
	Scale     logic.Scale
	Setpoint  int
	Reading   logic.Reading
	HaveRead  bool
	Stale     bool
	Counts    logic.EventCounts
	StartTime time.Time
	Now       time.Time
	Config    Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			State:     logic.StateOff,
			Scale:     logic.Fahrenheit,
			Setpoint:  logic.DefaultSetpoint,
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// Update publishes the controller state after an input event or sensor poll.
func (t *Tracker) Update(u logic.Update, counts logic.EventCounts) {
	t.mu.Lock()
	t.snap.State = u.State
	t.snap.Scale = u.Scale
	t.snap.Setpoint = u.Setpoint
	t.snap.Counts = counts
	t.mu.Unlock()
}

// SetReading records the latest sensor sample and its staleness.
func (t *Tracker) SetReading(r logic.Reading, haveRead, stale bool) {
	t.mu.Lock()
	t.snap.Reading = r
	t.snap.HaveRead = haveRead
	t.snap.Stale = stale
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
