//go:build linux

package button

import (
	"fmt"
	"time"

	"github.com/warthog618/go-gpiocdev"

	"github.com/GCZ79/Embedded-Systems/internal/logic"
)

// edgeDebounce filters contact bounce in the kernel before edges reach us.
const edgeDebounce = 10 * time.Millisecond

// RealHandler reads button edges from the GPIO character device. Buttons
// are wired active-low with pull-ups: a falling edge is a press. Only the
// mode button is hold-classified; up/down fire on the press edge.
type RealHandler struct {
	chip  *gpiocdev.Chip
	lines []*gpiocdev.Line

	raw    chan rawEdge
	events chan Event
	done   chan struct{}
}

type rawEdge struct {
	id      ID
	falling bool
	at      time.Time
}

// NewRealHandler requests the three button lines and starts the
// classification goroutine.
func NewRealHandler(chipName string, pinMode, pinUp, pinDown int, hold time.Duration) (*RealHandler, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	h := &RealHandler{
		chip:   chip,
		raw:    make(chan rawEdge, 16),
		events: make(chan Event, 16),
		done:   make(chan struct{}),
	}

	request := func(id ID, pin int) (*gpiocdev.Line, error) {
		return chip.RequestLine(pin,
			gpiocdev.AsInput,
			gpiocdev.WithPullUp,
			gpiocdev.WithBothEdges,
			gpiocdev.WithDebounce(edgeDebounce),
			gpiocdev.WithEventHandler(func(evt gpiocdev.LineEvent) {
				edge := rawEdge{
					id:      id,
					falling: evt.Type == gpiocdev.LineEventFallingEdge,
					at:      time.Now(),
				}
				select {
				case h.raw <- edge:
				default:
					// Drop the edge rather than block the event goroutine.
				}
			}))
	}

	pins := []struct {
		id  ID
		pin int
	}{
		{Mode, pinMode},
		{Up, pinUp},
		{Down, pinDown},
	}
	for _, p := range pins {
		line, err := request(p.id, p.pin)
		if err != nil {
			h.closeLines()
			chip.Close()
			return nil, fmt.Errorf("request %s button pin %d: %w", p.id, p.pin, err)
		}
		h.lines = append(h.lines, line)
	}

	go h.classify(hold)
	return h, nil
}

// Events returns the channel the control loop consumes.
func (h *RealHandler) Events() <-chan Event {
	return h.events
}

// classify routes raw edges through the hold classifier so press ordering
// is preserved on a single goroutine.
func (h *RealHandler) classify(hold time.Duration) {
	cls := logic.NewClassifier(hold)

	checkInterval := hold / 8
	if checkInterval <= 0 {
		checkInterval = 250 * time.Millisecond
	}
	tick := time.NewTicker(checkInterval)
	defer tick.Stop()

	for {
		select {
		case <-h.done:
			return

		case e := <-h.raw:
			switch e.id {
			case Mode:
				if e.falling {
					cls.Press(e.at)
				} else if kind, ok := cls.Release(e.at); ok {
					h.emit(Event{Button: Mode, Kind: kind, Time: e.at})
				}
			case Up, Down:
				if e.falling {
					h.emit(Event{Button: e.id, Kind: logic.PressShort, Time: e.at})
				}
			}

		case t := <-tick.C:
			if kind, ok := cls.Tick(t); ok {
				h.emit(Event{Button: Mode, Kind: kind, Time: t})
			}
		}
	}
}

func (h *RealHandler) emit(e Event) {
	select {
	case h.events <- e:
	default:
	}
}

func (h *RealHandler) closeLines() {
	for _, l := range h.lines {
		l.Close()
	}
	h.lines = nil
}

// Close releases GPIO resources and stops event delivery.
func (h *RealHandler) Close() error {
	close(h.done)

	var errs []error
	for _, l := range h.lines {
		if err := l.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close button line: %w", err))
		}
	}
	h.lines = nil
	if err := h.chip.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close chip: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
