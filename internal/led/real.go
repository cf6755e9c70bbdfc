//go:build linux

package led

import (
	"fmt"
	"sync"
	"time"

	"github.com/warthog618/go-gpiocdev"

	"github.com/GCZ79/Embedded-Systems/internal/logic"
)

// PWMLED drives a GPIO line, pulsing with a software PWM triangle wave.
type PWMLED struct {
	chip *gpiocdev.Chip
	line *gpiocdev.Line

	mu   sync.Mutex
	mode logic.LEDMode
	stop chan struct{} // closes to stop the pulse goroutine
	done chan struct{} // closed by the pulse goroutine on exit
}

// NewPWMLED requests the pin as an output, initially off.
func NewPWMLED(chipName string, pin int) (*PWMLED, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}
	line, err := chip.RequestLine(pin, gpiocdev.AsOutput(0))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request led pin %d: %w", pin, err)
	}
	return &PWMLED{chip: chip, line: line}, nil
}

// SetMode switches the LED to off, solid, or pulse.
func (l *PWMLED) SetMode(m logic.LEDMode) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if m == l.mode {
		return nil
	}
	if l.stop != nil {
		close(l.stop)
		<-l.done // the pulser owns the line until it exits
		l.stop = nil
		l.done = nil
	}
	l.mode = m

	switch m {
	case logic.LEDSolid:
		return l.line.SetValue(1)
	case logic.LEDPulse:
		l.stop = make(chan struct{})
		l.done = make(chan struct{})
		go l.pulse(l.stop, l.done)
		return nil
	default:
		return l.line.SetValue(0)
	}
}

// pulse fades the LED with software PWM at 100Hz, one fade direction per
// second. The goroutine owns the line until stop closes.
func (l *PWMLED) pulse(stop, done chan struct{}) {
	const (
		period = 10 * time.Millisecond
		steps  = 100
	)
	defer func() {
		l.line.SetValue(0)
		close(done)
	}()

	duty := 0
	dir := 1
	for {
		on := time.Duration(duty) * period / steps
		if on > 0 {
			l.line.SetValue(1)
			if !sleepOrStop(on, stop) {
				return
			}
		}
		l.line.SetValue(0)
		if !sleepOrStop(period-on, stop) {
			return
		}
		duty += dir
		if duty >= steps || duty <= 0 {
			dir = -dir
		}
	}
}

func sleepOrStop(d time.Duration, stop chan struct{}) bool {
	if d <= 0 {
		select {
		case <-stop:
			return false
		default:
			return true
		}
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-stop:
		return false
	case <-t.C:
		return true
	}
}

// Close turns the LED off and releases GPIO resources.
func (l *PWMLED) Close() error {
	var errs []error
	if err := l.SetMode(logic.LEDOff); err != nil {
		errs = append(errs, err)
	}
	if err := l.line.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close line: %w", err))
	}
	if err := l.chip.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close chip: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
