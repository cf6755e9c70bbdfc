//go:build linux

package sevenseg

import (
	"fmt"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

// ShiftRegister drives the display through a 74HC595 on three GPIO lines.
// Methods must be called from a single goroutine; the control loop is the
// only caller.
type ShiftRegister struct {
	chip  *gpiocdev.Chip
	data  *gpiocdev.Line
	latch *gpiocdev.Line
	clock *gpiocdev.Line
}

// NewShiftRegister requests the data/latch/clock lines as outputs and
// blanks the display.
func NewShiftRegister(chipName string, pinData, pinLatch, pinClock int) (*ShiftRegister, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	data, err := chip.RequestLine(pinData, gpiocdev.AsOutput(0))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request data pin %d: %w", pinData, err)
	}
	latch, err := chip.RequestLine(pinLatch, gpiocdev.AsOutput(0))
	if err != nil {
		data.Close()
		chip.Close()
		return nil, fmt.Errorf("request latch pin %d: %w", pinLatch, err)
	}
	clock, err := chip.RequestLine(pinClock, gpiocdev.AsOutput(0))
	if err != nil {
		latch.Close()
		data.Close()
		chip.Close()
		return nil, fmt.Errorf("request clock pin %d: %w", pinClock, err)
	}

	s := &ShiftRegister{chip: chip, data: data, latch: latch, clock: clock}
	if err := s.Clear(); err != nil {
		s.Close()
		return nil, fmt.Errorf("blank display: %w", err)
	}
	return s, nil
}

// shiftOut clocks one byte into the register, MSB first.
func (s *ShiftRegister) shiftOut(val byte) error {
	for i := 0; i < 8; i++ {
		if err := s.clock.SetValue(0); err != nil {
			return err
		}
		bit := 0
		if val&(0x80>>i) != 0 {
			bit = 1
		}
		if err := s.data.SetValue(bit); err != nil {
			return err
		}
		if err := s.clock.SetValue(1); err != nil {
			return err
		}
	}
	return nil
}

func (s *ShiftRegister) write(g Glyph) error {
	if err := s.latch.SetValue(0); err != nil {
		return fmt.Errorf("latch low: %w", err)
	}
	if err := s.shiftOut(byte(g)); err != nil {
		return fmt.Errorf("shift out: %w", err)
	}
	if err := s.latch.SetValue(1); err != nil {
		return fmt.Errorf("latch high: %w", err)
	}
	return nil
}

// Show latches a glyph onto the display.
func (s *ShiftRegister) Show(g Glyph) error {
	return s.write(g)
}

// Clear blanks the display.
func (s *ShiftRegister) Clear() error {
	return s.write(GlyphBlank)
}

// Blink alternates g and blank, blocking for the full animation.
func (s *ShiftRegister) Blink(g Glyph, times int, interval time.Duration) error {
	for i := 0; i < times; i++ {
		if err := s.write(g); err != nil {
			return err
		}
		time.Sleep(interval)
		if err := s.Clear(); err != nil {
			return err
		}
		time.Sleep(interval)
	}
	return nil
}

// Spin runs the segment chase animation, then blanks the display.
func (s *ShiftRegister) Spin(rotations int, step time.Duration) error {
	for i := 0; i < rotations; i++ {
		for _, frame := range spinFrames {
			if err := s.write(frame); err != nil {
				return err
			}
			time.Sleep(step)
		}
	}
	return s.Clear()
}

// Close blanks the display and releases GPIO resources.
func (s *ShiftRegister) Close() error {
	var errs []error
	if err := s.Clear(); err != nil {
		errs = append(errs, err)
	}
	for _, l := range []*gpiocdev.Line{s.data, s.latch, s.clock} {
		if err := l.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close line: %w", err))
		}
	}
	if err := s.chip.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close chip: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
