//go:build !linux

package sevenseg

import (
	"errors"
	"time"
)

// ShiftRegister is not available on non-Linux platforms.
type ShiftRegister struct{}

// NewShiftRegister returns an error on non-Linux platforms.
func NewShiftRegister(chipName string, pinData, pinLatch, pinClock int) (*ShiftRegister, error) {
	return nil, errors.New("sevenseg: not supported on this platform (requires Linux)")
}

// Show is not implemented on non-Linux platforms.
func (s *ShiftRegister) Show(g Glyph) error { return nil }

// Clear is not implemented on non-Linux platforms.
func (s *ShiftRegister) Clear() error { return nil }

// Blink is not implemented on non-Linux platforms.
func (s *ShiftRegister) Blink(g Glyph, times int, interval time.Duration) error { return nil }

// Spin is not implemented on non-Linux platforms.
func (s *ShiftRegister) Spin(rotations int, step time.Duration) error { return nil }

// Close is not implemented on non-Linux platforms.
func (s *ShiftRegister) Close() error { return nil }
