//go:build !linux

package led

import (
	"errors"

	"github.com/GCZ79/Embedded-Systems/internal/logic"
)

// PWMLED is not available on non-Linux platforms.
type PWMLED struct{}

// NewPWMLED returns an error on non-Linux platforms.
func NewPWMLED(chipName string, pin int) (*PWMLED, error) {
	return nil, errors.New("led: not supported on this platform (requires Linux)")
}

// SetMode is not implemented on non-Linux platforms.
func (l *PWMLED) SetMode(m logic.LEDMode) error { return nil }

// Close is not implemented on non-Linux platforms.
func (l *PWMLED) Close() error { return nil }
