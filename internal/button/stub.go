//go:build !linux

package button

import (
	"errors"
	"time"
)

// RealHandler is not available on non-Linux platforms.
type RealHandler struct{}

// NewRealHandler returns an error on non-Linux platforms.
func NewRealHandler(chipName string, pinMode, pinUp, pinDown int, hold time.Duration) (*RealHandler, error) {
	return nil, errors.New("button: not supported on this platform (requires Linux)")
}

// Events is not implemented on non-Linux platforms.
func (h *RealHandler) Events() <-chan Event {
	return nil
}

// Close is not implemented on non-Linux platforms.
func (h *RealHandler) Close() error {
	return nil
}
