package sevenseg

import "time"

// Noop is a Display that does nothing. It backs degraded operation when
// the seven-segment display failed to initialize.
type Noop struct{}

func (Noop) Show(g Glyph) error                                     { return nil }
func (Noop) Clear() error                                           { return nil }
func (Noop) Blink(g Glyph, times int, interval time.Duration) error { return nil }
func (Noop) Spin(rotations int, step time.Duration) error           { return nil }
func (Noop) Close() error                                           { return nil }
