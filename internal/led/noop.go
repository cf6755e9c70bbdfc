package led

import "github.com/GCZ79/Embedded-Systems/internal/logic"

// Noop is an LED that does nothing. It backs degraded operation when an
// indicator LED failed to initialize.
type Noop struct{}

func (Noop) SetMode(m logic.LEDMode) error { return nil }
func (Noop) Close() error                  { return nil }
