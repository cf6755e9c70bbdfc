// Package sensor reads the AHT20 temperature/humidity sensor over I2C.
// The fake implementation allows testing without hardware.
package sensor

import "github.com/GCZ79/Embedded-Systems/internal/logic"

// Reader returns the latest sensor sample.
type Reader interface {
	// Read triggers a measurement and returns the sample.
	// A failed read is recoverable: the caller retains its last reading,
	// marks it stale, and retries on the next poll.
	Read() (logic.Reading, error)

	// Close releases the bus.
	Close() error
}

// DefaultAddr is the AHT20's fixed I2C address.
const DefaultAddr = 0x38
