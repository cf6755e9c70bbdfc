// Package serial reports thermostat readings over a point-to-point UART
// link. The stream is one-way and consumer-agnostic; failed writes are the
// caller's to log and drop.
package serial

import (
	"fmt"

	"github.com/GCZ79/Embedded-Systems/internal/logic"
)

// Reporter transmits report lines.
type Reporter interface {
	// Report sends one line. Best-effort: an error means this report
	// was lost, not that the link is down for good.
	Report(line string) error

	// Close releases the port.
	Close() error
}

// FormatReport builds the line sent to the temperature server. The server
// expects Fahrenheit regardless of the display scale.
func FormatReport(state logic.State, tempF float64, setpointF int) string {
	return fmt.Sprintf("%s,%.1f,%d", state, tempF, setpointF)
}

// UART defaults for the Pi's primary serial port.
const (
	DefaultPort = "/dev/ttyS0"
	DefaultBaud = 115200
)
