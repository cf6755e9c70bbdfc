package serial

import (
	"fmt"
	"time"

	bugst "go.bug.st/serial"
)

// RealReporter writes to a UART serial port, 8N1.
type RealReporter struct {
	port bugst.Port
}

// NewRealReporter opens the port at the given baud rate.
func NewRealReporter(portName string, baud int) (*RealReporter, error) {
	mode := &bugst.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   bugst.NoParity,
		StopBits: bugst.OneStopBit,
	}
	port, err := bugst.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", portName, err)
	}
	_ = port.SetReadTimeout(time.Second)

	return &RealReporter{port: port}, nil
}

// Report sends one line.
func (r *RealReporter) Report(line string) error {
	if _, err := r.port.Write([]byte(line)); err != nil {
		return fmt.Errorf("serial write: %w", err)
	}
	return nil
}

// Close releases the port.
func (r *RealReporter) Close() error {
	return r.port.Close()
}
