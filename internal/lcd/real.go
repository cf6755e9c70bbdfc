package lcd

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// PCF8574 backpack bit assignment.
const (
	pinRS        = 0x01
	pinRW        = 0x02
	pinEnable    = 0x04
	pinBacklight = 0x08
)

// HD44780 commands.
const (
	cmdClear       = 0x01
	cmdEntryMode   = 0x06 // increment cursor, no shift
	cmdDisplayOn   = 0x0C // display on, cursor off, blink off
	cmdFunctionSet = 0x28 // 4-bit, 2 lines, 5x8 font
	cmdSetDDRAM    = 0x80
)

// DDRAM address of each row's first column.
var rowAddr = [2]byte{0x00, 0x40}

// PCF8574 drives the HD44780 in 4-bit mode through the I2C backpack.
type PCF8574 struct {
	bus       i2c.BusCloser
	dev       *i2c.Dev
	backlight byte
}

// NewPCF8574 opens the I2C bus and initializes the display. busName may be
// empty to use the first available bus.
func NewPCF8574(busName string, addr uint16) (*PCF8574, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init periph host: %w", err)
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus: %w", err)
	}

	d := &PCF8574{
		bus:       bus,
		dev:       &i2c.Dev{Addr: addr, Bus: bus},
		backlight: pinBacklight,
	}
	if err := d.init(); err != nil {
		bus.Close()
		return nil, fmt.Errorf("init lcd at 0x%02x: %w", addr, err)
	}
	return d, nil
}

// init runs the HD44780 4-bit initialization sequence.
func (d *PCF8574) init() error {
	time.Sleep(50 * time.Millisecond)

	// Force 8-bit mode three times, then switch to 4-bit.
	for _, nib := range []byte{0x03, 0x03, 0x03, 0x02} {
		if err := d.writeNibble(nib, 0); err != nil {
			return err
		}
		time.Sleep(5 * time.Millisecond)
	}

	for _, cmd := range []byte{cmdFunctionSet, cmdDisplayOn, cmdClear, cmdEntryMode} {
		if err := d.command(cmd); err != nil {
			return err
		}
	}
	time.Sleep(2 * time.Millisecond) // clear needs extra settle time
	return nil
}

func (d *PCF8574) tx(b byte) error {
	return d.dev.Tx([]byte{b}, nil)
}

// writeNibble puts the nibble on P4-P7 and pulses Enable.
func (d *PCF8574) writeNibble(nib, rs byte) error {
	b := nib<<4 | rs | d.backlight
	if err := d.tx(b | pinEnable); err != nil {
		return err
	}
	if err := d.tx(b); err != nil {
		return err
	}
	time.Sleep(50 * time.Microsecond)
	return nil
}

func (d *PCF8574) writeByte(b, rs byte) error {
	if err := d.writeNibble(b>>4, rs); err != nil {
		return err
	}
	return d.writeNibble(b&0x0F, rs)
}

func (d *PCF8574) command(b byte) error { return d.writeByte(b, 0) }
func (d *PCF8574) data(b byte) error    { return d.writeByte(b, pinRS) }

// WriteLines replaces both lines, truncating to the display width.
func (d *PCF8574) WriteLines(line1, line2 string) error {
	if err := d.Clear(); err != nil {
		return err
	}
	for row, line := range []string{line1, line2} {
		if err := d.command(cmdSetDDRAM | rowAddr[row]); err != nil {
			return fmt.Errorf("set cursor row %d: %w", row, err)
		}
		for _, ch := range []byte(FitLine(line)) {
			if err := d.data(ch); err != nil {
				return fmt.Errorf("write row %d: %w", row, err)
			}
		}
	}
	return nil
}

// Clear blanks the display.
func (d *PCF8574) Clear() error {
	if err := d.command(cmdClear); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	time.Sleep(2 * time.Millisecond)
	return nil
}

// Close clears the display, switches the backlight off, and releases the bus.
func (d *PCF8574) Close() error {
	var errs []error
	if err := d.Clear(); err != nil {
		errs = append(errs, err)
	}
	d.backlight = 0
	if err := d.tx(0); err != nil {
		errs = append(errs, fmt.Errorf("backlight off: %w", err))
	}
	if err := d.bus.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close bus: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
