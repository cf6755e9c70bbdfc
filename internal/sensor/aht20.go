package sensor

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/GCZ79/Embedded-Systems/internal/logic"
)

// AHT20 datasheet commands.
var (
	cmdSoftReset = []byte{0xBA}
	cmdCalibrate = []byte{0xBE, 0x08, 0x00}
	cmdMeasure   = []byte{0xAC, 0x33, 0x00}
)

// Status register bits.
const (
	statusBusy       = 0x80
	statusCalibrated = 0x08
)

// AHT20 reads an Adafruit AHT20 sensor over I2C.
type AHT20 struct {
	bus i2c.BusCloser
	dev *i2c.Dev
	now func() time.Time
}

// NewAHT20 opens the I2C bus and initializes the sensor. busName may be
// empty to use the first available bus.
func NewAHT20(busName string, addr uint16) (*AHT20, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init periph host: %w", err)
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus: %w", err)
	}

	a := &AHT20{
		bus: bus,
		dev: &i2c.Dev{Addr: addr, Bus: bus},
		now: time.Now,
	}
	if err := a.init(); err != nil {
		bus.Close()
		return nil, err
	}
	return a, nil
}

func (a *AHT20) init() error {
	if err := a.dev.Tx(cmdSoftReset, nil); err != nil {
		return fmt.Errorf("soft reset: %w", err)
	}
	time.Sleep(20 * time.Millisecond)

	if err := a.dev.Tx(cmdCalibrate, nil); err != nil {
		return fmt.Errorf("calibrate: %w", err)
	}
	time.Sleep(10 * time.Millisecond)

	var status [1]byte
	if err := a.dev.Tx(nil, status[:]); err != nil {
		return fmt.Errorf("read status: %w", err)
	}
	if status[0]&statusCalibrated == 0 {
		return fmt.Errorf("sensor not calibrated (status 0x%02x)", status[0])
	}
	return nil
}

// Read triggers a measurement and converts the 20-bit raw values.
// A measurement takes up to 80ms; the busy flag is polled.
func (a *AHT20) Read() (logic.Reading, error) {
	if err := a.dev.Tx(cmdMeasure, nil); err != nil {
		return logic.Reading{}, fmt.Errorf("trigger measurement: %w", err)
	}

	var buf [6]byte
	for i := 0; i < 10; i++ {
		time.Sleep(10 * time.Millisecond)
		if err := a.dev.Tx(nil, buf[:]); err != nil {
			return logic.Reading{}, fmt.Errorf("read measurement: %w", err)
		}
		if buf[0]&statusBusy == 0 {
			return decode(buf, a.now()), nil
		}
	}
	return logic.Reading{}, fmt.Errorf("measurement timeout (status 0x%02x)", buf[0])
}

// decode unpacks the 20-bit humidity and temperature fields.
// Humidity occupies bytes 1-2 plus the high nibble of byte 3; temperature
// takes the low nibble of byte 3 plus bytes 4-5.
func decode(buf [6]byte, at time.Time) logic.Reading {
	rawHum := uint32(buf[1])<<12 | uint32(buf[2])<<4 | uint32(buf[3])>>4
	rawTemp := uint32(buf[3]&0x0F)<<16 | uint32(buf[4])<<8 | uint32(buf[5])

	return logic.Reading{
		TempC:    float64(rawTemp)/(1<<20)*200 - 50,
		Humidity: float64(rawHum) / (1 << 20) * 100,
		Time:     at,
	}
}

// Close releases the bus.
func (a *AHT20) Close() error {
	return a.bus.Close()
}
