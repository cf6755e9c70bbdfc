// Package config loads the deployment-specific hardware configuration:
// GPIO pin assignment, I2C addresses, serial settings, and timing. The
// defaults match the reference wiring; a YAML file overrides them.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/GCZ79/Embedded-Systems/internal/button"
	"github.com/GCZ79/Embedded-Systems/internal/lcd"
	"github.com/GCZ79/Embedded-Systems/internal/led"
	"github.com/GCZ79/Embedded-Systems/internal/sensor"
	"github.com/GCZ79/Embedded-Systems/internal/serial"
	"github.com/GCZ79/Embedded-Systems/internal/sevenseg"
)

// Duration is a time.Duration that unmarshals from YAML strings like "30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is the full daemon configuration.
type Config struct {
	GPIO      GPIO      `yaml:"gpio"`
	I2C       I2C       `yaml:"i2c"`
	Serial    Serial    `yaml:"serial"`
	Intervals Intervals `yaml:"intervals"`
}

// GPIO holds the chip name and pin assignment (BCM numbering).
type GPIO struct {
	Chip         string `yaml:"chip"`
	ModeButton   int    `yaml:"mode_button"`
	UpButton     int    `yaml:"up_button"`
	DownButton   int    `yaml:"down_button"`
	HeatLED      int    `yaml:"heat_led"`
	CoolLED      int    `yaml:"cool_led"`
	SegmentData  int    `yaml:"segment_data"`
	SegmentLatch int    `yaml:"segment_latch"`
	SegmentClock int    `yaml:"segment_clock"`
}

// I2C holds the bus name and device addresses.
type I2C struct {
	Bus        string `yaml:"bus"`
	LCDAddr    uint16 `yaml:"lcd_addr"`
	SensorAddr uint16 `yaml:"sensor_addr"`
}

// Serial holds the UART settings for the reporter.
type Serial struct {
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`
}

// Intervals holds the daemon's timing knobs.
type Intervals struct {
	SensorPoll     Duration `yaml:"sensor_poll"`
	DisplayRefresh Duration `yaml:"display_refresh"`
	Report         Duration `yaml:"report"`
	LongPress      Duration `yaml:"long_press"`
	SegmentTimeout Duration `yaml:"segment_timeout"`
}

// Default returns the pin assignment and timing of the reference wiring.
func Default() Config {
	return Config{
		GPIO: GPIO{
			Chip:         "gpiochip0",
			ModeButton:   button.DefaultPinMode,
			UpButton:     button.DefaultPinUp,
			DownButton:   button.DefaultPinDown,
			HeatLED:      led.DefaultPinHeat,
			CoolLED:      led.DefaultPinCool,
			SegmentData:  sevenseg.DefaultPinData,
			SegmentLatch: sevenseg.DefaultPinLatch,
			SegmentClock: sevenseg.DefaultPinClock,
		},
		I2C: I2C{
			Bus:        "",
			LCDAddr:    lcd.DefaultAddr,
			SensorAddr: sensor.DefaultAddr,
		},
		Serial: Serial{
			Port: serial.DefaultPort,
			Baud: serial.DefaultBaud,
		},
		Intervals: Intervals{
			SensorPoll:     Duration(time.Second),
			DisplayRefresh: Duration(time.Second),
			Report:         Duration(30 * time.Second),
			LongPress:      Duration(2 * time.Second),
			SegmentTimeout: Duration(3 * time.Second),
		},
	}
}

// Load reads the config file at path over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
