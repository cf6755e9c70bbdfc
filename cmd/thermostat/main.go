// Command thermostat runs the Raspberry Pi thermostat daemon: it cycles the
// operating state and temperature scale from button presses, polls the AHT20
// sensor, renders to the LCD, seven-segment display, and indicator LEDs, and
// reports readings over the serial link.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GCZ79/Embedded-Systems/internal/button"
	"github.com/GCZ79/Embedded-Systems/internal/config"
	"github.com/GCZ79/Embedded-Systems/internal/lcd"
	"github.com/GCZ79/Embedded-Systems/internal/led"
	"github.com/GCZ79/Embedded-Systems/internal/logging"
	"github.com/GCZ79/Embedded-Systems/internal/logic"
	"github.com/GCZ79/Embedded-Systems/internal/sensor"
	"github.com/GCZ79/Embedded-Systems/internal/serial"
	"github.com/GCZ79/Embedded-Systems/internal/sevenseg"
	"github.com/GCZ79/Embedded-Systems/internal/status"
	"github.com/GCZ79/Embedded-Systems/internal/version"
)

// Seven-segment feedback timing.
const (
	blinkTimes    = 5
	blinkInterval = 300 * time.Millisecond
	spinRotations = 4
	spinStep      = 50 * time.Millisecond
)

// segCheckInterval is how often the transient-glyph timeout is checked.
const segCheckInterval = 500 * time.Millisecond

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var (
	configPath string
	logLevel   string
	serialPort string
	reportIval time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "thermostat",
	Short: "Raspberry Pi thermostat daemon",
	Long: `A thermostat daemon for the Raspberry Pi.

The mode button cycles off -> heat -> cool; holding it toggles between
Fahrenheit and Celsius. Up/down buttons adjust the setpoint. State is
rendered on a 16x2 LCD, a seven-segment digit, and two indicator LEDs,
and readings are reported over the serial port every 30 seconds.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to YAML config file (defaults used if empty)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&serialPort, "serial-port", serial.DefaultPort, "Serial port for the report stream")
	rootCmd.Flags().DurationVar(&reportIval, "report-interval", 0, "Report interval (overrides config if set)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("thermostat %s\n", version.Full())
	},
}

func runRoot(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(logLevel); err != nil {
		return err
	}
	defer logging.Sync()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("serial-port") {
		cfg.Serial.Port = serialPort
	}
	if reportIval > 0 {
		cfg.Intervals.Report = config.Duration(reportIval)
	}

	return run(cfg)
}

func run(cfg config.Config) error {
	logging.Info("starting",
		zap.String("version", version.Full()),
		zap.String("chip", cfg.GPIO.Chip),
		zap.String("serial_port", cfg.Serial.Port))

	// Buttons and sensor are the daemon's inputs; without them there is
	// nothing to run.
	buttons, err := button.NewRealHandler(cfg.GPIO.Chip,
		cfg.GPIO.ModeButton, cfg.GPIO.UpButton, cfg.GPIO.DownButton,
		cfg.Intervals.LongPress.Std())
	if err != nil {
		return fmt.Errorf("init buttons: %w", err)
	}
	defer buttons.Close()

	reader, err := sensor.NewAHT20(cfg.I2C.Bus, cfg.I2C.SensorAddr)
	if err != nil {
		return fmt.Errorf("init sensor: %w", err)
	}
	defer reader.Close()

	// Output devices degrade: a missing display or LED is logged and
	// replaced with a noop so the rest keeps working.
	var seg sevenseg.Display
	seg, err = sevenseg.NewShiftRegister(cfg.GPIO.Chip,
		cfg.GPIO.SegmentData, cfg.GPIO.SegmentLatch, cfg.GPIO.SegmentClock)
	if err != nil {
		logging.Warn("seven-segment display unavailable", zap.Error(err))
		seg = sevenseg.Noop{}
	}
	defer seg.Close()

	var heatLED, coolLED led.LED
	heatLED, err = led.NewPWMLED(cfg.GPIO.Chip, cfg.GPIO.HeatLED)
	if err != nil {
		logging.Warn("heat LED unavailable", zap.Error(err))
		heatLED = led.Noop{}
	}
	defer heatLED.Close()
	coolLED, err = led.NewPWMLED(cfg.GPIO.Chip, cfg.GPIO.CoolLED)
	if err != nil {
		logging.Warn("cool LED unavailable", zap.Error(err))
		coolLED = led.Noop{}
	}
	defer coolLED.Close()

	var disp lcd.Display
	if d, err := lcd.NewPCF8574(cfg.I2C.Bus, cfg.I2C.LCDAddr); err != nil {
		logging.Warn("lcd unavailable, check wiring (i2cdetect -y 1 should list the backpack)",
			zap.Uint16("addr", cfg.I2C.LCDAddr), zap.Error(err))
	} else {
		disp = d
		defer d.Close()
	}

	var reporter serial.Reporter
	if r, err := serial.NewRealReporter(cfg.Serial.Port, cfg.Serial.Baud); err != nil {
		logging.Warn("serial port unavailable, reports disabled",
			zap.String("port", cfg.Serial.Port), zap.Error(err))
	} else {
		reporter = r
		defer r.Close()
	}

	tracker := status.NewTracker(time.Now(), status.Config{
		SensorPollMs: cfg.Intervals.SensorPoll.Std().Milliseconds(),
		ReportMs:     cfg.Intervals.Report.Std().Milliseconds(),
		SerialPort:   cfg.Serial.Port,
	})

	ctl := logic.NewController()

	// The display goroutine writes to the I2C bus; join it before the
	// deferred Close tears the bus down.
	done := make(chan struct{})
	finished := make(chan struct{})
	if disp != nil {
		displayTick := time.NewTicker(cfg.Intervals.DisplayRefresh.Std())
		defer displayTick.Stop()
		go func() {
			displayLoop(tracker, disp, displayTick.C, done)
			close(finished)
		}()
	} else {
		close(finished)
	}
	defer func() {
		close(done)
		<-finished
	}()

	sensorTick := time.NewTicker(cfg.Intervals.SensorPoll.Std())
	defer sensorTick.Stop()
	reportTick := time.NewTicker(cfg.Intervals.Report.Std())
	defer reportTick.Stop()
	segTick := time.NewTicker(segCheckInterval)
	defer segTick.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	err = runLoop(ctl, buttons.Events(), reader, seg, heatLED, coolLED,
		reporter, tracker, cfg.Intervals.SegmentTimeout.Std(),
		time.Now, sensorTick.C, reportTick.C, segTick.C, sigCh)

	// Leave the hardware dark on exit.
	if cerr := seg.Clear(); cerr != nil {
		logging.Warn("clear display on shutdown", zap.Error(cerr))
	}
	heatLED.SetMode(logic.LEDOff)
	coolLED.SetMode(logic.LEDOff)
	return err
}

// runLoop is the control loop: a single goroutine owning the controller,
// multiplexing button events, the sensor poll, the report tick, the
// transient-glyph timeout, and shutdown signals. Channels and the clock are
// injected for testing.
func runLoop(ctl *logic.Controller, events <-chan button.Event, reader sensor.Reader,
	seg sevenseg.Display, heatLED, coolLED led.LED, reporter serial.Reporter,
	tracker *status.Tracker, segTimeout time.Duration, now func() time.Time,
	sensorTick, reportTick, segTick <-chan time.Time, sig <-chan os.Signal) error {

	// Transient glyphs (setpoint up/down acknowledgements) revert to the
	// state glyph after segTimeout.
	var transient bool
	var transientAt time.Time

	apply := func(u logic.Update) {
		if err := heatLED.SetMode(u.LEDs.Heat); err != nil {
			logging.Warn("heat LED", zap.Error(err))
		}
		if err := coolLED.SetMode(u.LEDs.Cool); err != nil {
			logging.Warn("cool LED", zap.Error(err))
		}

		switch u.Feedback {
		case logic.FeedbackState:
			if err := seg.Show(sevenseg.ForState(u.State)); err != nil {
				logging.Warn("segment show", zap.Error(err))
			}
			transient = false
		case logic.FeedbackUp:
			if err := seg.Show(sevenseg.GlyphU); err != nil {
				logging.Warn("segment show", zap.Error(err))
			}
			transient = true
			transientAt = now()
		case logic.FeedbackDown:
			if err := seg.Show(sevenseg.GlyphD); err != nil {
				logging.Warn("segment show", zap.Error(err))
			}
			transient = true
			transientAt = now()
		case logic.FeedbackScale:
			// Blink the new scale with the decimal point lit, then
			// restore the state glyph.
			if err := seg.Blink(sevenseg.ForScale(u.Scale).WithDot(), blinkTimes, blinkInterval); err != nil {
				logging.Warn("segment blink", zap.Error(err))
			}
			if err := seg.Show(sevenseg.ForState(u.State)); err != nil {
				logging.Warn("segment show", zap.Error(err))
			}
			transient = false
		}

		tracker.Update(u, ctl.Counts())
	}

	// Light the initial state glyph and LED modes.
	apply(ctl.Refresh())

	for {
		select {
		case s := <-sig:
			logging.Info("received signal, shutting down", zap.String("signal", s.String()))
			return nil

		case ev := <-events:
			switch {
			case ev.Button == button.Mode && ev.Kind == logic.PressLong:
				u := ctl.ToggleScale()
				logging.Info("scale toggled",
					zap.String("scale", string(u.Scale)), zap.Int("setpoint", u.Setpoint))
				apply(u)
			case ev.Button == button.Mode:
				u := ctl.Cycle()
				logging.Info("state cycled", zap.String("state", string(u.State)))
				apply(u)
			case ev.Button == button.Up:
				u := ctl.AdjustSetpoint(1)
				logging.Info("setpoint raised", zap.Int("setpoint", u.Setpoint))
				apply(u)
			case ev.Button == button.Down:
				u := ctl.AdjustSetpoint(-1)
				logging.Info("setpoint lowered", zap.Int("setpoint", u.Setpoint))
				apply(u)
			}

		case <-sensorTick:
			r, err := reader.Read()
			if err != nil {
				logging.Warn("sensor read failed", zap.Error(err))
			} else {
				logging.Debug("sensor reading",
					zap.Float64("temp_c", r.TempC), zap.Float64("humidity", r.Humidity))
			}
			apply(ctl.ObserveReading(r, err))
			stored, stale, ok := ctl.Reading()
			tracker.SetReading(stored, ok, stale)

		case <-reportTick:
			r, _, ok := ctl.Reading()
			if !ok {
				logging.Debug("skipping report, no reading yet")
				continue
			}
			if reporter == nil {
				continue
			}
			// The chase animation signals report activity; Spin blanks
			// the digit, so restore the state glyph after.
			if err := seg.Spin(spinRotations, spinStep); err != nil {
				logging.Warn("segment spin", zap.Error(err))
			}
			line := serial.FormatReport(ctl.State(), r.TempIn(logic.Fahrenheit), ctl.SetpointFahrenheit())
			if err := reporter.Report(line); err != nil {
				logging.Warn("serial report failed", zap.Error(err))
			} else {
				ctl.CountReport()
				logging.Debug("report sent", zap.String("line", line))
			}
			if err := seg.Show(sevenseg.ForState(ctl.State())); err != nil {
				logging.Warn("segment show", zap.Error(err))
			}
			tracker.Update(ctl.Refresh(), ctl.Counts())

		case <-segTick:
			if transient && now().Sub(transientAt) >= segTimeout {
				if err := seg.Show(sevenseg.ForState(ctl.State())); err != nil {
					logging.Warn("segment show", zap.Error(err))
				}
				transient = false
			}
		}
	}
}

// displayLoop renders the LCD once per tick: the clock on line one, and
// line two alternating between the current reading and the state/setpoint
// every five ticks. It reads tracker snapshots and never touches the
// controller.
func displayLoop(tracker *status.Tracker, disp lcd.Display, tick <-chan time.Time, done <-chan struct{}) {
	n := 0
	for {
		select {
		case <-done:
			return
		case t := <-tick:
			snap := tracker.Snapshot()

			line1 := t.Format("Jan 02  15:04:05")

			var line2 string
			if n%10 < 5 {
				if snap.HaveRead {
					line2 = fmt.Sprintf("Temp: %.1f %s", snap.Reading.TempIn(snap.Scale), snap.Scale)
					if snap.Stale {
						line2 += "*"
					}
				} else {
					line2 = fmt.Sprintf("Temp: --.- %s", snap.Scale)
				}
			} else {
				line2 = fmt.Sprintf("%s SP: %d %s",
					strings.ToUpper(string(snap.State)), snap.Setpoint, snap.Scale)
			}
			n++

			if err := disp.WriteLines(line1, line2); err != nil {
				logging.Warn("lcd write failed", zap.Error(err))
			}
		}
	}
}
