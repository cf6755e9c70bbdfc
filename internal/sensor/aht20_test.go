package sensor

import (
	"errors"
	"testing"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2ctest"

	"github.com/GCZ79/Embedded-Systems/internal/logic"
)

func TestAHT20Read(t *testing.T) {
	// rawTemp 0x60000 = 393216 → 25.0°C; rawHum 0x80000 = 524288 → 50.0%
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: DefaultAddr, W: []byte{0xAC, 0x33, 0x00}},
			{Addr: DefaultAddr, R: []byte{0x1C, 0x80, 0x00, 0x06, 0x00, 0x00}},
		},
		DontPanic: true,
	}

	at := time.Date(2026, 2, 19, 8, 0, 0, 0, time.UTC)
	a := &AHT20{
		dev: &i2c.Dev{Addr: DefaultAddr, Bus: pb},
		now: func() time.Time { return at },
	}

	r, err := a.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if r.TempC != 25.0 {
		t.Errorf("expected 25.0°C, got %v", r.TempC)
	}
	if r.Humidity != 50.0 {
		t.Errorf("expected 50.0%%, got %v", r.Humidity)
	}
	if !r.Time.Equal(at) {
		t.Errorf("expected sample time %v, got %v", at, r.Time)
	}
}

func TestAHT20ReadBusyThenReady(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: DefaultAddr, W: []byte{0xAC, 0x33, 0x00}},
			// Still busy on the first poll.
			{Addr: DefaultAddr, R: []byte{0x9C, 0x00, 0x00, 0x00, 0x00, 0x00}},
			{Addr: DefaultAddr, R: []byte{0x1C, 0x80, 0x00, 0x06, 0x00, 0x00}},
		},
		DontPanic: true,
	}

	a := &AHT20{
		dev: &i2c.Dev{Addr: DefaultAddr, Bus: pb},
		now: time.Now,
	}

	r, err := a.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if r.TempC != 25.0 {
		t.Errorf("expected 25.0°C, got %v", r.TempC)
	}
}

func TestDecodeEdges(t *testing.T) {
	// All-zero raw values decode to -50°C / 0%.
	r := decode([6]byte{0x1C, 0, 0, 0, 0, 0}, time.Time{})
	if r.TempC != -50 {
		t.Errorf("expected -50°C, got %v", r.TempC)
	}
	if r.Humidity != 0 {
		t.Errorf("expected 0%%, got %v", r.Humidity)
	}
}

func TestFakeReaderRepeatsLastSample(t *testing.T) {
	f := NewFakeReader([]logic.Reading{
		{TempC: 20},
		{TempC: 21},
	})

	first, err := f.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if first.TempC != 20 {
		t.Errorf("expected 20, got %v", first.TempC)
	}

	second, _ := f.Read()
	if second.TempC != 21 {
		t.Errorf("expected 21, got %v", second.TempC)
	}

	// Exhausted: repeats last.
	third, _ := f.Read()
	if third.TempC != 21 {
		t.Errorf("expected repeated 21, got %v", third.TempC)
	}
}

func TestFakeReaderError(t *testing.T) {
	f := NewFakeReader([]logic.Reading{{TempC: 20}})
	f.ReadError = errInjected

	if _, err := f.Read(); err == nil {
		t.Fatal("expected injected error")
	}

	f.Reset()
	if _, err := f.Read(); err != nil {
		t.Fatalf("expected recovery after reset, got %v", err)
	}
}

var errInjected = errors.New("injected i2c fault")
