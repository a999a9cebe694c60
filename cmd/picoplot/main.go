//go:build rp2040

// Command picoplot is the RP2040 firmware: it reads the board's sensor once
// a minute and keeps the e-paper dashboard up to date. The board is chosen
// with a build tag (board_waveshare, board_badger2040; the default is the
// picoT build).
package main

import (
	"context"
	"log/slog"
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers"

	"picoplot-go/errcode"
	"picoplot-go/services/app"
	"picoplot-go/services/canvas"
	"picoplot-go/services/clock"
	"picoplot-go/services/config"
	"picoplot-go/services/display"
	"picoplot-go/services/sensor"
	"picoplot-go/types"
)

// startTime seeds the soft RTC; set with -ldflags "-X main.startTime=...".
var startTime = "2025-01-06T00:00"

// board is what a board file provides.
type board struct {
	panel canvas.Panel
	i2c   drivers.I2C
	vbat  sensor.VBatSource // nil when not wired
}

func main() {
	time.Sleep(2 * time.Second)

	level := new(slog.LevelVar)
	log := newLogger(level)
	log.Info("boot", "variant", variantName)

	if err := run(log, level); err != nil {
		log.Error("halted", "code", string(errcode.Of(err)), "err", err)
	}
	for {
		time.Sleep(time.Hour)
	}
}

// newLogger writes text records to UART0.
func newLogger(level *slog.LevelVar) *slog.Logger {
	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})
	return slog.New(slog.NewTextHandler(u, &slog.HandlerOptions{Level: level}))
}

func run(log *slog.Logger, level *slog.LevelVar) error {
	v, err := config.Load(variantName)
	if err != nil {
		return err
	}
	level.Set(v.LogLevel)

	b, err := setupBoard()
	if err != nil {
		return err
	}
	log.Info("board ready", "component", "main")

	temp, humid, err := openSensor(v.Sensor, b.i2c)
	if err != nil {
		return err
	}

	cv, err := canvas.New(b.panel, canvas.DefaultFonts())
	if err != nil {
		return err
	}
	if w, h := cv.Size(); w != v.Display.Width || h != v.Display.Height {
		return &errcode.E{C: errcode.InvalidConfig, Op: "main.run", Msg: "panel size does not match variant"}
	}
	dash, err := display.New(cv, v.Display)
	if err != nil {
		return err
	}

	start, err := time.Parse("2006-01-02T15:04", startTime)
	if err != nil {
		return errcode.Wrap(errcode.InvalidConfig, "main.startTime", err)
	}

	lcfg := app.Config{Log: log, Clock: clock.NewSoft(start, clock.RealTime), Temp: temp}
	if v.Display.Caps.Has(types.CapHumidity) {
		lcfg.Humidity = humid
	}
	if v.Display.Caps.Has(types.CapBattery) {
		lcfg.VBat = b.vbat
	}
	loop, err := app.New(dash, lcfg)
	if err != nil {
		return err
	}
	return loop.Run(context.Background())
}

// openSensor builds the configured sensor. humid is nil for
// temperature-only parts.
func openSensor(s config.Sensor, bus drivers.I2C) (sensor.TempSensor, sensor.HumiditySensor, error) {
	switch s.Kind {
	case config.SensorMCP9808:
		d, err := sensor.NewMCP9808(bus, s.Address)
		if err != nil {
			return nil, nil, err
		}
		return d, nil, nil
	case config.SensorAHT20:
		d, err := sensor.NewAHT20(bus, s.Address)
		if err != nil {
			return nil, nil, err
		}
		return d, d, nil
	case config.SensorBME280:
		d, err := sensor.NewBME280(bus)
		if err != nil {
			return nil, nil, err
		}
		return d, d, nil
	case config.SensorRamp:
		r := sensor.NewRamp()
		return r, r, nil
	}
	return nil, nil, &errcode.E{C: errcode.InvalidConfig, Op: "main.openSensor", Msg: s.Kind}
}
