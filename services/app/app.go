// Package app is the appliance's driver loop: once a minute it pushes the
// calendar and fresh sensor readings into the dashboard, draws it and sleeps.
package app

import (
	"context"
	"errors"
	"log/slog"

	"picoplot-go/errcode"
	"picoplot-go/services/clock"
	"picoplot-go/services/display"
	"picoplot-go/services/sensor"
	"picoplot-go/types"
)

// Dashboard is the renderer as seen by the loop.
type Dashboard interface {
	SetDay(dow, dom int)
	SetTime(hour, minute int)
	SetTemp(raw int32)
	SetHumidity(deciRH int32)
	SetVBat(mv uint32)
	Draw() (display.Tick, error)
}

// Config wires the loop's collaborators. Humidity and VBat are optional.
type Config struct {
	Log      *slog.Logger
	Clock    clock.Clock
	Temp     sensor.TempSensor
	Humidity sensor.HumiditySensor
	VBat     sensor.VBatSource

	// TickSecs is the sleep between draws; 60 if zero.
	TickSecs int
	// MaxTicks stops Run after that many draws; 0 runs until cancelled.
	MaxTicks int
}

// Stats counts what the loop has done.
type Stats struct {
	Ticks         int
	Samples       int
	SensorErrors  int
	RefreshErrors int
}

type Loop struct {
	d       Dashboard
	cfg     Config
	log     *slog.Logger
	stats   Stats
	lastRaw int32
}

func New(d Dashboard, cfg Config) (*Loop, error) {
	if d == nil || cfg.Clock == nil || cfg.Temp == nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "app.New", Msg: "dashboard, clock and temperature sensor are required"}
	}
	if cfg.TickSecs <= 0 {
		cfg.TickSecs = 60
	}
	log := cfg.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Loop{d: d, cfg: cfg, log: log.With("component", "app")}, nil
}

func (l *Loop) Stats() Stats { return l.stats }

// Run draws once per tick until ctx is cancelled, the tick limit is
// reached or the clock fails. Cancellation is not an error.
func (l *Loop) Run(ctx context.Context) error {
	l.log.Info("loop starting", "tick_secs", l.cfg.TickSecs, "max_ticks", l.cfg.MaxTicks)
	for {
		if err := ctx.Err(); err != nil {
			l.log.Info("loop stopping", "ticks", l.stats.Ticks)
			return nil
		}
		l.Step()
		if l.cfg.MaxTicks > 0 && l.stats.Ticks >= l.cfg.MaxTicks {
			l.log.Info("tick limit reached", "ticks", l.stats.Ticks)
			return nil
		}
		if err := l.cfg.Clock.Sleep(ctx, l.cfg.TickSecs); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				l.log.Info("loop stopping", "ticks", l.stats.Ticks)
				return nil
			}
			return errcode.Wrap(errcode.Error, "app.Run", err)
		}
	}
}

// Step performs one tick without sleeping. Sensor and refresh failures are
// logged and counted; the dashboard keeps its previous reading.
func (l *Loop) Step() {
	c := l.cfg.Clock
	l.d.SetDay(c.Weekday(), c.Day())
	l.d.SetTime(c.Hour(), c.Minute())

	if raw, err := l.cfg.Temp.Read(); err != nil {
		l.sensorErr("temperature", err)
	} else {
		l.d.SetTemp(raw)
		l.lastRaw = raw
	}
	if l.cfg.Humidity != nil {
		if h, err := l.cfg.Humidity.ReadHumidity(); err != nil {
			l.sensorErr("humidity", err)
		} else {
			l.d.SetHumidity(h)
		}
	}
	if l.cfg.VBat != nil {
		if mv, err := l.cfg.VBat.ReadMilliVolts(); err != nil {
			l.sensorErr("vbat", err)
		} else {
			l.d.SetVBat(mv)
		}
	}

	tick, err := l.d.Draw()
	l.stats.Ticks++
	if tick == display.TickSample {
		l.stats.Samples++
	}
	if err != nil {
		l.stats.RefreshErrors++
		l.log.Error("draw failed", "tick", tick.String(), "code", string(errcode.Of(err)), "err", err)
		return
	}
	if tick == display.TickSample {
		l.log.Info("sample committed", tempAttr(l.lastRaw), "hour", c.Hour(), "minute", c.Minute())
		return
	}
	l.log.Debug("redraw", "hour", c.Hour(), "minute", c.Minute())
}

func (l *Loop) sensorErr(what string, err error) {
	l.stats.SensorErrors++
	l.log.Warn("sensor read failed", "sensor", what, "code", string(errcode.Of(err)), "err", err)
}

func tempAttr(raw int32) slog.Attr {
	return slog.Int("deci_c", int(types.TemperatureFromQ8(raw).DeciC))
}
