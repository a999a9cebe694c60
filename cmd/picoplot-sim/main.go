//go:build !tinygo

// Command picoplot-sim runs the dashboard on the desktop against a
// simulated clock and sensor, either in a window or headless to a PNG.
package main

import (
	"context"
	"flag"
	"image/png"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"picoplot-go/services/app"
	"picoplot-go/services/canvas"
	"picoplot-go/services/clock"
	"picoplot-go/services/config"
	"picoplot-go/services/display"
	"picoplot-go/services/sensor"
	"picoplot-go/types"
)

var variant = flag.String("variant", "native", "preset: "+strings.Join(config.Variants(), ", "))
var headless = flag.Bool("headless", false, "run without a window and write a PNG snapshot")
var days = flag.Int("days", 1, "simulated days to run when headless")
var out = flag.String("out", "picoplot.png", "snapshot path when headless")
var zoom = flag.Int("scale", 3, "window pixels per panel pixel")
var speed = flag.Int("speed", 10, "simulated minutes per window frame")
var startAt = flag.String("start", "2024-01-01T08:00", "simulated start time (2006-01-02T15:04)")
var battery = flag.Bool("battery", false, "show the battery readout")
var verbose = flag.Bool("v", false, "log every tick")

func main() {
	flag.Parse()

	level := new(slog.LevelVar)
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(log, level); err != nil {
		log.Error("picoplot-sim failed", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, level *slog.LevelVar) error {
	v, err := config.Load(*variant)
	if err != nil {
		return err
	}
	level.Set(v.LogLevel)
	if !*verbose && level.Level() < slog.LevelInfo {
		level.Set(slog.LevelInfo)
	}
	if v.Sensor.Kind != config.SensorRamp {
		log.Info("simulating sensor", "configured", v.Sensor.Kind)
	}

	start, err := time.ParseInLocation("2006-01-02T15:04", *startAt, time.Local)
	if err != nil {
		return err
	}

	dcfg := v.Display
	if *battery {
		dcfg.Caps |= types.CapBattery
	}

	frame := canvas.NewFrame(int16(dcfg.Width), int16(dcfg.Height))
	cv, err := canvas.New(frame, canvas.DefaultFonts())
	if err != nil {
		return err
	}
	dash, err := display.New(cv, dcfg)
	if err != nil {
		return err
	}

	clk := clock.NewSoft(start, clock.Instant)
	r := sensor.NewRamp()
	lcfg := app.Config{Log: log, Clock: clk, Temp: r}
	if dcfg.Caps.Has(types.CapHumidity) {
		lcfg.Humidity = r
	}
	if dcfg.Caps.Has(types.CapBattery) {
		lcfg.VBat = r
	}

	dc := dash.Config()
	log.Info("starting", "variant", v.Name, "width", dc.Width, "height", dc.Height,
		"caps", dc.Caps.Names(), "hist_hours", dc.HistHours,
		"sample_period", time.Duration(dash.SamplePeriodSecs())*time.Second)

	if *headless {
		lcfg.MaxTicks = *days * 24 * 60
		return runHeadless(log, lcfg, dash, frame)
	}
	loop, err := app.New(dash, lcfg)
	if err != nil {
		return err
	}
	return runWindow(v.Name, loop, clk, frame, *zoom, *speed)
}

func runHeadless(log *slog.Logger, cfg app.Config, dash *display.Display, frame *canvas.Frame) error {
	loop, err := app.New(dash, cfg)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	began := time.Now()
	if err := loop.Run(ctx); err != nil {
		return err
	}
	st := loop.Stats()

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, frame); err != nil {
		f.Close()
		return err
	}
	info, err := f.Stat()
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	maxima, _ := dash.Week()
	log.Info("simulation done",
		"ticks", humanize.Comma(int64(st.Ticks)),
		"samples", humanize.Comma(int64(st.Samples)),
		"days_recorded", maxima.Size(),
		"full_refreshes", humanize.Comma(int64(frame.Full)),
		"quick_refreshes", humanize.Comma(int64(frame.Quick)),
		"elapsed", time.Since(began).Round(time.Millisecond),
		"snapshot", *out,
		"size", humanize.Bytes(uint64(info.Size())),
	)
	return nil
}
