package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"picoplot-go/errcode"
	"picoplot-go/services/canvas"
	"picoplot-go/services/clock"
	"picoplot-go/services/display"
	"picoplot-go/services/sensor"
	"picoplot-go/types"
)

type fakeDash struct {
	dow, dom, hour, minute int
	temps, humids          []int32
	vbat                   uint32
	draws                  int
	err                    error
}

func (f *fakeDash) SetDay(dow, dom int)      { f.dow, f.dom = dow, dom }
func (f *fakeDash) SetTime(hour, minute int) { f.hour, f.minute = hour, minute }
func (f *fakeDash) SetTemp(raw int32)        { f.temps = append(f.temps, raw) }
func (f *fakeDash) SetHumidity(deciRH int32) { f.humids = append(f.humids, deciRH) }
func (f *fakeDash) SetVBat(mv uint32)        { f.vbat = mv }
func (f *fakeDash) Draw() (display.Tick, error) {
	f.draws++
	if f.draws%10 == 0 {
		return display.TickSample, f.err
	}
	return display.TickRedraw, f.err
}

type flakyTemp struct {
	n    int
	fail map[int]bool
}

func (s *flakyTemp) Read() (int32, error) {
	s.n++
	if s.fail[s.n] {
		return 0, errcode.Wrap(errcode.Timeout, "test", errors.New("no ack"))
	}
	return int32(s.n) * 256, nil
}

func newLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func start() *clock.Soft {
	// Monday 2024-01-01 08:00
	return clock.NewSoft(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), nil)
}

func TestRunFeedsDashboard(t *testing.T) {
	d := &fakeDash{}
	r := sensor.NewRamp()
	l, err := New(d, Config{Clock: start(), Temp: r, Humidity: r, VBat: r, MaxTicks: 90})
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	st := l.Stats()
	if st.Ticks != 90 || st.Samples != 9 || d.draws != 90 {
		t.Fatalf("stats=%+v draws=%d", st, d.draws)
	}
	if len(d.temps) != 90 || len(d.humids) != 90 || d.vbat == 0 {
		t.Fatalf("temps=%d humids=%d vbat=%d", len(d.temps), len(d.humids), d.vbat)
	}
	// 89 minutes after 08:00 on the last draw
	if d.dow != 1 || d.dom != 1 || d.hour != 9 || d.minute != 29 {
		t.Fatalf("calendar %d %d %02d:%02d", d.dow, d.dom, d.hour, d.minute)
	}
}

func TestSensorFailureKeepsPreviousReading(t *testing.T) {
	d := &fakeDash{}
	log, buf := newLogger()
	l, err := New(d, Config{Log: log, Clock: start(), Temp: &flakyTemp{fail: map[int]bool{2: true, 3: true}}, MaxTicks: 5})
	if err != nil {
		t.Fatal(err)
	}
	_ = l.Run(context.Background())

	if l.Stats().SensorErrors != 2 {
		t.Fatalf("sensor errors=%d", l.Stats().SensorErrors)
	}
	want := []int32{256, 4 * 256, 5 * 256}
	if len(d.temps) != len(want) {
		t.Fatalf("temps=%v", d.temps)
	}
	for i := range want {
		if d.temps[i] != want[i] {
			t.Fatalf("temps=%v want %v", d.temps, want)
		}
	}
	out := buf.String()
	if !strings.Contains(out, "sensor read failed") || !strings.Contains(out, "code=timeout") {
		t.Fatalf("log:\n%s", out)
	}
}

func TestDrawErrorsAreCounted(t *testing.T) {
	d := &fakeDash{err: errcode.Wrap(errcode.RefreshFailed, "test", errors.New("busy"))}
	log, buf := newLogger()
	l, _ := New(d, Config{Log: log, Clock: start(), Temp: sensor.NewRamp(), MaxTicks: 3})
	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if l.Stats().RefreshErrors != 3 {
		t.Fatalf("stats=%+v", l.Stats())
	}
	if !strings.Contains(buf.String(), "code=refresh_failed") {
		t.Fatalf("log:\n%s", buf.String())
	}
}

// cancellingClock cancels the run after a number of sleeps.
type cancellingClock struct {
	*clock.Soft
	left   int
	cancel context.CancelFunc
}

func (c *cancellingClock) Sleep(ctx context.Context, secs int) error {
	c.left--
	if c.left == 0 {
		c.cancel()
	}
	return c.Soft.Sleep(ctx, secs)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d := &fakeDash{}
	l, _ := New(d, Config{Clock: &cancellingClock{Soft: start(), left: 4, cancel: cancel}, Temp: sensor.NewRamp()})
	if err := l.Run(ctx); err != nil {
		t.Fatalf("err=%v", err)
	}
	if d.draws != 4 {
		t.Fatalf("draws=%d", d.draws)
	}
}

type brokenClock struct{ *clock.Soft }

func (brokenClock) Sleep(context.Context, int) error { return errors.New("rtc lost") }

func TestRunReturnsClockError(t *testing.T) {
	l, _ := New(&fakeDash{}, Config{Clock: brokenClock{start()}, Temp: sensor.NewRamp()})
	if err := l.Run(context.Background()); err == nil {
		t.Fatal("expected clock error")
	}
}

func TestNewRequiresCollaborators(t *testing.T) {
	if _, err := New(&fakeDash{}, Config{Clock: start()}); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("err=%v", err)
	}
}

func TestOneSimulatedDay(t *testing.T) {
	frame := canvas.NewFrame(296, 128)
	cv, err := canvas.New(frame, canvas.DefaultFonts())
	if err != nil {
		t.Fatal(err)
	}
	cfg := display.DefaultConfig()
	cfg.Width, cfg.Height = cv.Size()
	cfg.Caps = types.CapWeeklyBars | types.CapHumidity
	dash, err := display.New(cv, cfg)
	if err != nil {
		t.Fatal(err)
	}
	r := sensor.NewRamp()
	l, _ := New(dash, Config{Clock: start(), Temp: r, Humidity: r, MaxTicks: 24 * 60})
	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if st := l.Stats(); st.Samples != 144 || frame.Full != 144 || frame.Quick != 24*60-144 {
		t.Fatalf("stats=%+v full=%d quick=%d", st, frame.Full, frame.Quick)
	}
	maxima, _ := dash.Week()
	// 08:00 Monday to 08:00 Tuesday spans two calendar days
	if maxima.Size() != 2 {
		t.Fatalf("days=%d", maxima.Size())
	}
	if dash.Temps().Size() != 144 || dash.Humidities().Size() != 144 {
		t.Fatalf("histories %d/%d", dash.Temps().Size(), dash.Humidities().Size())
	}
}
