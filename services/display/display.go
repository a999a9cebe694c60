// Package display is the dashboard renderer: it owns the sample histories
// and the axis scales, and turns them into drawing primitives on a Surface
// once per minute.
//
// A Display is not safe for concurrent use; the driver loop owns it.
package display

import (
	"picoplot-go/errcode"
	"picoplot-go/types"
	"picoplot-go/x/history"
	"picoplot-go/x/mathx"
	"picoplot-go/x/scale"
)

const weekDays = 7

// Tick reports what a Draw call did.
type Tick uint8

const (
	// TickRedraw re-rendered the current state with a quick refresh.
	TickRedraw Tick = iota
	// TickSample committed a sample and did a full refresh.
	TickSample
)

func (t Tick) String() string {
	if t == TickSample {
		return "sample"
	}
	return "redraw"
}

// accum averages readings between sample ticks.
type accum struct {
	last  int32
	sum   int64
	n     int32
	valid bool
}

func (a *accum) add(v int32) {
	a.last = v
	a.sum += int64(v)
	a.n++
	a.valid = true
}

// take returns the rounded mean since the last take, or the last reading
// when nothing was added, and resets the sum.
func (a *accum) take() int32 {
	if a.n == 0 {
		return a.last
	}
	m := int32(mathx.RoundDiv(a.sum, int64(a.n)))
	a.sum, a.n = 0, 0
	return m
}

// Display renders the dashboard.
type Display struct {
	surf Surface
	cfg  Config
	lay  layout
	cw   FontMetrics

	temps   *history.History[int32] // tenths of a degree, one per sample
	humids  *history.History[int32] // tenths of %RH
	weekMax *history.History[int32] // one per day, newest is today
	weekMin *history.History[int32]

	tempY  scale.Scale
	timeX  scale.Scale
	weekY  scale.Scale
	humidY scale.Scale
	humidX scale.Scale

	dow, dom     int
	hour, minute int
	dayKnown     bool
	newDay       bool

	temp  accum
	humid accum
	vbat  uint32

	drawCycle int32

	weekBuf [2][weekDays + 1]int32
	txt     [32]byte
}

// New returns a Display drawing onto surf. All storage is allocated here.
func New(surf Surface, cfg Config) (*Display, error) {
	if surf == nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "display.New", Msg: "nil surface"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := &Display{
		surf:      surf,
		cfg:       cfg,
		lay:       newLayout(cfg),
		temps:     history.New[int32](int(cfg.Samples())),
		drawCycle: cfg.MinsPerPixel - 1,
	}
	d.weekMax = history.Over(d.weekBuf[0][:])
	d.weekMin = history.Over(d.weekBuf[1][:])
	if fm, ok := surf.(FontMetrics); ok {
		d.cw = fm
	}

	l := &d.lay
	d.tempY = scale.New(l.plotBottom, plotTop)
	d.timeX = scale.New(plotLeft, l.plotRight)
	d.timeX.SetRange(-cfg.HistHours*60, 0)
	d.weekY = scale.New(l.subBottom, l.subTop)

	if cfg.Caps.Has(types.CapHumidity) {
		d.humids = history.New[int32](int(cfg.Samples()))
		d.humidY = scale.New(l.subBottom, l.subTop)
		d.humidX = scale.New(l.subLeft, l.subRight)
		d.humidX.SetRange(-(cfg.Samples() - 1), 0)
	}
	return d, nil
}

// Config returns the validated configuration the display was built with.
func (d *Display) Config() Config { return d.cfg }

// SamplePeriodSecs is the wall time between history samples.
func (d *Display) SamplePeriodSecs() int32 { return d.cfg.SamplePeriodSecs() }

// SetDay sets the day of week (0 = Sunday) and day of month. A change of
// weekday after the first call starts a new day slot at the next sample.
func (d *Display) SetDay(dow, dom int) {
	if dow < 0 || dow >= weekDays {
		panic("display: day of week out of range")
	}
	if d.dayKnown && dow != d.dow {
		d.newDay = true
	}
	d.dow, d.dom = dow, dom
	d.dayKnown = true
}

func (d *Display) SetTime(hour, minute int) {
	d.hour, d.minute = hour, minute
}

// SetTemp records a reading in the sensor encoding (°C * 256).
func (d *Display) SetTemp(raw int32) {
	d.temp.add(types.TemperatureFromQ8(raw).DeciC)
}

// SetHumidity records a relative humidity reading in tenths of a percent.
func (d *Display) SetHumidity(deciRH int32) { d.humid.add(deciRH) }

// SetVBat records the battery voltage in millivolts.
func (d *Display) SetVBat(mv uint32) { d.vbat = mv }

// Temps returns the temperature history (tenths of a degree).
func (d *Display) Temps() *history.History[int32] { return d.temps }

// Humidities returns the humidity history, nil without CapHumidity.
func (d *Display) Humidities() *history.History[int32] { return d.humids }

// Week returns the per-day maxima and minima, newest first.
func (d *Display) Week() (maxima, minima *history.History[int32]) {
	return d.weekMax, d.weekMin
}

// Draw advances the minute counter, commits a sample when it expires,
// renders and refreshes the panel.
func (d *Display) Draw() (Tick, error) {
	tick := TickRedraw
	if d.drawCycle == 0 {
		d.sample()
		d.drawCycle = d.cfg.MinsPerPixel - 1
		tick = TickSample
	} else {
		d.drawCycle--
	}

	d.render()

	if tick == TickRedraw {
		return tick, errcode.Wrap(errcode.RefreshFailed, "display.QuickRefresh", d.surf.QuickRefresh())
	}
	if err := d.surf.Refresh(); err != nil {
		return tick, errcode.Wrap(errcode.RefreshFailed, "display.Refresh", err)
	}
	for i := 0; i < d.cfg.SettleRefreshes; i++ {
		if err := d.surf.QuickRefresh(); err != nil {
			return tick, errcode.Wrap(errcode.RefreshFailed, "display.QuickRefresh", err)
		}
	}
	return tick, nil
}

// sample commits the accumulated readings. Nothing is committed before
// the first temperature reading.
func (d *Display) sample() {
	if !d.temp.valid {
		return
	}
	t := d.temp.take()
	d.temps.Push(t)

	if d.weekMax.Empty() || d.newDay {
		d.weekMax.Push(t)
		d.weekMin.Push(t)
		d.newDay = false
	} else {
		d.weekMax.SetNewest(max(d.weekMax.At(0), t))
		d.weekMin.SetNewest(min(d.weekMin.At(0), t))
	}

	if d.humids != nil && d.humid.valid {
		d.humids.Push(d.humid.take())
	}
}
