package display

import (
	"picoplot-go/types"
	"picoplot-go/x/conv"
	"picoplot-go/x/mathx"
	"picoplot-go/x/timex"
)

const (
	fineGrid       = 10 // 1 degree, in tenths
	coarseGrid     = 50
	coarseSpan     = 100 // spans of 10 degrees or more use the coarse grid
	majorTick      = 3
	minorTick      = 2
	hourLabelEvery = 3
	humidMargin    = 10
	letterHeight   = 6 // small font line height
)

var (
	lblMax = []byte("mx")
	lblAvg = []byte("av")
	lblMin = []byte("mn")
)

func (d *Display) render() {
	d.surf.Clear(types.White)
	d.drawReadouts()
	d.drawStripChart()
	if d.cfg.Caps.Has(types.CapWeeklyBars) {
		d.drawWeek()
		return
	}
	d.drawHistorySummary()
	if d.humids != nil {
		d.drawHumidity()
	}
}

func (d *Display) text(x, y int32, f types.Font, b []byte) {
	d.surf.DrawText(types.Black, types.White, x, y, f, b)
}

func (d *Display) charWidth(f types.Font) int32 {
	if d.cw != nil {
		return d.cw.CharWidth(f)
	}
	return 4
}

func (d *Display) drawReadouts() {
	l := &d.lay
	if d.temp.valid {
		d.text(l.panelX, l.bigY, types.FontHuge, AppendTemp(d.txt[:0], d.temp.last, true, true))
	}
	if d.cfg.Caps.Has(types.CapHumidity) && d.humid.valid {
		d.text(l.humX, l.humY, types.FontMedium, AppendHumidity(d.txt[:0], d.humid.last))
	}
	if d.cfg.Caps.Has(types.CapBattery) && d.vbat != 0 {
		d.text(l.batX, l.batY, types.FontMedium, AppendVolts(d.txt[:0], d.vbat))
	}
	if d.dayKnown {
		b := append(d.txt[:0], dayNames[d.dow]...)
		d.text(l.panelX+12, l.dayY, types.FontLarge, b)
		d.text(l.panelX+51, l.dayY, types.FontLarge, conv.AppendPadded(d.txt[:0], uint64(d.dom), 2, ' '))
	}
	d.text(l.panelX+12, l.timeY, types.FontLarge, AppendClock(d.txt[:0], d.hour, d.minute))
}

// tempRange is the padded temperature axis range. ok is false before the
// first reading.
func (d *Display) tempRange() (lo, hi int32, ok bool) {
	switch {
	case !d.temps.Empty():
		lo, hi = d.temps.Min(), d.temps.Max()
	case d.temp.valid:
		lo, hi = d.temp.last, d.temp.last
	default:
		return 0, 0, false
	}
	return lo - d.cfg.TempMargin, hi + d.cfg.TempMargin, true
}

func (d *Display) drawStripChart() {
	l := &d.lay
	s := d.surf
	s.DrawLine(types.Black, plotLeft, plotTop, l.plotRight, plotTop)
	s.DrawLine(types.Black, plotLeft, l.plotBottom, l.plotRight, l.plotBottom)
	s.DrawLine(types.Black, plotLeft, plotTop, plotLeft, l.plotBottom)
	s.DrawLine(types.Black, l.plotRight, plotTop, l.plotRight, l.plotBottom)

	d.drawTimeAxis()

	lo, hi, ok := d.tempRange()
	if !ok {
		return
	}
	d.tempY.SetRange(lo, hi)
	d.drawTempAxis()

	mpp := d.cfg.MinsPerPixel
	for i, n := 0, d.temps.Size(); i < n; i++ {
		x := d.timeX.Pos(-int32(i) * mpp)
		y := d.tempY.Pos(d.temps.At(i))
		d.fatPoint(x, y)
	}
}

func (d *Display) drawTempAxis() {
	l := &d.lay
	s := d.surf
	lo, hi := d.tempY.MinVal(), d.tempY.MaxVal()

	grid := int32(fineGrid)
	if hi-lo >= coarseSpan {
		grid = coarseGrid
	}
	step := grid / 5

	for v := mathx.CeilTo(lo, step); v <= hi; v += step {
		y := d.tempY.Pos(v)
		n := int32(minorTick)
		if v%grid == 0 {
			n = majorTick
			d.text(0, y-2, types.FontSmall, AppendTemp(d.txt[:0], v, false, false))
			for x := int32(plotLeft + gridDot); x < l.plotRight; x += gridDot {
				s.DrawPoint(types.Black, x, y)
			}
		}
		s.DrawLine(types.Black, plotLeft-n, y, plotLeft-1, y)
		s.DrawLine(types.Black, l.plotRight+1, y, l.plotRight+n, y)
	}
}

// drawTimeAxis ticks each wall-clock hour inside the chart window, newest
// at the right edge.
func (d *Display) drawTimeAxis() {
	l := &d.lay
	s := d.surf
	now := timex.MinuteOfDay(d.hour, d.minute)
	window := int(d.cfg.HistHours * 60)

	for h := 0; h < 24; h++ {
		past := timex.MinutesSince(now, timex.MinuteOfDay(h, 0))
		if past > window {
			continue
		}
		x := d.timeX.Pos(-int32(past))
		n := int32(minorTick)
		if h%hourLabelEvery == 0 {
			n = majorTick
			d.text(x-4, l.plotBottom+majorTick+1, types.FontSmall, conv.AppendPadded(d.txt[:0], uint64(h), 2, ' '))
			for y := int32(plotTop + gridDot); y < l.plotBottom; y += gridDot {
				s.DrawPoint(types.Black, x, y)
			}
		}
		s.DrawLine(types.Black, x, l.plotBottom+1, x, l.plotBottom+n)
		s.DrawLine(types.Black, x, plotTop-n, x, plotTop-1)
	}
}

// fatPoint draws a plus of five pixels centred on (x, y).
func (d *Display) fatPoint(x, y int32) {
	s := d.surf
	s.DrawPoint(types.Black, x, y)
	s.DrawPoint(types.Black, x-fatPointArm, y)
	s.DrawPoint(types.Black, x+fatPointArm, y)
	s.DrawPoint(types.Black, x, y-fatPointArm)
	s.DrawPoint(types.Black, x, y+fatPointArm)
}

func (d *Display) summaryLine(row int, label []byte, v int32) {
	l := &d.lay
	y := l.summaryY[row]
	d.text(l.panelX+12, y+2, types.FontSmall, label)
	d.text(l.panelX+28, y, types.FontMedium, AppendTemp(d.txt[:0], v, true, false))
}

func (d *Display) drawHistorySummary() {
	if d.temps.Empty() {
		return
	}
	lo, hi, avg := d.temps.Stats()
	d.summaryLine(0, lblMax, hi)
	d.summaryLine(1, lblAvg, avg)
	d.summaryLine(2, lblMin, lo)
}

// drawWeek draws one min..max bar per day, today rightmost, with the
// weekday initial under each bar.
func (d *Display) drawWeek() {
	if d.weekMax.Empty() {
		return
	}
	l := &d.lay
	s := d.surf

	hi, lo := d.weekMax.Max(), d.weekMin.Min()
	d.summaryLine(0, lblMax, hi)
	d.summaryLine(1, lblMin, lo)

	d.weekY.SetRange(lo-d.cfg.TempMargin, hi+d.cfg.TempMargin)
	s.DrawLine(types.Black, l.subLeft, l.subBottom+1, l.subRight, l.subBottom+1)

	slot := (l.subRight - l.subLeft + 1) / weekDays
	cw := d.charWidth(types.FontSmall)
	for i, n := 0, d.weekMax.Size(); i < n; i++ {
		x2 := l.subRight - int32(i)*slot
		x1 := x2 - slot + 2
		top, bot := d.weekY.Pos(d.weekMax.At(i)), d.weekY.Pos(d.weekMin.At(i))
		s.FillRect(types.Black, x1, top, x2, bot)

		// letter sits inverted on the middle of the bar
		dow := ((d.dow-i)%weekDays + weekDays) % weekDays
		s.DrawChar(types.White, types.Black, (x1+x2)/2-cw/2, (top+bot)/2-letterHeight/2, types.FontSmall, dayLetters[dow])
	}
}

// drawHumidity plots the humidity history as single pixels in the
// secondary panel, newest at the right.
func (d *Display) drawHumidity() {
	if d.humids.Empty() {
		return
	}
	l := &d.lay
	s := d.surf
	d.humidY.SetRange(d.humids.Min()-humidMargin, d.humids.Max()+humidMargin)
	s.DrawLine(types.Black, l.subLeft-1, l.subTop, l.subLeft-1, l.subBottom)
	s.DrawLine(types.Black, l.subLeft-1, l.subBottom, l.subRight, l.subBottom)
	for i, n := 0, d.humids.Size(); i < n; i++ {
		s.DrawPoint(types.Black, d.humidX.Pos(-int32(i)), d.humidY.Pos(d.humids.At(i)))
	}
}
