package display

import "picoplot-go/types"

const (
	plotLeft      = 20 // room for temperature labels
	plotTop       = 3
	plotFootRoom  = 10 // hour labels under the chart
	panelGap      = 4
	panelMinWidth = 80
	minHeight     = 100

	fatPointArm = 1
	gridDot     = 5 // gridline dot pitch
)

// layout is derived once from Config.
type layout struct {
	plotRight, plotBottom int32

	panelX, panelRight int32

	bigY       int32    // current reading
	summaryY   [3]int32 // mx, av, mn rows
	summaryN   int      // rows in use
	humX, humY int32
	batX, batY int32

	// Secondary panel: weekly bars or humidity sparkline.
	subLeft, subRight, subTop, subBottom int32

	dayY, timeY int32
}

func newLayout(c Config) layout {
	var l layout
	l.plotRight = plotLeft + c.Samples()
	l.plotBottom = c.Height - plotFootRoom
	l.panelX = l.plotRight + panelGap
	l.panelRight = c.Width - 2

	l.bigY = 2
	l.dayY = c.Height - 32
	l.timeY = c.Height - 14

	px := l.panelX
	if c.Caps.Has(types.CapWeeklyBars) {
		l.summaryY = [3]int32{22, 32}
		l.summaryN = 2
		l.humX, l.humY = px+60, 22
		l.batX, l.batY = px+60, 32
		l.subLeft, l.subRight = px+2, l.panelRight
		l.subTop, l.subBottom = 46, c.Height-44
		return l
	}

	l.summaryY = [3]int32{22, 36, 50}
	l.summaryN = 3
	l.humX, l.humY = px+12, 64
	l.batX, l.batY = px+12, 74
	l.subLeft, l.subRight = px+48, l.panelRight
	l.subTop, l.subBottom = 62, c.Height-38
	return l
}
