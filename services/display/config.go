package display

import (
	"picoplot-go/errcode"
	"picoplot-go/types"
)

// Config fixes the canvas geometry, sampling cadence and optional features.
type Config struct {
	Width, Height int32

	// MinsPerPixel is the number of Draw calls (minutes) per history sample,
	// and the horizontal resolution of the strip chart.
	MinsPerPixel int32
	// HistHours is the strip chart time span.
	HistHours int32
	// TempMargin pads the temperature axes, in tenths of a degree.
	TempMargin int32
	// SettleRefreshes is the number of quick refreshes issued after each full
	// refresh. Some bistable panels keep ghosting until a few have run.
	SettleRefreshes int

	Caps types.Capability
}

// DefaultConfig matches the 2.13" 250x122 panel with a 24 hour chart.
func DefaultConfig() Config {
	return Config{
		Width:        250,
		Height:       122,
		MinsPerPixel: 10,
		HistHours:    24,
		TempMargin:   10,
	}
}

// Samples is the temperature history capacity: one sample per chart column.
func (c Config) Samples() int32 {
	return c.HistHours * 60 / c.MinsPerPixel
}

// SamplePeriodSecs is the time covered by one history sample.
func (c Config) SamplePeriodSecs() int32 { return c.MinsPerPixel * 60 }

// Validate checks the geometry leaves room for the chart and readouts.
func (c Config) Validate() error {
	bad := func(msg string) error {
		return &errcode.E{C: errcode.InvalidConfig, Op: "display.Config", Msg: msg}
	}
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return bad("width and height must be positive")
	case c.MinsPerPixel <= 0 || c.HistHours <= 0 || c.HistHours > 24:
		return bad("mins_per_pixel must be positive and hist_hours in 1..24")
	case (c.HistHours*60)%c.MinsPerPixel != 0:
		return bad("hist_hours*60 must be a multiple of mins_per_pixel")
	case c.Samples() < 2:
		return bad("history must hold at least two samples")
	case c.TempMargin <= 0:
		return bad("temp_margin must be positive")
	case c.SettleRefreshes < 0:
		return bad("settle_refreshes must not be negative")
	case c.Height < minHeight:
		return bad("height too small for the dashboard")
	case plotLeft+c.Samples()+panelMinWidth > c.Width:
		return bad("width too small for chart and readout panel")
	}
	return nil
}
