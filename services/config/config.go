// Package config resolves a named build variant to its dashboard geometry,
// feature set and sensor wiring. Presets are embedded JSON.
package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"maps"
	"slices"

	"picoplot-go/errcode"
	"picoplot-go/services/display"
	"picoplot-go/types"
)

// EmbeddedConfigLookup allows overriding how presets are resolved.
var EmbeddedConfigLookup = func(variant string) ([]byte, bool) {
	b, ok := embeddedConfigs[variant]
	return b, ok
}

// Variants lists the embedded preset names, sorted.
func Variants() []string {
	return slices.Sorted(maps.Keys(embeddedConfigs))
}

// Sensor kinds.
const (
	SensorMCP9808 = "mcp9808"
	SensorAHT20   = "aht20"
	SensorBME280  = "bme280"
	SensorRamp    = "ramp"
)

// Sensor selects the temperature (and humidity) source.
type Sensor struct {
	Kind    string `json:"kind"`
	Address uint16 `json:"address,omitempty"` // 0 = driver default
}

// Variant is a decoded preset.
type Variant struct {
	Name     string
	Display  display.Config
	Sensor   Sensor
	LogLevel slog.Level
}

type displayJSON struct {
	Width           int32    `json:"width"`
	Height          int32    `json:"height"`
	MinsPerPixel    int32    `json:"mins_per_pixel"`
	HistHours       int32    `json:"hist_hours"`
	TempMargin      int32    `json:"temp_margin"`
	SettleRefreshes int      `json:"settle_refreshes"`
	Caps            []string `json:"caps"`
}

type variantJSON struct {
	Display  displayJSON `json:"display"`
	Sensor   Sensor      `json:"sensor"`
	LogLevel string      `json:"log_level"`
}

// Load decodes and validates the named preset.
func Load(name string) (Variant, error) {
	raw, ok := EmbeddedConfigLookup(name)
	if !ok || len(raw) == 0 {
		return Variant{}, &errcode.E{C: errcode.UnknownVariant, Op: "config.Load", Msg: name}
	}
	v, err := Parse(raw)
	if err != nil {
		return Variant{}, err
	}
	v.Name = name
	return v, nil
}

// Parse decodes a preset document. Unknown fields are rejected.
func Parse(raw []byte) (Variant, error) {
	bad := func(msg string, err error) error {
		return &errcode.E{C: errcode.InvalidConfig, Op: "config.Parse", Msg: msg, Err: err}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var in variantJSON
	if err := dec.Decode(&in); err != nil {
		return Variant{}, bad("decode", err)
	}

	v := Variant{
		Display: display.Config{
			Width:           in.Display.Width,
			Height:          in.Display.Height,
			MinsPerPixel:    in.Display.MinsPerPixel,
			HistHours:       in.Display.HistHours,
			TempMargin:      in.Display.TempMargin,
			SettleRefreshes: in.Display.SettleRefreshes,
		},
		Sensor: in.Sensor,
	}
	for _, name := range in.Display.Caps {
		c, ok := types.ParseCapability(name)
		if !ok {
			return Variant{}, bad("unknown capability "+name, nil)
		}
		v.Display.Caps |= c
	}
	if err := v.Display.Validate(); err != nil {
		return Variant{}, err
	}

	switch v.Sensor.Kind {
	case SensorMCP9808, SensorAHT20, SensorBME280, SensorRamp:
	default:
		return Variant{}, bad("unknown sensor "+v.Sensor.Kind, nil)
	}
	if v.Display.Caps.Has(types.CapHumidity) && v.Sensor.Kind == SensorMCP9808 {
		return Variant{}, bad("humidity needs a humidity sensor", nil)
	}

	if in.LogLevel != "" {
		if err := v.LogLevel.UnmarshalText([]byte(in.LogLevel)); err != nil {
			return Variant{}, bad("log_level", err)
		}
	}
	return v, nil
}
