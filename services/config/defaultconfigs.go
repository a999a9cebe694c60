package config

// -----------------------------------------------------------------------------
// Embedded presets
//
// Key: variant name (selected by build tag on the MCU, by flag on the host)
// Val: raw JSON for that variant
// -----------------------------------------------------------------------------

// 2.13" 250x122 panel with an AHT20: humidity readout and sparkline.
const cfgPicoT = `{
  "display": {
    "width": 250, "height": 122,
    "mins_per_pixel": 10, "hist_hours": 24,
    "temp_margin": 10,
    "caps": ["humidity"]
  },
  "sensor": {"kind": "aht20"},
  "log_level": "info"
}`

// Waveshare Pico e-Paper 2.13 with an MCP9808. The panel ghosts after a
// full refresh until a few quick ones have run.
const cfgWaveshare = `{
  "display": {
    "width": 250, "height": 122,
    "mins_per_pixel": 10, "hist_hours": 24,
    "temp_margin": 5,
    "settle_refreshes": 3,
    "caps": ["weekly_bars"]
  },
  "sensor": {"kind": "mcp9808", "address": 24},
  "log_level": "info"
}`

const cfgBadger = `{
  "display": {
    "width": 296, "height": 128,
    "mins_per_pixel": 10, "hist_hours": 24,
    "temp_margin": 10,
    "caps": ["weekly_bars"]
  },
  "sensor": {"kind": "mcp9808"},
  "log_level": "info"
}`

// Host simulator.
const cfgNative = `{
  "display": {
    "width": 296, "height": 128,
    "mins_per_pixel": 10, "hist_hours": 24,
    "temp_margin": 10,
    "caps": ["weekly_bars", "humidity"]
  },
  "sensor": {"kind": "ramp"},
  "log_level": "debug"
}`

var embeddedConfigs = map[string][]byte{
	"picot":              []byte(cfgPicoT),
	"picoplot-waveshare": []byte(cfgWaveshare),
	"badger2040":         []byte(cfgBadger),
	"native":             []byte(cfgNative),
}
