package types

// ------------------------
// Dashboard capabilities
// ------------------------

// Capability is a bit set of optional dashboard features.
type Capability uint8

const (
	CapHumidity   Capability = 1 << iota // humidity readout + sparkline
	CapWeeklyBars                        // weekly min/max bar chart
	CapBattery                           // battery voltage readout
)

// Config names, as used in the embedded variant presets.
var capabilityNames = [...]struct {
	name string
	cap  Capability
}{
	{"humidity", CapHumidity},
	{"weekly_bars", CapWeeklyBars},
	{"battery", CapBattery},
}

// Has reports whether every bit of c is set.
func (s Capability) Has(c Capability) bool { return s&c == c }

// ParseCapability returns the capability for a config name.
func ParseCapability(name string) (Capability, bool) {
	for _, e := range capabilityNames {
		if e.name == name {
			return e.cap, true
		}
	}
	return 0, false
}

// Names lists the config names of the set bits, in declaration order.
func (s Capability) Names() []string {
	var out []string
	for _, e := range capabilityNames {
		if s.Has(e.cap) {
			out = append(out, e.name)
		}
	}
	return out
}
