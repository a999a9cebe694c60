// Package ramp generates deterministic integer waveforms for simulated
// sensors.
package ramp

// Linear returns the i-th of steps points interpolated from 'from' to 'to'
// (i == 0 gives from, i >= steps gives to). steps == 0 snaps to 'to'.
func Linear(from, to int32, steps, i uint32) int32 {
	if steps == 0 || i >= steps {
		return to
	}
	d := int64(to) - int64(from)
	return from + int32(d*int64(i)/int64(steps))
}

// Triangle is a periodic ramp from Lo up to Hi and back, Period steps long.
type Triangle struct {
	Lo, Hi int32
	Period uint32 // steps per full cycle; values < 2 hold at Lo
	Phase  uint32 // step offset applied before folding
}

// At returns the waveform value at step n.
func (t Triangle) At(n uint32) int32 {
	if t.Period < 2 {
		return t.Lo
	}
	half := t.Period / 2
	p := (n + t.Phase) % t.Period
	if p < half {
		return Linear(t.Lo, t.Hi, half, p)
	}
	return Linear(t.Hi, t.Lo, t.Period-half, p-half)
}
