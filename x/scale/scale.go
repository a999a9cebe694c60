// Package scale maps integer values onto pixel positions with a Q16
// fixed-point slope.
package scale

// Shift is the number of fractional bits in the slope.
//
// With a 64-bit intermediate the product (value span * slope) cannot
// overflow for the ranges used here (tenths of a degree and minutes against
// a few hundred pixels).
const Shift = 16

// Scale is a linear transform from [valMin, valMax] to [posMin, posMax].
// posMax may be smaller than posMin (e.g. a Y axis growing upwards).
type Scale struct {
	posMin, posMax int32
	valMin, valMax int32
	slope          int32 // Q16 pixels per value unit
}

// New returns a scale over a fixed pixel range. SetRange must be called
// before Pos.
func New(posMin, posMax int32) Scale {
	return Scale{posMin: posMin, posMax: posMax}
}

func (s *Scale) MinPos() int32 { return s.posMin }
func (s *Scale) MaxPos() int32 { return s.posMax }
func (s *Scale) MinVal() int32 { return s.valMin }
func (s *Scale) MaxVal() int32 { return s.valMax }

// SetRange sets the value range and recomputes the slope. It panics when
// valMin == valMax; callers pad degenerate ranges first.
func (s *Scale) SetRange(valMin, valMax int32) {
	if valMax == valMin {
		panic("scale: empty value range")
	}
	s.valMin = valMin
	s.valMax = valMax
	s.slope = int32((int64(s.posMax-s.posMin) << Shift) / int64(valMax-valMin))
}

// Pos returns the pixel position of v. The result is not clamped to the
// pixel range. The shift is arithmetic, so fractional positions truncate
// toward negative infinity.
func (s *Scale) Pos(v int32) int32 {
	return s.posMin + int32((int64(v-s.valMin)*int64(s.slope))>>Shift)
}
