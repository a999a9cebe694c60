package display

import (
	"picoplot-go/types"
	"picoplot-go/x/conv"
	"picoplot-go/x/mathx"
)

var (
	dayNames   = [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}
	dayLetters = [7]byte{'S', 'M', 'T', 'W', 'T', 'F', 'S'}
)

// AppendTemp appends a temperature in tenths of a degree to dst.
//
// The layout is a sign column (space or '-'), the integer degrees
// space-padded to two columns, then optionally '.' and the tenths digit and
// optionally the degree glyph and 'C'. Without the decimal the integer part
// is rounded half away from zero. A value that prints as zero never carries
// a '-'.
func AppendTemp(dst []byte, deci int32, decimal, unit bool) []byte {
	mag := mathx.Abs(deci)
	whole := mag / 10
	if !decimal {
		whole = (mag + 5) / 10
	}
	tenths := mag % 10

	sign := byte(' ')
	if deci < 0 && (whole != 0 || (decimal && tenths != 0)) {
		sign = '-'
	}
	dst = append(dst, sign)
	dst = conv.AppendPadded(dst, uint64(whole), 2, ' ')
	if decimal {
		dst = append(dst, '.', byte('0'+tenths))
	}
	if unit {
		dst = append(dst, types.GlyphDegree, 'C')
	}
	return dst
}

// AppendHumidity appends tenths of %RH as "54.3%".
func AppendHumidity(dst []byte, deci int32) []byte {
	if deci < 0 {
		deci = 0
	}
	dst = conv.AppendPadded(dst, uint64(deci/10), 2, ' ')
	return append(dst, '.', byte('0'+deci%10), '%')
}

// AppendVolts appends millivolts as "4.12V".
func AppendVolts(dst []byte, mv uint32) []byte {
	dst = conv.AppendPadded(dst, uint64(mv/1000), 1, ' ')
	dst = append(dst, '.')
	dst = conv.AppendPadded(dst, uint64(mv%1000/10), 2, '0')
	return append(dst, 'V')
}

// AppendClock appends "HH:MM".
func AppendClock(dst []byte, hour, minute int) []byte {
	dst = conv.AppendPadded(dst, uint64(hour), 2, '0')
	dst = append(dst, ':')
	return conv.AppendPadded(dst, uint64(minute), 2, '0')
}
