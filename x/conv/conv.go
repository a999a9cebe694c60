// Package conv formats integers into caller-supplied buffers without
// allocating and without fmt/strconv.
package conv

// Utoa writes the base-10 representation of n into the tail of buf and
// returns the used slice. buf should be at least 20 bytes for uint64.
func Utoa(buf []byte, n uint64) []byte {
	i := len(buf)
	if i == 0 {
		return buf[:0]
	}
	if n == 0 {
		i--
		buf[i] = '0'
		return buf[i:]
	}
	for n > 0 && i > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return buf[i:]
}

// AppendPadded appends the decimal form of n to dst, left-padded with pad
// to at least width bytes. Digits beyond width are kept, not truncated.
func AppendPadded(dst []byte, n uint64, width int, pad byte) []byte {
	var tmp [20]byte
	d := Utoa(tmp[:], n)
	for k := len(d); k < width; k++ {
		dst = append(dst, pad)
	}
	return append(dst, d...)
}
