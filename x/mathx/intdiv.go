package mathx

import "golang.org/x/exp/constraints"

// Go's integer division truncates toward zero. Axis maths needs ceiling and
// rounding on signed values (temperatures go negative), so these helpers
// correct the quotient when the signs differ. b must be non-zero.

// CeilDiv returns ceil(a/b).
func CeilDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if (a%b != 0) && ((a < 0) == (b < 0)) {
		q++
	}
	return q
}

// RoundDiv returns a/b rounded half away from zero.
func RoundDiv[T constraints.Signed](a, b T) T {
	if b < 0 {
		a, b = -a, -b
	}
	if a < 0 {
		return -((-a + b/2) / b)
	}
	return (a + b/2) / b
}

// CeilTo rounds v up to the next multiple of step (step > 0).
func CeilTo[T constraints.Signed](v, step T) T {
	return CeilDiv(v, step) * step
}
