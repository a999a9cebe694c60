package ramp

import "testing"

func TestLinear(t *testing.T) {
	if got := Linear(0, 100, 10, 0); got != 0 {
		t.Fatalf("start=%d", got)
	}
	if got := Linear(0, 100, 10, 5); got != 50 {
		t.Fatalf("mid=%d", got)
	}
	if got := Linear(0, 100, 10, 12); got != 100 {
		t.Fatalf("past end=%d", got)
	}
	if got := Linear(100, -100, 4, 3); got != -50 {
		t.Fatalf("descending=%d", got)
	}
	if got := Linear(3, 9, 0, 0); got != 9 {
		t.Fatalf("zero steps should snap, got %d", got)
	}
}

func TestTriangle(t *testing.T) {
	tr := Triangle{Lo: 100, Hi: 200, Period: 20}
	if tr.At(0) != 100 || tr.At(10) != 200 || tr.At(20) != 100 {
		t.Fatalf("corners: %d %d %d", tr.At(0), tr.At(10), tr.At(20))
	}
	if got := tr.At(5); got != 150 {
		t.Fatalf("rising mid=%d", got)
	}
	if got := tr.At(15); got != 150 {
		t.Fatalf("falling mid=%d", got)
	}
	for n := uint32(0); n < 100; n++ {
		v := tr.At(n)
		if v < 100 || v > 200 {
			t.Fatalf("At(%d)=%d out of [100,200]", n, v)
		}
	}
	if (Triangle{Lo: 7, Period: 1}).At(3) != 7 {
		t.Fatalf("degenerate period should hold Lo")
	}
}
