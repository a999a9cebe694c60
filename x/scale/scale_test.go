package scale

import "testing"

func TestPosEndpointsAndMidpoint(t *testing.T) {
	s := New(0, 100)
	s.SetRange(0, 10)
	cases := []struct{ v, want int32 }{
		{0, 0},
		{5, 50},
		{10, 100},
	}
	for _, c := range cases {
		if got := s.Pos(c.v); got != c.want {
			t.Fatalf("Pos(%d)=%d, want %d", c.v, got, c.want)
		}
	}
}

func TestInvertedAxis(t *testing.T) {
	// Y axis: bottom pixel 112 holds the minimum value.
	s := New(112, 3)
	s.SetRange(150, 259)
	if got := s.Pos(150); got != 112 {
		t.Fatalf("Pos(min)=%d, want 112", got)
	}
	if got := s.Pos(259); got < 2 || got > 4 {
		t.Fatalf("Pos(max)=%d, want ~3", got)
	}
	if a, b := s.Pos(200), s.Pos(210); a <= b {
		t.Fatalf("larger value should be higher on screen: %d vs %d", a, b)
	}
}

func TestNegativeTimeAxis(t *testing.T) {
	s := New(20, 164)
	s.SetRange(-24*60, 0)
	if got := s.Pos(-24 * 60); got != 20 {
		t.Fatalf("Pos(-24h)=%d, want 20", got)
	}
	// The Q16 slope is truncated, so the far end may fall one pixel short.
	if got := s.Pos(0); got != 163 && got != 164 {
		t.Fatalf("Pos(now)=%d, want 163..164", got)
	}
	if got := s.Pos(-12 * 60); got != 91 && got != 92 {
		t.Fatalf("Pos(-12h)=%d, want 91..92", got)
	}
	prev := s.Pos(-24 * 60)
	for m := int32(-24*60 + 10); m <= 0; m += 10 {
		p := s.Pos(m)
		if p < prev || p-prev > 1 {
			t.Fatalf("Pos(%d)=%d after %d: want one pixel per 10 minutes", m, p, prev)
		}
		prev = p
	}
}

func TestExtrapolatesAndTruncatesDown(t *testing.T) {
	s := New(0, 10)
	s.SetRange(0, 3) // slope 3.333 px/unit
	if got := s.Pos(6); got != 19 && got != 20 {
		t.Fatalf("Pos(6)=%d, want ~20 (not clamped)", got)
	}
	if got := s.Pos(-1); got != -4 {
		// -3.33 truncates toward negative infinity.
		t.Fatalf("Pos(-1)=%d, want -4", got)
	}
}

func TestSetRangeRecomputesSlope(t *testing.T) {
	s := New(0, 100)
	s.SetRange(0, 10)
	s.SetRange(0, 100)
	if got := s.Pos(50); got != 50 {
		t.Fatalf("Pos(50)=%d after re-range, want 50", got)
	}
	if s.MinVal() != 0 || s.MaxVal() != 100 || s.MinPos() != 0 || s.MaxPos() != 100 {
		t.Fatalf("accessors out of sync")
	}
}

func TestDegenerateRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("SetRange(5,5) did not panic")
		}
	}()
	s := New(0, 10)
	s.SetRange(5, 5)
}
