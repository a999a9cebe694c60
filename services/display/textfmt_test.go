package display

import "testing"

func TestAppendTemp(t *testing.T) {
	cases := []struct {
		deci          int32
		decimal, unit bool
		want          string
	}{
		{231, true, true, " 23.1\x7fC"},
		{250, false, true, " 25\x7fC"},
		{-55, true, false, "- 5.5"},
		{-3, true, false, "- 0.3"},
		{0, true, false, "  0.0"},
		{-4, false, false, "  0"},
		{-5, false, false, "- 1"},
		{5, false, false, "  1"},
		{194, false, false, " 19"},
		{195, false, false, " 20"},
		{-195, false, false, "-20"},
		{1234, false, false, " 123"},
	}
	for _, c := range cases {
		got := string(AppendTemp(nil, c.deci, c.decimal, c.unit))
		if got != c.want {
			t.Errorf("AppendTemp(%d,%v,%v)=%q want %q", c.deci, c.decimal, c.unit, got, c.want)
		}
	}
}

func TestAppendTempNoAlloc(t *testing.T) {
	var buf [16]byte
	allocs := testing.AllocsPerRun(100, func() {
		_ = AppendTemp(buf[:0], -123, true, true)
	})
	if allocs != 0 {
		t.Fatalf("allocs=%v", allocs)
	}
}

func TestAppendOthers(t *testing.T) {
	cases := []struct{ got, want string }{
		{string(AppendHumidity(nil, 543)), "54.3%"},
		{string(AppendHumidity(nil, 5)), " 0.5%"},
		{string(AppendHumidity(nil, 1000)), "100.0%"},
		{string(AppendVolts(nil, 4123)), "4.12V"},
		{string(AppendVolts(nil, 3050)), "3.05V"},
		{string(AppendClock(nil, 7, 5)), "07:05"},
		{string(AppendClock(nil, 23, 59)), "23:59"},
	}
	for i, c := range cases {
		if c.got != c.want {
			t.Errorf("case %d: %q want %q", i, c.got, c.want)
		}
	}
}
