package conv

import "testing"

func TestUtoa(t *testing.T) {
	var buf [24]byte
	for _, c := range []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{1234567890, "1234567890"},
	} {
		if got := string(Utoa(buf[:], c.n)); got != c.want {
			t.Fatalf("Utoa(%d)=%q, want %q", c.n, got, c.want)
		}
	}
	if got := string(Utoa(buf[:], 18446744073709551615)); got != "18446744073709551615" {
		t.Fatalf("Utoa(max)=%q", got)
	}
	if got := Utoa(nil, 5); len(got) != 0 {
		t.Fatalf("Utoa(nil) should be empty")
	}
}

func TestAppendPadded(t *testing.T) {
	var store [8]byte
	for _, c := range []struct {
		n     uint64
		width int
		pad   byte
		want  string
	}{
		{5, 2, ' ', " 5"},
		{5, 2, '0', "05"},
		{23, 2, '0', "23"},
		{123, 2, ' ', "123"},
		{0, 1, ' ', "0"},
	} {
		got := AppendPadded(store[:0], c.n, c.width, c.pad)
		if string(got) != c.want {
			t.Fatalf("AppendPadded(%d,%d,%q)=%q, want %q", c.n, c.width, c.pad, got, c.want)
		}
	}
}
