package canvas

import (
	"errors"
	"image/color"
	"testing"

	"picoplot-go/errcode"
	"picoplot-go/services/display"
	"picoplot-go/types"
)

func newCanvas(t *testing.T, w, h int16) (*Canvas, *Frame) {
	t.Helper()
	f := NewFrame(w, h)
	c, err := New(f, DefaultFonts())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, f
}

func blackIn(f *Frame, x0, y0, x1, y1 int) (in, out int) {
	for y := 0; y < int(f.h); y++ {
		for x := 0; x < int(f.w); x++ {
			if !f.Black(x, y) {
				continue
			}
			if x >= x0 && x <= x1 && y >= y0 && y <= y1 {
				in++
			} else {
				out++
			}
		}
	}
	return in, out
}

func TestPointsAndClipping(t *testing.T) {
	c, f := newCanvas(t, 40, 20)
	c.DrawPoint(types.Black, 3, 4)
	c.DrawPoint(types.Black, -1, 4)
	c.DrawPoint(types.Black, 40, 0)
	c.DrawPoint(types.Black, 0, 20)
	c.FillRect(types.Black, -5, -5, 100, -1)
	_ = c.Refresh()
	if !f.Black(3, 4) || f.BlackPixels() != 1 {
		t.Fatalf("black=%d", f.BlackPixels())
	}
}

func TestFillRectEitherCorner(t *testing.T) {
	c, f := newCanvas(t, 40, 20)
	c.FillRect(types.Black, 12, 9, 3, 2)
	_ = c.QuickRefresh()
	in, out := blackIn(f, 3, 2, 12, 9)
	if in != 10*8 || out != 0 {
		t.Fatalf("in=%d out=%d", in, out)
	}

	c.Clear(types.White)
	_ = c.QuickRefresh()
	if f.BlackPixels() != 0 {
		t.Fatal("clear left pixels")
	}
	c.Clear(types.Black)
	_ = c.QuickRefresh()
	if f.BlackPixels() != 40*20 {
		t.Fatalf("black clear=%d", f.BlackPixels())
	}
}

func TestLine(t *testing.T) {
	c, f := newCanvas(t, 40, 20)
	c.DrawLine(types.Black, 2, 5, 30, 5)
	_ = c.Refresh()
	in, out := blackIn(f, 2, 5, 30, 5)
	if in != 29 || out != 0 {
		t.Fatalf("in=%d out=%d", in, out)
	}
}

func TestTextAnchoredTopLeft(t *testing.T) {
	c, f := newCanvas(t, 60, 30)
	txt := []byte(" 20\x7fC")
	c.DrawText(types.Black, types.White, 10, 8, types.FontSmall, txt)
	_ = c.Refresh()

	fc := c.face(types.FontSmall)
	w := int(c.textWidth(fc, txt))
	in, out := blackIn(f, 10, 8, 10+w-1, 8+int(fc.height)-1)
	if in == 0 || out != 0 {
		t.Fatalf("in=%d out=%d box=%dx%d", in, out, w, fc.height)
	}
	if c.CharWidth(types.FontSmall) <= 0 {
		t.Fatal("zero advance")
	}
}

func TestTextBackgroundErases(t *testing.T) {
	c, f := newCanvas(t, 60, 30)
	c.Clear(types.Black)
	c.DrawChar(types.Black, types.White, 5, 5, types.FontSmall, ' ')
	_ = c.Refresh()
	fc := c.face(types.FontSmall)
	adv := int(c.charWidth(fc, ' '))
	if f.Black(5, 5) || f.Black(5+adv-1, 5+int(fc.height)-1) {
		t.Fatal("background not filled")
	}
	if !f.Black(5+adv, 5) {
		t.Fatal("filled past the glyph")
	}
}

func TestDegreeGlyph(t *testing.T) {
	c, f := newCanvas(t, 30, 30)
	c.DrawChar(types.Black, types.White, 4, 4, types.FontHuge, types.GlyphDegree)
	_ = c.Refresh()
	d := int(c.face(types.FontHuge).degree)
	in, out := blackIn(f, 4, 4, 4+d-1, 4+d-1)
	if in == 0 || out != 0 {
		t.Fatalf("in=%d out=%d", in, out)
	}
	// hollow
	if f.Black(4+d/2, 4+d/2) && d > 3 {
		t.Fatal("degree ring filled")
	}
}

func TestVisibleOnlyAfterRefresh(t *testing.T) {
	c, f := newCanvas(t, 10, 10)
	c.DrawPoint(types.Black, 1, 1)
	if f.Black(1, 1) {
		t.Fatal("visible before refresh")
	}
	_ = c.QuickRefresh()
	_ = c.Refresh()
	if !f.Black(1, 1) || f.Full != 1 || f.Quick != 1 {
		t.Fatalf("full=%d quick=%d", f.Full, f.Quick)
	}
	if f.At(1, 1) != (color.Gray{Y: 0}) || f.At(2, 2) != (color.Gray{Y: 0xff}) {
		t.Fatal("image colours")
	}
}

type failingPanel struct{ *Frame }

var errBusy = errors.New("busy")

func (failingPanel) Display() error      { return errBusy }
func (failingPanel) DisplayQuick() error { return errBusy }

func TestRefreshErrors(t *testing.T) {
	c, err := New(failingPanel{NewFrame(8, 8)}, DefaultFonts())
	if err != nil {
		t.Fatal(err)
	}
	for _, fn := range []func() error{c.Refresh, c.QuickRefresh} {
		err := fn()
		if !errors.Is(err, errBusy) || errcode.Of(err) != errcode.RefreshFailed {
			t.Fatalf("err=%v", err)
		}
	}
	if _, err := New(nil, DefaultFonts()); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("nil panel: %v", err)
	}
	if _, err := New(NewFrame(8, 8), Fonts{}); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("no fonts: %v", err)
	}
}

func TestDashboardOnFrame(t *testing.T) {
	c, f := newCanvas(t, 296, 128)
	cfg := display.DefaultConfig()
	cfg.Width, cfg.Height = c.Size()
	cfg.Caps = types.CapWeeklyBars | types.CapHumidity
	d, err := display.New(c, cfg)
	if err != nil {
		t.Fatal(err)
	}
	d.SetDay(2, 14)
	for m := 0; m < 120; m++ {
		d.SetTime(9+m/60, m%60)
		d.SetTemp(types.Q8FromDeciC(int32(180 + m)))
		d.SetHumidity(450)
		if _, err := d.Draw(); err != nil {
			t.Fatal(err)
		}
	}
	if f.Full != 12 || f.Quick != 108 {
		t.Fatalf("full=%d quick=%d", f.Full, f.Quick)
	}
	if f.BlackPixels() < 500 {
		t.Fatalf("only %d black pixels", f.BlackPixels())
	}
}
