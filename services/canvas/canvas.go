// Package canvas draws the dashboard's primitives onto a pixel panel
// using tinydraw and tinyfont.
package canvas

import (
	"image/color"

	"picoplot-go/errcode"
	"picoplot-go/types"
	"picoplot-go/x/mathx"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
)

// Panel is a buffered monochrome display. Display pushes the buffer with a
// full refresh; DisplayQuick with a fast partial one.
type Panel interface {
	drivers.Displayer
	ClearBuffer()
	DisplayQuick() error
}

var palette = [...]color.RGBA{
	types.White: {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	types.Black: {A: 0xff},
}

func rgba(c types.Colour) color.RGBA {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[types.Black]
}

// Canvas implements the renderer's drawing surface over a Panel.
type Canvas struct {
	p     Panel
	w, h  int16
	faces [4]face
}

// New returns a Canvas over p using fonts.
func New(p Panel, fonts Fonts) (*Canvas, error) {
	if p == nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "canvas.New", Msg: "nil panel"}
	}
	c := &Canvas{p: p}
	c.w, c.h = p.Size()
	for i, f := range fonts {
		if f == nil {
			return nil, &errcode.E{C: errcode.InvalidParams, Op: "canvas.New", Msg: "missing font"}
		}
		c.faces[i] = newFace(f)
	}
	return c, nil
}

// Size returns the panel size in pixels.
func (c *Canvas) Size() (w, h int32) { return int32(c.w), int32(c.h) }

func (c *Canvas) face(f types.Font) *face {
	if int(f) >= len(c.faces) {
		f = types.FontSmall
	}
	return &c.faces[f]
}

// CharWidth returns the advance of a digit in f.
func (c *Canvas) CharWidth(f types.Font) int32 { return int32(c.face(f).advance) }

func (c *Canvas) Clear(col types.Colour) {
	if col == types.White {
		c.p.ClearBuffer()
		return
	}
	_ = tinydraw.FilledRectangle(c.p, 0, 0, c.w, c.h, rgba(col))
}

func (c *Canvas) in(x, y int32) bool {
	return x >= 0 && y >= 0 && x < int32(c.w) && y < int32(c.h)
}

func (c *Canvas) DrawPoint(col types.Colour, x, y int32) {
	if c.in(x, y) {
		c.p.SetPixel(int16(x), int16(y), rgba(col))
	}
}

func (c *Canvas) DrawLine(col types.Colour, x1, y1, x2, y2 int32) {
	tinydraw.Line(c.p, c.clampX(x1), c.clampY(y1), c.clampX(x2), c.clampY(y2), rgba(col))
}

// FillRect fills the rectangle with inclusive corners, in either order.
func (c *Canvas) FillRect(col types.Colour, x1, y1, x2, y2 int32) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	x1, y1 = max(x1, 0), max(y1, 0)
	x2, y2 = min(x2, int32(c.w)-1), min(y2, int32(c.h)-1)
	if x2 < x1 || y2 < y1 {
		return
	}
	_ = tinydraw.FilledRectangle(c.p, int16(x1), int16(y1), int16(x2-x1+1), int16(y2-y1+1), rgba(col))
}

func (c *Canvas) clampX(x int32) int16 { return int16(mathx.Clamp(x, 0, int32(c.w)-1)) }
func (c *Canvas) clampY(y int32) int16 { return int16(mathx.Clamp(y, 0, int32(c.h)-1)) }

// DrawText draws text with its top-left corner at (x, y) over a bg box.
func (c *Canvas) DrawText(fg, bg types.Colour, x, y int32, f types.Font, text []byte) {
	fc := c.face(f)
	c.FillRect(bg, x, y, x+int32(c.textWidth(fc, text))-1, y+int32(fc.height)-1)
	cx := int16(x)
	for _, ch := range text {
		cx += c.drawChar(fc, fg, cx, int16(y), ch)
	}
}

// DrawChar draws one character with its top-left corner at (x, y).
func (c *Canvas) DrawChar(fg, bg types.Colour, x, y int32, f types.Font, ch byte) {
	fc := c.face(f)
	c.FillRect(bg, x, y, x+int32(c.charWidth(fc, ch))-1, y+int32(fc.height)-1)
	c.drawChar(fc, fg, int16(x), int16(y), ch)
}

func (c *Canvas) charWidth(fc *face, ch byte) int16 {
	if ch == types.GlyphDegree {
		return fc.degree + 1
	}
	return int16(fc.f.GetGlyph(rune(ch)).Info().XAdvance)
}

func (c *Canvas) textWidth(fc *face, text []byte) int16 {
	var w int16
	for _, ch := range text {
		w += c.charWidth(fc, ch)
	}
	return w
}

// drawChar returns the advance.
func (c *Canvas) drawChar(fc *face, fg types.Colour, x, y int16, ch byte) int16 {
	if ch == types.GlyphDegree {
		c.drawDegree(fc, fg, x, y)
		return fc.degree + 1
	}
	tinyfont.DrawChar(c.p, fc.f, x, y+fc.ascent, rune(ch), rgba(fg))
	return c.charWidth(fc, ch)
}

// drawDegree draws a hollow square ring at cap height, which reads as a
// degree sign at these sizes.
func (c *Canvas) drawDegree(fc *face, fg types.Colour, x, y int16) {
	d := int32(fc.degree) - 1
	x0, y0 := int32(x), int32(y)
	c.DrawLine(fg, x0+1, y0, x0+d-1, y0)
	c.DrawLine(fg, x0+1, y0+d, x0+d-1, y0+d)
	c.DrawLine(fg, x0, y0+1, x0, y0+d-1)
	c.DrawLine(fg, x0+d, y0+1, x0+d, y0+d-1)
}

// Refresh pushes the frame with a full update.
func (c *Canvas) Refresh() error {
	return errcode.Wrap(errcode.RefreshFailed, "canvas.Refresh", c.p.Display())
}

// QuickRefresh pushes the frame with a partial update.
func (c *Canvas) QuickRefresh() error {
	return errcode.Wrap(errcode.RefreshFailed, "canvas.QuickRefresh", c.p.DisplayQuick())
}
