package canvas

import (
	"image"
	"image/color"
)

// Frame is an in-memory 1-bit Panel for hosts and tests. Drawing goes to a
// back buffer; Display and DisplayQuick copy it to the visible image and
// count the refresh.
type Frame struct {
	w, h    int16
	stride  int
	back    []byte // set bit = black
	visible []byte

	Full, Quick int
}

// NewFrame returns a white w x h frame.
func NewFrame(w, h int16) *Frame {
	stride := (int(w) + 7) / 8
	return &Frame{
		w:       w,
		h:       h,
		stride:  stride,
		back:    make([]byte, stride*int(h)),
		visible: make([]byte, stride*int(h)),
	}
}

func (f *Frame) Size() (x, y int16) { return f.w, f.h }

// SetPixel maps any colour darker than mid-grey to black.
func (f *Frame) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	i, bit := f.index(int(x), int(y))
	if int(c.R)+int(c.G)+int(c.B) < 3*0x80 {
		f.back[i] |= bit
	} else {
		f.back[i] &^= bit
	}
}

func (f *Frame) index(x, y int) (int, byte) {
	return y*f.stride + x/8, 0x80 >> (x % 8)
}

func (f *Frame) ClearBuffer() { clear(f.back) }

func (f *Frame) Display() error {
	copy(f.visible, f.back)
	f.Full++
	return nil
}

func (f *Frame) DisplayQuick() error {
	copy(f.visible, f.back)
	f.Quick++
	return nil
}

// Black reports whether the visible pixel at (x, y) is set.
func (f *Frame) Black(x, y int) bool {
	if x < 0 || y < 0 || x >= int(f.w) || y >= int(f.h) {
		return false
	}
	i, bit := f.index(x, y)
	return f.visible[i]&bit != 0
}

// BlackPixels counts set pixels in the visible image.
func (f *Frame) BlackPixels() int {
	n := 0
	for y := 0; y < int(f.h); y++ {
		for x := 0; x < int(f.w); x++ {
			if f.Black(x, y) {
				n++
			}
		}
	}
	return n
}

func (f *Frame) ColorModel() color.Model { return color.GrayModel }

func (f *Frame) Bounds() image.Rectangle { return image.Rect(0, 0, int(f.w), int(f.h)) }

func (f *Frame) At(x, y int) color.Color {
	if f.Black(x, y) {
		return color.Gray{Y: 0}
	}
	return color.Gray{Y: 0xff}
}
