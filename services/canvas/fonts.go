package canvas

import (
	"picoplot-go/types"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
	"tinygo.org/x/tinyfont/proggy"
)

// face is a tinyfont font plus the metrics needed to anchor text at its
// top-left corner.
type face struct {
	f       tinyfont.Fonter
	ascent  int16 // baseline offset from the top of a digit
	height  int16 // background box height
	advance int16 // width of '0'
	degree  int16 // degree ring diameter
}

func newFace(f tinyfont.Fonter) face {
	info := f.GetGlyph('0').Info()
	ascent := -int16(info.YOffset)
	if ascent <= 0 {
		ascent = int16(info.Height)
	}
	deg := ascent / 3
	if deg < 3 {
		deg = 3
	}
	return face{
		f:       f,
		ascent:  ascent,
		height:  ascent + 1,
		advance: int16(info.XAdvance),
		degree:  deg,
	}
}

// Fonts maps the renderer's font sizes to bitmap fonts.
type Fonts [4]tinyfont.Fonter

// DefaultFonts is a 5 px pixel font for axis labels, a Proggy 8pt for
// summaries and FreeSans for the day, clock and current reading.
func DefaultFonts() Fonts {
	var fs Fonts
	fs[types.FontSmall] = &tinyfont.TomThumb
	fs[types.FontMedium] = &proggy.TinySZ8pt7b
	fs[types.FontLarge] = &freesans.Regular9pt7b
	fs[types.FontHuge] = &freesans.Bold12pt7b
	return fs
}
