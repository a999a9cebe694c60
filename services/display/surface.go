package display

import "picoplot-go/types"

// Surface is the drawing target the renderer issues primitives to.
// Coordinates are pixels with the origin at the top-left corner; rectangle
// and line endpoints are inclusive. Text is anchored at its top-left corner
// and may contain types.GlyphDegree.
type Surface interface {
	Clear(c types.Colour)
	DrawPoint(c types.Colour, x, y int32)
	DrawLine(c types.Colour, x1, y1, x2, y2 int32)
	FillRect(c types.Colour, x1, y1, x2, y2 int32)
	DrawText(fg, bg types.Colour, x, y int32, f types.Font, text []byte)
	DrawChar(fg, bg types.Colour, x, y int32, f types.Font, ch byte)

	// Refresh performs a slow, full panel update.
	Refresh() error
	// QuickRefresh performs a fast, partial panel update.
	QuickRefresh() error
}

// FontMetrics is optionally implemented by a Surface to report glyph
// advance, used to centre labels. Without it a 4-pixel advance is assumed.
type FontMetrics interface {
	CharWidth(f types.Font) int32
}
