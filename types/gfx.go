package types

// ------------------------
// Drawing palette & fonts
// ------------------------

// Colour is one of the panel's palette entries.
type Colour uint8

const (
	White Colour = iota // light background
	Black               // foreground
)

// Font selects one of the canvas' bitmap fonts by nominal pixel height.
type Font uint8

const (
	FontSmall  Font = iota // axis labels
	FontMedium             // summary lines
	FontLarge              // day/date and time
	FontHuge               // current reading
)

// GlyphDegree is the byte drawn as a degree sign in text passed to a canvas.
const GlyphDegree byte = 0x7F
