package display

import "picoplot-go/types"

type opKind uint8

const (
	opPoint opKind = iota
	opLine
	opRect
	opText
	opChar
)

type op struct {
	kind           opKind
	x1, y1, x2, y2 int32
	font           types.Font
	fg, bg         types.Colour
	text           string
}

// recorder is a Surface that keeps the primitives of the last frame and
// counts refreshes.
type recorder struct {
	ops []op

	clears, full, quick int
	refreshErr          error
}

func (r *recorder) Clear(types.Colour) {
	r.clears++
	r.ops = r.ops[:0]
}

func (r *recorder) DrawPoint(_ types.Colour, x, y int32) {
	r.ops = append(r.ops, op{kind: opPoint, x1: x, y1: y, x2: x, y2: y})
}

func (r *recorder) DrawLine(_ types.Colour, x1, y1, x2, y2 int32) {
	r.ops = append(r.ops, op{kind: opLine, x1: x1, y1: y1, x2: x2, y2: y2})
}

func (r *recorder) FillRect(_ types.Colour, x1, y1, x2, y2 int32) {
	r.ops = append(r.ops, op{kind: opRect, x1: x1, y1: y1, x2: x2, y2: y2})
}

func (r *recorder) DrawText(_, _ types.Colour, x, y int32, f types.Font, text []byte) {
	r.ops = append(r.ops, op{kind: opText, x1: x, y1: y, x2: x, y2: y, font: f, text: string(text)})
}

func (r *recorder) DrawChar(fg, bg types.Colour, x, y int32, f types.Font, ch byte) {
	r.ops = append(r.ops, op{kind: opChar, x1: x, y1: y, x2: x, y2: y, font: f, fg: fg, bg: bg, text: string(ch)})
}

func (r *recorder) Refresh() error {
	r.full++
	return r.refreshErr
}

func (r *recorder) QuickRefresh() error {
	r.quick++
	return nil
}

func (r *recorder) of(k opKind) []op {
	var out []op
	for _, o := range r.ops {
		if o.kind == k {
			out = append(out, o)
		}
	}
	return out
}

func (r *recorder) texts() []string {
	var out []string
	for _, o := range r.of(opText) {
		out = append(out, o.text)
	}
	return out
}

// fatPoints returns the centres of plus-shaped five-point groups.
func (r *recorder) fatPoints() [][2]int32 {
	var out [][2]int32
	for i := 0; i+4 < len(r.ops); i++ {
		c := r.ops[i]
		if c.kind != opPoint {
			continue
		}
		want := [4][2]int32{{c.x1 - 1, c.y1}, {c.x1 + 1, c.y1}, {c.x1, c.y1 - 1}, {c.x1, c.y1 + 1}}
		match := true
		for k, w := range want {
			o := r.ops[i+1+k]
			if o.kind != opPoint || o.x1 != w[0] || o.y1 != w[1] {
				match = false
				break
			}
		}
		if match {
			out = append(out, [2]int32{c.x1, c.y1})
			i += 4
		}
	}
	return out
}
