package testing

import "github.com/go-drift/looplist/pkg/graphics"

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	// OpRect is a DrawRect call.
	OpRect OpKind = iota
	// OpText is a DrawText call.
	OpText
)

// Op is one recorded drawing operation. Rect and Position are in surface
// coordinates, with the canvas transform at the time of the call applied.
type Op struct {
	Kind     OpKind
	Rect     graphics.Rect
	Position graphics.Offset
	Text     string
	Color    graphics.Color
}

type canvasState struct {
	origin graphics.Offset
	clip   graphics.Rect
}

// RecordingCanvas is a graphics.Canvas that records what was drawn instead
// of rasterizing it. Operations that fall entirely outside the clip are
// dropped.
type RecordingCanvas struct {
	Ops []Op

	size  graphics.Size
	cur   canvasState
	stack []canvasState
}

// NewRecordingCanvas returns a canvas of the given size.
func NewRecordingCanvas(size graphics.Size) *RecordingCanvas {
	return &RecordingCanvas{
		size: size,
		cur:  canvasState{clip: graphics.RectFromLTWH(0, 0, size.Width, size.Height)},
	}
}

// Reset discards recorded operations and transform state.
func (c *RecordingCanvas) Reset() {
	c.Ops = c.Ops[:0]
	c.stack = c.stack[:0]
	c.cur = canvasState{clip: graphics.RectFromLTWH(0, 0, c.size.Width, c.size.Height)}
}

func (c *RecordingCanvas) Save() {
	c.stack = append(c.stack, c.cur)
}

func (c *RecordingCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *RecordingCanvas) Translate(dx, dy float64) {
	c.cur.origin = c.cur.origin.Translate(dx, dy)
}

func (c *RecordingCanvas) ClipRect(rect graphics.Rect) {
	c.cur.clip = c.cur.clip.Intersect(rect.Translate(c.cur.origin.X, c.cur.origin.Y))
}

func (c *RecordingCanvas) DrawRect(rect graphics.Rect, color graphics.Color) {
	r := rect.Translate(c.cur.origin.X, c.cur.origin.Y)
	if r.Intersect(c.cur.clip).IsEmpty() {
		return
	}
	c.Ops = append(c.Ops, Op{Kind: OpRect, Rect: r, Color: color})
}

func (c *RecordingCanvas) DrawText(text string, position graphics.Offset, color graphics.Color) {
	p := position.Translate(c.cur.origin.X, c.cur.origin.Y)
	if !c.cur.clip.Contains(p) {
		return
	}
	c.Ops = append(c.Ops, Op{Kind: OpText, Position: p, Text: text, Color: color})
}

func (c *RecordingCanvas) Size() graphics.Size {
	return c.size
}

// Texts returns the recorded text operations' strings in draw order.
func (c *RecordingCanvas) Texts() []string {
	var out []string
	for _, op := range c.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}
