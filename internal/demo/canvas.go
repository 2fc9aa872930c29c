package demo

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/looplist/pkg/graphics"
)

type cell struct {
	r  rune
	fg graphics.Color
	bg graphics.Color
}

type canvasState struct {
	origin graphics.Offset
	clip   graphics.Rect
}

// Canvas rasterizes drawing calls onto a grid of terminal cells. Each cell
// covers CellWidth by CellHeight pixels; a rect paints the cells whose
// centers it contains.
type Canvas struct {
	cols, rows int
	cellW      float64
	cellH      float64
	cells      []cell

	cur   canvasState
	stack []canvasState
}

// NewCanvas returns a canvas of cols by rows cells.
func NewCanvas(cols, rows int, cellW, cellH float64) *Canvas {
	c := &Canvas{cellW: cellW, cellH: cellH}
	c.Resize(cols, rows)
	return c
}

// Resize changes the grid dimensions and clears it.
func (c *Canvas) Resize(cols, rows int) {
	c.cols = max(cols, 0)
	c.rows = max(rows, 0)
	c.cells = make([]cell, c.cols*c.rows)
	c.Reset()
}

// Reset clears every cell and the transform state.
func (c *Canvas) Reset() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
	c.stack = c.stack[:0]
	c.cur = canvasState{clip: graphics.RectFromLTWH(0, 0, c.Size().Width, c.Size().Height)}
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.cur)
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(dx, dy float64) {
	c.cur.origin = c.cur.origin.Translate(dx, dy)
}

func (c *Canvas) ClipRect(rect graphics.Rect) {
	c.cur.clip = c.cur.clip.Intersect(rect.Translate(c.cur.origin.X, c.cur.origin.Y))
}

func (c *Canvas) DrawRect(rect graphics.Rect, color graphics.Color) {
	r := rect.Translate(c.cur.origin.X, c.cur.origin.Y).Intersect(c.cur.clip)
	if r.IsEmpty() {
		return
	}
	col0, col1 := span(r.Left, r.Right, c.cellW, c.cols)
	row0, row1 := span(r.Top, r.Bottom, c.cellH, c.rows)
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			c.cells[row*c.cols+col] = cell{r: ' ', bg: color}
		}
	}
}

// DrawText writes one rune per cell starting at the cell nearest position.
// Runes whose cells fall outside the clip are dropped.
func (c *Canvas) DrawText(text string, position graphics.Offset, color graphics.Color) {
	p := position.Translate(c.cur.origin.X, c.cur.origin.Y)
	row := int(math.Floor(p.Y/c.cellH + 0.5))
	col := int(math.Floor(p.X/c.cellW + 0.5))
	if row < 0 || row >= c.rows {
		return
	}
	for _, r := range text {
		if col >= c.cols {
			return
		}
		center := graphics.Offset{X: (float64(col) + 0.5) * c.cellW, Y: (float64(row) + 0.5) * c.cellH}
		if col >= 0 && c.cur.clip.Contains(center) {
			cl := &c.cells[row*c.cols+col]
			cl.r = r
			cl.fg = color
		}
		col++
	}
}

// Size returns the surface size in pixels.
func (c *Canvas) Size() graphics.Size {
	return graphics.Size{Width: float64(c.cols) * c.cellW, Height: float64(c.rows) * c.cellH}
}

// Plain returns the grid's runes without styling, one line per row.
func (c *Canvas) Plain() string {
	var sb strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < c.cols; col++ {
			sb.WriteRune(c.cells[row*c.cols+col].r)
		}
	}
	return sb.String()
}

// Render returns the grid with colors applied through lipgloss. Adjacent
// cells sharing colors are styled as one run.
func (c *Canvas) Render() string {
	lines := make([]string, c.rows)
	for row := 0; row < c.rows; row++ {
		var sb strings.Builder
		line := c.cells[row*c.cols : (row+1)*c.cols]
		for start := 0; start < len(line); {
			end := start + 1
			for end < len(line) && line[end].fg == line[start].fg && line[end].bg == line[start].bg {
				end++
			}
			var run strings.Builder
			for _, cl := range line[start:end] {
				run.WriteRune(cl.r)
			}
			sb.WriteString(styleFor(line[start]).Render(run.String()))
			start = end
		}
		lines[row] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func styleFor(cl cell) lipgloss.Style {
	style := lipgloss.NewStyle()
	if cl.bg.Alpha() > 0 {
		style = style.Background(lipgloss.Color(cl.bg.Hex()))
	}
	if cl.fg.Alpha() > 0 {
		style = style.Foreground(lipgloss.Color(cl.fg.Hex()))
	}
	return style
}

// span returns the half-open range of cells of the given size whose
// centers lie in [lo, hi), clamped to [0, limit).
func span(lo, hi, size float64, limit int) (int, int) {
	first := int(math.Ceil(lo/size - 0.5))
	last := int(math.Ceil(hi/size - 0.5))
	return max(first, 0), min(last, limit)
}
