// Package demo hosts a looping list of text rows in the terminal.
package demo

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/looplist/pkg/animation"
	"github.com/go-drift/looplist/pkg/gestures"
	"github.com/go-drift/looplist/pkg/graphics"
	"github.com/go-drift/looplist/pkg/layout"
	"github.com/go-drift/looplist/pkg/loop"
)

const (
	// CellWidth is the pixel width of one terminal column, matching the
	// advance of the default face.
	CellWidth = 7

	frameInterval = 16 * time.Millisecond
	stepDuration  = 250 * time.Millisecond
	// flingDrag is the synthetic drag a fling key performs, as a fraction
	// of the viewport height, and how long it takes.
	flingDrag     = 0.6
	flingDuration = 80 * time.Millisecond
	flingSteps    = 5

	mousePointer = 1
	// chromeRows is the number of terminal rows below the list.
	chromeRows = 2
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8892A6"))

// frameMsg drives one animation frame.
type frameMsg time.Time

// Model is the Bubble Tea model hosting a looping list in the terminal.
type Model struct {
	view   *loop.View
	canvas *Canvas
	keys   KeyMap
	help   help.Model
	cellH  float64

	width  int
	height int
	frame  string
	status string

	// pending is set by the view's frame requester; ticking while a frame
	// command is outstanding.
	pending bool
	ticking bool

	pointerDown bool
	lastPointer graphics.Offset
	nextPointer int64
	quitting    bool
}

// NewModel wraps view. pixelsPerRow is the height of one terminal row in
// list pixels.
func NewModel(view *loop.View, pixelsPerRow float64) *Model {
	m := &Model{
		view:        view,
		canvas:      NewCanvas(0, 0, CellWidth, pixelsPerRow),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		cellH:       pixelsPerRow,
		nextPointer: mousePointer,
	}
	view.SetFrameRequester(func() { m.pending = true })
	onClick := view.OnItemClick
	view.OnItemClick = func(click loop.ItemClick) {
		m.status = fmt.Sprintf("tapped item %d (id %d)", click.Index, click.ID)
		if onClick != nil {
			onClick(click)
		}
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case frameMsg:
		m.ticking = false
	}
	m.redraw()
	return m, m.nextFrame()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(m.frame)
	sb.WriteByte('\n')
	sb.WriteString(statusStyle.Render(m.statusLine()))
	sb.WriteByte('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Status returns the last tap message.
func (m *Model) Status() string {
	return m.status
}

// Plain returns the last rendered list without styling.
func (m *Model) Plain() string {
	return m.canvas.Plain()
}

func (m *Model) statusLine() string {
	line := fmt.Sprintf("items %d..%d  offset %.0f",
		m.view.FirstVisiblePosition(), m.view.LastVisiblePosition(), m.view.ScrollOffset())
	if m.status != "" {
		line += "  " + m.status
	}
	return line
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.canvas.Resize(width, max(height-chromeRows, 0))
	m.help.Width = width
	size := m.canvas.Size()
	m.view.Measure(layout.Tight(size))
	m.view.Layout(size)
}

func (m *Model) redraw() {
	m.canvas.Reset()
	m.view.Draw(m.canvas)
	m.frame = m.canvas.Render()
}

func (m *Model) nextFrame() tea.Cmd {
	if !m.pending || m.ticking {
		return nil
	}
	m.pending = false
	m.ticking = true
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Prev):
		m.step(-1)
	case key.Matches(msg, m.keys.Next):
		m.step(1)
	case key.Matches(msg, m.keys.FlingUp):
		m.fling(-1)
	case key.Matches(msg, m.keys.FlingDown):
		m.fling(1)
	case key.Matches(msg, m.keys.Select):
		m.tapCenter()
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	pos := graphics.Offset{
		X: (float64(msg.X) + 0.5) * CellWidth,
		Y: (float64(msg.Y) + 0.5) * m.cellH,
	}
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.step(-1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.step(1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if pos.Y >= m.view.Size().Height {
			return
		}
		m.pointerDown = true
		m.send(mousePointer, gestures.PointerPhaseDown, pos, time.Time{})
	case msg.Action == tea.MouseActionMotion && m.pointerDown:
		m.send(mousePointer, gestures.PointerPhaseMove, pos, time.Time{})
	case msg.Action == tea.MouseActionRelease && m.pointerDown:
		m.pointerDown = false
		m.send(mousePointer, gestures.PointerPhaseUp, pos, time.Time{})
	}
}

func (m *Model) send(id int64, phase gestures.PointerPhase, pos graphics.Offset, at time.Time) {
	m.view.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Position:  pos,
		Delta:     graphics.Offset{X: pos.X - m.lastPointer.X, Y: pos.Y - m.lastPointer.Y},
		Phase:     phase,
		Time:      at,
	})
	m.lastPointer = pos
}

func (m *Model) center() graphics.Offset {
	size := m.view.Size()
	return graphics.Offset{X: size.Width / 2, Y: size.Height / 2}
}

// step smoothly centers the neighbor of the centered child in direction
// dir.
func (m *Model) step(dir int) {
	c, ok := m.view.CenterChild()
	if !ok {
		return
	}
	children := m.view.Children()
	target := c.Bounds.Center().Y
	for i, child := range children {
		if child.Bounds == c.Bounds {
			if j := i + dir; j >= 0 && j < len(children) {
				target = children[j].Bounds.Center().Y
			} else {
				target += float64(dir) * c.Bounds.Height()
			}
			break
		}
	}
	viewportCenter := m.view.ScrollOffset() + m.view.Size().Height/2
	m.view.SmoothScrollBy(target-viewportCenter, stepDuration)
}

// fling replays a quick drag through the view's gesture recognition,
// ending now. dir > 0 moves forward through the list.
func (m *Model) fling(dir int) {
	m.nextPointer++
	id := m.nextPointer
	start := m.center()
	dy := -float64(dir) * m.view.Size().Height * flingDrag
	end := animation.Now()
	begin := end.Add(-flingDuration)
	m.send(id, gestures.PointerPhaseDown, start, begin)
	for i := 1; i <= flingSteps; i++ {
		frac := float64(i) / flingSteps
		at := begin.Add(time.Duration(frac * float64(flingDuration)))
		m.send(id, gestures.PointerPhaseMove, start.Translate(0, dy*frac), at)
	}
	m.send(id, gestures.PointerPhaseUp, start.Translate(0, dy), end)
}

func (m *Model) tapCenter() {
	m.nextPointer++
	id := m.nextPointer
	pos := m.center()
	now := animation.Now()
	m.send(id, gestures.PointerPhaseDown, pos, now)
	m.send(id, gestures.PointerPhaseUp, pos, now)
}
