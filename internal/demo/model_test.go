package demo

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/looplist/pkg/loop"
	looptest "github.com/go-drift/looplist/pkg/testing"
)

// newTestModel mounts a 40x22 terminal: a 280x260 px list plus chrome.
func newTestModel(t *testing.T, configure ...func(*loop.View)) (*Model, *looptest.FakeClock) {
	t.Helper()
	clk := looptest.UseFakeClock(t)
	view := loop.NewView(loop.DefaultOptions())
	view.SetAdapter(NewAdapter(Items(12), 4))
	for _, fn := range configure {
		fn(view)
	}
	m := NewModel(view, 13)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 22})
	return m, clk
}

// settle pumps frames until the view stops animating.
func settle(t *testing.T, m *Model, clk *looptest.FakeClock) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if !m.view.IsAnimating() && !m.pending && !m.ticking {
			return
		}
		clk.Advance(looptest.FrameDuration)
		m.Update(frameMsg(clk.Now()))
	}
	t.Fatal("view kept animating")
}

func TestModel_InitialFrame(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Nil(t, m.Init())
	assert.InDelta(t, -119.5, m.view.ScrollOffset(), 1e-9)
	assert.Contains(t, m.Plain(), "Item 0")
	assert.Contains(t, m.Plain(), "Item 11")
	assert.Contains(t, m.View(), "items 7..5")
}

func TestModel_StepKeysCenterNeighbor(t *testing.T) {
	m, clk := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.NotNil(t, cmd, "a frame should be scheduled")
	settle(t, m, clk)

	c, ok := m.view.CenterChild()
	require.True(t, ok)
	assert.Equal(t, 1, c.Index)
	assert.InDelta(t, -98.5, m.view.ScrollOffset(), 1e-9)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	settle(t, m, clk)
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	settle(t, m, clk)
	c, ok = m.view.CenterChild()
	require.True(t, ok)
	assert.Equal(t, 11, c.Index)
}

func TestModel_MouseTapReportsClick(t *testing.T) {
	m, clk := newTestModel(t)

	m.Update(tea.MouseMsg{X: 5, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	_, cmd := m.Update(tea.MouseMsg{X: 5, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd, "pending tap should request frames")
	assert.Empty(t, m.Status())

	clk.Advance(400 * time.Millisecond)
	m.Update(frameMsg(clk.Now()))
	assert.Equal(t, "tapped item 0 (id 0)", m.Status())
	assert.Contains(t, m.View(), "tapped item 0")
}

func TestModel_EnterTapsCenter(t *testing.T) {
	var clicks []loop.ItemClick
	m, clk := newTestModel(t, func(v *loop.View) {
		v.OnItemClick = func(c loop.ItemClick) { clicks = append(clicks, c) }
	})

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	settle(t, m, clk)

	require.Len(t, clicks, 1)
	assert.Equal(t, 0, clicks[0].Index)
	assert.Equal(t, "tapped item 0 (id 0)", m.Status())
}

func TestModel_FlingKeyScrollsAndSnaps(t *testing.T) {
	m, clk := newTestModel(t)
	start := m.view.ScrollOffset()

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	settle(t, m, clk)

	assert.Greater(t, m.view.ScrollOffset(), start)
	c, ok := m.view.CenterChild()
	require.True(t, ok)
	center := m.view.ScrollOffset() + m.view.Size().Height/2
	assert.InDelta(t, center, c.Bounds.Center().Y, 1e-6)
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}
