package demo

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-drift/looplist/pkg/animation"
	"github.com/go-drift/looplist/pkg/gestures"
	"github.com/go-drift/looplist/pkg/graphics"
	"github.com/go-drift/looplist/pkg/layout"
	"github.com/go-drift/looplist/pkg/loop"
)

const (
	// FrameInterval is the simulated time between frames.
	FrameInterval = 16 * time.Millisecond
	// settleLimit bounds how long a step may keep the view animating.
	settleLimit = 30 * time.Second

	tapHold       = 50 * time.Millisecond
	dragDuration  = 160 * time.Millisecond
	dragRest      = 200 * time.Millisecond
	flingMoveTime = 100 * time.Millisecond
	gestureMoves  = 10
)

// ErrNotSettled is returned when a step leaves the view animating past the
// settle limit.
var ErrNotSettled = errors.New("view did not settle")

// Snapshot is the view state after a step.
type Snapshot struct {
	Offset float64
	First  int
	Last   int
	Window []int
	// Center is the index of the child straddling the viewport center,
	// or loop.InvalidPosition.
	Center int
	Clicks []loop.ItemClick
}

func (s Snapshot) String() string {
	return fmt.Sprintf("offset=%.1f first=%d last=%d center=%d window=%v",
		s.Offset, s.First, s.Last, s.Center, s.Window)
}

// Simulator drives a view headlessly on a virtual clock.
type Simulator struct {
	view    *loop.View
	now     time.Time
	prev    animation.Clock
	pending bool
	nextID  int64
	clicks  []loop.ItemClick

	// Frames counts the frames run so far.
	Frames int
}

// NewSimulator installs a virtual clock, lays view out at size and takes
// over its frame requests and click callback. Call Close to restore the
// clock.
func NewSimulator(view *loop.View, size graphics.Size) *Simulator {
	s := &Simulator{
		view: view,
		now:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	s.prev = animation.SetClock(animation.ClockFunc(func() time.Time { return s.now }))
	view.SetFrameRequester(func() { s.pending = true })
	onClick := view.OnItemClick
	view.OnItemClick = func(click loop.ItemClick) {
		s.clicks = append(s.clicks, click)
		if onClick != nil {
			onClick(click)
		}
	}
	view.Measure(layout.Tight(size))
	view.Layout(size)
	return s
}

// Close restores the clock that was active before NewSimulator.
func (s *Simulator) Close() {
	animation.SetClock(s.prev)
}

// Run performs step and lets the view settle. Clicks confirmed during the
// step are reported in the returned snapshot.
func (s *Simulator) Run(step Step) (Snapshot, error) {
	s.clicks = nil
	center := s.center()
	switch step.Verb {
	case VerbTap:
		pos := graphics.Offset{X: center.X, Y: step.Value}
		id := s.pointer()
		s.send(id, gestures.PointerPhaseDown, pos)
		s.advance(tapHold)
		s.send(id, gestures.PointerPhaseUp, pos)
	case VerbDrag:
		id := s.pointer()
		s.send(id, gestures.PointerPhaseDown, center)
		s.moves(id, center, step.Value, dragDuration)
		s.advance(dragRest)
		s.send(id, gestures.PointerPhaseUp, center.Translate(0, step.Value))
	case VerbFling:
		id := s.pointer()
		s.send(id, gestures.PointerPhaseDown, center)
		s.moves(id, center, step.Value, flingMoveTime)
		s.send(id, gestures.PointerPhaseUp, center.Translate(0, step.Value))
	case VerbScroll:
		s.view.ScrollBy(step.Value)
	case VerbWait:
		for end := s.now.Add(step.Duration); s.now.Before(end); {
			s.frame()
		}
		return s.Snapshot(), nil
	default:
		return Snapshot{}, fmt.Errorf("unknown verb %q", step.Verb)
	}
	if err := s.settle(); err != nil {
		return s.Snapshot(), err
	}
	return s.Snapshot(), nil
}

func (s *Simulator) center() graphics.Offset {
	size := s.view.Size()
	return graphics.Offset{X: size.Width / 2, Y: size.Height / 2}
}

func (s *Simulator) pointer() int64 {
	s.nextID++
	return s.nextID
}

func (s *Simulator) send(id int64, phase gestures.PointerPhase, pos graphics.Offset) {
	s.view.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Position:  pos,
		Phase:     phase,
		Time:      s.now,
	})
}

func (s *Simulator) moves(id int64, start graphics.Offset, dy float64, duration time.Duration) {
	for i := 1; i <= gestureMoves; i++ {
		s.advance(duration / gestureMoves)
		frac := float64(i) / gestureMoves
		s.send(id, gestures.PointerPhaseMove, start.Translate(0, dy*frac))
	}
}

func (s *Simulator) advance(d time.Duration) {
	s.now = s.now.Add(d)
}

func (s *Simulator) frame() {
	s.advance(FrameInterval)
	s.pending = false
	s.view.Tick()
	s.Frames++
}

func (s *Simulator) settle() error {
	for end := s.now.Add(settleLimit); s.now.Before(end); {
		if !s.pending && !s.view.IsAnimating() {
			return nil
		}
		s.frame()
	}
	return ErrNotSettled
}

// Snapshot captures the current view state.
func (s *Simulator) Snapshot() Snapshot {
	snap := Snapshot{
		Offset: s.view.ScrollOffset(),
		First:  s.view.FirstVisiblePosition(),
		Last:   s.view.LastVisiblePosition(),
		Center: loop.InvalidPosition,
		Clicks: s.clicks,
	}
	for _, c := range s.view.Children() {
		snap.Window = append(snap.Window, c.Index)
	}
	if c, ok := s.view.CenterChild(); ok {
		snap.Center = c.Index
	}
	return snap
}
