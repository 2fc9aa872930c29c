// Package recycle provides an arena that owns reusable elements and hands
// them out through opaque handles.
//
// Every element ever registered stays in the arena. A handle is either in
// use (held by a window) or free (queued for reuse), never both. Free
// handles are reused in FIFO order.
package recycle

import (
	"github.com/go-drift/looplist/pkg/errors"
)

// Handle identifies an element slot in a Pool. The zero Handle is invalid.
type Handle uint32

// IsValid reports whether h could refer to a slot.
func (h Handle) IsValid() bool {
	return h != 0
}

type slot[E any] struct {
	element E
	free    bool
}

// Pool is a handle-addressed arena with a FIFO free queue.
// It is not safe for concurrent use.
type Pool[E any] struct {
	slots []slot[E]
	queue []Handle
}

// NewPool returns an empty pool.
func NewPool[E any]() *Pool[E] {
	return &Pool[E]{}
}

// Register adds a new element to the arena and returns its in-use handle.
func (p *Pool[E]) Register(element E) Handle {
	p.slots = append(p.slots, slot[E]{element: element})
	return Handle(len(p.slots))
}

// Acquire dequeues the oldest free handle. It returns false when the free
// queue is empty.
func (p *Pool[E]) Acquire() (Handle, E, bool) {
	var zero E
	if len(p.queue) == 0 {
		return 0, zero, false
	}
	h := p.queue[0]
	p.queue[0] = 0
	p.queue = p.queue[1:]
	s := &p.slots[h-1]
	s.free = false
	return h, s.element, true
}

// Release returns an in-use handle to the free queue.
func (p *Pool[E]) Release(h Handle) error {
	s, err := p.lookup("recycle.release", h)
	if err != nil {
		return err
	}
	if s.free {
		return errors.New("recycle.release", errors.KindPrecondition, errors.ErrHandleReleased)
	}
	s.free = true
	p.queue = append(p.queue, h)
	return nil
}

// Replace swaps the element stored for an in-use handle. Adapters may
// return a different element than the recycled one they were offered.
func (p *Pool[E]) Replace(h Handle, element E) error {
	s, err := p.lookup("recycle.replace", h)
	if err != nil {
		return err
	}
	if s.free {
		return errors.New("recycle.replace", errors.KindPrecondition, errors.ErrHandleReleased)
	}
	s.element = element
	return nil
}

// Element returns the element stored for h.
func (p *Pool[E]) Element(h Handle) (E, bool) {
	var zero E
	if !h.IsValid() || int(h) > len(p.slots) {
		return zero, false
	}
	return p.slots[h-1].element, true
}

// IsFree reports whether h is currently queued for reuse.
func (p *Pool[E]) IsFree(h Handle) bool {
	if !h.IsValid() || int(h) > len(p.slots) {
		return false
	}
	return p.slots[h-1].free
}

// Len returns the number of elements owned by the arena.
func (p *Pool[E]) Len() int {
	return len(p.slots)
}

// Free returns the number of queued handles.
func (p *Pool[E]) Free() int {
	return len(p.queue)
}

// InUse returns the number of handles not in the free queue.
func (p *Pool[E]) InUse() int {
	return len(p.slots) - len(p.queue)
}

func (p *Pool[E]) lookup(op string, h Handle) (*slot[E], error) {
	if !h.IsValid() || int(h) > len(p.slots) {
		return nil, errors.New(op, errors.KindPrecondition, errors.ErrUnknownHandle)
	}
	return &p.slots[h-1], nil
}
