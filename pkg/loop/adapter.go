package loop

import "github.com/go-drift/looplist/pkg/layout"

// InvalidPosition is reported by FirstVisiblePosition and
// LastVisiblePosition before anything has been realized.
const InvalidPosition = -1

// Element is a child the view realizes for a data position.
type Element = layout.Element

// Adapter supplies the data the view displays.
type Adapter interface {
	// ItemCount returns the number of data items. A count of zero leaves
	// the view empty.
	ItemCount() int
	// ViewFor returns the element showing the item at index. recycled is a
	// previously realized element offered for reuse, or nil; implementations
	// rebind and return it, or return a fresh element.
	ViewFor(index int, recycled Element) Element
}

// IdentifiedAdapter is implemented by adapters with stable item IDs.
// Without it, the item ID reported on click is the index.
type IdentifiedAdapter interface {
	ItemID(index int) int64
}

// ItemClick describes a confirmed tap on a realized child.
type ItemClick struct {
	Element Element
	Index   int
	ID      int64
}

// SliceAdapter adapts a slice. Bind must return an element for item,
// reusing recycled when it is non-nil.
type SliceAdapter[T any] struct {
	Items []T
	Bind  func(item T, index int, recycled Element) Element
	// ID, when set, provides stable item IDs.
	ID func(item T) int64
}

// ItemCount returns len(Items).
func (a *SliceAdapter[T]) ItemCount() int {
	return len(a.Items)
}

// ViewFor binds Items[index].
func (a *SliceAdapter[T]) ViewFor(index int, recycled Element) Element {
	if a.Bind == nil || index < 0 || index >= len(a.Items) {
		return nil
	}
	return a.Bind(a.Items[index], index, recycled)
}

// ItemID returns ID(Items[index]), or index when ID is unset.
func (a *SliceAdapter[T]) ItemID(index int) int64 {
	if a.ID == nil || index < 0 || index >= len(a.Items) {
		return int64(index)
	}
	return a.ID(a.Items[index])
}

func itemID(adapter Adapter, index int) int64 {
	if ia, ok := adapter.(IdentifiedAdapter); ok {
		return ia.ItemID(index)
	}
	return int64(index)
}
