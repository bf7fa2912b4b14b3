// Package heap provides an indexed binary min-heap with external
// decrease-key support, built on top of container/heap.
//
// Ordinary container/heap usage loses track of an element's slice position
// once other elements are pushed, popped, or swapped around it. This
// package keeps that position current by storing an index field on every
// stored node (the same pattern used by the pathfinder's Index field in the
// economy-studio A* priority queue) and hands the caller a Handle they can
// pass back to DecreaseKey after mutating the element's priority in place.
package heap

import "container/heap"

// Less reports whether a sorts before b. It must be consistent with
// whatever priority the caller stores on a and b; the heap never inspects
// priorities itself; it only calls this comparator.
type Less func(a, b interface{}) bool

// Handle identifies a previously inserted element. It is nulled out
// (invalidated) when the element is removed, so a double ExtractMin /
// DecreaseKey on a removed handle is detectable by the caller checking
// Handle.Valid().
type Handle struct {
	item  interface{}
	index int // -1 once removed from the heap
}

// Valid reports whether the handle still refers to an element in the heap.
func (h *Handle) Valid() bool {
	return h != nil && h.index >= 0
}

// Item returns the user element stored behind this handle.
func (h *Handle) Item() interface{} {
	return h.item
}

// innerHeap adapts []*Handle to container/heap.Interface, keeping each
// Handle's index field current across Push/Pop/Swap so handles remain
// valid pointers usable from outside the heap.
type innerHeap struct {
	handles []*Handle
	less    Less
}

func (h *innerHeap) Len() int { return len(h.handles) }

func (h *innerHeap) Less(i, j int) bool {
	return h.less(h.handles[i].item, h.handles[j].item)
}

func (h *innerHeap) Swap(i, j int) {
	h.handles[i], h.handles[j] = h.handles[j], h.handles[i]
	h.handles[i].index = i
	h.handles[j].index = j
}

func (h *innerHeap) Push(x interface{}) {
	handle := x.(*Handle)
	handle.index = len(h.handles)
	h.handles = append(h.handles, handle)
}

func (h *innerHeap) Pop() interface{} {
	old := h.handles
	n := len(old)
	handle := old[n-1]
	old[n-1] = nil
	handle.index = -1
	h.handles = old[:n-1]
	return handle
}

// Heap is an indexed binary min-heap parameterized by a user comparator.
// Insert, ExtractMin, and DecreaseKey are all O(log n).
type Heap struct {
	inner *innerHeap
}

// New creates an empty heap ordered by less.
func New(less Less) *Heap {
	return &Heap{inner: &innerHeap{less: less}}
}

// Len returns the number of elements currently in the heap.
func (h *Heap) Len() int {
	return h.inner.Len()
}

// Insert adds item to the heap and returns a handle usable for a later
// DecreaseKey call. The handle is invalidated once the item is removed via
// ExtractMin.
func (h *Heap) Insert(item interface{}) *Handle {
	handle := &Handle{item: item}
	heap.Push(h.inner, handle)
	return handle
}

// ExtractMin removes and returns the minimum element. The second return
// value is false if the heap is empty.
func (h *Heap) ExtractMin() (interface{}, bool) {
	if h.inner.Len() == 0 {
		return nil, false
	}
	handle := heap.Pop(h.inner).(*Handle)
	return handle.item, true
}

// DecreaseKey re-establishes heap order for handle after its element's
// priority has been lowered in place by the caller. Calling it after the
// priority increased, or on an invalidated handle, is a programmer error;
// callers should check Handle.Valid() first if that is possible.
func (h *Heap) DecreaseKey(handle *Handle) {
	if !handle.Valid() {
		return
	}
	heap.Fix(h.inner, handle.index)
}
