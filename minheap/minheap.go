// SPDX-License-Identifier: MIT

package minheap

import "fmt"

// Heap is an array-backed binary min-heap ordered by an explicit comparison
// function. items[:size] holds the live elements in heap order; the remainder
// of the backing array is spare capacity.
//
// Zero value is not usable; construct via New.
type Heap[T any] struct {
	items []T     // backing array; items[:size] is the heap
	size  int     // logical element count, ≤ len(items)
	less  Less[T] // strict total-order comparison
}

// New creates an empty heap ordered by less.
//
// Returns ErrNilLess if less is nil, ErrNonPositiveCapacity if WithCapacity
// was given a non-positive value.
func New[T any](less Less[T], opts ...Option) (*Heap[T], error) {
	// 1) The comparison function is the heap's entire notion of order; a nil
	//    one can never be substituted later.
	if less == nil {
		return nil, ErrNilLess
	}

	// 2) Apply construction options over the defaults.
	cfg := defaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 3) Validate the resulting capacity.
	if cfg.capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositiveCapacity, cfg.capacity)
	}

	return &Heap[T]{
		items: make([]T, cfg.capacity),
		less:  less,
	}, nil
}

// Push inserts element into the heap, growing the backing array by doubling
// if it is full, then restoring heap order by sifting the new leaf up.
// Complexity: O(log n) amortized.
func (h *Heap[T]) Push(element T) {
	// 1) Ensure there is room for one more element.
	if h.size == len(h.items) {
		h.grow()
	}

	// 2) Place the element in the first free leaf slot and sift it up.
	h.items[h.size] = element
	h.siftUp(h.size)
	h.size++
}

// Pop removes and returns the minimum element. The second return is false if
// the heap is empty: an expected observation, not an error.
// Complexity: O(log n).
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	if h.size == 0 {
		return zero, false
	}

	// 1) The root is the minimum under heap order.
	min := h.items[0]

	// 2) Move the last element to the root, shrink, and release the vacated
	//    slot so the heap never retains a reference past extraction.
	h.size--
	h.items[0] = h.items[h.size]
	h.items[h.size] = zero

	// 3) Restore heap order from the root downward.
	if h.size > 0 {
		h.siftDown(0)
	}

	return min, true
}

// Peek returns the minimum element without removing it. The second return is
// false if the heap is empty. Complexity: O(1).
func (h *Heap[T]) Peek() (T, bool) {
	if h.size == 0 {
		var zero T
		return zero, false
	}

	return h.items[0], true
}

// Len returns the number of elements currently held. Complexity: O(1).
func (h *Heap[T]) Len() int { return h.size }

// IsEmpty reports whether the heap holds no elements. Complexity: O(1).
func (h *Heap[T]) IsEmpty() bool { return h.size == 0 }

// Cap returns the current backing-array capacity. It never shrinks and
// doubles whenever Push finds the array full.
func (h *Heap[T]) Cap() int { return len(h.items) }

// Clear removes all elements, zeroing the occupied prefix so that no element
// references are retained. Capacity is kept. Complexity: O(n).
func (h *Heap[T]) Clear() {
	var zero T
	var i int
	for i = 0; i < h.size; i++ {
		h.items[i] = zero
	}
	h.size = 0
}

// siftUp moves the element at index toward the root until it no longer
// compares less than its parent, restoring heap order after an insertion.
// The element is held aside and written once at its final slot, so each step
// costs a single copy rather than a swap.
func (h *Heap[T]) siftUp(index int) {
	element := h.items[index]
	var parent int
	for index > 0 {
		parent = (index - 1) / 2
		if !h.less(element, h.items[parent]) {
			break // heap order holds from here up
		}
		h.items[index] = h.items[parent]
		index = parent
	}
	h.items[index] = element
}

// siftDown moves the element at index toward the leaves, swapping with the
// smaller of its children while that child compares less, restoring heap
// order after a root replacement. Positions ≥ size/2 are leaves.
func (h *Heap[T]) siftDown(index int) {
	element := h.items[index]
	half := h.size / 2
	var child int
	for index < half {
		// Pick the smaller of the two children (the right one may not exist).
		child = 2*index + 1
		if child+1 < h.size && h.less(h.items[child+1], h.items[child]) {
			child++
		}
		if !h.less(h.items[child], element) {
			break // neither child is smaller; order restored
		}
		h.items[index] = h.items[child]
		index = child
	}
	h.items[index] = element
}

// grow doubles the backing array's capacity, copying the live prefix.
func (h *Heap[T]) grow() {
	next := make([]T, 2*len(h.items))
	copy(next, h.items[:h.size])
	h.items = next
}
