// SPDX-License-Identifier: MIT

// Test-only exports. This file is compiled exclusively with the test binary
// and widens access to internals the external _test package needs to verify
// structural invariants without loosening the public API.
package minheap

// OrderIntact reports whether the structural heap invariant holds: for every
// non-root occupied position i, the element at i does not compare less than
// the element at its parent (i−1)/2.
func (h *Heap[T]) OrderIntact() bool {
	var i int
	for i = 1; i < h.size; i++ {
		if h.less(h.items[i], h.items[(i-1)/2]) {
			return false
		}
	}

	return true
}
