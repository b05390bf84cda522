// SPDX-License-Identifier: MIT

// Package minheap provides a generic array-backed binary min-heap priority
// queue, parameterized over any element type plus an explicit total-order
// comparison function.
//
// Overview:
//
//   - The heap is stored as a dense array-encoded binary tree: the children
//     of position i live at 2i+1 and 2i+2, its parent at (i−1)/2. For every
//     non-root position, the parent compares ≤ the child (heap order).
//   - The logical element count is tracked separately from the backing
//     array's capacity, which doubles when exhausted, so Push is amortized
//     O(log n) with O(1) amortized allocation cost.
//   - Pop swaps the root with the last element, shrinks the logical length,
//     and sifts the new root down; Push appends and sifts up.
//
// Empty-queue reads (Pop, Peek) are not errors: an empty queue is a normal,
// anticipated state, so both return a comma-ok pair with ok == false.
//
// Tie-break policy: when two elements compare equal under the supplied
// function, their relative extraction order is unspecified (the heap is not
// stable). Callers must not depend on tie order.
//
// Error handling (sentinel, construction-time only):
//
//   - ErrNilLess             — New received a nil comparison function.
//   - ErrNonPositiveCapacity — WithCapacity received c ≤ 0.
//
// Once constructed, no operation can fail: Go generic values are always
// valid elements, so Push has no rejection path.
//
// Complexity summary:
//
//   - Push: O(log n) amortized   - Peek, Len, IsEmpty, Cap: O(1)
//   - Pop:  O(log n)             - Clear: O(n)
//
// Thread safety: a Heap is not synchronized; guard it externally if shared.
package minheap
