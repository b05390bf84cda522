// SPDX-License-Identifier: MIT

// Package minheap: configuration options and sentinel errors for heap
// construction. The heap implementation itself lives in minheap.go.
package minheap

import "errors"

// DefaultCapacity is the initial backing-array capacity used when no
// WithCapacity option is supplied.
const DefaultCapacity = 16

// Sentinel errors for heap construction.
var (
	// ErrNilLess indicates New was called with a nil comparison function.
	ErrNilLess = errors.New("minheap: comparison function must be non-nil")
	// ErrNonPositiveCapacity indicates WithCapacity received c ≤ 0.
	ErrNonPositiveCapacity = errors.New("minheap: initial capacity must be positive")
)

// Less is a strict total-order comparison: Less(a, b) reports whether a must
// be extracted before b. It must be consistent (irreflexive, transitive) for
// the heap invariant to be meaningful.
type Less[T any] func(a, b T) bool

// options holds construction-time configuration.
type options struct {
	capacity int // initial backing-array capacity, > 0
}

// Option customizes heap construction.
type Option func(*options)

// WithCapacity sets the initial backing-array capacity. The heap still grows
// by doubling once the capacity is exhausted; this only tunes the starting
// allocation. Values ≤ 0 cause New to return ErrNonPositiveCapacity.
func WithCapacity(c int) Option {
	return func(o *options) {
		o.capacity = c
	}
}

// defaultOptions returns the construction defaults: DefaultCapacity slots.
func defaultOptions() options {
	return options{capacity: DefaultCapacity}
}
