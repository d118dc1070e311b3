// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

type options[E any] struct {
	capacity    int
	maxCapacity int
	release     func(E)
}

// Option represents the options that can be passed to NewMin.
type Option[E any] func(*options[E])

// WithCapacity sets the initial capacity, in pairs, of the heap's pair
// store.
func WithCapacity[E any](n int) Option[E] {
	return func(o *options[E]) {
		o.capacity = n
	}
}

// WithMaxCapacity caps the capacity of the pair store; growth beyond the
// cap is fatal. A value of 0, the default, leaves growth uncapped.
func WithMaxCapacity[E any](n int) Option[E] {
	return func(o *options[E]) {
		o.maxCapacity = n
	}
}

// WithRelease provides a hook that Free invokes over every element still
// in the heap. It is intended for elements that are compact references to
// caller owned storage; the hook is responsible for that storage, not for
// the in-heap copy of the reference.
func WithRelease[E any](fn func(E)) Option[E] {
	return func(o *options[E]) {
		o.release = fn
	}
}
