// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides an indexed min-heap: a priority queue with
// expected constant time membership lookup and in-place priority updates
// in logarithmic time. It is the substrate that the graph algorithms in
// this repository (Dijkstra, Prim) build on, both of which require
// decrease-key and "is this vertex already queued" in sub-linear time.
package heap

import (
	"cloudeng.io/errors"
)

var (
	// ErrDuplicate is returned by Push when an element with the same
	// identity is already in the heap.
	ErrDuplicate = errors.New("heap: element already present")
	// ErrNotPresent is returned by Update when the element is not in the
	// heap.
	ErrNotPresent = errors.New("heap: element not present")
)

// Min is a min-heap of (priority, element) pairs with an auxiliary slot
// index that is kept consistent with every heap internal move, giving
// expected O(1) element lookup and O(log n) push, pop and update.
//
// Priorities are compared only through the comparator supplied to NewMin.
// Elements are opaque to the heap beyond their use as index keys: the
// caller must guarantee that no two simultaneously present elements share
// the same identity under the installed index, since the index cannot
// otherwise disambiguate them. An element may itself be a compact
// reference to caller owned storage; that is a caller policy the heap
// never observes.
//
// A Min instance is not safe for concurrent use.
type Min[P, E any] struct {
	cmp     func(a, b P) int
	index   Index[E]
	release func(E)
	store   store[P, E]
	n       int
}

// NewMin returns an empty heap. The comparator returns a negative value,
// zero or a positive value when a is less than, equal to or greater than
// b. The index instance is owned by the heap from this point on.
func NewMin[P, E any](cmp func(a, b P) int, index Index[E], opts ...Option[E]) *Min[P, E] {
	var o options[E]
	o.capacity = 1
	for _, fn := range opts {
		fn(&o)
	}
	return &Min[P, E]{
		cmp:     cmp,
		index:   index,
		release: o.release,
		store:   newStore[P, E](o.capacity, o.maxCapacity),
	}
}

// Len returns the number of elements currently in the heap.
func (h *Min[P, E]) Len() int {
	return h.n
}

// Push adds an element with the given priority. The element must not
// already be present; pushing a duplicate returns ErrDuplicate and
// leaves the heap unchanged.
func (h *Min[P, E]) Push(pty P, elt E) error {
	if _, ok := h.index.Search(elt); ok {
		return ErrDuplicate
	}
	if h.n == h.store.capacity() {
		h.store.grow(2 * h.n)
	}
	i := h.n
	*h.store.slot(i) = pair[P, E]{pty: pty, elt: elt}
	h.index.Insert(elt, i)
	h.n++
	h.siftUp(i)
	return nil
}

// Search returns a reference to the priority of an element, or false if
// the element is not in the heap. The reference is valid only until the
// next mutating call on the heap; mutating the priority through it
// without a subsequent Update invalidates the heap order.
func (h *Min[P, E]) Search(elt E) (*P, bool) {
	i, ok := h.index.Search(elt)
	if !ok {
		return nil, false
	}
	return &h.store.slot(i).pty, true
}

// Update overwrites the priority of an element already in the heap and
// restores heap order. Updating an absent element returns ErrNotPresent.
//
// Sift-up and then sift-down are both always attempted; exactly one of
// the two will move the entry and the other is a no-op check. Choosing a
// direction up front from a comparison of the old and new priorities
// would silently misbehave with comparators that are not a strict total
// order.
func (h *Min[P, E]) Update(pty P, elt E) error {
	i, ok := h.index.Search(elt)
	if !ok {
		return ErrNotPresent
	}
	h.store.slot(i).pty = pty
	h.siftUp(i)
	h.siftDown(i)
	return nil
}

// Pop removes and returns the pair with a minimal priority under the
// comparator. On an empty heap it returns the zero pair and false with
// the heap left untouched.
func (h *Min[P, E]) Pop() (pty P, elt E, ok bool) {
	if h.n == 0 {
		return pty, elt, false
	}
	root := *h.store.slot(0)
	h.index.Remove(root.elt)
	h.n--
	if h.n > 0 {
		moved := *h.store.slot(h.n)
		*h.store.slot(0) = moved
		h.index.Insert(moved.elt, 0)
		h.siftDown(0)
	}
	return root.pty, root.elt, true
}

// Free invokes the element release hook, if one was supplied, over every
// element still in the heap and then releases the pair store and resets
// the index. The heap must not be used afterwards.
func (h *Min[P, E]) Free() {
	if h.release != nil {
		for i := 0; i < h.n; i++ {
			h.release(h.store.slot(i).elt)
		}
	}
	h.store.release()
	h.index.Reset()
	h.n = 0
}

// halfMove copies the pair at slot s into slot t and re-points the moved
// element's index entry at t. Every slot that receives a different
// element is re-registered; only the write for the vacated slot is
// deferred until the buffered entry comes to rest.
func (h *Min[P, E]) halfMove(t, s int) {
	if t == s {
		return
	}
	moved := *h.store.slot(s)
	*h.store.slot(t) = moved
	h.index.Insert(moved.elt, t)
}

// place writes a buffered pair into its resting slot and registers it.
func (h *Min[P, E]) place(i int, p pair[P, E]) {
	*h.store.slot(i) = p
	h.index.Insert(p.elt, i)
}

// siftUp restores heap order from slot i towards the root.
func (h *Min[P, E]) siftUp(i int) {
	moving := *h.store.slot(i)
	j := i
	for j > 0 {
		parent := (j - 1) / 2
		if h.cmp(h.store.slot(parent).pty, moving.pty) <= 0 {
			break
		}
		h.halfMove(j, parent)
		j = parent
	}
	h.place(j, moving)
}

// siftDown restores heap order from slot i towards the leaves. The
// two-children, one-child and no-children cases are split explicitly so
// that no comparison ever touches a non-existent child slot.
func (h *Min[P, E]) siftDown(i int) {
	moving := *h.store.slot(i)
	j := i
	for 2*j+2 < h.n {
		jl, jr := 2*j+1, 2*j+2
		if h.cmp(moving.pty, h.store.slot(jl).pty) > 0 &&
			h.cmp(h.store.slot(jl).pty, h.store.slot(jr).pty) <= 0 {
			h.halfMove(j, jl)
			j = jl
		} else if h.cmp(moving.pty, h.store.slot(jr).pty) > 0 {
			// jr has the minimal priority relative to jl.
			h.halfMove(j, jr)
			j = jr
		} else {
			break
		}
	}
	if jl := 2*j + 1; jl == h.n-1 {
		if h.cmp(moving.pty, h.store.slot(jl).pty) > 0 {
			h.halfMove(j, jl)
			j = jl
		}
	}
	h.place(j, moving)
}
