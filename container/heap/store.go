// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

// pair is a single (priority, element) slot in the pair store. The host
// language lays the fields out; Layout below remains the placement rule
// for any representation that must be reproducible across
// implementations.
type pair[P, E any] struct {
	pty P
	elt E
}

// store owns the contiguous array of (priority, element) pairs. The
// allocated capacity grows geometrically by doubling, capped at max, and
// is always at least the heap's logical size; the heap tracks the logical
// size itself.
type store[P, E any] struct {
	pairs []pair[P, E]
	max   int
}

func newStore[P, E any](capacity, maxCapacity int) store[P, E] {
	if capacity <= 0 {
		capacity = 1
	}
	if maxCapacity > 0 && capacity > maxCapacity {
		capacity = maxCapacity
	}
	return store[P, E]{
		pairs: make([]pair[P, E], capacity),
		max:   maxCapacity,
	}
}

func (s *store[P, E]) capacity() int {
	return len(s.pairs)
}

// grow reallocates the store to hold at least n pairs, preserving the
// contents and positions of existing slots. Exceeding the maximum
// capacity is fatal: no recoverable state exists mid-growth.
func (s *store[P, E]) grow(n int) {
	if s.max > 0 {
		if len(s.pairs) >= s.max {
			panic("heap: maximum capacity exceeded")
		}
		if n > s.max {
			n = s.max
		}
	}
	pairs := make([]pair[P, E], n)
	copy(pairs, s.pairs)
	s.pairs = pairs
}

func (s *store[P, E]) slot(i int) *pair[P, E] {
	return &s.pairs[i]
}

func (s *store[P, E]) release() {
	s.pairs = nil
}

// Layout reports the deterministic placement of a (priority, element)
// pair within a packed pair store for implementations that must agree on
// the byte layout (e.g. shared memory or serialized snapshots). The
// element is placed at the smallest offset >= ptySize that satisfies
// eltAlign and the stride is the smallest value >= eltOffset+eltSize that
// satisfies ptyAlign, so that the priority field of every consecutive
// pair remains aligned.
func Layout(ptySize, eltSize, ptyAlign, eltAlign int) (stride, eltOffset int) {
	eltOffset = alignUp(ptySize, eltAlign)
	stride = alignUp(eltOffset+eltSize, ptyAlign)
	return
}

func alignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	if r := n % align; r > 0 {
		n += align - r
	}
	return n
}
