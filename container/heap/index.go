// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

// Index represents the slot index used by Min to locate the current slot
// of an element in expected constant time. Insert must overwrite any
// existing entry for the element; it is used both for registering a newly
// pushed element and for re-pointing an element that has moved to a new
// slot. The heap never inspects the concrete indexing strategy, so the
// choice of index, its capacity and its load behaviour is entirely a
// caller decision.
type Index[E any] interface {
	Insert(elt E, slot int)
	Search(elt E) (slot int, ok bool)
	Remove(elt E) (slot int, ok bool)
	Len() int
	Reset()
}

// MapIndex implements Index for comparable element types using a Go map.
type MapIndex[E comparable] map[E]int

// NewMapIndex returns a MapIndex sized for the expected number of
// simultaneously present elements.
func NewMapIndex[E comparable](hint int) MapIndex[E] {
	return make(MapIndex[E], hint)
}

func (mi MapIndex[E]) Insert(elt E, slot int) {
	mi[elt] = slot
}

func (mi MapIndex[E]) Search(elt E) (int, bool) {
	slot, ok := mi[elt]
	return slot, ok
}

func (mi MapIndex[E]) Remove(elt E) (int, bool) {
	slot, ok := mi[elt]
	if ok {
		delete(mi, elt)
	}
	return slot, ok
}

func (mi MapIndex[E]) Len() int {
	return len(mi)
}

func (mi MapIndex[E]) Reset() {
	clear(mi)
}
