// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"testing"
)

// Verify checks the heap order invariant and the bijection between the
// slot index and the occupied slots of the pair store.
func (h *Min[P, E]) Verify(t *testing.T) {
	t.Helper()
	h.verifyOrder(t, 0)
	h.verifyIndex(t)
}

func (h *Min[P, E]) verifyOrder(t *testing.T, p int) {
	t.Helper()
	l, r := (2*p)+1, (2*p)+2
	if l < h.n {
		if h.cmp(h.store.slot(p).pty, h.store.slot(l).pty) > 0 {
			t.Errorf("heap inconsistent: left sub tree for %v (%v > [%v]: %v)", p, h.store.slot(p).pty, l, h.store.slot(l).pty)
			return
		}
		h.verifyOrder(t, l)
	}
	if r < h.n {
		if h.cmp(h.store.slot(p).pty, h.store.slot(r).pty) > 0 {
			t.Errorf("heap inconsistent: right sub tree for %v (%v > [%v]: %v)", p, h.store.slot(p).pty, r, h.store.slot(r).pty)
			return
		}
		h.verifyOrder(t, r)
	}
}

func (h *Min[P, E]) verifyIndex(t *testing.T) {
	t.Helper()
	if got, want := h.index.Len(), h.n; got != want {
		t.Errorf("index inconsistent: %v entries for %v elements", got, want)
	}
	for i := 0; i < h.n; i++ {
		slot, ok := h.index.Search(h.store.slot(i).elt)
		if !ok {
			t.Errorf("index inconsistent: element at slot %v not indexed", i)
			continue
		}
		if got, want := slot, i; got != want {
			t.Errorf("index inconsistent: element at slot %v indexed at %v", want, got)
		}
	}
}

// Capacity exposes the pair store capacity for tests.
func (h *Min[P, E]) Capacity() int {
	return h.store.capacity()
}
