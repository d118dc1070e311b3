// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

const (
	defaultHashedCapacity   = 64
	defaultHashedLoadFactor = 0.75
)

type hashedEntry struct {
	hash    uint64
	key     []byte
	slot    int
	live    bool
	deleted bool
}

// Hashed implements Index for any element type whose identity can be
// encoded as a fixed byte pattern. Elements are keyed by the exact bytes
// produced by the encoding function, hashed with xxhash, and stored in an
// open addressing table with linear probing. The capacity and load factor
// hints allow the table to be tuned to the expected number of
// simultaneously present elements.
type Hashed[E any] struct {
	encode  func(E) []byte
	entries []hashedEntry
	live    int
	used    int // live plus tombstones
	minSize int
	maxLoad float64
}

// NewHashed returns a Hashed index. The encode function must produce the
// identity bytes of an element; two elements are the same element iff
// their encodings are byte for byte identical. The returned slice may
// share a buffer across calls since the index copies the bytes it
// retains. A capacity of 0 and a load factor of 0 select defaults.
func NewHashed[E any](encode func(E) []byte, capacity int, loadFactor float64) *Hashed[E] {
	if capacity <= 0 {
		capacity = defaultHashedCapacity
	}
	if loadFactor <= 0 || loadFactor >= 1 {
		loadFactor = defaultHashedLoadFactor
	}
	n := 1
	for n < capacity {
		n <<= 1
	}
	return &Hashed[E]{
		encode:  encode,
		entries: make([]hashedEntry, n),
		minSize: n,
		maxLoad: loadFactor,
	}
}

// probe returns the position of the entry holding key, or, if the key is
// absent, the position at which it should be stored.
func (hi *Hashed[E]) probe(hash uint64, key []byte) int {
	mask := uint64(len(hi.entries) - 1)
	pos := int(hash & mask)
	first := -1
	for {
		e := &hi.entries[pos]
		if !e.live && !e.deleted {
			if first >= 0 {
				return first
			}
			return pos
		}
		if e.deleted {
			if first < 0 {
				first = pos
			}
		} else if e.hash == hash && bytes.Equal(e.key, key) {
			return pos
		}
		pos = int((uint64(pos) + 1) & mask)
	}
}

// grow rehashes into a table sized for the live entries, discarding
// tombstones. The table shrinks back towards its initial size when
// deletions rather than live entries breached the load factor.
func (hi *Hashed[E]) grow() {
	n := hi.minSize
	for float64(hi.live+1) > hi.maxLoad*float64(n) {
		n <<= 1
	}
	old := hi.entries
	hi.entries = make([]hashedEntry, n)
	hi.live, hi.used = 0, 0
	for i := range old {
		if old[i].live {
			hi.insert(old[i].hash, old[i].key, old[i].slot, true)
		}
	}
}

// owned is true when key is already retained by the table and need
// not be copied before storing.
func (hi *Hashed[E]) insert(hash uint64, key []byte, slot int, owned bool) {
	pos := hi.probe(hash, key)
	e := &hi.entries[pos]
	if e.live {
		e.slot = slot
		return
	}
	if !e.deleted {
		hi.used++
	}
	if !owned {
		key = append(make([]byte, 0, len(key)), key...)
	}
	*e = hashedEntry{hash: hash, key: key, slot: slot, live: true}
	hi.live++
}

func (hi *Hashed[E]) Insert(elt E, slot int) {
	if float64(hi.used+1) > hi.maxLoad*float64(len(hi.entries)) {
		hi.grow()
	}
	key := hi.encode(elt)
	hi.insert(xxhash.Sum64(key), key, slot, false)
}

func (hi *Hashed[E]) Search(elt E) (int, bool) {
	key := hi.encode(elt)
	e := &hi.entries[hi.probe(xxhash.Sum64(key), key)]
	if !e.live {
		return 0, false
	}
	return e.slot, true
}

func (hi *Hashed[E]) Remove(elt E) (int, bool) {
	key := hi.encode(elt)
	e := &hi.entries[hi.probe(xxhash.Sum64(key), key)]
	if !e.live {
		return 0, false
	}
	slot := e.slot
	*e = hashedEntry{deleted: true}
	hi.live--
	return slot, true
}

func (hi *Hashed[E]) Len() int {
	return hi.live
}

// Cap returns the current size of the hash table.
func (hi *Hashed[E]) Cap() int {
	return len(hi.entries)
}

func (hi *Hashed[E]) Reset() {
	clear(hi.entries)
	hi.live, hi.used = 0, 0
}
