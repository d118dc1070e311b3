// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package circular provides 'circular' data structures.
package circular

// Buffer provides a circular buffer, used as a FIFO queue, that grows as
// needed.
type Buffer[T any] struct {
	storage []T
	// NOTE, head==tail when the buffer is either empty or full, and
	// used must be consulted to distinguish the two cases.
	used int
	head int // index of the first data element.
	tail int // index one past the last data element.
}

// NewBuffer creates a new buffer with the specified initial capacity.
func NewBuffer[T any](size int) *Buffer[T] {
	if size <= 0 {
		size = 1
	}
	return &Buffer[T]{
		storage: make([]T, size),
	}
}

// Len returns the current number of elements in the buffer.
func (b *Buffer[T]) Len() int {
	return b.used
}

// Cap returns the current capacity of the buffer.
func (b *Buffer[T]) Cap() int {
	return len(b.storage)
}

func (b *Buffer[T]) grow() {
	n := make([]T, 2*len(b.storage))
	if b.head < b.tail {
		copy(n, b.storage[b.head:b.tail])
	} else {
		c := copy(n, b.storage[b.head:])
		copy(n[c:], b.storage[:b.tail])
	}
	b.head = 0
	b.tail = b.used
	b.storage = n
}

// Push appends a value to the tail of the buffer, growing the buffer as
// needed.
func (b *Buffer[T]) Push(v T) {
	if b.used == len(b.storage) {
		b.grow()
	}
	b.storage[b.tail] = v
	b.tail = (b.tail + 1) % len(b.storage)
	b.used++
}

// Pop removes and returns the value at the head of the buffer. It returns
// false if the buffer is empty.
func (b *Buffer[T]) Pop() (T, bool) {
	var v T
	if b.used == 0 {
		return v, false
	}
	v, b.storage[b.head] = b.storage[b.head], v
	b.head = (b.head + 1) % len(b.storage)
	b.used--
	return v, true
}
