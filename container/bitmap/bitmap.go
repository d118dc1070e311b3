// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bitmap provides a simple bitmap for tracking dense sets of
// vertices, such as the set of vertices currently queued in a heap during
// a graph traversal.
package bitmap

// T is a bitmap type that represents a set of bits using a slice of
// uint64. The size of the bitmap is rounded up to the nearest multiple of
// 64 bits.
type T []uint64

// New creates a new bitmap of the specified size in bits.
func New(size int) T {
	if size <= 0 {
		return nil
	}
	return make(T, (size+63)/64)
}

// Set sets the bit at index i to 1. If i is out of bounds the function
// does nothing.
func (b T) Set(i int) {
	if i < 0 || i >= len(b)*64 {
		return
	}
	b[i/64] |= 1 << (i % 64)
}

// Clear clears the bit at index i, setting it to 0. If i is out of bounds
// the function does nothing.
func (b T) Clear(i int) {
	if i < 0 || i >= len(b)*64 {
		return
	}
	b[i/64] &^= 1 << (i % 64)
}

// IsSet checks if the bit at index i is set. If i is out of bounds it
// returns false.
func (b T) IsSet(i int) bool {
	if i < 0 || i >= len(b)*64 {
		return false
	}
	return (b[i/64] & (1 << (i % 64))) != 0
}
