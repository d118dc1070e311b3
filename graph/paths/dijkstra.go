// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package paths provides shortest path and minimum spanning tree
// algorithms over adjacency lists, built on the indexed min-heap in
// container/heap.
package paths

import (
	"fmt"

	"github.com/alfin3/ds-algs/container/bitmap"
	"github.com/alfin3/ds-algs/container/heap"
	"github.com/alfin3/ds-algs/graph"
)

func cmpWeight[W graph.Weight](a, b W) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func checkStart[W any](a *graph.AdjacencyList[W], start int) error {
	if n := a.NumVertices(); start < 0 || start >= n {
		return fmt.Errorf("start vertex %v out of range [0, %v)", start, n)
	}
	if !a.Weighted() {
		return fmt.Errorf("adjacency list carries no edge weights")
	}
	return nil
}

// Dijkstra computes the shortest distance from start to every reachable
// vertex of a graph with non-negative edge weights, along with the
// predecessor of each vertex on its shortest path. Unreached vertices
// have a predecessor of graph.NoPrev and their distance is meaningless;
// the start vertex is its own predecessor.
//
// A vertex enters the heap when first reached and its queued distance is
// decreased in place as shorter paths are found, so the heap never holds
// more than one entry per vertex.
func Dijkstra[W graph.Weight](a *graph.AdjacencyList[W], start int) (dist []W, prev []int, err error) {
	if err := checkStart(a, start); err != nil {
		return nil, nil, err
	}
	n := a.NumVertices()
	dist = make([]W, n)
	prev = make([]int, n)
	for i := range prev {
		prev[i] = graph.NoPrev
	}
	inHeap := bitmap.New(n)
	h := heap.NewMin[W, int](cmpWeight[W], heap.NewMapIndex[int](n), heap.WithCapacity[int](n))
	prev[start] = start
	pushVertex(h, dist[start], start, inHeap)
	for h.Len() > 0 {
		du, u, _ := h.Pop()
		inHeap.Clear(u)
		for i, v := range a.Edges(u) {
			nd := du + a.Weight(u, i)
			if prev[v] != graph.NoPrev && cmpWeight(dist[v], nd) <= 0 {
				continue
			}
			dist[v] = nd
			prev[v] = u
			relaxVertex(h, nd, v, inHeap)
		}
	}
	return dist, prev, nil
}

func pushVertex[W graph.Weight](h *heap.Min[W, int], pty W, v int, inHeap bitmap.T) {
	if err := h.Push(pty, v); err != nil {
		panic(err) // inHeap tracking violated
	}
	inHeap.Set(v)
}

func relaxVertex[W graph.Weight](h *heap.Min[W, int], pty W, v int, inHeap bitmap.T) {
	if inHeap.IsSet(v) {
		if err := h.Update(pty, v); err != nil {
			panic(err)
		}
		return
	}
	pushVertex(h, pty, v, inHeap)
}
