// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package paths

import (
	"encoding/binary"

	"github.com/alfin3/ds-algs/container/bitmap"
	"github.com/alfin3/ds-algs/container/heap"
	"github.com/alfin3/ds-algs/graph"
)

func encodeVertex(v int) []byte {
	key := make([]byte, 8)
	binary.LittleEndian.PutUint64(key, uint64(v))
	return key
}

// Prim computes a minimum spanning tree (or forest, for a disconnected
// graph) of an undirected weighted graph, rooted at start. It returns,
// for every vertex in the tree, the weight of the edge connecting it to
// its parent and the parent itself. Vertices outside start's component
// have a parent of graph.NoPrev; the start vertex is its own parent with
// a zero edge weight.
func Prim[W graph.Weight](a *graph.AdjacencyList[W], start int) (wts []W, prev []int, err error) {
	if err := checkStart(a, start); err != nil {
		return nil, nil, err
	}
	n := a.NumVertices()
	wts = make([]W, n)
	prev = make([]int, n)
	for i := range prev {
		prev[i] = graph.NoPrev
	}
	inHeap := bitmap.New(n)
	inTree := bitmap.New(n)
	h := heap.NewMin[W, int](cmpWeight[W], heap.NewHashed(encodeVertex, n, 0), heap.WithCapacity[int](n))
	prev[start] = start
	pushVertex(h, wts[start], start, inHeap)
	for h.Len() > 0 {
		wu, u, _ := h.Pop()
		inHeap.Clear(u)
		inTree.Set(u)
		wts[u] = wu
		for i, v := range a.Edges(u) {
			if inTree.IsSet(v) {
				continue
			}
			w := a.Weight(u, i)
			if prev[v] != graph.NoPrev && cmpWeight(wts[v], w) <= 0 {
				continue
			}
			wts[v] = w
			prev[v] = u
			relaxVertex(h, w, v, inHeap)
		}
	}
	return wts, prev, nil
}
