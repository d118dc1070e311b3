// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package graph

import (
	"fmt"

	"github.com/alfin3/ds-algs/container/bitmap"
	"github.com/alfin3/ds-algs/container/circular"
)

// NoPrev marks a vertex that was not reached by a traversal in the
// predecessor slices returned by BreadthFirst and the algorithms in
// graph/paths.
const NoPrev = -1

// BreadthFirst traverses the adjacency list from start and returns the
// hop count and the predecessor of every reached vertex. Unreached
// vertices have a hop count of 0 and a predecessor of NoPrev; the start
// vertex is its own predecessor.
func BreadthFirst[W any](a *AdjacencyList[W], start int) (dist []int, prev []int, err error) {
	n := a.NumVertices()
	if start < 0 || start >= n {
		return nil, nil, fmt.Errorf("start vertex %v out of range [0, %v)", start, n)
	}
	dist = make([]int, n)
	prev = make([]int, n)
	for i := range prev {
		prev[i] = NoPrev
	}
	visited := bitmap.New(n)
	frontier := circular.NewBuffer[int](n)
	prev[start] = start
	visited.Set(start)
	frontier.Push(start)
	for {
		u, ok := frontier.Pop()
		if !ok {
			break
		}
		for _, v := range a.Edges(u) {
			if visited.IsSet(v) {
				continue
			}
			dist[v] = dist[u] + 1
			prev[v] = u
			visited.Set(v)
			frontier.Push(v)
		}
	}
	return dist, prev, nil
}
