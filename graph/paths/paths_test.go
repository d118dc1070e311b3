// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package paths_test

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/alfin3/ds-algs/graph"
	"github.com/alfin3/ds-algs/graph/paths"
)

// wikiGraph is the classic 6 vertex example; shortest distances from
// vertex 0 are well known.
func wikiGraph() graph.Graph[uint64] {
	return graph.Graph[uint64]{
		NumVertices: 6,
		U:           []int{0, 0, 0, 1, 1, 2, 2, 3, 4},
		V:           []int{1, 2, 5, 2, 3, 3, 5, 4, 5},
		Weights:     []uint64{7, 9, 14, 10, 15, 11, 2, 6, 9},
	}
}

func TestDijkstra(t *testing.T) {
	a, err := graph.BuildUndirected(wikiGraph())
	if err != nil {
		t.Fatal(err)
	}
	dist, prev, err := paths.Dijkstra(a, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := dist, []uint64{0, 7, 9, 20, 20, 11}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := prev, []int{0, 0, 0, 2, 5, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDijkstraDirected(t *testing.T) {
	g := graph.Graph[int]{
		NumVertices: 4,
		U:           []int{0, 0, 1, 2, 3},
		V:           []int{1, 2, 3, 1, 0},
		Weights:     []int{1, 4, 1, 1, 1},
	}
	a, err := graph.BuildDirected(g)
	if err != nil {
		t.Fatal(err)
	}
	dist, prev, err := paths.Dijkstra(a, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := dist, []int{0, 1, 4, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := prev, []int{0, 0, 0, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	dist2, prev2, err := paths.Dijkstra(a, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := dist2, []int{2, 0, 6, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := prev2, []int{3, 1, 0, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDijkstraErrors(t *testing.T) {
	a, err := graph.BuildUndirected(wikiGraph())
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := paths.Dijkstra(a, -1); err == nil {
		t.Errorf("expected an error for an out of range start")
	}
	if _, _, err := paths.Dijkstra(a, 6); err == nil {
		t.Errorf("expected an error for an out of range start")
	}
	unweighted, err := graph.BuildDirected(graph.Graph[int]{NumVertices: 1})
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := paths.Dijkstra(unweighted, 0); err == nil {
		t.Errorf("expected an error for an unweighted graph")
	}
}

func TestPrim(t *testing.T) {
	a, err := graph.BuildUndirected(wikiGraph())
	if err != nil {
		t.Fatal(err)
	}
	wts, prev, err := paths.Prim(a, 0)
	if err != nil {
		t.Fatal(err)
	}
	var total uint64
	for v, p := range prev {
		if p == graph.NoPrev {
			t.Errorf("vertex %v not spanned", v)
			continue
		}
		if v != 0 {
			total += wts[v]
		}
	}
	// The unique MST is {0-1, 0-2, 2-5, 5-4, 4-3} with weight 33.
	if got, want := total, uint64(33); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := prev, []int{0, 0, 0, 4, 5, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPrimForest(t *testing.T) {
	// Two components; only the start's component is spanned.
	g := graph.Graph[int]{
		NumVertices: 5,
		U:           []int{0, 1, 3},
		V:           []int{1, 2, 4},
		Weights:     []int{1, 2, 3},
	}
	a, err := graph.BuildUndirected(g)
	if err != nil {
		t.Fatal(err)
	}
	_, prev, err := paths.Prim(a, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := prev, []int{0, 0, 1, graph.NoPrev, graph.NoPrev}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// dijkstraRef is a quadratic reference implementation used as an oracle
// for randomized graphs.
func dijkstraRef(a *graph.AdjacencyList[int], start int) ([]int, []bool) {
	n := a.NumVertices()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	reached := make([]bool, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = inf
	}
	dist[start] = 0
	reached[start] = true
	for {
		u, best := -1, inf
		for v := 0; v < n; v++ {
			if !done[v] && reached[v] && dist[v] < best {
				u, best = v, dist[v]
			}
		}
		if u < 0 {
			break
		}
		done[u] = true
		for i, v := range a.Edges(u) {
			if nd := dist[u] + a.Weight(u, i); nd < dist[v] {
				dist[v] = nd
				reached[v] = true
			}
		}
	}
	return dist, reached
}

func TestDijkstraRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(29)) // #nosec: G404
	for iter := 0; iter < 20; iter++ {
		n := 2 + rnd.Intn(60)
		g := graph.Graph[int]{NumVertices: n}
		for u := 0; u < n; u++ {
			for d := 0; d < 3; d++ {
				v := rnd.Intn(n)
				if v == u {
					continue
				}
				g.U = append(g.U, u)
				g.V = append(g.V, v)
				g.Weights = append(g.Weights, 1+rnd.Intn(50))
			}
		}
		a, err := graph.BuildDirected(g)
		if err != nil {
			t.Fatal(err)
		}
		dist, prev, err := paths.Dijkstra(a, 0)
		if err != nil {
			t.Fatal(err)
		}
		wdist, wreached := dijkstraRef(a, 0)
		for v := 0; v < n; v++ {
			if got, want := prev[v] != graph.NoPrev, wreached[v]; got != want {
				t.Fatalf("n=%v v=%v: got reached %v, want %v", n, v, got, want)
			}
			if !wreached[v] {
				continue
			}
			if got, want := dist[v], wdist[v]; got != want {
				t.Fatalf("n=%v v=%v: got %v, want %v", n, v, got, want)
			}
		}
	}
}
