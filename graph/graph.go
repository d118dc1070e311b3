// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package graph provides an adjacency list representation of directed and
// undirected graphs with generic edge weights. Vertices are dense ints
// starting from 0.
package graph

import (
	"fmt"

	"cloudeng.io/errors"
)

// Weight represents the set of basic numeric types that can be used as
// edge weights by the algorithms in this repository.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Graph is an edge list description of a graph: edge i runs from U[i] to
// V[i] with weight Weights[i]. Weights may be nil for an unweighted
// graph.
type Graph[W any] struct {
	NumVertices int
	U, V        []int
	Weights     []W
}

// NumEdges returns the number of edges in the edge list.
func (g Graph[W]) NumEdges() int {
	return len(g.U)
}

func (g Graph[W]) validate() error {
	errs := errors.M{}
	if g.NumVertices < 0 {
		errs.Append(fmt.Errorf("negative number of vertices: %v", g.NumVertices))
	}
	if len(g.U) != len(g.V) {
		errs.Append(fmt.Errorf("mismatched edge lists: %v u's, %v v's", len(g.U), len(g.V)))
	}
	if g.Weights != nil && len(g.Weights) != len(g.U) {
		errs.Append(fmt.Errorf("mismatched weights: %v for %v edges", len(g.Weights), len(g.U)))
	}
	for i := range g.U {
		if u := g.U[i]; u < 0 || u >= g.NumVertices {
			errs.Append(fmt.Errorf("edge %v: vertex %v out of range", i, u))
		}
		if i >= len(g.V) {
			continue
		}
		if v := g.V[i]; v < 0 || v >= g.NumVertices {
			errs.Append(fmt.Errorf("edge %v: vertex %v out of range", i, v))
		}
	}
	return errs.Err()
}

// AdjacencyList represents a graph as per-vertex slices of neighbouring
// vertices and, for weighted graphs, the corresponding edge weights.
type AdjacencyList[W any] struct {
	edges    [][]int
	weights  [][]W
	numEdges int
}

// NumVertices returns the number of vertices.
func (a *AdjacencyList[W]) NumVertices() int {
	return len(a.edges)
}

// NumEdges returns the number of directed edges; an undirected edge
// counts twice.
func (a *AdjacencyList[W]) NumEdges() int {
	return a.numEdges
}

// Edges returns the neighbours of vertex u. The returned slice is shared
// with the adjacency list and must not be modified.
func (a *AdjacencyList[W]) Edges(u int) []int {
	return a.edges[u]
}

// Weight returns the weight of the i'th edge of vertex u, in the order
// returned by Edges.
func (a *AdjacencyList[W]) Weight(u, i int) W {
	return a.weights[u][i]
}

// Weighted returns true if the adjacency list carries edge weights.
func (a *AdjacencyList[W]) Weighted() bool {
	return a.weights != nil
}

func (a *AdjacencyList[W]) addEdge(g Graph[W], u, v, i int) {
	a.edges[u] = append(a.edges[u], v)
	if a.weights != nil {
		a.weights[u] = append(a.weights[u], g.Weights[i])
	}
	a.numEdges++
}

func newAdjacencyList[W any](g Graph[W]) (*AdjacencyList[W], error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	a := &AdjacencyList[W]{
		edges: make([][]int, g.NumVertices),
	}
	if g.Weights != nil {
		a.weights = make([][]W, g.NumVertices)
	}
	return a, nil
}

// BuildDirected builds the adjacency list of a directed graph from its
// edge list.
func BuildDirected[W any](g Graph[W]) (*AdjacencyList[W], error) {
	a, err := newAdjacencyList(g)
	if err != nil {
		return nil, err
	}
	for i := range g.U {
		a.addEdge(g, g.U[i], g.V[i], i)
	}
	return a, nil
}

// BuildUndirected builds the adjacency list of an undirected graph from
// its edge list; every edge is entered in both directions.
func BuildUndirected[W any](g Graph[W]) (*AdjacencyList[W], error) {
	a, err := newAdjacencyList(g)
	if err != nil {
		return nil, err
	}
	for i := range g.U {
		a.addEdge(g, g.U[i], g.V[i], i)
		a.addEdge(g, g.V[i], g.U[i], i)
	}
	return a, nil
}
