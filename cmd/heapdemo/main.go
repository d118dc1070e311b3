// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command heapdemo runs the graph algorithms built on the indexed
// min-heap over randomly generated graphs.
package main

import (
	"context"
	"fmt"
	"math/rand"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"

	"github.com/alfin3/ds-algs/graph"
	"github.com/alfin3/ds-algs/graph/paths"
)

var cmdSet *subcmd.CommandSet

type graphFlags struct {
	Vertices  int   `subcmd:"vertices,1000,number of vertices in the generated graph"`
	OutDegree int   `subcmd:"out-degree,4,number of edges generated per vertex"`
	MaxWeight int   `subcmd:"max-weight,100,edge weights are drawn uniformly from [1..max-weight]"`
	Seed      int64 `subcmd:"seed,1,seed for the graph generator"`
	Start     int   `subcmd:"start,0,start vertex"`
}

func init() {
	shortestFlagSet := subcmd.NewFlagSet()
	shortestFlagSet.MustRegisterFlagStruct(&graphFlags{}, nil, nil)
	spanningFlagSet := subcmd.NewFlagSet()
	spanningFlagSet.MustRegisterFlagStruct(&graphFlags{}, nil, nil)

	shortestCmd := subcmd.NewCommand("shortest", shortestFlagSet, shortest, subcmd.WithoutArguments())
	shortestCmd.Document("run Dijkstra's algorithm on a random directed graph")

	spanningCmd := subcmd.NewCommand("spanning", spanningFlagSet, spanning, subcmd.WithoutArguments())
	spanningCmd.Document("run Prim's algorithm on a random undirected graph")

	cmdSet = subcmd.NewCommandSet(shortestCmd, spanningCmd)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

func randomGraph(fv *graphFlags) graph.Graph[int64] {
	rnd := rand.New(rand.NewSource(fv.Seed)) // #nosec: G404
	g := graph.Graph[int64]{NumVertices: fv.Vertices}
	for u := 0; u < fv.Vertices; u++ {
		for i := 0; i < fv.OutDegree; i++ {
			v := rnd.Intn(fv.Vertices)
			if v == u {
				continue
			}
			g.U = append(g.U, u)
			g.V = append(g.V, v)
			g.Weights = append(g.Weights, int64(1+rnd.Intn(fv.MaxWeight)))
		}
	}
	return g
}

func shortest(_ context.Context, values interface{}, _ []string) error {
	fv := values.(*graphFlags)
	a, err := graph.BuildDirected(randomGraph(fv))
	if err != nil {
		return err
	}
	dist, prev, err := paths.Dijkstra(a, fv.Start)
	if err != nil {
		return err
	}
	reached, maxDist := 0, int64(0)
	for v, p := range prev {
		if p == graph.NoPrev {
			continue
		}
		reached++
		if dist[v] > maxDist {
			maxDist = dist[v]
		}
	}
	fmt.Printf("vertices: %v, edges: %v\n", a.NumVertices(), a.NumEdges())
	fmt.Printf("reached %v vertices from %v, max distance %v\n", reached, fv.Start, maxDist)
	return nil
}

func spanning(_ context.Context, values interface{}, _ []string) error {
	fv := values.(*graphFlags)
	a, err := graph.BuildUndirected(randomGraph(fv))
	if err != nil {
		return err
	}
	wts, prev, err := paths.Prim(a, fv.Start)
	if err != nil {
		return err
	}
	inTree, total := 0, int64(0)
	for v, p := range prev {
		if p == graph.NoPrev || v == fv.Start {
			continue
		}
		inTree++
		total += wts[v]
	}
	fmt.Printf("vertices: %v, edges: %v\n", a.NumVertices(), a.NumEdges())
	fmt.Printf("spanning tree from %v: %v edges, total weight %v\n", fv.Start, inTree, total)
	return nil
}
