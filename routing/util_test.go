package routing

import (
	"github.com/ttpr0/go-looprouting/attr"
	"github.com/ttpr0/go-looprouting/comps"
	"github.com/ttpr0/go-looprouting/geo"
	"github.com/ttpr0/go-looprouting/graph"
	"github.com/ttpr0/go-looprouting/structs"
	. "github.com/ttpr0/go-looprouting/util"
)

// square network (nodes 0-3) with fixed 100 m edge lengths plus an isolated
// node 4; edge gains alternate so a full loop climbs 100 m
func _BuildSquareGraph() (graph.IGraph, comps.IWeighting) {
	nodes := Array[structs.Node]{
		{Loc: geo.Coord{0, 0}, Elevation: 0},
		{Loc: geo.Coord{0, 0.01}, Elevation: 50},
		{Loc: geo.Coord{0.01, 0.01}, Elevation: 0},
		{Loc: geo.Coord{0.01, 0}, Elevation: 50},
		{Loc: geo.Coord{0.05, 0.05}, Elevation: 0},
	}
	edges := Array[structs.Edge]{
		{NodeA: 0, NodeB: 1, Type: attr.RESIDENTIAL, Length: 100, GainAB: 50, GainBA: 0},
		{NodeA: 1, NodeB: 2, Type: attr.RESIDENTIAL, Length: 100, GainAB: 0, GainBA: 50},
		{NodeA: 2, NodeB: 3, Type: attr.RESIDENTIAL, Length: 100, GainAB: 50, GainBA: 0},
		{NodeA: 3, NodeB: 0, Type: attr.RESIDENTIAL, Length: 100, GainAB: 0, GainBA: 50},
	}
	base := comps.NewGraphBase(nodes, edges, nil)
	weight := comps.BuildDistanceWeighting(base)
	runner := comps.BuildRunnerWeighting(base)
	index := comps.NewGraphIndex(base)
	return graph.BuildGraph(base, weight, index), runner
}

// three nodes in a row along the equator, edge lengths taken from the
// geometry so snapped distances agree with coordinate arithmetic
func _BuildLineGraph() graph.IGraph {
	nodes := Array[structs.Node]{
		{Loc: geo.Coord{0, 0}, Elevation: 100},
		{Loc: geo.Coord{0.001, 0}, Elevation: 110},
		{Loc: geo.Coord{0.002, 0}, Elevation: 105},
	}
	edges := Array[structs.Edge]{
		{NodeA: 0, NodeB: 1, Type: attr.PATH},
		{NodeA: 1, NodeB: 2, Type: attr.PATH},
	}
	for i := range edges {
		e := &edges[i]
		e.Length = geo.HaversineDistance(nodes[e.NodeA].Loc, nodes[e.NodeB].Loc)
	}
	base := comps.NewGraphBase(nodes, edges, nil)
	weight := comps.BuildDistanceWeighting(base)
	index := comps.NewGraphIndex(base)
	return graph.BuildGraph(base, weight, index)
}
