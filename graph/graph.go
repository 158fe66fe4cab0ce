package graph

import (
	"github.com/ttpr0/go-looprouting/comps"
	"github.com/ttpr0/go-looprouting/geo"
	"github.com/ttpr0/go-looprouting/structs"
)

//*******************************************
// graph interfaces
//******************************************

type IGraph interface {
	GetGraphExplorer() IGraphExplorer
	GetGraphExplorerWith(weight comps.IWeighting) IGraphExplorer
	NodeCount() int
	EdgeCount() int
	IsNode(node int32) bool
	GetNode(node int32) structs.Node
	GetEdge(edge int32) structs.Edge
	GetNodeGeom(node int32) geo.Coord
	GetEdgeGeom(edge int32) geo.CoordArray
	GetClosestNode(point geo.Coord) (int32, bool)
	GetClosestEdge(point geo.Coord, max_dist float32) (comps.EdgeProjection, bool)
}

// not thread safe, use only one instance per traversal
type IGraphExplorer interface {
	// Iterates through the adjacency of a node calling the callback for
	// every incident edge.
	//
	// The graph is undirected, FORWARD and BACKWARD yield the same edges.
	ForAdjacentEdges(node int32, dir Direction, typ Adjacency, callback func(EdgeRef))
	GetEdgeWeight(edge EdgeRef) int32
	GetOtherNode(edge EdgeRef, node int32) int32
}

//*******************************************
// base-graph
//******************************************

type Graph struct {
	base   comps.IGraphBase
	weight comps.IWeighting
	index  comps.IGraphIndex
}

func (self *Graph) GetGraphExplorer() IGraphExplorer {
	return &BaseGraphExplorer{
		graph:    self,
		accessor: self.base.GetAccessor(),
		weight:   self.weight,
	}
}

// GetGraphExplorerWith returns an explorer using a different weighting, e.g.
// a penalized weighting during loop search.
func (self *Graph) GetGraphExplorerWith(weight comps.IWeighting) IGraphExplorer {
	return &BaseGraphExplorer{
		graph:    self,
		accessor: self.base.GetAccessor(),
		weight:   weight,
	}
}
func (self *Graph) NodeCount() int {
	return self.base.NodeCount()
}
func (self *Graph) EdgeCount() int {
	return self.base.EdgeCount()
}
func (self *Graph) IsNode(node int32) bool {
	return self.base.IsNode(node)
}
func (self *Graph) GetNode(node int32) structs.Node {
	return self.base.GetNode(node)
}
func (self *Graph) GetEdge(edge int32) structs.Edge {
	return self.base.GetEdge(edge)
}
func (self *Graph) GetNodeGeom(node int32) geo.Coord {
	return self.base.GetNode(node).Loc
}
func (self *Graph) GetEdgeGeom(edge int32) geo.CoordArray {
	return self.base.GetEdgeGeom(edge)
}
func (self *Graph) GetClosestNode(point geo.Coord) (int32, bool) {
	return self.index.GetClosestNode(point)
}
func (self *Graph) GetClosestEdge(point geo.Coord, max_dist float32) (comps.EdgeProjection, bool) {
	return self.index.GetClosestEdge(point, max_dist)
}

//*******************************************
// base-graph explorer
//******************************************

type BaseGraphExplorer struct {
	graph    *Graph
	accessor structs.AdjArrayAccessor
	weight   comps.IWeighting
}

func (self *BaseGraphExplorer) ForAdjacentEdges(node int32, direction Direction, typ Adjacency, callback func(EdgeRef)) {
	if typ == ADJACENT_ALL || typ == ADJACENT_EDGES {
		self.accessor.SetBaseNode(node)
		for self.accessor.Next() {
			edge_id := self.accessor.GetEdgeID()
			other_id := self.accessor.GetOtherID()
			callback(EdgeRef{
				EdgeID:  edge_id,
				OtherID: other_id,
			})
		}
	} else {
		panic("Adjacency-type not implemented for this graph.")
	}
}
func (self *BaseGraphExplorer) GetEdgeWeight(edge EdgeRef) int32 {
	return self.weight.GetEdgeWeight(edge.EdgeID)
}
func (self *BaseGraphExplorer) GetOtherNode(edge EdgeRef, node int32) int32 {
	e := self.graph.GetEdge(edge.EdgeID)
	return e.GetOtherNode(node)
}
