package comps

import (
	"github.com/ttpr0/go-looprouting/geo"
	"github.com/ttpr0/go-looprouting/structs"
	. "github.com/ttpr0/go-looprouting/util"
)

//*******************************************
// graph base interface
//*******************************************

type IGraphBase interface {
	NodeCount() int
	EdgeCount() int
	GetNode(node int32) structs.Node
	IsNode(node int32) bool
	GetEdge(edge int32) structs.Edge
	IsEdge(edge int32) bool
	GetEdgeGeom(edge int32) geo.CoordArray
	GetAccessor() structs.AdjArrayAccessor
}

//*******************************************
// graph base
//*******************************************

var _ IGraphBase = &GraphBase{}

// GraphBase is the immutable street-network store: node and edge arenas
// addressed by dense int32 indices plus the adjacency topology. Built once
// at startup, read-only afterwards.
type GraphBase struct {
	nodes      Array[structs.Node]
	edges      Array[structs.Edge]
	edge_geoms []geo.CoordArray
	topology   structs.AdjacencyArray
}

// NewGraphBase builds the graph store from ingested nodes and edges.
//
// edge_geoms may be nil or carry nil entries; edges without an explicit
// geometry fall back to the straight segment between their endpoints.
func NewGraphBase(nodes Array[structs.Node], edges Array[structs.Edge], edge_geoms []geo.CoordArray) *GraphBase {
	topology := structs.BuildAdjacency(nodes.Length(), edges)
	return &GraphBase{
		nodes:      nodes,
		edges:      edges,
		edge_geoms: edge_geoms,
		topology:   topology,
	}
}

func (self *GraphBase) NodeCount() int {
	return len(self.nodes)
}
func (self *GraphBase) EdgeCount() int {
	return len(self.edges)
}
func (self *GraphBase) IsNode(node int32) bool {
	if node >= 0 && node < int32(len(self.nodes)) {
		return true
	} else {
		return false
	}
}
func (self *GraphBase) GetNode(node int32) structs.Node {
	return self.nodes[node]
}
func (self *GraphBase) IsEdge(edge int32) bool {
	if edge >= 0 && edge < int32(len(self.edges)) {
		return true
	} else {
		return false
	}
}
func (self *GraphBase) GetEdge(edge int32) structs.Edge {
	return self.edges[edge]
}

// GetEdgeGeom returns the geometry of an edge oriented from NodeA to NodeB.
// The returned slice is freshly allocated and safe to modify.
func (self *GraphBase) GetEdgeGeom(edge int32) geo.CoordArray {
	if self.edge_geoms != nil && self.edge_geoms[edge] != nil {
		geom := make(geo.CoordArray, len(self.edge_geoms[edge]))
		copy(geom, self.edge_geoms[edge])
		return geom
	}
	e := self.GetEdge(edge)
	return geo.CoordArray{self.nodes[e.NodeA].Loc, self.nodes[e.NodeB].Loc}
}

func (self *GraphBase) GetAccessor() structs.AdjArrayAccessor {
	return self.topology.GetAccessor()
}
