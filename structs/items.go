package structs

import (
	"github.com/ttpr0/go-looprouting/attr"
	"github.com/ttpr0/go-looprouting/geo"
)

//*******************************************
// graph structs
//*******************************************

type Node struct {
	Loc       geo.Coord
	Elevation float32
}

// Edge is an undirected street segment between NodeA and NodeB.
//
// GainAB and GainBA carry the directional climb in meters; both are
// non-negative and at most one is non-zero for a monotone slope.
type Edge struct {
	NodeA  int32
	NodeB  int32
	Type   attr.RoadType
	Length float32
	GainAB float32
	GainBA float32
}

// GetGain returns the climb in meters when traversing the edge away from the
// given endpoint.
func (self Edge) GetGain(from int32) float32 {
	if from == self.NodeA {
		return self.GainAB
	}
	return self.GainBA
}

// GetOtherNode returns the opposite endpoint, or -1 if the given node is not
// an endpoint of this edge.
func (self Edge) GetOtherNode(node int32) int32 {
	if node == self.NodeA {
		return self.NodeB
	}
	if node == self.NodeB {
		return self.NodeA
	}
	return -1
}
