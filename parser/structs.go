package parser

import (
	"github.com/ttpr0/go-looprouting/attr"
	"github.com/ttpr0/go-looprouting/geo"
	. "github.com/ttpr0/go-looprouting/util"
)

//*******************************************
// parser structs
//*******************************************

type TempNode struct {
	Point geo.Coord
	Count int32
}
type OSMNode struct {
	Point geo.Coord
	Edges List[int32]
}
type OSMEdge struct {
	NodeA int
	NodeB int
	Type  attr.RoadType
	Nodes List[geo.Coord]
}
