package routing

import (
	"fmt"
	"math"

	"github.com/ttpr0/go-looprouting/comps"
	"github.com/ttpr0/go-looprouting/geo"
	"github.com/ttpr0/go-looprouting/graph"
	"github.com/ttpr0/go-looprouting/structs"
	. "github.com/ttpr0/go-looprouting/util"
)

//*******************************************
// snap engine
//*******************************************

const _DEFAULT_MAX_SNAP_DIST float32 = 60.0

// SnapEngine maps free-hand polylines onto the street network. Every input
// point is projected onto its closest edge and consecutive projections are
// connected with on-network shortest paths, so the output follows streets
// end to end.
type SnapEngine struct {
	g             graph.IGraph
	max_snap_dist float32
}

func NewSnapEngine(g graph.IGraph, max_snap_dist float32) *SnapEngine {
	if max_snap_dist <= 0 {
		max_snap_dist = _DEFAULT_MAX_SNAP_DIST
	}
	return &SnapEngine{
		g:             g,
		max_snap_dist: max_snap_dist,
	}
}

// Snap projects every point onto the network and connects the projections
// in input order. Points already on the network stay where they are, so
// snapping its own output is a no-op.
func (self *SnapEngine) Snap(points geo.CoordArray) (geo.CoordArray, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %v", ErrInsufficientPoints, len(points))
	}
	projections := make([]comps.EdgeProjection, len(points))
	for i, point := range points {
		proj, ok := self.g.GetClosestEdge(point, self.max_snap_dist)
		if !ok {
			return nil, fmt.Errorf("%w: point %v", ErrSnapOutOfRange, i)
		}
		projections[i] = proj
	}

	flags := NewSPTFlags(self.g)
	result := make(geo.CoordArray, 0, len(points)*4)
	result = _AppendCoord(result, projections[0].Point)
	for i := 0; i < len(projections)-1; i++ {
		segment, err := self._ConnectProjections(projections[i], projections[i+1], &flags)
		if err != nil {
			return nil, err
		}
		for _, c := range segment {
			result = _AppendCoord(result, c)
		}
	}
	return result, nil
}

// _ConnectProjections returns the on-network polyline from a to b, including
// both projection points.
func (self *SnapEngine) _ConnectProjections(a, b comps.EdgeProjection, flags *Flags[SPTFlag]) (geo.CoordArray, error) {
	if a.EdgeID == b.EdgeID {
		geom := self.g.GetEdgeGeom(a.EdgeID)
		return geo.SubLine(geom, a.Offset, b.Offset), nil
	}

	geom_a := self.g.GetEdgeGeom(a.EdgeID)
	geom_b := self.g.GetEdgeGeom(b.EdgeID)
	len_a := geo.LineLength(geom_a)
	len_b := geo.LineLength(geom_b)
	edge_a := self.g.GetEdge(a.EdgeID)
	edge_b := self.g.GetEdge(b.EdgeID)

	// Both endpoints of the source edge seed the search with the partial
	// edge length already travelled.
	starts := Array[Tuple[int32, int32]]{
		MakeTuple(edge_a.NodeA, int32(a.Offset)),
		MakeTuple(edge_a.NodeB, int32(len_a-a.Offset)),
	}
	flags.Reset()
	CalcShortestPathTree(self.g, self.g.GetGraphExplorer(), starts, flags, math.MaxInt32/2)

	// Enter the target edge through whichever endpoint gives the shorter
	// total, with the remaining partial edge length added.
	entry, entry_offset, ok := self._PickEntry(edge_b, len_b, b.Offset, flags)
	if !ok {
		return nil, ErrUnreachable
	}

	path_nodes, path_edges, _ := ReconstructPath(flags, entry)

	result := make(geo.CoordArray, 0, path_edges.Length()*2+4)
	first := path_nodes[0]
	var from_offset float32
	if first == edge_a.NodeA {
		from_offset = 0
	} else {
		from_offset = len_a
	}
	for _, c := range geo.SubLine(geom_a, a.Offset, from_offset) {
		result = _AppendCoord(result, c)
	}
	for i, e := range path_edges {
		geom := self.g.GetEdgeGeom(e)
		edge := self.g.GetEdge(e)
		if path_nodes[i] == edge.NodeB {
			for l, r := 0, len(geom)-1; l < r; l, r = l+1, r-1 {
				geom[l], geom[r] = geom[r], geom[l]
			}
		}
		for _, c := range geom {
			result = _AppendCoord(result, c)
		}
	}
	for _, c := range geo.SubLine(geom_b, entry_offset, b.Offset) {
		result = _AppendCoord(result, c)
	}
	return result, nil
}

// _PickEntry selects the endpoint of the target edge minimizing the total
// distance including the partial target edge; ties go to the lower node id.
func (self *SnapEngine) _PickEntry(edge_b structs.Edge, len_b float32, offset float32, flags *Flags[SPTFlag]) (int32, float32, bool) {
	cost_a := int32(math.MaxInt32)
	cost_b := int32(math.MaxInt32)
	if flags.IsSet(edge_b.NodeA) && flags.Get(edge_b.NodeA).Dist < _UNREACHED {
		cost_a = flags.Get(edge_b.NodeA).Dist + int32(offset)
	}
	if flags.IsSet(edge_b.NodeB) && flags.Get(edge_b.NodeB).Dist < _UNREACHED {
		cost_b = flags.Get(edge_b.NodeB).Dist + int32(len_b-offset)
	}
	if cost_a == int32(math.MaxInt32) && cost_b == int32(math.MaxInt32) {
		return -1, 0, false
	}
	if cost_a < cost_b || (cost_a == cost_b && edge_b.NodeA < edge_b.NodeB) {
		return edge_b.NodeA, 0, true
	}
	return edge_b.NodeB, len_b, true
}

func _AppendCoord(line geo.CoordArray, c geo.Coord) geo.CoordArray {
	if len(line) > 0 && line[len(line)-1] == c {
		return line
	}
	return append(line, c)
}
