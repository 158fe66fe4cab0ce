package comps

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/quadtree"
	"golang.org/x/exp/slices"

	"github.com/ttpr0/go-looprouting/geo"
	. "github.com/ttpr0/go-looprouting/util"
)

//*******************************************
// graph index interface
//*******************************************

// EdgeProjection is the result of matching a free coordinate onto the
// network: the closest edge, the projected point on its geometry, the
// arc-length offset of that point from the edge's NodeA and the distance
// between query point and projection.
type EdgeProjection struct {
	EdgeID int32
	Point  geo.Coord
	Offset float32
	Dist   float32
}

type IGraphIndex interface {
	GetClosestNode(point geo.Coord) (int32, bool)
	GetClosestEdge(point geo.Coord, max_dist float32) (EdgeProjection, bool)
}

//*******************************************
// graph index
//*******************************************

// Spacing of the sample points inserted into the edge tree. Any edge within
// a query radius r has a sample point within r + _EDGE_SAMPLE_DIST of the
// query, which bounds the candidate search box.
const _EDGE_SAMPLE_DIST = 25.0

// Initial box radius for nearest-node queries; grown until the result is
// provably exact. Above _MAX_SEARCH_DIST the box covers the whole index.
const _NODE_SEARCH_DIST = 200.0
const _MAX_SEARCH_DIST = 2.5e7

type _IndexPoint struct {
	point orb.Point
	id    int32
}

func (self _IndexPoint) Point() orb.Point {
	return self.point
}

var _ IGraphIndex = &BaseGraphIndex{}

type BaseGraphIndex struct {
	base      IGraphBase
	node_tree *quadtree.Quadtree
	edge_tree *quadtree.Quadtree
}

func NewGraphIndex(base IGraphBase) *BaseGraphIndex {
	bound := _NodeBound(base)
	node_tree := quadtree.New(bound)
	for i := 0; i < base.NodeCount(); i++ {
		node := base.GetNode(int32(i))
		node_tree.Add(_IndexPoint{point: node.Loc.ToPoint(), id: int32(i)})
	}
	edge_tree := quadtree.New(bound)
	for i := 0; i < base.EdgeCount(); i++ {
		edge_id := int32(i)
		geom := base.GetEdgeGeom(edge_id)
		geo.SampleAlongLine(geom, _EDGE_SAMPLE_DIST, func(c geo.Coord) {
			edge_tree.Add(_IndexPoint{point: c.ToPoint(), id: edge_id})
		})
	}
	return &BaseGraphIndex{
		base:      base,
		node_tree: node_tree,
		edge_tree: edge_tree,
	}
}

func _NodeBound(base IGraphBase) orb.Bound {
	bound := orb.Bound{
		Min: orb.Point{180, 90},
		Max: orb.Point{-180, -90},
	}
	for i := 0; i < base.NodeCount(); i++ {
		p := base.GetNode(int32(i)).Loc.ToPoint()
		if p[0] < bound.Min[0] {
			bound.Min[0] = p[0]
		}
		if p[1] < bound.Min[1] {
			bound.Min[1] = p[1]
		}
		if p[0] > bound.Max[0] {
			bound.Max[0] = p[0]
		}
		if p[1] > bound.Max[1] {
			bound.Max[1] = p[1]
		}
	}
	// pad so edge samples and degenerate extents stay inside
	bound.Min[0] -= 0.01
	bound.Min[1] -= 0.01
	bound.Max[0] += 0.01
	bound.Max[1] += 0.01
	return bound
}

// _DegreeBound converts a metric radius into a degree-space box that
// contains every point within that radius. Longitude degrees shrink towards
// the poles, so the conversion uses the widest latitude inside the box.
func _DegreeBound(point geo.Coord, radius float32) orb.Bound {
	dlat := float64(radius) / 111320.0
	band := math.Abs(float64(point[1])) + dlat
	if band > 90 {
		band = 90
	}
	cos_lat := math.Cos(band * math.Pi / 180)
	if cos_lat < 0.01 {
		cos_lat = 0.01
	}
	dlon := float64(radius) / (111320.0 * cos_lat)
	return orb.Bound{
		Min: orb.Point{float64(point[0]) - dlon, float64(point[1]) - dlat},
		Max: orb.Point{float64(point[0]) + dlon, float64(point[1]) + dlat},
	}
}

func (self *BaseGraphIndex) GetClosestNode(point geo.Coord) (int32, bool) {
	if self.base.NodeCount() == 0 {
		return -1, false
	}
	radius := float32(_NODE_SEARCH_DIST)
	for {
		ptrs := self.node_tree.InBound(nil, _DegreeBound(point, radius))
		best_id := int32(-1)
		best_dist := float32(math.MaxFloat32)
		for _, ptr := range ptrs {
			item := ptr.(_IndexPoint)
			node := self.base.GetNode(item.id)
			dist := geo.HaversineDistance(point, node.Loc)
			if dist < best_dist || (dist == best_dist && item.id < best_id) {
				best_dist = dist
				best_id = item.id
			}
		}
		// any node nearer than the best would lie inside the searched box,
		// so a best within the radius is the true nearest
		if best_id != -1 && best_dist <= radius {
			return best_id, true
		}
		if radius >= _MAX_SEARCH_DIST {
			return best_id, best_id != -1
		}
		if best_id != -1 {
			radius = best_dist
		} else {
			radius = radius * 2
		}
	}
}

func (self *BaseGraphIndex) GetClosestEdge(point geo.Coord, max_dist float32) (EdgeProjection, bool) {
	if self.base.EdgeCount() == 0 {
		return EdgeProjection{}, false
	}
	ptrs := self.edge_tree.InBound(nil, _DegreeBound(point, max_dist+_EDGE_SAMPLE_DIST))

	seen := NewDict[int32, bool](16)
	candidates := NewList[int32](16)
	for _, ptr := range ptrs {
		item := ptr.(_IndexPoint)
		if seen.ContainsKey(item.id) {
			continue
		}
		seen.Set(item.id, true)
		candidates.Add(item.id)
	}
	// ascending ids keep equal-distance results deterministic
	slices.Sort(candidates)

	best := EdgeProjection{EdgeID: -1, Dist: float32(math.MaxFloat32)}
	for _, edge_id := range candidates {
		geom := self.base.GetEdgeGeom(edge_id)
		offset := float32(0)
		for j := 0; j < len(geom)-1; j++ {
			proj, dist, t := geo.ProjectOntoSegment(point, geom[j], geom[j+1])
			seg_len := geo.HaversineDistance(geom[j], geom[j+1])
			if dist < best.Dist {
				best = EdgeProjection{
					EdgeID: edge_id,
					Point:  proj,
					Offset: offset + t*seg_len,
					Dist:   dist,
				}
			}
			offset += seg_len
		}
	}
	if best.EdgeID == -1 || best.Dist > max_dist {
		return EdgeProjection{}, false
	}
	return best, true
}
