package routing

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/ttpr0/go-looprouting/comps"
	"github.com/ttpr0/go-looprouting/geo"
	"github.com/ttpr0/go-looprouting/graph"
	. "github.com/ttpr0/go-looprouting/util"
)

//*******************************************
// loop search
//*******************************************

const (
	// number of out-and-back attempts before the search gives up
	_DEFAULT_MAX_ATTEMPTS = 64

	// weight multiplier on outbound edges during the return search
	_DEFAULT_PENALTY_FACTOR int32 = 4

	// widening rounds for the turning-point distance window
	_RELAX_ROUNDS = 4
)

// RouteResult is a computed closed loop.
type RouteResult struct {
	Nodes          Array[int32]
	Coordinates    geo.CoordArray
	DistanceKm     float64
	ElevationGainM float64
}

// LoopFinder searches closed loops from a start node using an
// out-and-back strategy: a turning point is picked from the shortest path
// tree around the start, the return path is computed with the outbound
// edges penalized so the two halves diverge.
type LoopFinder struct {
	g              graph.IGraph
	runner_weight  comps.IWeighting
	max_attempts   int
	penalty_factor int32
}

func NewLoopFinder(g graph.IGraph, runner_weight comps.IWeighting) *LoopFinder {
	return &LoopFinder{
		g:              g,
		runner_weight:  runner_weight,
		max_attempts:   _DEFAULT_MAX_ATTEMPTS,
		penalty_factor: _DEFAULT_PENALTY_FACTOR,
	}
}

// FindLoop searches a loop from start with a length between min_dist_m and
// max_dist_m meters and at most max_elevation_m meters of accumulated climb.
// Identical parameters (including seed) yield the identical loop.
//
// The context is checked between candidate attempts, a cancelled search
// returns ErrCancelled.
func (self *LoopFinder) FindLoop(ctx context.Context, start int32, min_dist_m, max_dist_m int32, max_elevation_m float64, seed int64) (RouteResult, error) {
	if min_dist_m <= 0 || max_dist_m <= 0 {
		return RouteResult{}, fmt.Errorf("%w: distances have to be positive", ErrInvalidInput)
	}
	if min_dist_m > max_dist_m {
		return RouteResult{}, fmt.Errorf("%w: minimum distance exceeds maximum distance", ErrInvalidInput)
	}
	if max_elevation_m < 0 {
		return RouteResult{}, fmt.Errorf("%w: elevation budget has to be non-negative", ErrInvalidInput)
	}
	if !self.g.IsNode(start) {
		return RouteResult{}, fmt.Errorf("%w: %v", ErrUnknownNode, start)
	}

	target := (min_dist_m + max_dist_m) / 2
	half := target / 2

	// Shortest path tree around the start with the runner weighting; every
	// settled node is a possible turning point.
	fw_flags := NewSPTFlags(self.g)
	fw_flags.Reset()
	CalcShortestPathTree(self.g, self.g.GetGraphExplorerWith(self.runner_weight), Array[Tuple[int32, int32]]{MakeTuple(start, int32(0))}, &fw_flags, max_dist_m*2)

	rng := rand.New(rand.NewSource(seed))
	tried := NewDict[int32, bool](100)
	bw_flags := NewSPTFlags(self.g)
	attempts := 0

	for round := 0; round < _RELAX_ROUNDS; round++ {
		lo := int32(float64(half) * (0.8 - 0.2*float64(round)))
		hi := int32(float64(half) * (1.2 + 0.3*float64(round)))
		if lo < 1 {
			lo = 1
		}
		if hi > max_dist_m {
			hi = max_dist_m
		}

		// candidates in ascending node order, shuffle seeded afterwards so
		// the same seed walks them in the same order
		candidates := NewList[int32](100)
		for node := int32(0); node < int32(self.g.NodeCount()); node++ {
			if node == start || tried.ContainsKey(node) {
				continue
			}
			if !fw_flags.IsSet(node) {
				continue
			}
			dist := fw_flags.Get(node).Dist
			if dist < lo || dist > hi {
				continue
			}
			candidates.Add(node)
		}
		rng.Shuffle(candidates.Length(), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})

		for _, cand := range candidates {
			if ctx != nil && ctx.Err() != nil {
				return RouteResult{}, ErrCancelled
			}
			if attempts >= self.max_attempts {
				return RouteResult{}, ErrNoLoopFound
			}
			attempts += 1
			tried.Set(cand, true)

			out_nodes, out_edges, ok := ReconstructPath(&fw_flags, cand)
			if !ok || out_edges.Length() == 0 {
				continue
			}
			result, found := self._TryClose(start, cand, out_nodes, out_edges, min_dist_m, max_dist_m, max_elevation_m, &bw_flags)
			if found {
				return result, nil
			}
		}
	}
	return RouteResult{}, ErrNoLoopFound
}

// _TryClose searches a return path from the turning point back to start with
// the outbound edges penalized and checks the resulting loop against the
// constraints.
func (self *LoopFinder) _TryClose(start, cand int32, out_nodes, out_edges List[int32], min_dist_m, max_dist_m int32, max_elevation_m float64, bw_flags *Flags[SPTFlag]) (RouteResult, bool) {
	used := NewDict[int32, bool](out_edges.Length())
	for _, e := range out_edges {
		used.Set(e, true)
	}
	penalized := comps.NewDynamicWeighting(func(edge int32) int32 {
		w := self.runner_weight.GetEdgeWeight(edge)
		if used.ContainsKey(edge) {
			return w * self.penalty_factor
		}
		return w
	})

	bw_flags.Reset()
	CalcShortestPathTreeTo(self.g, self.g.GetGraphExplorerWith(penalized), Array[Tuple[int32, int32]]{MakeTuple(cand, int32(0))}, bw_flags, max_dist_m*self.penalty_factor, start)

	back_nodes, back_edges, ok := ReconstructPath(bw_flags, start)
	if !ok || back_edges.Length() == 0 {
		return RouteResult{}, false
	}

	loop_nodes := NewList[int32](out_nodes.Length() + back_nodes.Length())
	loop_edges := NewList[int32](out_edges.Length() + back_edges.Length())
	for _, n := range out_nodes {
		loop_nodes.Add(n)
	}
	for i := 1; i < back_nodes.Length(); i++ {
		loop_nodes.Add(back_nodes[i])
	}
	for _, e := range out_edges {
		loop_edges.Add(e)
	}
	for _, e := range back_edges {
		loop_edges.Add(e)
	}

	dist, climb := self._LoopMetrics(loop_nodes, loop_edges)
	if dist < float32(min_dist_m) || dist > float32(max_dist_m) {
		return RouteResult{}, false
	}
	if climb > max_elevation_m {
		return RouteResult{}, false
	}
	return RouteResult{
		Nodes:          Array[int32](loop_nodes),
		Coordinates:    BuildPathGeometry(self.g, loop_nodes, loop_edges),
		DistanceKm:     float64(dist) / 1000,
		ElevationGainM: climb,
	}, true
}

// _LoopMetrics returns the true length in meters and the accumulated climb
// in meters, both independent of the search weighting.
func (self *LoopFinder) _LoopMetrics(nodes, edges List[int32]) (float32, float64) {
	dist := float32(0)
	climb := float64(0)
	for i, e := range edges {
		edge := self.g.GetEdge(e)
		dist += edge.Length
		climb += float64(edge.GetGain(nodes[i]))
	}
	return dist, climb
}

// BuildPathGeometry concatenates the edge geometries of a node/edge path
// into a single polyline, orienting every edge in travel direction and
// dropping duplicate join vertices.
func BuildPathGeometry(g graph.IGraph, nodes, edges List[int32]) geo.CoordArray {
	result := make(geo.CoordArray, 0, edges.Length()*2)
	for i, e := range edges {
		geom := g.GetEdgeGeom(e)
		edge := g.GetEdge(e)
		if nodes[i] == edge.NodeB {
			for l, r := 0, len(geom)-1; l < r; l, r = l+1, r-1 {
				geom[l], geom[r] = geom[r], geom[l]
			}
		}
		for _, c := range geom {
			if len(result) > 0 && result[len(result)-1] == c {
				continue
			}
			result = append(result, c)
		}
	}
	return result
}
