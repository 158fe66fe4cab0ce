package routing

import (
	"github.com/ttpr0/go-looprouting/geo"
	"github.com/ttpr0/go-looprouting/graph"
)

//*******************************************
// route adjuster
//*******************************************

// RouteAdjuster re-evaluates a hand-edited route: the polyline is snapped
// back onto the network and distance and climb are computed from the
// snapped geometry.
type RouteAdjuster struct {
	g       graph.IGraph
	snapper *SnapEngine
}

func NewRouteAdjuster(g graph.IGraph, snapper *SnapEngine) *RouteAdjuster {
	return &RouteAdjuster{
		g:       g,
		snapper: snapper,
	}
}

// Adjust snaps the given points onto the network and returns the resulting
// distance in kilometers and the accumulated elevation gain in meters.
func (self *RouteAdjuster) Adjust(points geo.CoordArray) (float64, float64, error) {
	line, err := self.snapper.Snap(points)
	if err != nil {
		return 0, 0, err
	}
	distinct := 0
	for i, c := range line {
		if i == 0 || line[i-1] != c {
			distinct += 1
		}
	}
	if distinct < 2 {
		return 0, 0, ErrTooShort
	}

	distance_km := float64(geo.LineLength(line)) / 1000
	gain_m := self._ElevationGain(line)
	return distance_km, gain_m, nil
}

// _ElevationGain sums the positive elevation deltas along the line, sampling
// elevation from the closest network node of every vertex.
func (self *RouteAdjuster) _ElevationGain(line geo.CoordArray) float64 {
	gain := float64(0)
	prev := float32(0)
	has_prev := false
	for _, c := range line {
		node, ok := self.g.GetClosestNode(c)
		if !ok {
			continue
		}
		elev := self.g.GetNode(node).Elevation
		if has_prev && elev > prev {
			gain += float64(elev - prev)
		}
		prev = elev
		has_prev = true
	}
	return gain
}
