package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/ttpr0/go-looprouting/comps"
	"github.com/ttpr0/go-looprouting/geo"
	"github.com/ttpr0/go-looprouting/graph"
	"github.com/ttpr0/go-looprouting/routing"
	"golang.org/x/exp/slog"
)

//**********************************************************
// route server
//**********************************************************

// RouteServer holds the shared immutable graph and the per-concern engines.
// Handlers are stateless, every request runs against the same graph without
// coordination.
type RouteServer struct {
	graph     graph.IGraph
	loops     *routing.LoopFinder
	snapper   *routing.SnapEngine
	adjuster  *routing.RouteAdjuster
	home_node int32
	defaults  LoopDefaults
}

type LoopDefaults struct {
	MinKm      float64
	MaxKm      float64
	ElevationM float64
}

func NewRouteServer(g graph.IGraph, runner_weight comps.IWeighting, config Config) *RouteServer {
	home := geo.Coord{float32(config.Home.Lon), float32(config.Home.Lat)}
	home_node, ok := g.GetClosestNode(home)
	if !ok {
		home_node = -1
	}
	defaults := LoopDefaults{
		MinKm:      config.Routing.DefaultMinKm,
		MaxKm:      config.Routing.DefaultMaxKm,
		ElevationM: config.Routing.DefaultElevationM,
	}
	if defaults.MinKm <= 0 {
		defaults.MinKm = 7.0
	}
	if defaults.MaxKm <= 0 {
		defaults.MaxKm = 9.0
	}
	if defaults.ElevationM <= 0 {
		defaults.ElevationM = 150.0
	}
	snapper := routing.NewSnapEngine(g, float32(config.Routing.MaxSnapDistanceM))
	return &RouteServer{
		graph:     g,
		loops:     routing.NewLoopFinder(g, runner_weight),
		snapper:   snapper,
		adjuster:  routing.NewRouteAdjuster(g, snapper),
		home_node: home_node,
		defaults:  defaults,
	}
}

//**********************************************************
// handlers
//**********************************************************

func (self *RouteServer) HandleLoopRequest(ctx context.Context, req LoopRequest) Result {
	min_km, err := _FloatParam(req.DistanceMinKm, self.defaults.MinKm)
	if err != nil {
		return BadRequest(fmt.Sprintf("invalid distance_min_km: %v", req.DistanceMinKm))
	}
	max_km, err := _FloatParam(req.DistanceMaxKm, self.defaults.MaxKm)
	if err != nil {
		return BadRequest(fmt.Sprintf("invalid distance_max_km: %v", req.DistanceMaxKm))
	}
	elevation_m, err := _FloatParam(req.MaxElevationM, self.defaults.ElevationM)
	if err != nil {
		return BadRequest(fmt.Sprintf("invalid max_elevation_m: %v", req.MaxElevationM))
	}
	start, err := self._ResolveStart(req)
	if err != nil {
		return BadRequest(err.Error())
	}

	slog.Debug(fmt.Sprintf("searching loop from node %v, %v-%v km", start, min_km, max_km))
	route, err := self.loops.FindLoop(ctx, start, int32(min_km*1000), int32(max_km*1000), elevation_m, req.Seed)
	if err != nil {
		return _ErrorResult(err)
	}
	return OK(NewLoopResponse(route))
}

func (self *RouteServer) HandleGraphRequest(ctx context.Context, req none) Result {
	entries := make([]NetworkEdgeEntry, self.graph.EdgeCount())
	for i := 0; i < self.graph.EdgeCount(); i++ {
		edge := self.graph.GetEdge(int32(i))
		loc_a := self.graph.GetNodeGeom(edge.NodeA)
		loc_b := self.graph.GetNodeGeom(edge.NodeB)
		entries[i] = NetworkEdgeEntry{
			Lat1:     float64(loc_a.Lat()),
			Lon1:     float64(loc_a.Lon()),
			Lat2:     float64(loc_b.Lat()),
			Lon2:     float64(loc_b.Lon()),
			RoadType: edge.Type,
		}
	}
	return OK(entries)
}

func (self *RouteServer) HandleSnapRequest(ctx context.Context, req SnapRequest) Result {
	line, err := self.snapper.Snap(_FromLatLonPoints(req.Points))
	if err != nil {
		return _ErrorResult(err)
	}
	return OK(SnapResponse{Points: _ToLatLonPoints(line)})
}

func (self *RouteServer) HandleAdjustRequest(ctx context.Context, req AdjustRequest) Result {
	distance_km, gain_m, err := self.adjuster.Adjust(_FromLatLonPoints(req.Points))
	if err != nil {
		return _ErrorResult(err)
	}
	return OK(AdjustResponse{DistanceKm: distance_km, ElevationGainM: gain_m})
}

//**********************************************************
// utilities
//**********************************************************

// _FloatParam parses a numeric query parameter, falling back per parameter
// when it was not supplied. Explicit values are kept as given, including
// zero.
func _FloatParam(value string, fallback float64) (float64, error) {
	if value == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(value, 64)
}

// _ResolveStart picks the start node: explicit node id, explicit
// coordinates, or the configured home location.
func (self *RouteServer) _ResolveStart(req LoopRequest) (int32, error) {
	if req.StartNodeID != "" && req.StartNodeID != "home" {
		id, err := strconv.ParseInt(req.StartNodeID, 10, 32)
		if err != nil {
			return -1, fmt.Errorf("invalid start_node_id: %v", req.StartNodeID)
		}
		return int32(id), nil
	}
	if req.StartLat != 0 || req.StartLon != 0 {
		node, ok := self.graph.GetClosestNode(geo.Coord{float32(req.StartLon), float32(req.StartLat)})
		if !ok {
			return -1, fmt.Errorf("no network node near %v, %v", req.StartLat, req.StartLon)
		}
		return node, nil
	}
	if self.home_node == -1 {
		return -1, fmt.Errorf("no home location configured")
	}
	return self.home_node, nil
}

// _ErrorResult maps engine errors onto http statuses. Invalid input is the
// caller's fault, exhausted searches are an empty result, cancellations keep
// their own status so clients can retry.
func _ErrorResult(err error) Result {
	switch {
	case errors.Is(err, routing.ErrInvalidInput),
		errors.Is(err, routing.ErrUnknownNode),
		errors.Is(err, routing.ErrInsufficientPoints),
		errors.Is(err, routing.ErrSnapOutOfRange),
		errors.Is(err, routing.ErrTooShort):
		return BadRequest(err.Error())
	case errors.Is(err, routing.ErrNoLoopFound),
		errors.Is(err, routing.ErrUnreachable):
		return NotFound(err.Error())
	case errors.Is(err, routing.ErrCancelled):
		return RequestTimeout(err.Error())
	default:
		return BadRequest(err.Error())
	}
}
