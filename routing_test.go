package main

import (
	"context"
	"net/http"
	"testing"

	"github.com/ttpr0/go-looprouting/attr"
	"github.com/ttpr0/go-looprouting/comps"
	"github.com/ttpr0/go-looprouting/geo"
	"github.com/ttpr0/go-looprouting/graph"
	"github.com/ttpr0/go-looprouting/structs"
	. "github.com/ttpr0/go-looprouting/util"
)

// square network around the configured home; every possible loop climbs at
// least 50 m, so a zero elevation budget can never be satisfied
func _BuildTestServer() *RouteServer {
	nodes := Array[structs.Node]{
		{Loc: geo.Coord{0, 0}, Elevation: 0},
		{Loc: geo.Coord{0, 0.01}, Elevation: 50},
		{Loc: geo.Coord{0.01, 0.01}, Elevation: 0},
		{Loc: geo.Coord{0.01, 0}, Elevation: 50},
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
	g := graph.BuildGraph(base, weight, index)

	var config Config
	config.Home.Lat = 0
	config.Home.Lon = 0
	config.Routing.MaxSnapDistanceM = 60
	config.Routing.DefaultMinKm = 0.35
	config.Routing.DefaultMaxKm = 0.45
	config.Routing.DefaultElevationM = 150
	return NewRouteServer(g, runner, config)
}

func TestHandleLoopExplicitZeroElevation(t *testing.T) {
	server := _BuildTestServer()

	// a flat-route request must keep its zero budget instead of falling
	// back to the default; no flat loop exists here
	req := LoopRequest{DistanceMinKm: "0.35", DistanceMaxKm: "0.45", MaxElevationM: "0"}
	res := server.HandleLoopRequest(context.Background(), req)
	if res.status != http.StatusNotFound {
		t.Errorf("expected 404 for a zero elevation budget, got %v", res.status)
	}
}

func TestHandleLoopPartialParams(t *testing.T) {
	server := _BuildTestServer()

	// only the minimum given: maximum and elevation fall back to their
	// defaults independently
	req := LoopRequest{DistanceMinKm: "0.35"}
	res := server.HandleLoopRequest(context.Background(), req)
	if res.status != http.StatusOK {
		t.Errorf("expected 200 with defaulted maximum, got %v", res.status)
	}

	// no constraints at all uses the configured defaults
	res = server.HandleLoopRequest(context.Background(), LoopRequest{})
	if res.status != http.StatusOK {
		t.Errorf("expected 200 with full defaults, got %v", res.status)
	}
}

func TestHandleLoopMalformedParam(t *testing.T) {
	server := _BuildTestServer()

	req := LoopRequest{DistanceMinKm: "short"}
	res := server.HandleLoopRequest(context.Background(), req)
	if res.status != http.StatusBadRequest {
		t.Errorf("expected 400 for a malformed parameter, got %v", res.status)
	}
}
