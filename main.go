package main

import (
	"net/http"
	"os"

	"github.com/ttpr0/go-looprouting/attr"
	"github.com/ttpr0/go-looprouting/comps"
	"github.com/ttpr0/go-looprouting/graph"
	"github.com/ttpr0/go-looprouting/parser"
	"golang.org/x/exp/slog"
)

func main() {
	config := ReadConfig("./config.yaml")

	level := _ParseLogLevel(config.Server.LogLevel)
	slog.SetDefault(slog.New(NewLogHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	// Graph construction is the startup barrier, no request is served
	// before it finished (or the process died).
	elevation := attr.NewConstantElevation(float32(config.Routing.ConstantElevationM))
	base, err := parser.ParseGraph(config.Source.OSM, &parser.WalkingDecoder{}, elevation)
	if err != nil {
		slog.Error("failed to build graph: " + err.Error())
		os.Exit(1)
	}
	distance_weight := comps.BuildDistanceWeighting(base)
	runner_weight := comps.BuildRunnerWeighting(base)
	index := graph.BuildGraphIndex(base)
	g := graph.BuildGraph(base, distance_weight, index)

	server := NewRouteServer(g, runner_weight, config)

	app := http.DefaultServeMux
	MapGet(app, "/v0/route", server.HandleLoopRequest)
	MapGet(app, "/v0/graph", server.HandleGraphRequest)
	MapPost(app, "/v0/route/snap", server.HandleSnapRequest)
	MapPost(app, "/v0/route/adjust", server.HandleAdjustRequest)

	address := config.Server.Address
	if address == "" {
		address = ":5002"
	}
	slog.Info("starting server on " + address)
	http.ListenAndServe(address, nil)
}
