package main

import (
	"github.com/ttpr0/go-looprouting/attr"
	"github.com/ttpr0/go-looprouting/geo"
	"github.com/ttpr0/go-looprouting/routing"
)

//**********************************************************
// response payloads
//**********************************************************

type ErrorResponse struct {
	Request string `json:"request"`
	Error   any    `json:"error"`
}

func NewErrorResponse(request string, error any) ErrorResponse {
	return ErrorResponse{
		Request: request,
		Error:   error,
	}
}

type LoopResponse struct {
	Coordinates    []LatLonPoint `json:"coordinates"`
	DistanceKm     float64       `json:"distance_km"`
	ElevationGainM float64       `json:"elevation_gain_m"`
}

func NewLoopResponse(route routing.RouteResult) LoopResponse {
	return LoopResponse{
		Coordinates:    _ToLatLonPoints(route.Coordinates),
		DistanceKm:     route.DistanceKm,
		ElevationGainM: route.ElevationGainM,
	}
}

// NetworkEdgeEntry is one edge of the raw network, used by the client for
// display only.
type NetworkEdgeEntry struct {
	Lat1     float64       `json:"lat1"`
	Lon1     float64       `json:"lon1"`
	Lat2     float64       `json:"lat2"`
	Lon2     float64       `json:"lon2"`
	RoadType attr.RoadType `json:"road_type"`
}

type SnapResponse struct {
	Points []LatLonPoint `json:"points"`
}

type AdjustResponse struct {
	DistanceKm     float64 `json:"distance_km"`
	ElevationGainM float64 `json:"elevation_gain_m"`
}

func _ToLatLonPoints(line geo.CoordArray) []LatLonPoint {
	points := make([]LatLonPoint, len(line))
	for i, c := range line {
		points[i] = LatLonPoint{Lat: float64(c.Lat()), Lon: float64(c.Lon())}
	}
	return points
}

func _FromLatLonPoints(points []LatLonPoint) geo.CoordArray {
	line := make(geo.CoordArray, len(points))
	for i, p := range points {
		line[i] = geo.Coord{float32(p.Lon), float32(p.Lat)}
	}
	return line
}
