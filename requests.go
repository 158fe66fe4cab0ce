package main

//**********************************************************
// request payloads
//**********************************************************

// LoopRequest carries the loop-search query parameters. start_node_id is a
// string so the "home" sentinel and explicit node ids share one parameter;
// when empty and no start_lat/start_lon is given the configured home
// location is used. The constraint parameters are strings too: an absent
// parameter falls back to its configured default, while an explicit "0"
// (a flat-route request) is kept as given.
type LoopRequest struct {
	DistanceMinKm string  `json:"distance_min_km"`
	DistanceMaxKm string  `json:"distance_max_km"`
	MaxElevationM string  `json:"max_elevation_m"`
	StartNodeID   string  `json:"start_node_id"`
	StartLat      float64 `json:"start_lat"`
	StartLon      float64 `json:"start_lon"`
	Seed          int64   `json:"seed"`
}

type LatLonPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type SnapRequest struct {
	Points []LatLonPoint `json:"points"`
}

type AdjustRequest struct {
	Points []LatLonPoint `json:"points"`
}
