package parser

import (
	"github.com/ttpr0/go-looprouting/attr"
	. "github.com/ttpr0/go-looprouting/util"
)

type WalkingDecoder struct {
}

var walking_types = Dict[string, bool]{"motorway": true, "trunk": true, "primary": true, "primary_link": true,
	"secondary": true, "secondary_link": true, "tertiary": true, "tertiary_link": true,
	"residential": true, "living_street": true, "service": true, "unclassified": true, "road": true,
	"track": true, "path": true, "footway": true, "pedestrian": true, "steps": true, "cycleway": true, "bridleway": true}

func (self *WalkingDecoder) IsValidHighway(tags Dict[string, string]) bool {
	if !tags.ContainsKey("highway") {
		return false
	}
	if !walking_types.ContainsKey(tags.Get("highway")) {
		return false
	}
	if tags.Get("foot") == "no" {
		return false
	}
	if tags.Get("area") == "yes" {
		return false
	}
	return true
}
func (self *WalkingDecoder) DecodeEdge(tags Dict[string, string]) attr.RoadType {
	return _GetType(tags.Get("highway"))
}
