package parser

import (
	"github.com/ttpr0/go-looprouting/attr"
)

//*******************************************
// utility methods
//*******************************************

// _GetType maps OSM highway values onto the three road classes the loop
// weighting distinguishes. Everything not matched is treated as a path.
func _GetType(typ string) attr.RoadType {
	switch typ {
	case "motorway", "trunk", "primary", "primary_link":
		return attr.MAIN_ROAD
	case "secondary", "secondary_link", "tertiary", "tertiary_link",
		"residential", "living_street", "service", "unclassified", "road":
		return attr.RESIDENTIAL
	}
	return attr.PATH
}
