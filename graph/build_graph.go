package graph

import (
	"github.com/ttpr0/go-looprouting/comps"
)

//*******************************************
// build graphs
//*******************************************

// BuildGraph assembles the routing facade from its components. All
// components are built once at startup and shared read-only between
// concurrent requests.
func BuildGraph(base comps.IGraphBase, weight comps.IWeighting, index comps.IGraphIndex) *Graph {
	return &Graph{
		base:   base,
		weight: weight,
		index:  index,
	}
}

func BuildGraphIndex(base comps.IGraphBase) comps.IGraphIndex {
	return comps.NewGraphIndex(base)
}
