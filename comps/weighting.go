package comps

import (
	"github.com/ttpr0/go-looprouting/attr"
)

//*******************************************
// weighting interface
//*******************************************

type IWeighting interface {
	GetEdgeWeight(edge int32) int32
}

//*******************************************
// default weighting
//*******************************************

type DefaultWeighting struct {
	edge_weights []int32
}

func NewDefaultWeighting(base IGraphBase) *DefaultWeighting {
	return &DefaultWeighting{
		edge_weights: make([]int32, base.EdgeCount()),
	}
}

func (self *DefaultWeighting) GetEdgeWeight(edge int32) int32 {
	return self.edge_weights[edge]
}
func (self *DefaultWeighting) SetEdgeWeight(edge int32, weight int32) {
	self.edge_weights[edge] = weight
}

//*******************************************
// dynamic weighting
//*******************************************

type DynamicWeighting struct {
	weight_func func(int32) int32
}

func NewDynamicWeighting(f func(int32) int32) *DynamicWeighting {
	return &DynamicWeighting{
		weight_func: f,
	}
}

func (self *DynamicWeighting) GetEdgeWeight(edge int32) int32 {
	return self.weight_func(edge)
}

//*******************************************
// build weightings
//*******************************************

// BuildDistanceWeighting weights every edge with its length in meters.
func BuildDistanceWeighting(base IGraphBase) *DefaultWeighting {
	weight := NewDefaultWeighting(base)
	for i := 0; i < base.EdgeCount(); i++ {
		edge := base.GetEdge(int32(i))
		w := int32(edge.Length)
		if w < 1 {
			w = 1
		}
		weight.SetEdgeWeight(int32(i), w)
	}
	return weight
}

// BuildRunnerWeighting weights edges with length scaled by a road-type
// preference, slightly favouring main roads over paths.
func BuildRunnerWeighting(base IGraphBase) *DefaultWeighting {
	weight := NewDefaultWeighting(base)
	for i := 0; i < base.EdgeCount(); i++ {
		edge := base.GetEdge(int32(i))
		factor := float32(1.0)
		switch edge.Type {
		case attr.MAIN_ROAD:
			factor = 0.9
		case attr.RESIDENTIAL:
			factor = 1.0
		case attr.PATH:
			factor = 1.05
		}
		w := int32(edge.Length * factor)
		if w < 1 {
			w = 1
		}
		weight.SetEdgeWeight(int32(i), w)
	}
	return weight
}
