package attr

import (
	"github.com/ttpr0/go-looprouting/geo"
)

//*******************************************
// elevation provider
//*******************************************

// IElevationProvider yields a per-node elevation in meters during graph
// construction. Real elevation data can be plugged in here; the default is a
// constant placeholder.
type IElevationProvider interface {
	GetElevation(point geo.Coord) float32
}

type ConstantElevation struct {
	Value float32
}

func NewConstantElevation(value float32) *ConstantElevation {
	return &ConstantElevation{Value: value}
}

func (self *ConstantElevation) GetElevation(point geo.Coord) float32 {
	return self.Value
}
