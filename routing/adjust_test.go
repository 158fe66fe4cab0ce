package routing

import (
	"errors"
	"testing"

	"github.com/ttpr0/go-looprouting/geo"
)

func TestAdjustAgreesWithSnap(t *testing.T) {
	g := _BuildLineGraph()
	snapper := NewSnapEngine(g, 60)
	adjuster := NewRouteAdjuster(g, snapper)

	points := geo.CoordArray{
		{0.0002, 0.00005},
		{0.0018, -0.00005},
	}
	line, err := snapper.Snap(points)
	if err != nil {
		t.Fatalf("expected snap to succeed, got %v", err)
	}
	distance_km, _, err := adjuster.Adjust(points)
	if err != nil {
		t.Fatalf("expected adjust to succeed, got %v", err)
	}
	expected := float64(geo.LineLength(line)) / 1000
	diff := distance_km - expected
	if diff < 0 {
		diff = -diff
	}
	if diff > 1e-6 {
		t.Errorf("adjust distance %v disagrees with snapped length %v", distance_km, expected)
	}
}

func TestAdjustElevationGain(t *testing.T) {
	g := _BuildLineGraph()
	snapper := NewSnapEngine(g, 60)
	adjuster := NewRouteAdjuster(g, snapper)

	// node elevations along the line are 100, 110, 105: only the climb counts
	points := geo.CoordArray{
		{0, 0},
		{0.001, 0},
		{0.002, 0},
	}
	_, gain_m, err := adjuster.Adjust(points)
	if err != nil {
		t.Fatalf("expected adjust to succeed, got %v", err)
	}
	if gain_m != 10 {
		t.Errorf("expected 10 m gain, got %v", gain_m)
	}
}

func TestAdjustTooShort(t *testing.T) {
	g := _BuildLineGraph()
	snapper := NewSnapEngine(g, 60)
	adjuster := NewRouteAdjuster(g, snapper)

	// both points collapse onto the same network location
	points := geo.CoordArray{
		{0.0002, 0.00005},
		{0.0002, 0.00005},
	}
	_, _, err := adjuster.Adjust(points)
	if !errors.Is(err, ErrTooShort) {
		t.Errorf("expected ErrTooShort, got %v", err)
	}
}

func TestAdjustPropagatesSnapErrors(t *testing.T) {
	g := _BuildLineGraph()
	snapper := NewSnapEngine(g, 15)
	adjuster := NewRouteAdjuster(g, snapper)

	_, _, err := adjuster.Adjust(geo.CoordArray{{0.0002, 0}})
	if !errors.Is(err, ErrInsufficientPoints) {
		t.Errorf("expected ErrInsufficientPoints, got %v", err)
	}
	_, _, err = adjuster.Adjust(geo.CoordArray{{0.0002, 0}, {0.1, 0.1}})
	if !errors.Is(err, ErrSnapOutOfRange) {
		t.Errorf("expected ErrSnapOutOfRange, got %v", err)
	}
}
