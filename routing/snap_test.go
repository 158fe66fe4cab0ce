package routing

import (
	"errors"
	"strings"
	"testing"

	"github.com/ttpr0/go-looprouting/geo"
)

func _CoordsClose(a, b geo.Coord, eps float32) bool {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= eps && dy <= eps
}

func TestSnapOntoLine(t *testing.T) {
	g := _BuildLineGraph()
	snapper := NewSnapEngine(g, 60)

	// points slightly north and south of the line
	points := geo.CoordArray{
		{0.0002, 0.00005},
		{0.0018, -0.00005},
	}
	line, err := snapper.Snap(points)
	if err != nil {
		t.Fatalf("expected snap to succeed, got %v", err)
	}
	if len(line) < 2 {
		t.Fatalf("expected a polyline, got %v points", len(line))
	}
	for i, c := range line {
		if c.Lat() > 0.00001 || c.Lat() < -0.00001 {
			t.Errorf("point %v not on the network: %v", i, c)
		}
	}
	// order preserved: west to east
	if line[0].Lon() >= line[len(line)-1].Lon() {
		t.Error("snapped polyline does not preserve input order")
	}
	for i := 1; i < len(line); i++ {
		if line[i] == line[i-1] {
			t.Errorf("duplicate consecutive coordinate at %v", i)
		}
	}
}

func TestSnapIdempotent(t *testing.T) {
	g := _BuildLineGraph()
	snapper := NewSnapEngine(g, 60)

	points := geo.CoordArray{
		{0.0002, 0.00005},
		{0.0018, -0.00005},
	}
	once, err := snapper.Snap(points)
	if err != nil {
		t.Fatalf("expected snap to succeed, got %v", err)
	}
	twice, err := snapper.Snap(once)
	if err != nil {
		t.Fatalf("expected re-snap to succeed, got %v", err)
	}
	if len(once) != len(twice) {
		t.Fatalf("re-snap changed point count: %v vs %v", len(once), len(twice))
	}
	for i := range once {
		if !_CoordsClose(once[i], twice[i], 1e-5) {
			t.Errorf("re-snap moved point %v: %v vs %v", i, once[i], twice[i])
		}
	}
}

func TestSnapInsufficientPoints(t *testing.T) {
	g := _BuildLineGraph()
	snapper := NewSnapEngine(g, 60)

	_, err := snapper.Snap(geo.CoordArray{{0.0002, 0.00005}})
	if !errors.Is(err, ErrInsufficientPoints) {
		t.Errorf("expected ErrInsufficientPoints, got %v", err)
	}
	_, err = snapper.Snap(nil)
	if !errors.Is(err, ErrInsufficientPoints) {
		t.Errorf("expected ErrInsufficientPoints for empty input, got %v", err)
	}
}

func TestSnapOutOfRange(t *testing.T) {
	g := _BuildLineGraph()
	snapper := NewSnapEngine(g, 15)

	points := geo.CoordArray{
		{0.0002, 0},
		{0.1, 0.1},
	}
	_, err := snapper.Snap(points)
	if !errors.Is(err, ErrSnapOutOfRange) {
		t.Fatalf("expected ErrSnapOutOfRange, got %v", err)
	}
	if !strings.Contains(err.Error(), "point 1") {
		t.Errorf("error does not name the failing index: %v", err)
	}
}

func TestSnapSameEdge(t *testing.T) {
	g := _BuildLineGraph()
	snapper := NewSnapEngine(g, 60)

	// both points project onto the first edge
	points := geo.CoordArray{
		{0.0002, 0.00005},
		{0.0008, 0.00005},
	}
	line, err := snapper.Snap(points)
	if err != nil {
		t.Fatalf("expected snap to succeed, got %v", err)
	}
	if len(line) != 2 {
		t.Fatalf("expected 2 points on a single straight edge, got %v", len(line))
	}
	if line[0].Lon() >= line[1].Lon() {
		t.Error("snapped points out of order")
	}
}
