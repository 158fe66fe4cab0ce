package geo

import (
	"testing"
)

func TestHaversineDistance(t *testing.T) {
	// one thousandth of a degree along the equator is roughly 111.3 m
	a := Coord{0, 0}
	b := Coord{0.001, 0}
	dist := HaversineDistance(a, b)
	if dist < 110 || dist > 112 {
		t.Errorf("expected ~111 m, got %v", dist)
	}
	if HaversineDistance(a, a) != 0 {
		t.Error("distance to itself is not zero")
	}
}

func TestLineLength(t *testing.T) {
	line := CoordArray{{0, 0}, {0.001, 0}, {0.002, 0}}
	length := LineLength(line)
	expected := HaversineDistance(line[0], line[1]) + HaversineDistance(line[1], line[2])
	if length != expected {
		t.Errorf("expected %v, got %v", expected, length)
	}
	if LineLength(CoordArray{{0, 0}}) != 0 {
		t.Error("single point line has non-zero length")
	}
}

func TestProjectOntoSegment(t *testing.T) {
	a := Coord{0, 0}
	b := Coord{0.001, 0}

	// point north of the segment center
	proj, dist, pos := ProjectOntoSegment(Coord{0.0005, 0.0001}, a, b)
	if pos < 0.49 || pos > 0.51 {
		t.Errorf("expected t ~0.5, got %v", pos)
	}
	if dist < 10 || dist > 12.5 {
		t.Errorf("expected ~11 m offset, got %v", dist)
	}
	if proj.Lat() != 0 {
		t.Errorf("projection not on the segment: %v", proj)
	}

	// point beyond the segment end clamps to the endpoint
	proj, _, pos = ProjectOntoSegment(Coord{0.002, 0}, a, b)
	if pos != 1 {
		t.Errorf("expected clamped t=1, got %v", pos)
	}
	if proj != b {
		t.Errorf("expected projection at endpoint, got %v", proj)
	}
}

func TestSubLine(t *testing.T) {
	line := CoordArray{{0, 0}, {0.001, 0}, {0.002, 0}}
	seg := HaversineDistance(line[0], line[1])

	sub := SubLine(line, 0, seg)
	if len(sub) != 2 || sub[0] != line[0] || sub[1] != line[1] {
		t.Errorf("expected first segment, got %v", sub)
	}

	// reversed offsets yield the reversed polyline
	rev := SubLine(line, seg, 0)
	if len(rev) != 2 || rev[0] != line[1] || rev[1] != line[0] {
		t.Errorf("expected reversed segment, got %v", rev)
	}

	// interpolated endpoints in the middle of a segment
	mid := SubLine(line, seg/2, seg)
	if len(mid) != 2 {
		t.Fatalf("expected 2 points, got %v", len(mid))
	}
	if mid[0].Lon() <= line[0].Lon() || mid[0].Lon() >= line[1].Lon() {
		t.Errorf("interpolated start outside segment: %v", mid[0])
	}
}

func TestSampleAlongLine(t *testing.T) {
	line := CoordArray{{0, 0}, {0.001, 0}}
	count := 0
	SampleAlongLine(line, 25, func(c Coord) {
		count += 1
	})
	// ~111 m segment sampled at 25 m spacing: endpoints plus interior points
	if count < 4 {
		t.Errorf("expected dense sampling, got %v points", count)
	}
}
