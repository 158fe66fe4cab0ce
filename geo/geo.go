package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

//*******************************************
// coordinates
//*******************************************

// Coord is a geographic coordinate as [lon, lat] in degrees.
type Coord [2]float32

type CoordArray []Coord

func (self Coord) Lon() float32 {
	return self[0]
}
func (self Coord) Lat() float32 {
	return self[1]
}

func (self Coord) ToPoint() orb.Point {
	return orb.Point{float64(self[0]), float64(self[1])}
}

// HaversineDistance returns the great-circle distance between two coordinates
// in meters.
func HaversineDistance(a Coord, b Coord) float32 {
	return float32(orbgeo.Distance(a.ToPoint(), b.ToPoint()))
}

// LineLength returns the accumulated haversine length of a polyline in meters.
func LineLength(line CoordArray) float32 {
	length := float32(0)
	for i := 0; i < len(line)-1; i++ {
		length += HaversineDistance(line[i], line[i+1])
	}
	return length
}

//*******************************************
// local planar projection
//*******************************************

const _METERS_PER_DEGREE = 111320.0

// _ToLocalXY projects a coordinate to x/y meters on an equirectangular plane
// centered at origin. Good enough at city scale.
func _ToLocalXY(point Coord, origin Coord) (float64, float64) {
	k_lat := float64(_METERS_PER_DEGREE)
	k_lon := _METERS_PER_DEGREE * math.Cos(float64(origin[1])*math.Pi/180)
	x := float64(point[0]-origin[0]) * k_lon
	y := float64(point[1]-origin[1]) * k_lat
	return x, y
}

func _FromLocalXY(x, y float64, origin Coord) Coord {
	k_lat := float64(_METERS_PER_DEGREE)
	k_lon := _METERS_PER_DEGREE * math.Cos(float64(origin[1])*math.Pi/180)
	return Coord{origin[0] + float32(x/k_lon), origin[1] + float32(y/k_lat)}
}

//*******************************************
// segment projection
//*******************************************

// ProjectOntoSegment projects a point onto the segment [a, b].
//
// Returns the projected coordinate, the distance from the point to the
// projection in meters and the position t in [0, 1] along the segment.
func ProjectOntoSegment(point Coord, a Coord, b Coord) (Coord, float32, float32) {
	ax, ay := _ToLocalXY(a, a)
	bx, by := _ToLocalXY(b, a)
	px, py := _ToLocalXY(point, a)

	vx := bx - ax
	vy := by - ay
	wx := px - ax
	wy := py - ay

	seg_len2 := vx*vx + vy*vy
	if seg_len2 == 0 {
		return a, HaversineDistance(point, a), 0
	}
	t := (vx*wx + vy*wy) / seg_len2
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	proj := _FromLocalXY(ax+t*vx, ay+t*vy, a)
	return proj, HaversineDistance(point, proj), float32(t)
}

// PointInDist returns the coordinate dist meters from start towards end.
func PointInDist(start Coord, end Coord, dist float32) Coord {
	d := HaversineDistance(start, end)
	if d == 0 {
		return start
	}
	dx := end[0] - start[0]
	dy := end[1] - start[1]
	return Coord{start[0] + dx*dist/d, start[1] + dy*dist/d}
}

//*******************************************
// polyline helpers
//*******************************************

// SampleAlongLine calls the callback for every vertex of the line and for
// interpolated points spaced at most step_m meters apart.
func SampleAlongLine(line CoordArray, step_m float32, callback func(Coord)) {
	if len(line) == 0 {
		return
	}
	callback(line[0])
	for i := 0; i < len(line)-1; i++ {
		start := line[i]
		end := line[i+1]
		seg_len := HaversineDistance(start, end)
		if seg_len > step_m {
			n := int(seg_len / step_m)
			for k := 1; k <= n; k++ {
				t := float32(k) / float32(n+1)
				callback(PointInDist(start, end, seg_len*t))
			}
		}
		callback(end)
	}
}

// SubLine extracts the part of a polyline between two arc-length offsets
// (meters from the first vertex). Endpoints are interpolated; when from_m is
// greater than to_m the result runs in reverse.
func SubLine(line CoordArray, from_m float32, to_m float32) CoordArray {
	if from_m > to_m {
		sub := SubLine(line, to_m, from_m)
		for i, j := 0, len(sub)-1; i < j; i, j = i+1, j-1 {
			sub[i], sub[j] = sub[j], sub[i]
		}
		return sub
	}
	result := make(CoordArray, 0, len(line))
	pos := float32(0)
	for i := 0; i < len(line)-1; i++ {
		start := line[i]
		end := line[i+1]
		seg_len := HaversineDistance(start, end)
		seg_end := pos + seg_len
		if seg_end < from_m {
			pos = seg_end
			continue
		}
		if len(result) == 0 {
			if from_m <= pos {
				result = append(result, start)
			} else {
				result = append(result, PointInDist(start, end, from_m-pos))
			}
		}
		if to_m <= seg_end {
			result = append(result, PointInDist(start, end, to_m-pos))
			return result
		}
		result = append(result, end)
		pos = seg_end
	}
	if len(result) == 0 && len(line) > 0 {
		result = append(result, line[len(line)-1])
	}
	return result
}
