package polylabel

import (
	"math"

	"territoria/pkg/geo"
)

// pointPosition classifies a point relative to a polygon boundary.
type pointPosition int

const (
	outside pointPosition = iota
	inside
	onBoundary
)

func lineDeterminant(start, end geo.Point) float64 {
	return start.X*end.Y - start.Y*end.X
}

// area computes twice the signed ring area via the shoelace formula,
// halved; assumes polygon is closed (first point == last point).
func area(polygon []geo.Point) float64 {
	if len(polygon) < 2 {
		return 0
	}
	var twice float64
	for i := 0; i < len(polygon)-1; i++ {
		twice += lineDeterminant(polygon[i], polygon[i+1])
	}
	return twice / 2
}

// centroid computes the area-weighted centroid of a closed polygon;
// assumes no holes and non-degenerate (non-collinear) geometry.
func centroid(polygon []geo.Point) geo.Point {
	if len(polygon) == 0 {
		return geo.Point{}
	}
	if len(polygon) == 1 {
		return polygon[0]
	}

	a := area(polygon)
	var sx, sy float64
	for i := 0; i < len(polygon)-1; i++ {
		start, end := polygon[i], polygon[i+1]
		tmp := lineDeterminant(start, end)
		sx += (end.X + start.X) * tmp
		sy += (end.Y + start.Y) * tmp
	}
	return geo.Point{X: sx / (6 * a), Y: sy / (6 * a)}
}

func containsPoint(polygon []geo.Point, p geo.Point) bool {
	for _, q := range polygon {
		if q == p {
			return true
		}
	}
	return false
}

// position classifies p against polygon using an even-odd ray cast
// with a half-open y-interval convention to avoid double-counting
// vertices the ray passes exactly through.
func position(p geo.Point, polygon []geo.Point) pointPosition {
	if len(polygon) == 0 {
		return outside
	}
	if containsPoint(polygon, p) {
		return onBoundary
	}

	var xints float64
	crossings := 0
	for i := 0; i < len(polygon)-1; i++ {
		start, end := polygon[i], polygon[i+1]
		if p.Y > math.Min(start.Y, end.Y) && p.Y <= math.Max(start.Y, end.Y) && p.X <= math.Max(start.X, end.X) {
			if start.Y != end.Y {
				xints = (p.Y-start.Y)*(end.X-start.X)/(end.Y-start.Y) + start.X
			}
			if start.X == end.X || p.X <= xints {
				crossings++
			}
		}
	}
	if crossings%2 == 1 {
		return inside
	}
	return outside
}

func polygonContains(polygon []geo.Point, p geo.Point) bool {
	switch position(p, polygon) {
	case inside:
		return true
	default:
		return false
	}
}

// pointToSegmentDistance is the distance from p to the line segment
// [start, end], projecting and clamping onto the segment.
func pointToSegmentDistance(p, start, end geo.Point) float64 {
	if start == end {
		return p.DistanceTo(start)
	}

	dx := end.X - start.X
	dy := end.Y - start.Y
	d2 := dx*dx + dy*dy

	r := ((p.X-start.X)*dx + (p.Y-start.Y)*dy) / d2
	if r <= 0 {
		return p.DistanceTo(start)
	}
	if r >= 1 {
		return p.DistanceTo(end)
	}

	return math.Abs((start.Y-p.Y)*dx-(start.X-p.X)*dy) / math.Sqrt(d2)
}

// shortestDistanceToPath is the minimum distance from p to any
// segment along the connected path (not assumed closed).
func shortestDistanceToPath(p geo.Point, path []geo.Point) float64 {
	if len(path) == 0 {
		return 0
	}
	if p == path[0] {
		return 0
	}

	shortest := math.MaxFloat64
	for i := 0; i < len(path)-1; i++ {
		start, end := path[i], path[i+1]
		if p == end {
			return 0
		}
		d := pointToSegmentDistance(p, start, end)
		if d < shortest {
			shortest = d
		}
	}
	return shortest
}
