package geo

import "math"

// AABB is an axis aligned bounding box over float64 points.
type AABB struct {
	Min, Max Point
}

// NewAABB builds an AABB from explicit min/max corners.
func NewAABB(min, max Point) AABB {
	return AABB{Min: min, Max: max}
}

// AABBFromPoints computes the bounding box of a point set. An empty
// slice yields an inverted box (Min at +Inf, Max at -Inf); callers in
// this module only pass non-empty polygons or coord sets.
func AABBFromPoints(points []Point) AABB {
	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		if p.X < xmin {
			xmin = p.X
		}
		if p.X > xmax {
			xmax = p.X
		}
		if p.Y < ymin {
			ymin = p.Y
		}
		if p.Y > ymax {
			ymax = p.Y
		}
	}
	return AABB{Min: Point{xmin, ymin}, Max: Point{xmax, ymax}}
}

// Contains reports whether p lies within the closed box.
func (b AABB) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// ContainsXY is Contains without constructing a Point.
func (b AABB) ContainsXY(x, y float64) bool {
	return x >= b.Min.X && x <= b.Max.X && y >= b.Min.Y && y <= b.Max.Y
}

// IAABB is an axis aligned bounding box over integer chunk coordinates.
type IAABB struct {
	Min, Max IPoint
}

// IAABBFromPoints computes the bounding box of an integer coord set.
func IAABBFromPoints(points []IPoint) IAABB {
	xmin, xmax := int32(math.MaxInt32), int32(math.MinInt32)
	ymin, ymax := int32(math.MaxInt32), int32(math.MinInt32)
	for _, p := range points {
		if p.X < xmin {
			xmin = p.X
		}
		if p.X > xmax {
			xmax = p.X
		}
		if p.Y < ymin {
			ymin = p.Y
		}
		if p.Y > ymax {
			ymax = p.Y
		}
	}
	return IAABB{Min: IPoint{xmin, ymin}, Max: IPoint{xmax, ymax}}
}
