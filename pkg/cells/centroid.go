package cells

import "territoria/pkg/geo"

// centroidFromPoints computes the area-weighted centroid of a closed
// polygon given as an ordered point ring (shoelace formula).
func centroidFromPoints(points []geo.Point) geo.Point {
	var cx, cy, area float64
	n := len(points)
	for i := 0; i < n; i++ {
		p1 := points[i]
		p2 := points[0]
		if i < n-1 {
			p2 = points[i+1]
		}
		a := p1.X*p2.Y - p2.X*p1.Y
		cx += (p1.X + p2.X) * a
		cy += (p1.Y + p2.Y) * a
		area += a
	}
	a6 := 6 * 0.5 * area
	return geo.Point{X: cx / a6, Y: cy / a6}
}

// centroidFromCorners is centroidFromPoints but indexing into a
// shared corner table, used when recomputing a cell's centroid after
// corner smoothing.
func centroidFromCorners(corners []Corner, lookup []int) geo.Point {
	var cx, cy, area float64
	n := len(lookup)
	for i := 0; i < n; i++ {
		i1 := lookup[i]
		i2 := lookup[0]
		if i < n-1 {
			i2 = lookup[i+1]
		}
		p1 := corners[i1].Point
		p2 := corners[i2].Point
		a := p1.X*p2.Y - p2.X*p1.Y
		cx += (p1.X + p2.X) * a
		cy += (p1.Y + p2.Y) * a
		area += a
	}
	a6 := 6 * 0.5 * area
	return geo.Point{X: cx / a6, Y: cy / a6}
}
