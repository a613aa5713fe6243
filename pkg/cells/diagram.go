// Package cells builds randomly generated, Lloyd-relaxed Voronoi cell
// diagrams and answers point-in-cell queries against them.
package cells

import (
	"errors"
	"math"

	"territoria/pkg/geo"
)

// ErrBadGeometry is returned by Generate when the requested rectangle
// is degenerate (its Max does not lie strictly above and to the right
// of its Min, so it has no positive area).
var ErrBadGeometry = errors.New("cells: bad geometry")

// cornerKey is the bit-exact IEEE-754 identity of a Point, used to
// dedupe corners shared by adjacent Voronoi cells. Two float64 corner
// coordinates identify the same corner only if their bit patterns
// match exactly; no epsilon tolerance is applied here, matching the
// exact-hash corner table the generator builds.
type cornerKey struct {
	xbits, ybits uint64
}

func keyOf(p geo.Point) cornerKey {
	return cornerKey{math.Float64bits(p.X), math.Float64bits(p.Y)}
}

// Corner is a shared vertex between one or more cells.
type Corner struct {
	Point    geo.Point
	IsBorder bool
}

// CellDiagram is a flattened Voronoi cell diagram: cells reference
// corners by index so that adjacent cells that share an edge also
// share the same corner record.
type CellDiagram struct {
	Centroids    []geo.Point
	Corners      []Corner
	cornerToIdx  map[cornerKey]int
	Neighbors    [][]int // per corner index, cell indices sharing that corner
	Cells        [][]int // per cell, corner indices in order
	aabbs        []geo.AABB
	haveAABBs    bool
}

// NumCells returns the number of cells in the diagram.
func (d *CellDiagram) NumCells() int {
	return len(d.Cells)
}

// fromPolygons builds a CellDiagram from raw Voronoi cell polygons
// (one closed ring of points per site, in winding order as produced
// by the Voronoi library), deduping shared corners by exact float
// identity and flagging corners that lie on the diagram's bounding
// box as border corners.
func fromPolygons(polys [][]geo.Point, min, max geo.Point) *CellDiagram {
	const eps = 1e-6

	d := &CellDiagram{
		cornerToIdx: make(map[cornerKey]int),
	}
	d.Centroids = make([]geo.Point, len(polys))
	d.Cells = make([][]int, len(polys))

	for i, poly := range polys {
		d.Centroids[i] = centroidFromPoints(poly)

		cellIdx := make([]int, 0, len(poly))
		for _, p := range poly {
			k := keyOf(p)
			if idx, ok := d.cornerToIdx[k]; ok {
				cellIdx = append(cellIdx, idx)
				d.Neighbors[idx] = append(d.Neighbors[idx], i)
				continue
			}

			idx := len(d.Corners)
			d.cornerToIdx[k] = idx
			isBorder := math.Abs(p.X-min.X) < eps || math.Abs(p.Y-min.Y) < eps ||
				math.Abs(p.X-max.X) < eps || math.Abs(p.Y-max.Y) < eps
			d.Corners = append(d.Corners, Corner{Point: p, IsBorder: isBorder})
			d.Neighbors = append(d.Neighbors, []int{i})
			cellIdx = append(cellIdx, idx)
		}
		d.Cells[i] = cellIdx
	}

	return d
}

// Scale stretches corner coordinates about the diagram's midpoint.
// It deliberately does not recompute centroids afterward: centroids
// become stale relative to the scaled corner geometry, the same
// documented trade-off the generator this is grounded on makes (a
// caller that needs fresh centroids must not rely on them after a
// non-identity scale).
func (d *CellDiagram) Scale(sx, sy float64) {
	if len(d.Corners) == 0 {
		return
	}

	min := d.Corners[0].Point
	max := d.Corners[0].Point
	for _, c := range d.Corners[1:] {
		p := c.Point
		if p.X < min.X {
			min.X = p.X
		} else if p.X > max.X {
			max.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		} else if p.Y > max.Y {
			max.Y = p.Y
		}
	}

	ox := (max.X + min.X) / 2
	oy := (max.Y + min.Y) / 2

	for i, c := range d.Corners {
		d.Corners[i].Point = geo.Point{
			X: (c.Point.X-ox)*sx + ox,
			Y: (c.Point.Y-oy)*sy + oy,
		}
	}
}

// CalculateBoundingBoxes computes each cell's AABB from its corner
// points. Must be called before CellContainsCoords.
func (d *CellDiagram) CalculateBoundingBoxes() {
	d.aabbs = make([]geo.AABB, len(d.Cells))
	for i, cell := range d.Cells {
		pts := make([]geo.Point, len(cell))
		for j, idx := range cell {
			pts[j] = d.Corners[idx].Point
		}
		d.aabbs[i] = geo.AABBFromPoints(pts)
	}
	d.haveAABBs = true
}

// CellContainsCoords returns the index of the first cell that
// contains (x, y), or false if none does. Bounding boxes must have
// been computed via CalculateBoundingBoxes first; otherwise this
// always reports not-found.
//
// Per cell: an AABB prefilter, then a horizontal ray cast counting
// edge crossings (odd = inside), with a direct on-edge short circuit
// for points lying exactly on a horizontal or vertical cell edge.
func (d *CellDiagram) CellContainsCoords(x, y float64) (int, bool) {
	if !d.haveAABBs {
		return 0, false
	}

	const eps = 1e-8

	for i, cell := range d.Cells {
		if !d.aabbs[i].ContainsXY(x, y) {
			continue
		}

		numIntersects := 0
		onEdge := false

		q1 := geo.Point{X: d.aabbs[i].Min.X - 1.0, Y: y}
		p1 := geo.Point{X: x, Y: y}

		for j, idx1 := range cell {
			idx2 := cell[0]
			if j < len(cell)-1 {
				idx2 = cell[j+1]
			}

			// occasionally get duplicate points from the Voronoi library
			if idx1 == idx2 {
				continue
			}

			p2 := d.Corners[idx1].Point
			q2 := d.Corners[idx2].Point

			if math.Abs(y-p2.Y) < eps && math.Abs(y-q2.Y) < eps && ((x >= p2.X && x <= q2.X) || (x >= q2.X && x <= p2.X)) {
				onEdge = true
				break
			}
			if math.Abs(x-p2.X) < eps && math.Abs(x-q2.X) < eps && ((y >= p2.Y && y <= q2.Y) || (y >= q2.Y && y <= p2.Y)) {
				onEdge = true
				break
			}
			if horizontalIntersection(p1, q1, p2, q2) {
				numIntersects++
			}
		}

		if onEdge || numIntersects%2 == 1 {
			return i, true
		}
	}

	return 0, false
}

type orientation int

const (
	collinear orientation = iota
	clockwise
	counterClockwise
)

func orient(p, q, r geo.Point) orientation {
	const eps = 1e-8
	o := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	if math.Abs(o) < eps {
		return collinear
	}
	if o > 0 {
		return clockwise
	}
	return counterClockwise
}

func orientHorizontal(p, q, r geo.Point) orientation {
	const eps = 1e-7
	o := (q.X - p.X) * (r.Y - q.Y)
	if math.Abs(o) < eps {
		return collinear
	}
	if o < 0 {
		return clockwise
	}
	return counterClockwise
}

// horizontalIntersection tests whether the horizontal segment p1-q1
// (p1.Y == q1.Y) crosses the arbitrary segment p2-q2.
func horizontalIntersection(p1, q1, p2, q2 geo.Point) bool {
	o1 := orientHorizontal(p1, q1, p2)
	o2 := orientHorizontal(p1, q1, q2)
	o3 := orient(p2, q2, p1)
	o4 := orient(p2, q2, q1)
	return o1 != o2 && o3 != o4
}
