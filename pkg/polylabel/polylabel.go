// Package polylabel finds a polygon's pole of inaccessibility: the
// point inside the polygon that is farthest from any edge, using the
// iterative grid-based quadtree search described at
// https://github.com/mapbox/polylabel#how-the-algorithm-works.
//
// Input polygons are assumed to be well-formed closed loops of points
// generated from contiguous chunk tiles, so the many edge-case
// guards a general-purpose implementation needs are not required
// here.
package polylabel

import (
	"container/heap"
	"errors"
	"math"

	"territoria/pkg/geo"
)

// ErrEmptyQueue is returned if the search queue is exhausted without
// ever being seeded, which would indicate a malformed polygon (this
// should not happen for well-formed input and signals an invariant
// violation upstream).
var ErrEmptyQueue = errors.New("polylabel: search queue unexpectedly empty")

// qcell is one quadtree node: a square of half-width extent centered
// at centroid, with its distance to the polygon boundary (signed:
// negative if centroid is outside) and the maximum possible distance
// any point within the cell could have to the boundary.
type qcell struct {
	centroid    geo.Point
	extent      float64
	distance    float64
	maxDistance float64
}

// cellHeap is a max-heap of qcells ordered by maxDistance, so the
// most promising cell is always explored first.
type cellHeap []qcell

func (h cellHeap) Len() int            { return len(h) }
func (h cellHeap) Less(i, j int) bool  { return h[i].maxDistance > h[j].maxDistance }
func (h cellHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *cellHeap) Push(x interface{}) { *h = append(*h, x.(qcell)) }
func (h *cellHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

const sqrt2 = math.Sqrt2

// GetCore returns the pole of inaccessibility of polygon (a closed
// ring of points, first point repeated as last) within tolerance.
func GetCore(polygon []geo.Point, tolerance float64) (geo.Point, error) {
	centroid := centroid(polygon)
	bbox := geo.AABBFromPoints(polygon)

	width := bbox.Max.X - bbox.Min.X
	height := bbox.Max.Y - bbox.Min.Y
	cellSize := math.Min(width, height)

	if cellSize == 0 {
		return geo.Point{X: bbox.Min.X, Y: bbox.Min.Y}, nil
	}

	h := cellSize / 2
	dist := signedDistance(centroid.X, centroid.Y, polygon)

	best := qcell{centroid: centroid, extent: 0, distance: dist, maxDistance: dist}

	// special case for (near) rectangular polygons: the exact box
	// center is a free, often-excellent candidate
	bboxCenter := geo.Point{X: bbox.Min.X + width/2, Y: bbox.Min.Y + height/2}
	bboxDist := signedDistance(bboxCenter.X, bboxCenter.Y, polygon)
	if bboxDist > best.distance {
		best = qcell{centroid: bboxCenter, extent: 0, distance: bboxDist, maxDistance: bboxDist}
	}

	queue := &cellHeap{}
	heap.Init(queue)

	for x := bbox.Min.X; x < bbox.Max.X; x += cellSize {
		for y := bbox.Min.Y; y < bbox.Max.Y; y += cellSize {
			d := signedDistance(x+h, y+h, polygon)
			heap.Push(queue, qcell{
				centroid:    geo.Point{X: x + h, Y: y + h},
				extent:      h,
				distance:    d,
				maxDistance: d + h*sqrt2,
			})
		}
	}

	if queue.Len() == 0 {
		return geo.Point{}, ErrEmptyQueue
	}

	for queue.Len() > 0 {
		cell := heap.Pop(queue).(qcell)

		if cell.distance > best.distance {
			best = cell
		}

		if cell.maxDistance-best.distance <= tolerance {
			continue
		}

		newH := cell.extent / 2
		addQuad(queue, cell, newH, polygon)
	}

	return best.centroid, nil
}

// addQuad subdivides cell into four child cells and pushes them onto
// the queue.
func addQuad(queue *cellHeap, cell qcell, h float64, polygon []geo.Point) {
	cx, cy := cell.centroid.X, cell.centroid.Y
	offsets := [4][2]float64{
		{-h, -h}, {h, -h}, {-h, h}, {h, h},
	}
	for _, o := range offsets {
		x, y := cx+o[0], cy+o[1]
		d := signedDistance(x, y, polygon)
		heap.Push(queue, qcell{
			centroid:    geo.Point{X: x, Y: y},
			extent:      h,
			distance:    d,
			maxDistance: d + h*sqrt2,
		})
	}
}

// signedDistance is the distance from (x,y) to the polygon's
// boundary, negative when (x,y) is outside the polygon.
func signedDistance(x, y float64, polygon []geo.Point) float64 {
	p := geo.Point{X: x, Y: y}
	inside := polygonContains(polygon, p)
	dist := shortestDistanceToPath(p, polygon)
	if inside {
		return dist
	}
	return -dist
}
