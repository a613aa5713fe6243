package cells

import (
	"testing"

	"territoria/pkg/geo"
)

// square builds a single unit-square cell diagram directly from
// polygons, bypassing the external Voronoi library so the point
// query logic can be tested in isolation.
func square(min, max geo.Point) *CellDiagram {
	poly := []geo.Point{
		{X: min.X, Y: min.Y},
		{X: max.X, Y: min.Y},
		{X: max.X, Y: max.Y},
		{X: min.X, Y: max.Y},
	}
	d := fromPolygons([][]geo.Point{poly}, min, max)
	d.CalculateBoundingBoxes()
	return d
}

func TestCellContainsCoords(t *testing.T) {
	d := square(geo.Point{X: 0, Y: 0}, geo.Point{X: 10, Y: 10})

	tests := []struct {
		name   string
		x, y   float64
		inside bool
	}{
		{"center", 5, 5, true},
		{"on edge", 0, 5, true},
		{"corner", 0, 0, true},
		{"outside", 20, 20, false},
		{"just outside", -0.5, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			idx, ok := d.CellContainsCoords(tc.x, tc.y)
			if ok != tc.inside {
				t.Fatalf("CellContainsCoords(%v,%v) = (%d,%v), want inside=%v", tc.x, tc.y, idx, ok, tc.inside)
			}
		})
	}
}

func TestCellContainsCoordsWithoutBoundingBoxes(t *testing.T) {
	poly := []geo.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	d := fromPolygons([][]geo.Point{poly}, geo.Point{}, geo.Point{X: 1, Y: 1})

	if _, ok := d.CellContainsCoords(0.5, 0.5); ok {
		t.Fatalf("expected no match before CalculateBoundingBoxes is called")
	}
}

func TestCornerDedup(t *testing.T) {
	// two adjacent unit squares sharing an edge should dedupe the
	// two shared corners into single corner records referenced by
	// both cells.
	left := []geo.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	right := []geo.Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}}

	d := fromPolygons([][]geo.Point{left, right}, geo.Point{}, geo.Point{X: 2, Y: 1})

	if len(d.Corners) != 6 {
		t.Fatalf("expected 6 distinct corners, got %d", len(d.Corners))
	}

	sharedCount := 0
	for _, neighbors := range d.Neighbors {
		if len(neighbors) == 2 {
			sharedCount++
		}
	}
	if sharedCount != 2 {
		t.Fatalf("expected 2 corners shared between both cells, got %d", sharedCount)
	}
}

func TestScaleDoesNotRecalculateCentroids(t *testing.T) {
	d := square(geo.Point{X: 0, Y: 0}, geo.Point{X: 10, Y: 10})
	before := d.Centroids[0]

	d.Scale(2, 2)

	if d.Centroids[0] != before {
		t.Fatalf("Scale must leave stale centroids unchanged, got %v want %v", d.Centroids[0], before)
	}
	// corners should have moved
	if d.Corners[2].Point.X == 10 {
		t.Fatalf("expected corner to be rescaled away from original position")
	}
}

func TestGenerateRejectsDegenerateBounds(t *testing.T) {
	_, _, err := Generate(Options{
		AverageRadius: 1,
		Min:           geo.Point{X: 5, Y: 5},
		Max:           geo.Point{X: 5, Y: 5},
	})
	if err != ErrBadGeometry {
		t.Fatalf("expected ErrBadGeometry, got %v", err)
	}
}
