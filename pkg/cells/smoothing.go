package cells

import "territoria/pkg/geo"

// lloydRelax rebuilds the Voronoi diagram using the current cells'
// centroids as the new seed points. Lloyd relaxation is a full
// rebuild each iteration, not an incremental nudge: each pass reruns
// the external Voronoi computation against the smoothed centroids.
func lloydRelax(polys [][]geo.Point, min, max geo.Point) [][]geo.Point {
	centroids := make([]geo.Point, len(polys))
	for i, poly := range polys {
		centroids[i] = centroidFromPoints(poly)
	}
	return computeVoronoiCells(centroids, min, max)
}

// smoothCorners replaces each non-border corner with the average of
// the centroids of every cell that touches it, then recomputes every
// cell's centroid from its (now smoothed) corners.
func smoothCorners(d *CellDiagram) *CellDiagram {
	for i := range d.Corners {
		if d.Corners[i].IsBorder {
			continue
		}

		var sx, sy float64
		touching := d.Neighbors[i]
		for _, cellIdx := range touching {
			c := d.Centroids[cellIdx]
			sx += c.X
			sy += c.Y
		}
		n := float64(len(touching))
		d.Corners[i].Point = geo.Point{X: sx / n, Y: sy / n}
	}

	for i := range d.Centroids {
		d.Centroids[i] = centroidFromCorners(d.Corners, d.Cells[i])
	}

	return d
}
