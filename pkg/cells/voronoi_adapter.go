package cells

import (
	"territoria/pkg/geo"

	"github.com/quasoft/voronoi"
)

// computeVoronoiCells is the single point of contact with the
// external Fortune's-algorithm Voronoi library. Every other file in
// this package works purely in terms of []geo.Point polygons so that
// the adapter is the only place that needs to track the library's
// own vertex/halfedge/cell types.
//
// sites are the seed points; the bounding box clips open cells at the
// diagram edges. Returned polygons are in the same order as sites,
// each an ordered ring of points walked from the cell's half-edges.
func computeVoronoiCells(sites []geo.Point, min, max geo.Point) [][]geo.Point {
	bbox := voronoi.NewBBox(min.X, max.X, min.Y, max.Y)

	vsites := make([]voronoi.Vertex, len(sites))
	for i, p := range sites {
		vsites[i] = voronoi.Vertex{X: p.X, Y: p.Y}
	}

	diagram := voronoi.ComputeDiagram(vsites, bbox, true)

	polys := make([][]geo.Point, len(diagram.Cells))
	for i, cell := range diagram.Cells {
		poly := make([]geo.Point, 0, len(cell.Halfedges))
		for _, he := range cell.Halfedges {
			start := he.GetStartpoint()
			poly = append(poly, geo.Point{X: start.X, Y: start.Y})
		}
		polys[i] = poly
	}

	return polys
}
