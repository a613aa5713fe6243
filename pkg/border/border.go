// Package border rasterizes a territory's chunk coordinates into a
// padded grid, extracts connected clusters of border chunks, and
// emits closed edge-loop polylines (at half-chunk resolution) for
// each cluster, encoded as a flat int32 buffer.
package border

import (
	"errors"

	"territoria/pkg/geo"
	"territoria/pkg/polylabel"
)

// ErrInvariantViolation signals a border extraction that could not
// produce an edge loop for a non-empty cluster of chunks — this
// should never happen for well-formed chunk sets and indicates a bug
// upstream rather than a handleable input error.
var ErrInvariantViolation = errors.New("border: could not construct an edge loop for a non-empty cluster")

// grid is a padded boolean occupancy grid over a territory's chunk
// coords, with coordinate translation back to world chunk space.
type grid struct {
	cells        [][]bool // [x][y]
	xmin, ymin   int32
	sizeX, sizeY int
}

func newGrid(coords []geo.IPoint) *grid {
	bbox := geo.IAABBFromPoints(coords)

	sizeX := int(3 + bbox.Max.X - bbox.Min.X)
	sizeY := int(3 + bbox.Max.Y - bbox.Min.Y)

	cells := make([][]bool, sizeX)
	for i := range cells {
		cells[i] = make([]bool, sizeY)
	}

	g := &grid{cells: cells, xmin: bbox.Min.X, ymin: bbox.Min.Y, sizeX: sizeX, sizeY: sizeY}
	for _, c := range coords {
		gx, gy := g.index(c.X, c.Y)
		g.cells[gx][gy] = true
	}
	return g
}

func (g *grid) index(x, y int32) (int, int) {
	return int(1 - g.xmin + x), int(1 - g.ymin + y)
}

func (g *grid) occupied(x, y int32) bool {
	gx, gy := g.index(x, y)
	return g.cells[gx][gy]
}

// GetBorder builds the flat border buffer for a territory's chunk
// coordinate set at the given grid scale (world units per chunk).
//
// Output buffer layout:
//
//	[ cx, cy, N, n1, e1, coords1..., edge1..., n2, e2, coords2..., edge2..., ... ]
//
// cx, cy is the pole-of-inaccessibility label position (in world
// units) of the largest loop, N is the number of border loops, and
// each loop contributes its chunk-space border point count n_i, its
// edge-loop point count e_i, the chunk coords themselves, then the
// (half-scale, grid-offset) edge loop points.
func GetBorder(coords []geo.IPoint, gridScale int32) ([]int32, error) {
	if len(coords) == 0 {
		return []int32{0, 0, 0}, nil
	}

	g := newGrid(coords)

	borderPoints := findBorderPoints(g, coords)
	clusters := clusterBorderPoints(g, borderPoints)

	gridScale2 := gridScale / 2
	gridOffset := gridScale2

	loops := make([][]geo.IPoint, 0, len(clusters))
	largestIdx, largestSize := 0, -1

	for _, c := range clusters {
		loop, err := buildEdgeLoop(g, c.points, gridScale, gridScale2)
		if err != nil {
			return nil, err
		}
		loops = append(loops, loop)
		if len(loop) > largestSize {
			largestSize = len(loop)
			largestIdx = len(loops) - 1
		}
	}

	largestAsFloat := make([]geo.Point, len(loops[largestIdx]))
	for i, p := range loops[largestIdx] {
		largestAsFloat[i] = geo.Point{X: float64(p.X), Y: float64(p.Y)}
	}
	core, err := polylabel.GetCore(largestAsFloat, 1.0)
	if err != nil {
		return nil, ErrInvariantViolation
	}

	out := make([]int32, 0, 3+4*len(clusters))
	out = append(out, gridOffset+int32(core.X), gridOffset+int32(core.Y), int32(len(clusters)))

	for i, c := range clusters {
		loop := loops[i]
		out = append(out, int32(len(c.points)), int32(len(loop)))
		for _, p := range c.points {
			out = append(out, p.X, p.Y)
		}
		for _, p := range loop {
			out = append(out, gridOffset+p.X, gridOffset+p.Y)
		}
	}

	return out, nil
}

// findBorderPoints returns the chunk coords that have at least one
// unoccupied 4-neighbor.
func findBorderPoints(g *grid, coords []geo.IPoint) []geo.IPoint {
	seen := make(map[geo.IPoint]bool)
	border := make([]geo.IPoint, 0)
	for _, c := range coords {
		if !g.occupied(c.X-1, c.Y) || !g.occupied(c.X+1, c.Y) || !g.occupied(c.X, c.Y-1) || !g.occupied(c.X, c.Y+1) {
			if !seen[c] {
				seen[c] = true
				border = append(border, c)
			}
		}
	}
	return border
}

// GetNeighboringPoints returns the set of chunk coords immediately
// outside the given coord set (its 4-neighbor boundary), used by the
// world package to compute territory adjacency.
func GetNeighboringPoints(coords []geo.IPoint) map[geo.IPoint]struct{} {
	neighbors := make(map[geo.IPoint]struct{})
	if len(coords) == 0 {
		return neighbors
	}

	g := newGrid(coords)
	for _, c := range coords {
		if !g.occupied(c.X-1, c.Y) {
			neighbors[geo.IPoint{X: c.X - 1, Y: c.Y}] = struct{}{}
		}
		if !g.occupied(c.X+1, c.Y) {
			neighbors[geo.IPoint{X: c.X + 1, Y: c.Y}] = struct{}{}
		}
		if !g.occupied(c.X, c.Y-1) {
			neighbors[geo.IPoint{X: c.X, Y: c.Y - 1}] = struct{}{}
		}
		if !g.occupied(c.X, c.Y+1) {
			neighbors[geo.IPoint{X: c.X, Y: c.Y + 1}] = struct{}{}
		}
	}
	return neighbors
}
