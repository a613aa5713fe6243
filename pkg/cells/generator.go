package cells

import (
	"math"
	"math/rand/v2"

	"territoria/pkg/geo"

	"github.com/google/uuid"
)

// Options configures a random cell generation run.
type Options struct {
	AverageRadius          float64
	Min, Max               geo.Point
	Seed                   *uint64 // nil selects a random seed
	IterationsSmoothCenter uint32
	IterationsSmoothCorner uint32
}

// GenerationID is a traceability tag correlating a generated
// CellDiagram with its log/debug output, in the same spirit as the
// uuid tags the teacher stamps onto games and players.
type GenerationID = uuid.UUID

// Generate builds a CellDiagram of randomly placed, Lloyd-relaxed,
// corner-smoothed cells covering the rectangle [Min, Max]. The number
// of cells is derived from the area divided by the expected circular
// area of a cell of AverageRadius, with a floor of 3 (a Voronoi
// diagram needs at least 3 sites).
func Generate(opts Options) (*CellDiagram, GenerationID, error) {
	if opts.Max.X <= opts.Min.X || opts.Max.Y <= opts.Min.Y {
		return nil, uuid.Nil, ErrBadGeometry
	}

	var src rand.Source
	if opts.Seed != nil {
		src = rand.NewPCG(*opts.Seed, *opts.Seed^0x9e3779b97f4a7c15)
	} else {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	rng := rand.New(src)

	cellAvgArea := math.Pi * opts.AverageRadius * opts.AverageRadius
	area := (opts.Max.X - opts.Min.X) * (opts.Max.Y - opts.Min.Y)
	npoints := int(math.Max(math.Round(area/cellAvgArea), 3))

	sites := make([]geo.Point, npoints)
	for i := range sites {
		x := opts.Min.X + rng.Float64()*(opts.Max.X-opts.Min.X)
		y := opts.Min.Y + rng.Float64()*(opts.Max.Y-opts.Min.Y)
		sites[i] = geo.Point{X: x, Y: y}
	}

	polys := computeVoronoiCells(sites, opts.Min, opts.Max)
	for i := uint32(0); i < opts.IterationsSmoothCenter; i++ {
		polys = lloydRelax(polys, opts.Min, opts.Max)
	}

	diagram := fromPolygons(polys, opts.Min, opts.Max)
	for i := uint32(0); i < opts.IterationsSmoothCorner; i++ {
		diagram = smoothCorners(diagram)
	}

	return diagram, uuid.New(), nil
}
