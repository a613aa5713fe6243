package world

import (
	"territoria/pkg/cells"
	"territoria/pkg/geo"
)

// SubdivideOptions configures SubdivideIntoRandomTerritories.
type SubdivideOptions struct {
	AverageRadius          float64
	ScaleX, ScaleY         float64
	Seed                   *uint64
	IterationsImproveCenter uint32
	IterationsImproveCorner uint32
	DeleteSmallerThan       uint32
	MergeSmallerThan        uint32
}

// SubdivideIntoRandomTerritories removes territory id and replaces it
// with a set of newly generated, randomly shaped territories covering
// the same area:
//
//  1. Remove the source territory.
//  2. Generate a random, Lloyd-relaxed cell diagram over its bounding
//     box expanded by 1 chunk in every direction.
//  3. Optionally scale the diagram (note: centroids go stale, same as
//     the underlying cell diagram's documented Scale behavior).
//  4. Assign every original chunk to whichever generated cell
//     contains it.
//  5. Create one new territory per non-empty cell, skipping cells
//     smaller than DeleteSmallerThan.
//  6. If MergeSmallerThan > 0, merge every territory at or below that
//     size into its smallest neighbor strictly larger than the
//     threshold; territories with no eligible neighbor are kept as-is.
//
// Returns the new territory ids and the CellDiagram generation's
// traceability id, or false if id does not exist.
func (w *World) SubdivideIntoRandomTerritories(id uint32, opts SubdivideOptions) ([]uint32, GenerationID, bool) {
	territory := w.removeTerritory(id)
	if territory == nil {
		return nil, GenerationID{}, false
	}

	aabb := territory.aabb()
	min := geo.Point{X: float64(aabb.Min.X - 1), Y: float64(aabb.Min.Y - 1)}
	max := geo.Point{X: float64(aabb.Max.X + 1), Y: float64(aabb.Max.Y + 1)}

	diagram, genID, err := cells.Generate(cells.Options{
		AverageRadius:          opts.AverageRadius,
		Min:                    min,
		Max:                    max,
		Seed:                   opts.Seed,
		IterationsSmoothCenter: opts.IterationsImproveCenter,
		IterationsSmoothCorner: opts.IterationsImproveCorner,
	})
	if err != nil {
		// put the source territory back untouched on failure
		w.addTerritory(territory)
		return nil, GenerationID{}, false
	}

	if opts.ScaleX != 1.0 || opts.ScaleY != 1.0 {
		diagram.Scale(opts.ScaleX, opts.ScaleY)
	}
	diagram.CalculateBoundingBoxes()

	newTerritoryChunks := make([][]geo.IPoint, diagram.NumCells())
	for p := range territory.Coords {
		if idx, ok := diagram.CellContainsCoords(float64(p.X), float64(p.Y)); ok {
			newTerritoryChunks[idx] = append(newTerritoryChunks[idx], p)
		}
	}

	var newIDs []uint32
	for _, chunks := range newTerritoryChunks {
		if len(chunks) == 0 {
			continue
		}
		if opts.DeleteSmallerThan > 0 && len(chunks) < int(opts.DeleteSmallerThan) {
			continue
		}
		newID := w.CreateTerritory(nil)
		w.addCoordsToTerritory(newID, chunks)
		newIDs = append(newIDs, newID)
	}

	if opts.MergeSmallerThan > 0 {
		w.mergeSmallTerritories(int(opts.MergeSmallerThan))

		kept := newIDs[:0]
		for _, id := range newIDs {
			if _, ok := w.territories[id]; ok {
				kept = append(kept, id)
			}
		}
		newIDs = kept
	}

	return newIDs, genID, true
}

// mergeSmallTerritories finds every territory at or below mergeSize
// and folds it into its smallest neighbor that is strictly larger
// than mergeSize. Territories with no such neighbor are left in
// place untouched.
func (w *World) mergeSmallTerritories(mergeSize int) {
	w.CalculateNeighbors()

	var tooSmall []uint32
	for id, t := range w.territories {
		if len(t.Coords) <= mergeSize {
			tooSmall = append(tooSmall, id)
		}
	}

	removed := make([]*Territory, 0, len(tooSmall))
	for _, id := range tooSmall {
		removed = append(removed, w.removeTerritory(id))
	}

	var remaining []*Territory
	for _, t := range removed {
		var joinID uint32
		joinSize := int(^uint(0) >> 1)
		found := false

		for nid := range t.Neighbors {
			neighbor, ok := w.territories[nid]
			if !ok {
				continue
			}
			size := len(neighbor.Coords)
			if size > mergeSize && size < joinSize {
				joinID = nid
				joinSize = size
				found = true
			}
		}

		if found {
			w.addCoordsToTerritory(joinID, t.coordSlice())
		} else {
			remaining = append(remaining, t)
		}
	}

	// territories with no merge candidate are re-added unchanged;
	// merging them with each other would need another neighbor pass,
	// so they're simply kept as small territories.
	for _, t := range remaining {
		w.addTerritory(t)
	}
}
