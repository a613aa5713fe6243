package world

import (
	"math"

	"territoria/pkg/geo"
)

// CreateTerritory allocates a new empty territory. If id is nil, a
// fresh id is assigned from the internal counter.
func (w *World) CreateTerritory(id *uint32) uint32 {
	var newID uint32
	if id != nil {
		newID = *id
	} else {
		newID = w.newTerritoryID()
	}
	w.territories[newID] = newTerritory(newID)
	return newID
}

// DeleteTerritory removes a territory and frees its chunks.
func (w *World) DeleteTerritory(id uint32) {
	w.removeTerritory(id)
}

// AddCoordsToTerritory adds coords (as a flat [x0,y0,x1,y1,...]
// buffer) to territory id, silently skipping any coord already
// occupied by another territory (invariant W1: a chunk belongs to at
// most one territory). Reports false if id does not exist.
func (w *World) AddCoordsToTerritory(id uint32, flatCoords []int32) bool {
	t, ok := w.territories[id]
	if !ok {
		return false
	}

	newCoords := make([]geo.IPoint, 0, len(flatCoords)/2)
	for i := 0; i+1 < len(flatCoords); i += 2 {
		p := geo.IPoint{X: flatCoords[i], Y: flatCoords[i+1]}
		if _, occupied := w.gridOccupiedCoord[p]; !occupied {
			newCoords = append(newCoords, p)
			w.gridOccupiedCoord[p] = struct{}{}
			w.grid[p] = id
		}
	}
	t.insertCoords(newCoords)
	return true
}

// RemoveCoords frees the given flat [x0,y0,x1,y1,...] coords from
// whichever territory currently owns each one.
func (w *World) RemoveCoords(flatCoords []int32) {
	for i := 0; i+1 < len(flatCoords); i += 2 {
		p := geo.IPoint{X: flatCoords[i], Y: flatCoords[i+1]}
		if _, occupied := w.gridOccupiedCoord[p]; !occupied {
			continue
		}
		delete(w.gridOccupiedCoord, p)
		if terrID, ok := w.grid[p]; ok {
			delete(w.grid, p)
			if t, ok := w.territories[terrID]; ok {
				delete(t.Coords, p)
			}
		}
	}
}

// AddCircleToTerritory adds every chunk within radius (exclusive,
// strict `<`) of (cx, cy) that is not already occupied to territory
// id. Reports false for a non-positive radius, an unknown territory,
// or if every candidate chunk was already occupied.
func (w *World) AddCircleToTerritory(id uint32, cx, cy, radius int32) bool {
	if radius <= 0 {
		return false
	}
	t, ok := w.territories[id]
	if !ok {
		return false
	}

	var unoccupied []geo.IPoint
	for gx := -radius; gx <= radius; gx++ {
		for gy := -radius; gy <= radius; gy++ {
			if math.Hypot(float64(gx), float64(gy)) >= float64(radius) {
				continue
			}
			p := geo.IPoint{X: cx + gx, Y: cy + gy}
			if _, occupied := w.gridOccupiedCoord[p]; !occupied {
				unoccupied = append(unoccupied, p)
			}
		}
	}

	if len(unoccupied) == 0 {
		return false
	}

	for _, p := range unoccupied {
		w.grid[p] = id
		w.gridOccupiedCoord[p] = struct{}{}
	}
	t.insertCoords(unoccupied)
	return true
}

// RemoveCircleToTerritory removes every chunk within radius
// (exclusive) of (cx, cy) that is currently owned by territory id.
func (w *World) RemoveCircleToTerritory(id uint32, cx, cy, radius int32) bool {
	if radius <= 0 {
		return false
	}
	t, ok := w.territories[id]
	if !ok {
		return false
	}

	toRemove := make(map[geo.IPoint]struct{})
	for gx := -radius; gx <= radius; gx++ {
		for gy := -radius; gy <= radius; gy++ {
			if math.Hypot(float64(gx), float64(gy)) >= float64(radius) {
				continue
			}
			p := geo.IPoint{X: cx + gx, Y: cy + gy}
			if owner, ok := w.grid[p]; ok && owner == id {
				toRemove[p] = struct{}{}
			}
		}
	}

	if len(toRemove) == 0 {
		return false
	}

	for p := range toRemove {
		delete(w.grid, p)
		delete(w.gridOccupiedCoord, p)
	}
	t.removeCoords(toRemove)
	return true
}

// MergeTerritories merges every territory in ids into the first,
// moving all coords and deleting the rest. Returns the surviving id,
// or false if ids is empty or any named territory does not exist.
func (w *World) MergeTerritories(ids []uint32) (uint32, bool) {
	if len(ids) == 0 {
		return 0, false
	}
	if len(ids) == 1 {
		_, ok := w.territories[ids[0]]
		return ids[0], ok
	}

	for _, id := range ids {
		if _, ok := w.territories[id]; !ok {
			return 0, false
		}
	}

	mergedID := ids[0]
	merged := w.removeTerritory(mergedID)

	for _, id := range ids[1:] {
		other := w.removeTerritory(id)
		if other == nil {
			continue
		}
		for p := range other.Coords {
			merged.Coords[p] = struct{}{}
		}
	}

	w.addTerritory(merged)
	return mergedID, true
}
