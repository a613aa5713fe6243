// Package world is the thin glue layer binding cell generation,
// border extraction and planar coloring into a single territory map:
// a grid of chunk coordinates partitioned into disjoint, uniquely
// identified territories (W1: a chunk belongs to at most one
// territory; W2: territory ids are unique for the life of the
// World).
package world

import (
	"errors"

	"territoria/pkg/geo"

	"github.com/google/uuid"
)

// ErrUnknownTerritory names the condition of a territory id that
// doesn't currently exist. World's methods do not return it: they
// report that condition as a false/zero-value or nil result instead.
var ErrUnknownTerritory = errors.New("world: unknown territory id")

// Territory is a named region of the world: a set of chunk
// coordinates, the ids of territories adjacent to it, an assigned
// color, and whether it touches the world's unclaimed edge. Neighbors
// and Color/IsAtEdge are derived state: stale until CalculateNeighbors
// / GenerateColors is (re)run after a mutation.
type Territory struct {
	ID        uint32
	Coords    map[geo.IPoint]struct{}
	Neighbors map[uint32]struct{}
	Color     *uint8
	IsAtEdge  bool
}

func newTerritory(id uint32) *Territory {
	return &Territory{
		ID:        id,
		Coords:    make(map[geo.IPoint]struct{}),
		Neighbors: make(map[uint32]struct{}),
	}
}

// ToBuffer flattens a territory's chunk coords into [x0,y0,x1,y1,...].
func (t *Territory) ToBuffer() []int32 {
	buf := make([]int32, 0, 2*len(t.Coords))
	for p := range t.Coords {
		buf = append(buf, p.X, p.Y)
	}
	return buf
}

func (t *Territory) coordSlice() []geo.IPoint {
	out := make([]geo.IPoint, 0, len(t.Coords))
	for p := range t.Coords {
		out = append(out, p)
	}
	return out
}

func (t *Territory) insertCoords(coords []geo.IPoint) {
	for _, p := range coords {
		t.Coords[p] = struct{}{}
	}
}

func (t *Territory) removeCoords(coords map[geo.IPoint]struct{}) {
	for p := range coords {
		delete(t.Coords, p)
	}
}

func (t *Territory) aabb() geo.IAABB {
	return geo.IAABBFromPoints(t.coordSlice())
}

// World is a grid of chunk coordinates partitioned across a set of
// territories, plus the grid-to-world-unit scale used when
// extracting territory borders.
type World struct {
	grid              map[geo.IPoint]uint32
	gridOccupiedCoord map[geo.IPoint]struct{}
	gridScale         int32
	territories       map[uint32]*Territory
	nextID            uint32
}

// New creates an empty World. gridScale is the world-unit size of a
// chunk (used only by border extraction's point supersampling).
func New(gridScale int32) *World {
	return &World{
		grid:              make(map[geo.IPoint]uint32),
		gridOccupiedCoord: make(map[geo.IPoint]struct{}),
		gridScale:         gridScale,
		territories:       make(map[uint32]*Territory),
	}
}

// Clear removes every territory and resets the occupancy grid. The
// territory id counter is left untouched.
func (w *World) Clear() {
	w.grid = make(map[geo.IPoint]uint32)
	w.gridOccupiedCoord = make(map[geo.IPoint]struct{})
	w.territories = make(map[uint32]*Territory)
}

// TerritoryIDCounter returns the next id CreateTerritory(nil-like call)
// would assign.
func (w *World) TerritoryIDCounter() uint32 {
	return w.nextID
}

// SetTerritoryIDCounter overrides the next auto-assigned id, e.g.
// when restoring a World from serialized state.
func (w *World) SetTerritoryIDCounter(count uint32) {
	w.nextID = count
}

func (w *World) newTerritoryID() uint32 {
	id := w.nextID
	w.nextID++
	return id
}

// addTerritory registers an already-built territory and marks its
// coords occupied in the grid.
func (w *World) addTerritory(t *Territory) {
	for p := range t.Coords {
		w.gridOccupiedCoord[p] = struct{}{}
		w.grid[p] = t.ID
	}
	w.territories[t.ID] = t
}

// removeTerritory deletes a territory and frees its coords in the
// grid, returning the removed territory (or nil if id is unknown).
func (w *World) removeTerritory(id uint32) *Territory {
	t, ok := w.territories[id]
	if !ok {
		return nil
	}
	for p := range t.Coords {
		delete(w.gridOccupiedCoord, p)
		delete(w.grid, p)
	}
	delete(w.territories, id)
	return t
}

// addCoordsToTerritory inserts coords into territory id and marks
// them occupied, overwriting any stale grid bookkeeping. Used by
// internal operations that have already validated the target
// territory exists.
func (w *World) addCoordsToTerritory(id uint32, coords []geo.IPoint) {
	t := w.territories[id]
	for _, p := range coords {
		w.gridOccupiedCoord[p] = struct{}{}
		w.grid[p] = id
		t.Coords[p] = struct{}{}
	}
}

// GenerationID correlates a subdivision call with the cell-generation
// run that produced it, for debug/log purposes only.
type GenerationID = uuid.UUID
