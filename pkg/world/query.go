package world

import (
	"territoria/pkg/border"
	"territoria/pkg/coloring"
)

// GetTerritorySize returns the number of chunks in territory id.
func (w *World) GetTerritorySize(id uint32) (int, bool) {
	t, ok := w.territories[id]
	if !ok {
		return 0, false
	}
	return len(t.Coords), true
}

// GetTerritoryChunksBuffer returns territory id's chunk coords
// flattened as [x0,y0,x1,y1,...], or nil if id is unknown.
func (w *World) GetTerritoryChunksBuffer(id uint32) []int32 {
	t, ok := w.territories[id]
	if !ok {
		return nil
	}
	return t.ToBuffer()
}

// GetTerritoryBorder returns territory id's border buffer (see
// pkg/border.GetBorder), or nil if id is unknown.
func (w *World) GetTerritoryBorder(id uint32) ([]int32, error) {
	t, ok := w.territories[id]
	if !ok {
		return nil, nil
	}
	return border.GetBorder(t.coordSlice(), w.gridScale)
}

// ListTerritories returns every territory id currently in the world.
func (w *World) ListTerritories() []uint32 {
	ids := make([]uint32, 0, len(w.territories))
	for id := range w.territories {
		ids = append(ids, id)
	}
	return ids
}

// CalculateNeighbors recomputes every territory's Neighbors set and
// IsAtEdge flag from the current grid occupancy. Must be called
// after any mutation before GetTerritoryNeighbors/Color/IsEdge are
// trusted again — derived state is never kept fresh automatically.
func (w *World) CalculateNeighbors() {
	for _, t := range w.territories {
		neighborPoints := border.GetNeighboringPoints(t.coordSlice())

		isAtEdge := false
		neighborTerritories := make(map[uint32]struct{})
		for p := range neighborPoints {
			if terrID, ok := w.grid[p]; ok {
				neighborTerritories[terrID] = struct{}{}
			}
			if _, occupied := w.gridOccupiedCoord[p]; !occupied {
				isAtEdge = true
			}
		}

		t.Neighbors = neighborTerritories
		t.IsAtEdge = isAtEdge
	}
}

// GetTerritoryNeighbors returns territory id's neighboring territory
// ids.
func (w *World) GetTerritoryNeighbors(id uint32) []uint32 {
	t, ok := w.territories[id]
	if !ok {
		return nil
	}
	out := make([]uint32, 0, len(t.Neighbors))
	for n := range t.Neighbors {
		out = append(out, n)
	}
	return out
}

// GenerateColors recomputes a 6-coloring across all territories,
// assuming their Neighbors sets are current (call CalculateNeighbors
// first).
func (w *World) GenerateColors() error {
	for _, t := range w.territories {
		t.Color = nil
	}

	neighbors := make(map[uint32][]uint32, len(w.territories))
	for id, t := range w.territories {
		ns := make([]uint32, 0, len(t.Neighbors))
		for n := range t.Neighbors {
			ns = append(ns, n)
		}
		neighbors[id] = ns
	}

	colors, err := coloring.Color(neighbors)
	if err != nil {
		return err
	}

	for id, c := range colors {
		if t, ok := w.territories[id]; ok {
			v := c
			t.Color = &v
		}
	}
	return nil
}

// GetTerritoryColor returns territory id's assigned color, if any.
func (w *World) GetTerritoryColor(id uint32) (uint8, bool) {
	t, ok := w.territories[id]
	if !ok || t.Color == nil {
		return 0, false
	}
	return *t.Color, true
}

// GetTerritoryIsEdge reports whether territory id touches the
// world's unclaimed edge.
func (w *World) GetTerritoryIsEdge(id uint32) (bool, bool) {
	t, ok := w.territories[id]
	if !ok {
		return false, false
	}
	return t.IsAtEdge, true
}

// GetTerritoriesInAABB returns every territory with at least one
// chunk inside [xmin,ymin]-[xmax,ymax], checked by a linear scan of
// every territory's every chunk.
func (w *World) GetTerritoriesInAABB(xmin, ymin, xmax, ymax int32) []uint32 {
	var ids []uint32

territory:
	for id, t := range w.territories {
		for p := range t.Coords {
			if p.X < xmin || p.X > xmax || p.Y < ymin || p.Y > ymax {
				continue
			}
			ids = append(ids, id)
			continue territory
		}
	}

	return ids
}
