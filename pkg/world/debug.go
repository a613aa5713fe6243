package world

import (
	"fmt"
	"sort"
	"strings"

	"territoria/pkg/coloring"
)

// Debug renders a human-readable summary of the world: one line per
// territory listing its size, color, edge status and neighbors.
func (w *World) Debug() string {
	var sb strings.Builder

	ids := make([]uint32, 0, len(w.territories))
	for id := range w.territories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		t := w.territories[id]
		color := "none"
		if t.Color != nil {
			color = fmt.Sprintf("%d", *t.Color)
		}

		neighbors := make([]uint32, 0, len(t.Neighbors))
		for n := range t.Neighbors {
			neighbors = append(neighbors, n)
		}
		sort.Slice(neighbors, func(i, j int) bool { return neighbors[i] < neighbors[j] })

		sb.WriteString(fmt.Sprintf(
			"[%d] chunks=%d color=%s edge=%v neighbors=%v\n",
			id, len(t.Coords), color, t.IsAtEdge, neighbors,
		))
	}

	return sb.String()
}

// PrintAdjacencyMatrix renders an N x N '1'/'.' adjacency matrix over
// the world's territory ids, in ascending id order.
func (w *World) PrintAdjacencyMatrix() string {
	ids := make([]uint32, 0, len(w.territories))
	for id := range w.territories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var sb strings.Builder
	sb.WriteString("    ")
	for _, id := range ids {
		sb.WriteString(fmt.Sprintf("%3d", id))
	}
	sb.WriteString("\n")

	for _, row := range ids {
		sb.WriteString(fmt.Sprintf("%3d ", row))
		for _, col := range ids {
			if _, adjacent := w.territories[row].Neighbors[col]; adjacent {
				sb.WriteString("  1")
			} else {
				sb.WriteString("  .")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// neighborMap exposes the territories' current Neighbors sets in the
// flat map[id][]id shape pkg/coloring.SortedIDs expects, for callers
// that want deterministic debug iteration over the coloring input.
func (w *World) neighborMap() map[uint32][]uint32 {
	out := make(map[uint32][]uint32, len(w.territories))
	for id, t := range w.territories {
		ns := make([]uint32, 0, len(t.Neighbors))
		for n := range t.Neighbors {
			ns = append(ns, n)
		}
		out[id] = ns
	}
	return out
}

// SortedTerritoryIDs returns every territory id in ascending order,
// useful for deterministic CLI/debug output.
func (w *World) SortedTerritoryIDs() []uint32 {
	return coloring.SortedIDs(w.neighborMap())
}
