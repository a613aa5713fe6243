package coloring

import (
	"strconv"

	"github.com/katalvlaran/lvlath/core"
)

// adjacencyGraph is the single point of contact with the external
// graph container library. Every other file in this package works in
// terms of plain uint32 territory ids and neighbor slices, so the
// adapter is the only place that needs to know lvlath's vertex-id
// (string) and edge-weight (int64) conventions.
type adjacencyGraph struct {
	g *core.Graph
}

func newAdjacencyGraph() *adjacencyGraph {
	return &adjacencyGraph{g: core.NewGraph(core.WithDirected(false))}
}

func vid(id uint32) string {
	return strconv.FormatUint(uint64(id), 10)
}

func (a *adjacencyGraph) addVertex(id uint32) error {
	return a.g.AddVertex(vid(id))
}

// addEdge records an adjacency. Weight is semantically irrelevant
// here (this is a plain adjacency graph, not a weighted one), so it
// passes 0 rather than turning on core.WithWeighted() for a value
// nothing ever reads.
func (a *adjacencyGraph) addEdge(from, to uint32) error {
	_, err := a.g.AddEdge(vid(from), vid(to), 0)
	return err
}

func (a *adjacencyGraph) neighbors(id uint32) ([]uint32, error) {
	ids, err := a.g.NeighborIDs(vid(id))
	if err != nil {
		return nil, err
	}
	out := make([]uint32, len(ids))
	for i, s := range ids {
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return nil, err
		}
		out[i] = uint32(n)
	}
	return out, nil
}

func (a *adjacencyGraph) vertices() ([]uint32, error) {
	ids := a.g.Vertices()
	out := make([]uint32, len(ids))
	for i, s := range ids {
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return nil, err
		}
		out[i] = uint32(n)
	}
	return out, nil
}
