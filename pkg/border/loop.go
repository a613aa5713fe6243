package border

import "territoria/pkg/geo"

// Edge is a bitset of which 4-neighbor directions of a border chunk
// are unoccupied (i.e. which sides of the chunk face the outside).
type Edge uint8

const (
	None Edge = 0
	N    Edge = 1 << 0
	S    Edge = 1 << 1
	E    Edge = 1 << 2
	W    Edge = 1 << 3

	NS   = N | S
	NE   = N | E
	NW   = N | W
	SE   = S | E
	SW   = S | W
	EW   = E | W
	ENW  = E | N | W
	ESW  = E | S | W
	NES  = N | E | S
	NWS  = N | W | S
	NESW = N | E | S | W
)

// buildEdgeLoop walks a cluster's border points in order, supersampling
// each chunk into up to four half-scale corner points depending on
// which sides face the outside, and stitches the resulting open
// polylines into a single closed loop. Vertices of the closed loop
// that lie midway along a straight side are dropped, so each side is
// one segment.
//
// Each chunk is supersampled like so:
//
//	.   .
//	  o    ->
//	.   .
func buildEdgeLoop(g *grid, points []geo.IPoint, gridScale, gridScale2 int32) ([]geo.IPoint, error) {
	var edges [][]geo.IPoint

	for _, p := range points {
		gx, gy := g.index(p.X, p.Y)

		var nodeType Edge
		if !g.cells[gx][gy-1] {
			nodeType |= N
		}
		if !g.cells[gx][gy+1] {
			nodeType |= S
		}
		if !g.cells[gx-1][gy] {
			nodeType |= W
		}
		if !g.cells[gx+1][gy] {
			nodeType |= E
		}

		x, y := gridScale*p.X, gridScale*p.Y
		h := gridScale2

		switch nodeType {
		case N:
			edges = append(edges, []geo.IPoint{
				{X: x - h, Y: y - h},
				{X: x + h, Y: y - h},
			})
		case S:
			edges = append(edges, []geo.IPoint{
				{X: x - h, Y: y + h},
				{X: x + h, Y: y + h},
			})
		case E:
			edges = append(edges, []geo.IPoint{
				{X: x + h, Y: y - h},
				{X: x + h, Y: y + h},
			})
		case W:
			edges = append(edges, []geo.IPoint{
				{X: x - h, Y: y - h},
				{X: x - h, Y: y + h},
			})
		case NS:
			edges = append(edges, []geo.IPoint{
				{X: x - h, Y: y - h},
				{X: x + h, Y: y - h},
			})
			edges = append(edges, []geo.IPoint{
				{X: x - h, Y: y + h},
				{X: x + h, Y: y + h},
			})
		case EW:
			edges = append(edges, []geo.IPoint{
				{X: x + h, Y: y - h},
				{X: x + h, Y: y + h},
			})
			edges = append(edges, []geo.IPoint{
				{X: x - h, Y: y - h},
				{X: x - h, Y: y + h},
			})
		case NE:
			edges = append(edges, []geo.IPoint{
				{X: x - h, Y: y - h},
				{X: x + h, Y: y - h},
				{X: x + h, Y: y + h},
			})
		case NW:
			edges = append(edges, []geo.IPoint{
				{X: x - h, Y: y + h},
				{X: x - h, Y: y - h},
				{X: x + h, Y: y - h},
			})
		case SE:
			edges = append(edges, []geo.IPoint{
				{X: x + h, Y: y - h},
				{X: x + h, Y: y + h},
				{X: x - h, Y: y + h},
			})
		case SW:
			edges = append(edges, []geo.IPoint{
				{X: x + h, Y: y + h},
				{X: x - h, Y: y + h},
				{X: x - h, Y: y - h},
			})
		case ENW:
			edges = append(edges, []geo.IPoint{
				{X: x + h, Y: y + h},
				{X: x + h, Y: y - h},
				{X: x - h, Y: y - h},
				{X: x - h, Y: y + h},
			})
		case ESW:
			edges = append(edges, []geo.IPoint{
				{X: x + h, Y: y - h},
				{X: x + h, Y: y + h},
				{X: x - h, Y: y + h},
				{X: x - h, Y: y - h},
			})
		case NES:
			edges = append(edges, []geo.IPoint{
				{X: x - h, Y: y - h},
				{X: x + h, Y: y - h},
				{X: x + h, Y: y + h},
				{X: x - h, Y: y + h},
			})
		case NWS:
			edges = append(edges, []geo.IPoint{
				{X: x + h, Y: y - h},
				{X: x - h, Y: y - h},
				{X: x - h, Y: y + h},
				{X: x + h, Y: y + h},
			})
		case NESW:
			edges = append(edges, []geo.IPoint{
				{X: x - h, Y: y - h},
				{X: x + h, Y: y - h},
				{X: x + h, Y: y + h},
				{X: x - h, Y: y + h},
				{X: x - h, Y: y - h},
			})
		default:
			// interior point somehow marked as border; no edge emitted
		}

		edges = joinEdgeLoops(edges)
	}

	if len(edges) == 0 {
		return nil, ErrInvariantViolation
	}

	loop := edges[len(edges)-1]

	// drop vertices lying midway along a straight side of the closed loop
	if n := len(loop) - 1; n >= 3 && loop[0] == loop[n] {
		kept := make([]geo.IPoint, 0, len(loop))
		for i, p := range loop[:n] {
			prev, next := loop[(i+n-1)%n], loop[(i+1)%n]
			if (prev.X != p.X || p.X != next.X) && (prev.Y != p.Y || p.Y != next.Y) {
				kept = append(kept, p)
			}
		}
		if len(kept) >= 3 {
			loop = append(kept, kept[0])
		}
	}
	return loop, nil
}

// joinEdgeLoops repeatedly splices open polylines that share an
// endpoint until no more joins are possible, returning the resulting
// (possibly still multiple) closed/open polylines.
func joinEdgeLoops(edgeLoops [][]geo.IPoint) [][]geo.IPoint {
	var noMoreConnections [][]geo.IPoint

outer:
	for len(edgeLoops) > 0 {
		edge1 := edgeLoops[len(edgeLoops)-1]
		edgeLoops = edgeLoops[:len(edgeLoops)-1]

		e1First := edge1[0]
		e1Last := edge1[len(edge1)-1]

		var visited [][]geo.IPoint

		for len(edgeLoops) > 0 {
			edge2 := edgeLoops[len(edgeLoops)-1]
			edgeLoops = edgeLoops[:len(edgeLoops)-1]

			e2First := edge2[0]
			e2Last := edge2[len(edge2)-1]

			switch {
			case e1First == e2First:
				reversed := reverse(edge2)
				reversed = reversed[:len(reversed)-1]
				edge1 = append(reversed, edge1...)
				edgeLoops = append(edgeLoops, visited...)
				edgeLoops = append(edgeLoops, edge1)
				continue outer
			case e1First == e2Last:
				trimmed := edge2[:len(edge2)-1]
				edge1 = append(trimmed, edge1...)
				edgeLoops = append(edgeLoops, visited...)
				edgeLoops = append(edgeLoops, edge1)
				continue outer
			case e1Last == e2First:
				trimmed := edge1[:len(edge1)-1]
				edge1 = append(trimmed, edge2...)
				edgeLoops = append(edgeLoops, visited...)
				edgeLoops = append(edgeLoops, edge1)
				continue outer
			case e1Last == e2Last:
				reversed := reverse(edge2)
				trimmed := edge1[:len(edge1)-1]
				edge1 = append(trimmed, reversed...)
				edgeLoops = append(edgeLoops, visited...)
				edgeLoops = append(edgeLoops, edge1)
				continue outer
			default:
				visited = append(visited, edge2)
			}
		}

		noMoreConnections = append(noMoreConnections, edge1)
		edgeLoops = visited
	}

	return noMoreConnections
}

func reverse(points []geo.IPoint) []geo.IPoint {
	out := make([]geo.IPoint, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}
