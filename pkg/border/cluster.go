package border

import (
	"sort"

	"territoria/pkg/geo"
)

// borderCluster is a collection of x-sorted border coords plus a
// bounding box for potentially adjacent coords: [xmax, ymin, ymax],
// actually the point set's bbox expanded by 1 in each bounded
// direction, used to early-reject candidate points during the sweep.
type borderCluster struct {
	points           []geo.IPoint
	xmax, ymin, ymax int32
}

// clusterBorderPoints separates border chunk coords into connected
// clusters via a left-to-right sweep: each point can join up to two
// existing clusters (checked by bbox then true adjacency, including
// diagonal L-corners); joining two at once merges them.
func clusterBorderPoints(g *grid, points []geo.IPoint) []*borderCluster {
	sorted := append([]geo.IPoint(nil), points...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var clusters []*borderCluster

	for _, p := range sorted {
		insert1 := -1
		insert2 := -1

	findClusters:
		for k, c := range clusters {
			if p.X <= c.xmax && p.Y >= c.ymin && p.Y <= c.ymax {
				for i := len(c.points) - 1; i >= 0; i-- {
					prev := c.points[i]
					if prev.X < p.X-1 {
						break
					}
					if pointsAreAdjacentBorder(g, p, prev) {
						if insert1 == -1 {
							insert1 = k
							break
						}
						insert2 = k
						break findClusters
					}
				}
			}
		}

		switch {
		case insert1 != -1:
			idx1 := insert1
			clusters[idx1].points = append(clusters[idx1].points, p)
			clusters[idx1].xmax = p.X + 1
			clusters[idx1].ymin = min32(clusters[idx1].ymin, p.Y-1)
			clusters[idx1].ymax = max32(clusters[idx1].ymax, p.Y+1)

			if insert2 != -1 {
				idx2 := insert2
				if idx1 == len(clusters)-1 {
					idx1 = idx2
				}

				merge := clusters[idx2]
				clusters = swapRemove(clusters, idx2)

				clusters[idx1].points = append(clusters[idx1].points, merge.points...)
				clusters[idx1].xmax = max32(clusters[idx1].xmax, merge.xmax)
				clusters[idx1].ymin = min32(clusters[idx1].ymin, merge.ymin)
				clusters[idx1].ymax = max32(clusters[idx1].ymax, merge.ymax)

				sort.Slice(clusters[idx1].points, func(i, j int) bool {
					return clusters[idx1].points[i].X < clusters[idx1].points[j].X
				})
			}
		default:
			clusters = append(clusters, &borderCluster{
				points: []geo.IPoint{p},
				xmax:   p.X + 1,
				ymin:   p.Y - 1,
				ymax:   p.Y + 1,
			})
		}
	}

	return clusters
}

// swapRemove removes index i, moving the last element into its slot
// (order of remaining elements aside from the moved one preserved),
// matching Vec::swap_remove semantics used for the merge above.
func swapRemove(s []*borderCluster, i int) []*borderCluster {
	last := len(s) - 1
	s[i] = s[last]
	return s[:last]
}

// pointsAreAdjacentBorder reports whether p1 and p2 are adjacent
// border points: direct 4-neighbors, or diagonal neighbors connected
// through an occupied L-corner tile (so a diagonal step across a
// solid corner still counts as one connected border, while a
// diagonal step across an empty gap does not).
func pointsAreAdjacentBorder(g *grid, p1, p2 geo.IPoint) bool {
	if p1.X == p2.X && (p1.Y == p2.Y-1 || p1.Y == p2.Y+1) {
		return true
	}
	if p1.Y == p2.Y && (p1.X == p2.X-1 || p1.X == p2.X+1) {
		return true
	}

	gx1, gy1 := g.index(p1.X, p1.Y)

	switch {
	case p1.X == p2.X-1 && p1.Y == p2.Y-1:
		return g.cells[gx1+1][gy1] || g.cells[gx1][gy1+1]
	case p1.X == p2.X+1 && p1.Y == p2.Y-1:
		return g.cells[gx1-1][gy1] || g.cells[gx1][gy1+1]
	case p1.X == p2.X-1 && p1.Y == p2.Y+1:
		return g.cells[gx1+1][gy1] || g.cells[gx1][gy1-1]
	case p1.X == p2.X+1 && p1.Y == p2.Y+1:
		return g.cells[gx1-1][gy1] || g.cells[gx1][gy1-1]
	}

	return false
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
