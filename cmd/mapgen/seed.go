package main

import (
	"math/rand/v2"

	"territoria/pkg/world"
)

// newSeedRNG builds the generator's PCG source. A zero seed means
// "pick something different every run"; main passes a nil
// SubdivideOptions.Seed to the subdivision in that same case.
func newSeedRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type point struct{ x, y int }

var cardinalDirs = [4]point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// seedWorld grows territoryCount organically-shaped territories over a
// width x height grid of chunks, one at a time from a random unclaimed
// seed cell. Growth picks from the cell's unclaimed frontier with a
// mix of fully random, low-connectivity (branchy) and moderately
// compact choices so territories come out irregular rather than
// perfectly round. Returns the created territory ids in growth order.
func seedWorld(w *world.World, width, height, territoryCount int, rng *rand.Rand) []uint32 {
	claimed := make(map[point]uint32, width*height)
	ids := make([]uint32, 0, territoryCount)

	minSize, maxSize := 6, 14

	for i := 0; i < territoryCount; i++ {
		start, ok := pickUnclaimedCell(claimed, width, height, rng)
		if !ok {
			break
		}

		id := w.CreateTerritory(nil)
		targetSize := minSize + rng.IntN(maxSize-minSize+1)
		cells := growTerritory(claimed, id, start, width, height, targetSize, rng)
		if len(cells) == 0 {
			continue
		}

		flat := make([]int32, 0, 2*len(cells))
		for _, c := range cells {
			flat = append(flat, int32(c.x), int32(c.y))
		}
		w.AddCoordsToTerritory(id, flat)
		ids = append(ids, id)
	}

	return ids
}

func pickUnclaimedCell(claimed map[point]uint32, width, height int, rng *rand.Rand) (point, bool) {
	for attempts := 0; attempts < 200; attempts++ {
		p := point{rng.IntN(width), rng.IntN(height)}
		if _, taken := claimed[p]; !taken {
			return p, true
		}
	}
	return point{}, false
}

func growTerritory(claimed map[point]uint32, id uint32, start point, width, height, targetSize int, rng *rand.Rand) []point {
	cells := make([]point, 0, targetSize)
	frontier := make([]point, 0)
	inFrontier := make(map[point]bool)

	claimed[start] = id
	cells = append(cells, start)
	addValidNeighbors(claimed, start, width, height, &frontier, inFrontier)

	for len(cells) < targetSize && len(frontier) > 0 {
		idx := pickGrowthCell(claimed, id, frontier, rng)
		cell := frontier[idx]

		frontier[idx] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		delete(inFrontier, cell)

		if _, taken := claimed[cell]; taken {
			continue
		}

		claimed[cell] = id
		cells = append(cells, cell)
		addValidNeighbors(claimed, cell, width, height, &frontier, inFrontier)
	}

	return cells
}

func addValidNeighbors(claimed map[point]uint32, p point, width, height int, frontier *[]point, inFrontier map[point]bool) {
	for _, d := range cardinalDirs {
		n := point{p.x + d.x, p.y + d.y}
		if n.x < 0 || n.x >= width || n.y < 0 || n.y >= height {
			continue
		}
		if _, taken := claimed[n]; taken {
			continue
		}
		if !inFrontier[n] {
			*frontier = append(*frontier, n)
			inFrontier[n] = true
		}
	}
}

func pickGrowthCell(claimed map[point]uint32, id uint32, frontier []point, rng *rand.Rand) int {
	if len(frontier) <= 1 {
		return 0
	}

	roll := rng.Float64()
	switch {
	case roll < 0.40:
		return rng.IntN(len(frontier))
	case roll < 0.70:
		return pickLowConnectivity(claimed, id, frontier, rng)
	default:
		return pickModerateCell(claimed, id, frontier, rng)
	}
}

func connectivity(claimed map[point]uint32, id uint32, p point) int {
	count := 0
	for _, d := range cardinalDirs {
		n := point{p.x + d.x, p.y + d.y}
		if owner, taken := claimed[n]; taken && owner == id {
			count++
		}
	}
	return count
}

func pickLowConnectivity(claimed map[point]uint32, id uint32, frontier []point, rng *rand.Rand) int {
	var low []int
	for i, p := range frontier {
		if connectivity(claimed, id, p) == 1 {
			low = append(low, i)
		}
	}
	if len(low) > 0 {
		return low[rng.IntN(len(low))]
	}
	return rng.IntN(len(frontier))
}

func pickModerateCell(claimed map[point]uint32, id uint32, frontier []point, rng *rand.Rand) int {
	byScore := make(map[int][]int)
	for i, p := range frontier {
		byScore[connectivity(claimed, id, p)] = append(byScore[connectivity(claimed, id, p)], i)
	}

	weights := map[int]int{1: 5, 2: 4, 3: 2, 4: 1}
	var choices []int
	for score, indices := range byScore {
		w := weights[score]
		if w == 0 {
			w = 1
		}
		for _, idx := range indices {
			for i := 0; i < w; i++ {
				choices = append(choices, idx)
			}
		}
	}

	if len(choices) > 0 {
		return choices[rng.IntN(len(choices))]
	}
	return rng.IntN(len(frontier))
}
