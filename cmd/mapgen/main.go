// Command mapgen exercises the full territory map pipeline end to
// end: seed a world with organically grown territories, subdivide one
// of them into freshly generated random cells, recompute neighbors
// and a 6-coloring, then print the result.
package main

import (
	"flag"
	"fmt"
	"log"

	"territoria/pkg/world"
)

func main() {
	width := flag.Int("width", 24, "grid width in chunks")
	height := flag.Int("height", 24, "grid height in chunks")
	territories := flag.Int("territories", 8, "number of seed territories to grow")
	gridScale := flag.Int("grid-scale", 16, "world-unit size of one chunk")
	seed := flag.Uint64("seed", 1, "RNG seed (0 picks a random seed)")
	subdivideRadius := flag.Float64("subdivide-radius", 2.5, "average cell radius used when subdividing territory 0")
	verbose := flag.Bool("v", false, "print the full debug dump and adjacency matrix")
	flag.Parse()

	var seedPtr *uint64
	if *seed != 0 {
		seedPtr = seed
	}

	w := world.New(int32(*gridScale))

	rng := newSeedRNG(*seed)
	ids := seedWorld(w, *width, *height, *territories, rng)
	log.Printf("grew %d territories over a %dx%d grid", len(ids), *width, *height)

	if len(ids) == 0 {
		log.Fatal("no territories were seeded, nothing to subdivide")
	}

	target := ids[0]
	size, _ := w.GetTerritorySize(target)
	log.Printf("subdividing territory %d (%d chunks) into random cells", target, size)

	newIDs, genID, ok := w.SubdivideIntoRandomTerritories(target, world.SubdivideOptions{
		AverageRadius:           *subdivideRadius,
		ScaleX:                  1,
		ScaleY:                  1,
		Seed:                    seedPtr,
		IterationsImproveCenter: 2,
		IterationsImproveCorner: 1,
		DeleteSmallerThan:       2,
		MergeSmallerThan:        1,
	})
	if !ok {
		log.Fatalf("subdivision of territory %d failed", target)
	}
	log.Printf("generation %s produced %d new territories", genID, len(newIDs))

	w.CalculateNeighbors()
	if err := w.GenerateColors(); err != nil {
		log.Fatalf("coloring failed: %v", err)
	}

	for _, id := range newIDs {
		border, err := w.GetTerritoryBorder(id)
		if err != nil {
			log.Printf("territory %d: border extraction failed: %v", id, err)
			continue
		}
		fmt.Printf("territory %d border buffer: %v\n", id, border)
	}

	if *verbose {
		fmt.Println(w.Debug())
		fmt.Println(w.PrintAdjacencyMatrix())
	}
}
