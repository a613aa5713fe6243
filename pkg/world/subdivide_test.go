package world

import "testing"

func buildBlock(w *World, id uint32, x0, y0, x1, y1 int32) {
	var flat []int32
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			flat = append(flat, x, y)
		}
	}
	w.AddCoordsToTerritory(id, flat)
}

func TestSubdivideIntoRandomTerritoriesPartitionsAllChunks(t *testing.T) {
	w := New(16)
	id := w.CreateTerritory(nil)
	buildBlock(w, id, 0, 0, 9, 9) // 100 chunks

	seed := uint64(7)
	newIDs, _, ok := w.SubdivideIntoRandomTerritories(id, SubdivideOptions{
		AverageRadius:           3,
		ScaleX:                  1,
		ScaleY:                  1,
		Seed:                    &seed,
		IterationsImproveCenter: 2,
		IterationsImproveCorner: 1,
	})
	if !ok {
		t.Fatalf("expected subdivision to succeed")
	}
	if len(newIDs) == 0 {
		t.Fatalf("expected at least one new territory")
	}

	if _, ok := w.GetTerritorySize(id); ok {
		t.Fatalf("source territory should no longer exist after subdivision")
	}

	total := 0
	for _, nid := range newIDs {
		size, ok := w.GetTerritorySize(nid)
		if !ok {
			t.Fatalf("new territory %d should exist", nid)
		}
		total += size
	}
	if total != 100 {
		t.Fatalf("expected all 100 original chunks to be reassigned, got %d", total)
	}
}

func TestSubdivideUnknownTerritoryFails(t *testing.T) {
	w := New(16)
	_, _, ok := w.SubdivideIntoRandomTerritories(999, SubdivideOptions{AverageRadius: 3})
	if ok {
		t.Fatalf("expected subdivision of unknown territory to fail")
	}
}

func TestSubdivideWithDeleteBelowDropsTinyFragments(t *testing.T) {
	w := New(16)
	id := w.CreateTerritory(nil)
	buildBlock(w, id, 0, 0, 19, 19) // 400 chunks, many generated cells

	seed := uint64(42)
	newIDs, _, ok := w.SubdivideIntoRandomTerritories(id, SubdivideOptions{
		AverageRadius:           2,
		ScaleX:                  1,
		ScaleY:                  1,
		Seed:                    &seed,
		IterationsImproveCenter: 1,
		IterationsImproveCorner: 1,
		DeleteSmallerThan:       3,
	})
	if !ok {
		t.Fatalf("expected subdivision to succeed")
	}
	for _, nid := range newIDs {
		size, _ := w.GetTerritorySize(nid)
		if size < 3 {
			t.Fatalf("territory %d has size %d, smaller than DeleteSmallerThan threshold", nid, size)
		}
	}
}
