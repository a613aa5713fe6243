package world

import "testing"

func TestCreateAndDeleteTerritory(t *testing.T) {
	w := New(16)
	id := w.CreateTerritory(nil)

	if size, ok := w.GetTerritorySize(id); !ok || size != 0 {
		t.Fatalf("expected new empty territory, got size=%d ok=%v", size, ok)
	}

	w.DeleteTerritory(id)
	if _, ok := w.GetTerritorySize(id); ok {
		t.Fatalf("expected territory to be gone after delete")
	}
}

func TestAddCoordsSkipsAlreadyOccupied(t *testing.T) {
	w := New(16)
	a := w.CreateTerritory(nil)
	b := w.CreateTerritory(nil)

	if !w.AddCoordsToTerritory(a, []int32{0, 0, 1, 0}) {
		t.Fatalf("expected add to succeed")
	}
	// (0,0) already belongs to a; b must not acquire it (invariant W1)
	w.AddCoordsToTerritory(b, []int32{0, 0, 2, 0})

	sizeA, _ := w.GetTerritorySize(a)
	sizeB, _ := w.GetTerritorySize(b)
	if sizeA != 2 {
		t.Fatalf("expected territory a to keep its 2 chunks, got %d", sizeA)
	}
	if sizeB != 1 {
		t.Fatalf("expected territory b to only acquire the unoccupied chunk, got %d", sizeB)
	}
}

func TestAddCoordsUnknownTerritory(t *testing.T) {
	w := New(16)
	if w.AddCoordsToTerritory(999, []int32{0, 0}) {
		t.Fatalf("expected false for unknown territory id")
	}
}

func TestAddCircleStrictRadius(t *testing.T) {
	w := New(16)
	id := w.CreateTerritory(nil)

	if !w.AddCircleToTerritory(id, 0, 0, 2) {
		t.Fatalf("expected circle add to succeed")
	}
	size, _ := w.GetTerritorySize(id)
	// radius 2 circle (strict <) over integer grid: excludes (2,0)/(0,2)
	// etc since hypot(2,0) == 2 is not < 2
	if size == 0 {
		t.Fatalf("expected non-empty circle")
	}

	// (2, 0) has distance exactly 2, must be excluded
	w2 := New(16)
	id2 := w2.CreateTerritory(nil)
	w2.AddCircleToTerritory(id2, 0, 0, 2)
	buf := w2.GetTerritoryChunksBuffer(id2)
	for i := 0; i+1 < len(buf); i += 2 {
		if buf[i] == 2 && buf[i+1] == 0 {
			t.Fatalf("point exactly at radius should be excluded by strict < test")
		}
	}
}

func TestAddCircleZeroRadiusRejected(t *testing.T) {
	w := New(16)
	id := w.CreateTerritory(nil)
	if w.AddCircleToTerritory(id, 0, 0, 0) {
		t.Fatalf("expected false for zero radius")
	}
}

func TestMergeTerritories(t *testing.T) {
	w := New(16)
	a := w.CreateTerritory(nil)
	b := w.CreateTerritory(nil)
	w.AddCoordsToTerritory(a, []int32{0, 0})
	w.AddCoordsToTerritory(b, []int32{1, 0})

	mergedID, ok := w.MergeTerritories([]uint32{a, b})
	if !ok || mergedID != a {
		t.Fatalf("expected merge to succeed into first id %d, got %d ok=%v", a, mergedID, ok)
	}

	if _, ok := w.GetTerritorySize(b); ok {
		t.Fatalf("expected second territory to no longer exist after merge")
	}
	size, _ := w.GetTerritorySize(a)
	if size != 2 {
		t.Fatalf("expected merged territory to have both chunks, got %d", size)
	}
}

func TestMergeTerritoriesUnknownIDFails(t *testing.T) {
	w := New(16)
	a := w.CreateTerritory(nil)
	if _, ok := w.MergeTerritories([]uint32{a, 999}); ok {
		t.Fatalf("expected merge to fail when a named territory does not exist")
	}
	if _, ok := w.GetTerritorySize(a); !ok {
		t.Fatalf("territory a should be untouched after a failed merge")
	}
}

func TestCalculateNeighborsAndColoring(t *testing.T) {
	w := New(16)
	a := w.CreateTerritory(nil)
	b := w.CreateTerritory(nil)
	w.AddCoordsToTerritory(a, []int32{0, 0})
	w.AddCoordsToTerritory(b, []int32{1, 0})

	w.CalculateNeighbors()

	na := w.GetTerritoryNeighbors(a)
	if len(na) != 1 || na[0] != b {
		t.Fatalf("expected a's only neighbor to be b, got %v", na)
	}

	edgeA, _ := w.GetTerritoryIsEdge(a)
	if !edgeA {
		t.Fatalf("expected territory a to be at the edge (surrounded mostly by empty space)")
	}

	if err := w.GenerateColors(); err != nil {
		t.Fatalf("unexpected coloring error: %v", err)
	}
	ca, _ := w.GetTerritoryColor(a)
	cb, _ := w.GetTerritoryColor(b)
	if ca == cb {
		t.Fatalf("adjacent territories must not share a color, both got %d", ca)
	}
}

func TestGetTerritoriesInAABB(t *testing.T) {
	w := New(16)
	a := w.CreateTerritory(nil)
	b := w.CreateTerritory(nil)
	w.AddCoordsToTerritory(a, []int32{0, 0})
	w.AddCoordsToTerritory(b, []int32{100, 100})

	ids := w.GetTerritoriesInAABB(-5, -5, 5, 5)
	if len(ids) != 1 || ids[0] != a {
		t.Fatalf("expected only territory a in range, got %v", ids)
	}
}
