package coloring

import "testing"

func TestColorK4NeedsFourColors(t *testing.T) {
	// complete graph on 4 vertices: every vertex touches every other
	neighbors := map[uint32][]uint32{
		1: {2, 3, 4},
		2: {1, 3, 4},
		3: {1, 2, 4},
		4: {1, 2, 3},
	}

	colors, err := Color(neighbors)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[uint8]bool)
	for _, c := range colors {
		seen[c] = true
	}
	if len(seen) != 4 {
		t.Fatalf("K4 should use exactly 4 distinct colors, got %d (%v)", len(seen), colors)
	}

	for id, ns := range neighbors {
		for _, n := range ns {
			if colors[id] == colors[n] {
				t.Fatalf("adjacent territories %d and %d share color %d", id, n, colors[id])
			}
		}
	}
}

func TestColorRespectsAdjacency(t *testing.T) {
	// a 7-vertex cycle: a minimal planar ring, colorable with 2-3 colors
	neighbors := map[uint32][]uint32{
		1: {2, 7}, 2: {1, 3}, 3: {2, 4}, 4: {3, 5},
		5: {4, 6}, 6: {5, 7}, 7: {6, 1},
	}

	colors, err := Color(neighbors)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for id, ns := range neighbors {
		for _, n := range ns {
			if colors[id] == colors[n] {
				t.Fatalf("adjacent territories %d and %d share color %d", id, n, colors[id])
			}
		}
	}

	for id, c := range colors {
		if c >= maxColors {
			t.Fatalf("territory %d assigned out-of-range color %d", id, c)
		}
	}
}

func TestColorIsolatedVertex(t *testing.T) {
	neighbors := map[uint32][]uint32{1: {}}
	colors, err := Color(neighbors)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if colors[1] != 0 {
		t.Fatalf("isolated vertex should get color 0, got %d", colors[1])
	}
}
