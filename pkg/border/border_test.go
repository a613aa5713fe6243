package border

import (
	"testing"

	"territoria/pkg/geo"
)

func TestGetBorderEmpty(t *testing.T) {
	buf, err := GetBorder(nil, 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buf) != 3 || buf[2] != 0 {
		t.Fatalf("expected [0,0,0]-shaped empty buffer, got %v", buf)
	}
}

func TestGetBorderSingleChunk(t *testing.T) {
	coords := []geo.IPoint{{X: 0, Y: 0}}
	buf, err := GetBorder(coords, 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf[2] != 1 {
		t.Fatalf("expected a single loop for a single chunk, got count=%d (buf=%v)", buf[2], buf)
	}
	// n1 (border point count) should be 1, with a closed 4-point loop
	n1 := buf[3]
	e1 := buf[4]
	if n1 != 1 {
		t.Fatalf("expected 1 border point, got %d", n1)
	}
	if e1 != 5 {
		t.Fatalf("expected a closed 4-sided loop (5 points incl. repeat), got %d", e1)
	}
}

func TestGetBorderTwoDisjointChunks(t *testing.T) {
	coords := []geo.IPoint{{X: 0, Y: 0}, {X: 10, Y: 10}}
	buf, err := GetBorder(coords, 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf[2] != 2 {
		t.Fatalf("expected 2 disjoint loops, got %d (buf=%v)", buf[2], buf)
	}
}

func TestGetBorderLShape(t *testing.T) {
	coords := []geo.IPoint{
		{X: 0, Y: 0}, {X: 1, Y: 0},
		{X: 0, Y: 1},
	}
	buf, err := GetBorder(coords, 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf[2] != 1 {
		t.Fatalf("expected a single connected loop for an L-shape, got %d", buf[2])
	}
	n1 := buf[3]
	e1 := buf[4]
	if n1 != 3 {
		t.Fatalf("expected all 3 chunks on the border, got %d", n1)
	}
	if e1 != 7 {
		t.Fatalf("expected a single 7-vertex loop for the L-shape, got %d", e1)
	}
}

func TestGetNeighboringPoints(t *testing.T) {
	coords := []geo.IPoint{{X: 0, Y: 0}}
	neighbors := GetNeighboringPoints(coords)
	want := []geo.IPoint{{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1}}
	if len(neighbors) != len(want) {
		t.Fatalf("expected %d neighbors, got %d", len(want), len(neighbors))
	}
	for _, p := range want {
		if _, ok := neighbors[p]; !ok {
			t.Fatalf("expected neighbor %v in %v", p, neighbors)
		}
	}
}
