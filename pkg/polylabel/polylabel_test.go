package polylabel

import (
	"math"
	"testing"

	"territoria/pkg/geo"
)

func square(min, max float64) []geo.Point {
	return []geo.Point{
		{X: min, Y: min},
		{X: max, Y: min},
		{X: max, Y: max},
		{X: min, Y: max},
		{X: min, Y: min},
	}
}

func TestGetCoreSquare(t *testing.T) {
	poly := square(0, 10)
	p, err := GetCore(poly, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(p.X-5) > 0.5 || math.Abs(p.Y-5) > 0.5 {
		t.Fatalf("expected pole near center (5,5), got %v", p)
	}
}

func TestGetCoreLShape(t *testing.T) {
	// L-shaped polygon: big square with a notch bitten out of one
	// corner. The pole of inaccessibility must lie inside the polygon,
	// not in the notch.
	poly := []geo.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 5},
		{X: 5, Y: 5},
		{X: 5, Y: 10},
		{X: 0, Y: 10},
		{X: 0, Y: 0},
	}

	p, err := GetCore(poly, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !polygonContains(poly, p) {
		t.Fatalf("pole %v must lie inside the polygon", p)
	}
}

func TestGetCoreDegenerate(t *testing.T) {
	poly := []geo.Point{{X: 3, Y: 3}, {X: 3, Y: 3}}
	p, err := GetCore(poly, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.X != 3 || p.Y != 3 {
		t.Fatalf("degenerate polygon should return its single point, got %v", p)
	}
}
