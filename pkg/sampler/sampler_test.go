package sampler

import "testing"

func TestFromWeightsRejectsEmpty(t *testing.T) {
	if _, err := FromWeights(nil, nil); err != ErrNoWeights {
		t.Fatalf("expected ErrNoWeights, got %v", err)
	}
}

func TestSampleDistributionSkewsTowardHeavierWeight(t *testing.T) {
	seed := uint64(42)
	s, err := FromWeights(&seed, []float64{1, 99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	counts := [2]int{}
	const trials = 5000
	for i := 0; i < trials; i++ {
		counts[s.Sample()]++
	}

	if counts[1] <= counts[0] {
		t.Fatalf("expected index 1 (weight 99) to dominate index 0 (weight 1), got %v", counts)
	}
	if float64(counts[1])/float64(trials) < 0.9 {
		t.Fatalf("expected heavy index to be sampled >90%% of the time, got ratio %v", counts)
	}
}

func TestSampleOnlyReturnsValidIndices(t *testing.T) {
	s, err := FromWeights(nil, []float64{5, 1, 1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 200; i++ {
		idx := s.Sample()
		if idx < 0 || idx >= 4 {
			t.Fatalf("sample index %d out of range", idx)
		}
	}
}
