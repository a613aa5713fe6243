// Package sampler implements a weighted discrete-distribution index
// sampler using Vose's alias method, the out-of-core "Sampler"
// collaborator external interfaces may use alongside the map engine.
//
// https://www.keithschwarz.com/darts-dice-coins/
package sampler

import (
	"errors"
	"math/rand/v2"
)

// ErrNoWeights is returned when constructing a sampler from an empty
// weight set.
var ErrNoWeights = errors.New("sampler: weights must be non-empty")

// IndexSampler draws indices from a fixed discrete distribution
// defined by relative weights, normalized internally by their sum.
type IndexSampler struct {
	rng    *rand.Rand
	prob   []float64
	alias  []int
}

// FromWeights builds an IndexSampler from relative weights. If seed
// is non-nil, the sampler's draws are reproducible.
func FromWeights(seed *uint64, weights []float64) (*IndexSampler, error) {
	if len(weights) == 0 {
		return nil, ErrNoWeights
	}

	var src rand.Source
	if seed != nil {
		src = rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15)
	} else {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	prob, alias := buildAliasTable(weights)

	return &IndexSampler{
		rng:   rand.New(src),
		prob:  prob,
		alias: alias,
	}, nil
}

// Sample draws a single index according to the configured weights.
func (s *IndexSampler) Sample() int {
	n := len(s.prob)
	i := s.rng.IntN(n)
	if s.rng.Float64() < s.prob[i] {
		return i
	}
	return s.alias[i]
}

// buildAliasTable constructs Vose's alias method tables: prob[i] is
// the probability of staying on outcome i when its slot is selected,
// alias[i] is the outcome to fall back to otherwise.
func buildAliasTable(weights []float64) ([]float64, []int) {
	n := len(weights)
	var sum float64
	for _, w := range weights {
		sum += w
	}

	scaled := make([]float64, n)
	for i, w := range weights {
		scaled[i] = w * float64(n) / sum
	}

	prob := make([]float64, n)
	alias := make([]int, n)

	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, p := range scaled {
		if p < 1.0 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		l := small[len(small)-1]
		small = small[:len(small)-1]
		g := large[len(large)-1]
		large = large[:len(large)-1]

		prob[l] = scaled[l]
		alias[l] = g

		scaled[g] = scaled[g] + scaled[l] - 1.0
		if scaled[g] < 1.0 {
			small = append(small, g)
		} else {
			large = append(large, g)
		}
	}

	for len(large) > 0 {
		g := large[len(large)-1]
		large = large[:len(large)-1]
		prob[g] = 1.0
	}
	for len(small) > 0 {
		l := small[len(small)-1]
		small = small[:len(small)-1]
		prob[l] = 1.0
	}

	return prob, alias
}
