package raster

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/tdewolff/test"
)

func TestSortHitsSmall(t *testing.T) {
	hits := []hit{{3, 1}, {1, -1}, {2, 1}}
	sortHits(hits)
	test.Float(t, hits[0].X, 1)
	test.Float(t, hits[1].X, 2)
	test.Float(t, hits[2].X, 3)
}

func TestSortHitsLarge(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	hits := make([]hit, 200)
	for i := range hits {
		hits[i] = hit{X: r.Float64() * 1000, Winding: 1}
	}
	sortHits(hits)
	test.That(t, sort.SliceIsSorted(hits, func(i, j int) bool { return hits[i].X < hits[j].X }))
}

func TestSortHitsEmpty(t *testing.T) {
	var hits []hit
	sortHits(hits)
	test.T(t, len(hits), 0)
}
