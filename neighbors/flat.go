package neighbors

import (
	"github.com/bayesseg/priorsmooth/internal/queue"
)

// flatIndex is a brute-force nearest-neighbor index over a fixed set of
// reference vectors. It is immutable after construction, so concurrent
// searches need no synchronization.
type flatIndex struct {
	dim     int
	vectors [][]float64
}

func newFlatIndex(vectors [][]float64, dim int) *flatIndex {
	return &flatIndex{dim: dim, vectors: vectors}
}

// search returns the k nearest reference positions to q, ordered by
// (distance, position) ascending. Self-matches are allowed; the caller decides
// what the positions mean.
func (f *flatIndex) search(q []float64, k int) []queue.Candidate {
	if k > len(f.vectors) {
		k = len(f.vectors)
	}
	top := queue.NewBounded(k)
	for id, vec := range f.vectors {
		top.Push(queue.Candidate{ID: id, Distance: squaredL2(q, vec)})
	}
	return top.Drain()
}

// squaredL2 computes the squared Euclidean distance between two vectors.
// Assumes equal length (caller's responsibility).
func squaredL2(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
