package smoothing

import (
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/bayesseg/priorsmooth/component"
)

// DefaultTrimFraction is the fraction trimmed from each tail when averaging
// neighbor shape eigenvalues.
const DefaultTrimFraction = 0.1

// TrimmedMeanShapes returns the new shape prior for every component: the
// per-eigen-dimension trimmed mean over its neighbors' shape eigenvalues,
// with trimFrac of the values discarded from each tail. Components with an
// empty neighbor list get a nil entry, which callers must leave uncommitted.
func TrimmedMeanShapes(assignment [][]int, comps []*component.Component, trimFrac float64) [][]float64 {
	out := make([][]float64, len(assignment))
	for i, neighbors := range assignment {
		if len(neighbors) == 0 {
			continue
		}
		dims := len(comps[neighbors[0]].ShapeEigenValues)
		prior := make([]float64, dims)
		vals := make([]float64, len(neighbors))
		for d := 0; d < dims; d++ {
			for j, n := range neighbors {
				vals[j] = comps[n].ShapeEigenValues[d]
			}
			prior[d] = trimmedMean(vals, trimFrac)
		}
		out[i] = prior
	}
	return out
}

// trimmedMean sorts vals in place and averages the central slice after
// dropping floor(len*frac) entries from each tail. The trim shrinks as needed
// so at least one value always remains.
func trimmedMean(vals []float64, frac float64) float64 {
	slices.Sort(vals)
	m := len(vals)
	t := int(float64(m) * frac)
	if m-2*t < 1 {
		t = (m - 1) / 2
	}
	return stat.Mean(vals[t:m-t], nil)
}
