package smoothing

import (
	"gonum.org/v1/gonum/floats"

	"github.com/bayesseg/priorsmooth/component"
)

// GeneCounts returns the new gene-count prior for every component: the
// element-wise sum of its neighbors' composition counts, zero-padded to the
// vocabulary size g. The update is stateless; previous priors do not
// contribute.
func GeneCounts(assignment [][]int, comps []*component.Component, g int) [][]float64 {
	out := make([][]float64, len(assignment))
	for i, neighbors := range assignment {
		prior := make([]float64, g)
		for _, j := range neighbors {
			floats.Add(prior, comps[j].PaddedCounts(g))
		}
		out[i] = prior
	}
	return out
}
