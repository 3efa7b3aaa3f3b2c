package smoothing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayesseg/priorsmooth/component"
)

func TestGeneCounts(t *testing.T) {
	comps := []*component.Component{
		{CompositionCounts: []float64{1, 0, 2}},
		{CompositionCounts: []float64{0, 5}},
		{CompositionCounts: []float64{3, 1, 0, 4}},
	}
	assignment := [][]int{
		{1, 2},
		{0},
		{},
	}

	got := GeneCounts(assignment, comps, 4)
	require.Len(t, got, 3)

	// Component 0: counts of 1 and 2, zero-padded to vocabulary size 4.
	assert.Equal(t, []float64{3, 6, 0, 4}, got[0])
	// Component 1: counts of 0 only.
	assert.Equal(t, []float64{1, 0, 2, 0}, got[1])
	// Empty neighbor set sums to zero.
	assert.Equal(t, []float64{0, 0, 0, 0}, got[2])
}

func TestGeneCounts_Stateless(t *testing.T) {
	comps := []*component.Component{
		{CompositionCounts: []float64{2, 2}, GeneCountPrior: []float64{99, 99}},
		{CompositionCounts: []float64{1, 1}},
	}
	got := GeneCounts([][]int{{1}, {0}}, comps, 2)

	// Previous priors contribute nothing.
	assert.Equal(t, []float64{1, 1}, got[0])
	assert.Equal(t, []float64{2, 2}, got[1])
}
