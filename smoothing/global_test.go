package smoothing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayesseg/priorsmooth/component"
)

func TestGlobalShape(t *testing.T) {
	t.Run("CentralBandMedian", func(t *testing.T) {
		// Range 0..100, threshold 1: the band [1, 99] excludes both extremes
		// and the median is taken over the three central components.
		ds := []*component.Dataset{
			{Components: []*component.Component{
				{NSamples: 0, ShapeEigenValues: []float64{1000, 1000}},
				{NSamples: 50, ShapeEigenValues: []float64{1, 10}},
				{NSamples: 55, ShapeEigenValues: []float64{2, 30}},
			}},
			{Components: []*component.Component{
				{NSamples: 60, ShapeEigenValues: []float64{3, 20}},
				{NSamples: 100, ShapeEigenValues: []float64{-500, -500}},
			}},
		}

		got := GlobalShape(ds, nil)
		require.Len(t, got, 2)
		assert.InDelta(t, 2.0, got[0], 1e-12)
		assert.InDelta(t, 20.0, got[1], 1e-12)
	})

	t.Run("UniformCountsKeepEverything", func(t *testing.T) {
		// All counts equal: threshold is zero and the band keeps the pool.
		ds := []*component.Dataset{
			{Components: []*component.Component{
				{NSamples: 7, ShapeEigenValues: []float64{1}},
				{NSamples: 7, ShapeEigenValues: []float64{5}},
				{NSamples: 7, ShapeEigenValues: []float64{3}},
			}},
		}
		got := GlobalShape(ds, nil)
		require.Len(t, got, 1)
		assert.InDelta(t, 3.0, got[0], 1e-12)
	})

	t.Run("NoComponents", func(t *testing.T) {
		assert.Nil(t, GlobalShape([]*component.Dataset{{}}, nil))
		assert.Nil(t, GlobalShape(nil, nil))
	})
}
