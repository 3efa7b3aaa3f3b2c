package expression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCoOccurrence(t *testing.T) {
	t.Run("DisjointGenes", func(t *testing.T) {
		// Gene 0 only in cell 0, gene 1 only in cell 1: perfect separation.
		cm := mat.NewDense(2, 2, []float64{
			2, 0,
			0, 3,
		})
		p, zeroCols := CoOccurrence(cm, []float64{2, 3})
		require.NotNil(t, p)
		assert.Zero(t, zeroCols)

		assert.InDelta(t, 1.0, p.At(0, 0), 1e-12)
		assert.InDelta(t, 0.0, p.At(1, 0), 1e-12)
		assert.InDelta(t, 0.0, p.At(0, 1), 1e-12)
		assert.InDelta(t, 1.0, p.At(1, 1), 1e-12)
	})

	t.Run("UniformMixture", func(t *testing.T) {
		cm := mat.NewDense(2, 2, []float64{
			1, 1,
			1, 1,
		})
		p, zeroCols := CoOccurrence(cm, []float64{1, 1})
		assert.Zero(t, zeroCols)
		for i := 0; i < 2; i++ {
			for k := 0; k < 2; k++ {
				assert.InDelta(t, 0.5, p.At(i, k), 1e-12)
			}
		}
	})

	t.Run("WellFormed", func(t *testing.T) {
		cm := mat.NewDense(3, 4, []float64{
			5, 0, 1, 2,
			1, 3, 0, 2,
			0, 1, 1, 0,
		})
		p, _ := CoOccurrence(cm, []float64{6, 4, 2, 4})
		for i := 0; i < 3; i++ {
			for k := 0; k < 3; k++ {
				v := p.At(i, k)
				assert.False(t, math.IsNaN(v))
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 1.0+1e-12)
			}
		}
	})

	t.Run("ZeroMassTranscript", func(t *testing.T) {
		// Gene 1 never observed: its column must be all-zero, not NaN.
		cm := mat.NewDense(2, 1, []float64{
			1,
			0,
		})
		p, zeroCols := CoOccurrence(cm, []float64{1})
		assert.Equal(t, 1, zeroCols)
		assert.InDelta(t, 1.0, p.At(0, 0), 1e-12)
		assert.Zero(t, p.At(0, 1))
		assert.Zero(t, p.At(1, 1))
	})

	t.Run("AllZeroTotals", func(t *testing.T) {
		cm := mat.NewDense(2, 2, []float64{
			1, 0,
			0, 1,
		})
		p, zeroCols := CoOccurrence(cm, []float64{0, 0})
		assert.Equal(t, 2, zeroCols)
		assert.True(t, mat.Equal(p, mat.NewDense(2, 2, nil)))
	})
}
