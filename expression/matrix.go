package expression

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/bayesseg/priorsmooth/component"
)

// Counts builds the g x c raw count matrix whose column c is component c's
// composition counts, zero-padded to the vocabulary size g.
// It is a pure function of its inputs. Returns nil when there is nothing to
// build (no components or empty vocabulary).
func Counts(comps []*component.Component, g int) *mat.Dense {
	if g <= 0 || len(comps) == 0 {
		return nil
	}
	cm := mat.NewDense(g, len(comps), nil)
	for c, comp := range comps {
		n := min(len(comp.CompositionCounts), g)
		for i := 0; i < n; i++ {
			cm.Set(i, c, comp.CompositionCounts[i])
		}
	}
	return cm
}

// NormalizeColumns returns a copy of m with every column scaled to sum to 1.
// An all-zero column stays all-zero rather than turning into NaNs.
func NormalizeColumns(m *mat.Dense) *mat.Dense {
	if m == nil {
		return nil
	}
	rows, cols := m.Dims()
	out := mat.DenseCopyOf(m)
	col := make([]float64, rows)
	for c := 0; c < cols; c++ {
		mat.Col(col, c, m)
		sum := floats.Sum(col)
		if sum == 0 {
			continue
		}
		for i := 0; i < rows; i++ {
			out.Set(i, c, col[i]/sum)
		}
	}
	return out
}
