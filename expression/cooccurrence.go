package expression

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// CoOccurrence estimates the g x g table P where P[i,k] is the probability
// that gene i is present in the same cell as a single observed transcript of
// type k.
//
// cm is the raw (unnormalized) g x c count matrix; totals[c] is the molecule
// count of cell c, used as the empirical prior over cells. For each transcript
// type k the within-cell relative frequency of k is combined with the cell
// prior into a joint over cells, and gene i's conditional presence is
// marginalized over that posterior.
//
// Transcript types with zero posterior mass produce an all-zero column, never
// NaN. The number of such zeroed columns is returned alongside the table so
// callers can surface a warning.
func CoOccurrence(cm *mat.Dense, totals []float64) (*mat.Dense, int) {
	if cm == nil {
		return nil, 0
	}
	g, c := cm.Dims()

	p := mat.NewDense(g, g, nil)
	total := floats.Sum(totals)
	if total == 0 {
		return p, g
	}

	// joint[k,c] = freq(k within c) * prior(c)
	norm := NormalizeColumns(cm)
	joint := mat.NewDense(g, c, nil)
	for j := 0; j < c; j++ {
		prior := totals[j] / total
		for i := 0; i < g; i++ {
			joint.Set(i, j, norm.At(i, j)*prior)
		}
	}

	// num[i,k] = sum_c freq(i within c) * joint[k,c]
	var num mat.Dense
	num.Mul(norm, joint.T())

	zeroCols := 0
	denom := make([]float64, g)
	row := make([]float64, c)
	for k := 0; k < g; k++ {
		mat.Row(row, k, joint)
		denom[k] = floats.Sum(row)
		if denom[k] == 0 {
			zeroCols++
		}
	}
	for k := 0; k < g; k++ {
		if denom[k] == 0 {
			continue // column stays zero
		}
		for i := 0; i < g; i++ {
			p.Set(i, k, num.At(i, k)/denom[k])
		}
	}
	return p, zeroCols
}
