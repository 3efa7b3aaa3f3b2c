package smoothing

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/bayesseg/priorsmooth/component"
)

// centralBandFraction positions the retained molecule-count band relative to
// the observed extremes: components within this fraction of the range from
// either extreme are excluded as outliers.
const centralBandFraction = 0.01

// GlobalShape pools every component's shape eigenvalues across all datasets
// and returns the coordinate-wise median over the components whose molecule
// count lies in the central band
//
//	nMin + 0.01*(nMax-nMin) <= n <= nMax - 0.01*(nMax-nMin)
//
// with both bounds inclusive. When the band retains nothing (possible only
// for pathological count distributions) the median falls back to the full
// pool, with a warning. Returns nil when the datasets hold no components.
func GlobalShape(datasets []*component.Dataset, logger *slog.Logger) []float64 {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var pool []*component.Component
	for _, d := range datasets {
		pool = append(pool, d.Components...)
	}
	if len(pool) == 0 {
		return nil
	}

	nMin, nMax := pool[0].NSamples, pool[0].NSamples
	for _, c := range pool[1:] {
		nMin = min(nMin, c.NSamples)
		nMax = max(nMax, c.NSamples)
	}
	threshold := centralBandFraction * float64(nMax-nMin)
	lo := float64(nMin) + threshold
	hi := float64(nMax) - threshold

	retained := pool[:0:0]
	for _, c := range pool {
		if n := float64(c.NSamples); n >= lo && n <= hi {
			retained = append(retained, c)
		}
	}
	if len(retained) == 0 {
		logger.Warn("central molecule-count band retained no components, using full pool",
			"n_min", nMin,
			"n_max", nMax,
		)
		retained = pool
	}

	dims := len(retained[0].ShapeEigenValues)
	prior := make([]float64, dims)
	vals := make([]float64, len(retained))
	for d := 0; d < dims; d++ {
		for i, c := range retained {
			vals[i] = c.ShapeEigenValues[d]
		}
		slices.Sort(vals)
		prior[d] = stat.Quantile(0.5, stat.Empirical, vals, nil)
	}
	return prior
}
