package priorsmooth

import (
	"github.com/bayesseg/priorsmooth/smoothing"
)

// Options contains configuration options for a prior-adaptation pass.
type Options struct {
	// UseCellTypeSizePrior applies local KNN shape smoothing: each
	// component's shape prior becomes the trimmed mean of its expression
	// neighbors' shape eigenvalues.
	UseCellTypeSizePrior bool

	// UseGlobalSizePrior controls the global shape prior overwrite rule.
	// The global prior is always computed and installed as every dataset's
	// default; when this flag is set and UseCellTypeSizePrior is not, it
	// additionally overwrites every component's individual shape prior.
	// Otherwise only empty components receive it as a bootstrap value.
	UseGlobalSizePrior bool

	// SmoothExpression applies KNN gene-count smoothing: each component's
	// gene-count prior becomes the sum of its neighbors' composition counts.
	SmoothExpression bool

	// MinMoleculesPerCell is the molecule threshold for the neighbor-query
	// reference set. Relaxed to 1 automatically when nothing qualifies.
	MinMoleculesPerCell int

	// KNeighbors is the number of reference neighbors aggregated per
	// component. Reduced automatically when fewer references exist.
	KNeighbors int

	// NPrinComps selects PCA dimensionality for the neighbor distance space.
	// 0 disables dimensionality reduction.
	NPrinComps int

	// TrimFraction is the per-tail trim used by local shape smoothing.
	// Must be in [0, 0.5).
	TrimFraction float64

	// Workers bounds concurrency of the neighbor queries.
	// If 0, runtime.GOMAXPROCS(0) is used.
	Workers int

	// Logger receives pass progress at Debug and degraded fallbacks at Warn.
	// If nil, logging is disabled.
	Logger *Logger
}

// DefaultOptions contains the default configuration options for a pass.
var DefaultOptions = Options{
	MinMoleculesPerCell: 10,
	KNeighbors:          20,
	TrimFraction:        smoothing.DefaultTrimFraction,
}

// Validate checks the options for values no relaxation policy can repair.
func (o *Options) Validate() error {
	if o.KNeighbors <= 0 {
		return ErrInvalidNeighborCount
	}
	if o.MinMoleculesPerCell <= 0 {
		return ErrInvalidMinMolecules
	}
	if o.NPrinComps < 0 {
		return ErrNegativePrinComps
	}
	if o.TrimFraction < 0 || o.TrimFraction >= 0.5 {
		return ErrInvalidTrimFraction
	}
	return nil
}
