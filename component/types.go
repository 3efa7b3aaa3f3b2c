package component

import (
	"gonum.org/v1/gonum/mat"
)

// Component represents one spatial mixture element ("cell" or background
// cluster).
//
// CompositionCounts and ShapeEigenValues are sufficient statistics produced by
// the sampling loop and are read-only inputs to the prior-adaptation pass.
// GeneCountPrior and ShapePrior are the only fields the pass mutates.
type Component struct {
	// CompositionCounts holds non-negative per-gene molecule counts, indexed
	// by gene identity. It may be shorter than the global vocabulary; missing
	// trailing genes count as zero.
	CompositionCounts []float64

	// GeneCountPrior is the pseudo-count vector biasing the component's
	// expression estimate. Its length always equals the global vocabulary
	// size once a prior-adaptation pass has run.
	GeneCountPrior []float64

	// ShapeEigenValues summarizes the component's spatial spread matrix
	// (eigenvalues of its covariance). Fixed length across all components.
	ShapeEigenValues []float64

	// ShapePrior is the component's current shape prior, same length as
	// ShapeEigenValues.
	ShapePrior []float64

	// NSamples is the number of molecules currently assigned. Zero means the
	// component is empty or newly spawned.
	NSamples int
}

// Empty reports whether the component currently has no assigned molecules.
func (c *Component) Empty() bool { return c.NSamples == 0 }

// PaddedCounts returns the composition counts zero-padded to length g.
// The returned slice is freshly allocated and safe to mutate.
func (c *Component) PaddedCounts(g int) []float64 {
	out := make([]float64, g)
	copy(out, c.CompositionCounts)
	return out
}

// Dataset is one replicate / field of view: an ordered collection of
// components plus dataset-level shared model state.
//
// Every component referenced by a Dataset belongs to exactly that Dataset.
type Dataset struct {
	// Components is the ordered component list for this replicate.
	Components []*Component

	// GeneIDs is the gene-identity column of the molecule table, 0-based.
	// Only the maximum index is consulted here, to size the vocabulary.
	GeneIDs []int

	// GeneProbsGivenTranscript is the gene x gene co-occurrence table
	// P(gene i present | observed transcript of type k). It is overwritten
	// wholesale by each prior-adaptation pass and is identical across all
	// datasets updated together.
	GeneProbsGivenTranscript *mat.Dense

	// DefaultShapePrior is the dataset-level default shape prior used by the
	// sampler when spawning components. Overwritten each pass.
	DefaultShapePrior []float64
}

// MaxGeneIndex returns the largest gene index observed in the dataset's
// molecule table and component counts, or -1 if the dataset is empty.
func (d *Dataset) MaxGeneIndex() int {
	maxID := -1
	for _, id := range d.GeneIDs {
		if id > maxID {
			maxID = id
		}
	}
	for _, c := range d.Components {
		if n := len(c.CompositionCounts); n-1 > maxID {
			maxID = n - 1
		}
	}
	return maxID
}

// VocabularySize returns the gene vocabulary size implied by a batch of
// datasets: one past the maximum gene index observed across all of them.
func VocabularySize(datasets []*Dataset) int {
	maxID := -1
	for _, d := range datasets {
		if id := d.MaxGeneIndex(); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
