package priorsmooth

import (
	"context"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/bayesseg/priorsmooth/component"
	"github.com/bayesseg/priorsmooth/expression"
	"github.com/bayesseg/priorsmooth/neighbors"
	"github.com/bayesseg/priorsmooth/smoothing"
)

// UpdatePriors runs one prior-adaptation pass over the datasets in the batch.
//
// The pass builds the gene x cell expression matrix over non-empty components,
// optionally smooths gene-count and shape priors across the expression
// nearest-neighbor graph, always recomputes the robust global shape prior and
// the gene co-occurrence table, and finally commits all new values. All reads
// complete before the first write, so the calling sampling loop never observes
// a partially updated state.
//
// Empty components are excluded from the expression matrix and neighbor graph
// but remain eligible for the global shape-prior bootstrap.
func UpdatePriors(ctx context.Context, datasets []*component.Dataset, optFns ...func(o *Options)) error {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if len(datasets) == 0 {
		return ErrNoDatasets
	}
	logger := opts.Logger
	if logger == nil {
		logger = NoopLogger()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateShapes(datasets); err != nil {
		return err
	}

	var filtered []*component.Component
	total := 0
	for _, d := range datasets {
		total += len(d.Components)
		for _, c := range d.Components {
			if !c.Empty() {
				filtered = append(filtered, c)
			}
		}
	}

	vocab := component.VocabularySize(datasets)
	logger.DebugContext(ctx, "prior adaptation pass started",
		"datasets", len(datasets),
		"components", total,
		"non_empty", len(filtered),
		"vocabulary", vocab,
	)

	// Compute phase: everything lands in staging values first.
	var (
		genePriors  [][]float64
		shapePriors [][]float64
		cooc        *mat.Dense
	)
	if len(filtered) > 0 && vocab > 0 {
		counts := expression.Counts(filtered, vocab)
		molecules := make([]int, len(filtered))
		totals := make([]float64, len(filtered))
		for i, c := range filtered {
			molecules[i] = c.NSamples
			totals[i] = float64(c.NSamples)
		}

		if opts.UseCellTypeSizePrior || opts.SmoothExpression {
			assignment, err := neighbors.Build(ctx, counts, molecules, func(o *neighbors.Options) {
				o.K = opts.KNeighbors
				o.MinMolecules = opts.MinMoleculesPerCell
				o.NPrinComps = opts.NPrinComps
				o.Workers = opts.Workers
				o.Logger = logger.Logger
			})
			if err != nil {
				return fmt.Errorf("priorsmooth: neighbor graph: %w", err)
			}
			if opts.UseCellTypeSizePrior {
				shapePriors = smoothing.TrimmedMeanShapes(assignment, filtered, opts.TrimFraction)
			}
			if opts.SmoothExpression {
				genePriors = smoothing.GeneCounts(assignment, filtered, vocab)
			}
		}

		var zeroCols int
		cooc, zeroCols = expression.CoOccurrence(counts, totals)
		if zeroCols > 0 {
			logger.WarnContext(ctx, "transcript types with zero posterior mass, emitting zero co-occurrence columns",
				"columns", zeroCols,
			)
		}
	} else {
		logger.WarnContext(ctx, "no non-empty components, leaving co-occurrence table untouched")
	}

	globalPrior := smoothing.GlobalShape(datasets, logger.Logger)
	setIndividual := !opts.UseCellTypeSizePrior && opts.UseGlobalSizePrior

	// Commit phase: single writer, no reads below this point.
	for i, c := range filtered {
		if genePriors != nil {
			c.GeneCountPrior = genePriors[i]
		}
		if shapePriors != nil && shapePriors[i] != nil {
			c.ShapePrior = shapePriors[i]
		}
	}
	for _, d := range datasets {
		if cooc != nil {
			// Identical across datasets; copied so later dataset-local
			// mutation cannot alias the others.
			d.GeneProbsGivenTranscript = mat.DenseCopyOf(cooc)
		}
		if globalPrior == nil {
			continue
		}
		d.DefaultShapePrior = slices.Clone(globalPrior)
		for _, c := range d.Components {
			if setIndividual || c.Empty() {
				c.ShapePrior = slices.Clone(globalPrior)
			}
		}
	}

	logger.DebugContext(ctx, "prior adaptation pass committed",
		"smoothed_expression", genePriors != nil,
		"smoothed_shapes", shapePriors != nil,
		"global_overwrite", setIndividual,
	)
	return nil
}

// validateShapes checks that every component carries a shape vector of the
// same length. Shape summaries are fixed-length by contract; a mismatch is an
// integration bug, not a degradable input condition.
func validateShapes(datasets []*component.Dataset) error {
	expected := -1
	for _, d := range datasets {
		for _, c := range d.Components {
			if expected == -1 {
				expected = len(c.ShapeEigenValues)
				continue
			}
			if len(c.ShapeEigenValues) != expected {
				return &ErrShapeLengthMismatch{Expected: expected, Actual: len(c.ShapeEigenValues)}
			}
		}
	}
	return nil
}
