// Package priorsmooth implements the prior-adaptation step of an iterative
// Bayesian mixture-model segmentation of spatial omics data.
//
// Between sampling iterations, each component's priors are refreshed by
// borrowing information from components with similar expression profiles:
// gene-count priors are summed over a k-nearest-neighbor graph in expression
// space, shape priors are trimmed-mean smoothed over the same graph, and a
// robust global shape prior is computed across all datasets as a default and
// bootstrap for empty components. The gene x gene co-occurrence table is
// recomputed every pass and broadcast to all datasets.
//
// # Quick Start
//
//	ctx := context.Background()
//	err := priorsmooth.UpdatePriors(ctx, datasets, func(o *priorsmooth.Options) {
//	    o.SmoothExpression = true
//	    o.UseCellTypeSizePrior = true
//	    o.MinMoleculesPerCell = 30
//	    o.NPrinComps = 25
//	})
//
// The pass mutates only component priors and dataset-level defaults; all
// sufficient statistics are read-only inputs. Degenerate inputs (no reference
// cells, zero-mass transcripts, short count vectors) degrade to documented
// fallbacks with a warning instead of failing the sampling loop.
package priorsmooth
