package neighbors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/bayesseg/priorsmooth/expression"
)

// ErrInvalidK is returned when a non-positive neighbor count is requested.
var ErrInvalidK = errors.New("neighbors: k must be positive")

// ErrNoReference is returned when no component qualifies as a reference even
// after relaxing the molecule threshold to 1, i.e. every component is empty.
var ErrNoReference = errors.New("neighbors: no reference components with any molecules")

// ErrCountMismatch is a named error type for a molecule-count slice that does
// not line up with the expression matrix columns.
type ErrCountMismatch struct {
	Cells     int // Columns in the expression matrix
	Molecules int // Entries in the molecule-count slice
}

// Error returns the error message for the count mismatch.
func (e *ErrCountMismatch) Error() string {
	return fmt.Sprintf("neighbors: %d molecule counts for %d cells", e.Molecules, e.Cells)
}

// Options contains configuration options for the neighbor graph build.
type Options struct {
	// K is the number of nearest reference neighbors requested per component.
	// It is reduced automatically when fewer reference components exist.
	K int

	// MinMolecules is the molecule threshold for the reference set. If no
	// component qualifies, the threshold relaxes to 1 and the build retries.
	MinMolecules int

	// NPrinComps selects the dimensionality of the PCA projection used as the
	// distance space. 0 disables dimensionality reduction.
	NPrinComps int

	// Workers bounds the number of concurrent neighbor queries.
	// If 0, runtime.GOMAXPROCS(0) is used.
	Workers int

	// Logger receives structured warnings on degraded fallbacks.
	// If nil, warnings are discarded.
	Logger *slog.Logger
}

// DefaultOptions contains the default configuration options for the build.
var DefaultOptions = Options{
	K:            20,
	MinMolecules: 10,
}

// Build returns, for every column of counts, the indices of its up-to-K
// nearest reference components in expression space.
//
// counts is the raw g x c count matrix (columns are components); it is
// column-normalized internally. molecules[c] is the molecule count of
// component c and drives reference-set selection. The returned slice has one
// entry per component, each of length min(K, reference set size), ordered by
// ascending distance with deterministic tie-breaking.
func Build(ctx context.Context, counts *mat.Dense, molecules []int, optFns ...func(o *Options)) ([][]int, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.K <= 0 {
		return nil, ErrInvalidK
	}
	if counts == nil {
		return nil, ErrNoReference
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	_, cells := counts.Dims()
	if len(molecules) != cells {
		return nil, &ErrCountMismatch{Cells: cells, Molecules: len(molecules)}
	}

	coords := coordinates(counts, cells, &opts, logger)

	ref := referenceSet(molecules, opts.MinMolecules)
	if ref.IsEmpty() {
		logger.Warn("no reference components above molecule threshold, relaxing to 1",
			"min_molecules", opts.MinMolecules,
		)
		ref = referenceSet(molecules, 1)
		if ref.IsEmpty() {
			return nil, ErrNoReference
		}
	}

	k := opts.K
	if card := int(ref.GetCardinality()); k > card {
		logger.Warn("fewer reference components than requested neighbors, reducing k",
			"k", opts.K,
			"reference_size", card,
		)
		k = card
	}

	refIDs := ref.ToArray()
	refVecs := make([][]float64, len(refIDs))
	for i, id := range refIDs {
		refVecs[i] = coords.RawRowView(int(id))
	}
	_, dim := coords.Dims()
	idx := newFlatIndex(refVecs, dim)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Queries are read-only against the shared index; results land in
	// per-component slots, so no synchronization beyond the final Wait.
	out := make([][]int, cells)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for c := 0; c < cells; c++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			found := idx.search(coords.RawRowView(c), k)
			ids := make([]int, len(found))
			for j, cand := range found {
				ids[j] = int(refIDs[cand.ID])
			}
			out[c] = ids
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// coordinates turns the count matrix into per-component row vectors in the
// distance space: column-normalized profiles, PCA-reduced when requested and
// supported by the data.
func coordinates(counts *mat.Dense, cells int, opts *Options, logger *slog.Logger) *mat.Dense {
	norm := expression.NormalizeColumns(counts)
	obs := mat.DenseCopyOf(norm.T())

	if opts.NPrinComps <= 0 {
		return obs
	}
	if cells < 2 {
		logger.Warn("too few components for PCA, using unreduced profiles",
			"components", cells,
		)
		return obs
	}
	proj, dims, err := reduce(obs, opts.NPrinComps)
	if err != nil {
		logger.Warn("PCA failed, using unreduced profiles", "error", err)
		return obs
	}
	if dims < opts.NPrinComps {
		logger.Warn("PCA dimensions clamped by data shape",
			"requested", opts.NPrinComps,
			"used", dims,
		)
	}
	return proj
}

func referenceSet(molecules []int, threshold int) *roaring.Bitmap {
	ref := roaring.New()
	for c, n := range molecules {
		if n >= threshold {
			ref.Add(uint32(c))
		}
	}
	return ref
}
