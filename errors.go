package priorsmooth

import (
	"errors"
	"fmt"
)

// ErrNoDatasets is returned when UpdatePriors is invoked without any dataset.
var ErrNoDatasets = errors.New("priorsmooth: no datasets")

// ErrInvalidTrimFraction is returned for a trim fraction outside [0, 0.5).
var ErrInvalidTrimFraction = errors.New("priorsmooth: trim fraction must be in [0, 0.5)")

// ErrInvalidNeighborCount is returned for a non-positive neighbor count.
var ErrInvalidNeighborCount = errors.New("priorsmooth: neighbor count must be positive")

// ErrInvalidMinMolecules is returned for a non-positive reference threshold.
var ErrInvalidMinMolecules = errors.New("priorsmooth: min molecules per cell must be positive")

// ErrNegativePrinComps is returned for a negative PCA dimension count.
var ErrNegativePrinComps = errors.New("priorsmooth: principal component count must not be negative")

// ErrShapeLengthMismatch is a named error type for components whose shape
// summaries disagree in length. Shape vectors are fixed-length by contract.
type ErrShapeLengthMismatch struct {
	Expected int // Length of the first component's shape vector
	Actual   int // Offending length
}

// Error returns the error message for the shape length mismatch.
func (e *ErrShapeLengthMismatch) Error() string {
	return fmt.Sprintf("priorsmooth: shape vector length mismatch: expected %d, got %d", e.Expected, e.Actual)
}
