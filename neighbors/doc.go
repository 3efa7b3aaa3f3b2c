// Package neighbors builds the per-component k-nearest-neighbor assignment in
// expression space.
//
// Components with enough assigned molecules form the reference set; every
// component (reference or not) is then matched to its k nearest reference
// components by squared Euclidean distance over column-normalized, optionally
// PCA-reduced expression profiles. Queries run against a shared immutable
// index and are parallelized across components.
package neighbors
