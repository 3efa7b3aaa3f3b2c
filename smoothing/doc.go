// Package smoothing computes refreshed component priors from the neighbor
// assignment: neighbor-summed gene-count priors, per-dimension trimmed-mean
// shape priors, and the robust global shape prior shared across datasets.
//
// All functions are pure: they return the new prior values and leave the
// components untouched, so the caller can commit a fully computed pass
// atomically.
package smoothing
