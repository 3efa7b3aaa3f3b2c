// Package component defines the entities shared between the sampling loop and
// the prior-adaptation pass.
//
// # Entities
//
//   - Component: one inferred spatial cluster ("cell") with its expression
//     counts, shape summary, and mutable priors
//   - Dataset: one replicate / field of view owning an ordered component list
//     plus dataset-level model state (co-occurrence table, default shape prior)
//
// The sampling loop owns component lifecycle; the prior-adaptation pass reads
// counts and shape statistics and mutates only the prior fields.
package component
