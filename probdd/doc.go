// Package probdd implements Probabilistic Delta Debugging: a per-index
// failure-retention probability table drives which elements are sampled
// for removal each round, reinforced toward 1.0 (keep) or 0.0 (drop)
// based on whether the sampled removal still reproduces the failure.
package probdd
