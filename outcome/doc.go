// Package outcome defines the ternary verdict returned by a delta debugging
// oracle.
//
// An Outcome classifies a single Configuration: PASS (does not induce the
// failure), FAIL (induces the failure — the target every reduction
// algorithm drives toward), or UNRESOLVED (the test did not reproduce
// cleanly and must be discarded). UNRESOLVED is treated identically to
// PASS by every algorithm in this module; it exists as a distinct value
// only so an oracle can report "inconclusive" without silently asserting
// correctness.
package outcome
