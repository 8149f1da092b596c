// Package zipmin implements a coarse-to-fine byte reducer: a fragment
// phase removes whole chunks of the configuration at a shrinking
// granularity, alternating with a trim phase that drops the fragments'
// deficit one element at a time off the end of what remains.
package zipmin
