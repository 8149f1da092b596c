// Package input holds the immutable backing sequence a Configuration
// selects indices into.
//
// An Input[E] is a fixed, ordered sequence of elements of type E (typically
// bytes, but the model is generic over any comparable element type). Two
// Inputs are distinct identities even when their data is equal — a
// Configuration is always bound to exactly one *Input by pointer identity,
// never by value equality, so that combining Configurations built over
// unrelated Inputs can be rejected deterministically.
package input
