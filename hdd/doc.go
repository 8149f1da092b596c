// Package hdd implements Hierarchical Delta Debugging: it lifts any flat
// Algorithm to operate over a parse tree, reducing sibling sets level by
// level instead of over raw byte offsets, so that reduction never breaks
// the input's grammar-level structure.
//
// The inner algorithm never sees bytes: at each node it is run over an
// abstract Input of child positions, and a lifted oracle flattens
// whichever positions it retains back to the underlying Input before
// calling the caller's oracle. This is the index-based variant of HDD's
// prune criterion: a child survives a node's reduction round iff its
// position is present in the inner algorithm's result, not because its
// byte content happens to match some other survivor's.
package hdd
