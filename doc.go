// Package deltadebug is a delta debugging toolkit: given an Input and an
// oracle that classifies a subset of it as Pass, Fail, or Unresolved, it
// finds a smaller subset that still reproduces the failure.
//
// Four reduction strategies are provided:
//
//	ddmin/  — Zeller's minimizing delta debugging
//	zipmin/ — a coarse-to-fine byte reducer
//	probdd/ — probabilistic delta debugging via per-index failure probabilities
//	hdd/    — hierarchical delta debugging, lifting any of the above to a parse tree
//
// Supporting packages: outcome/ (the oracle's verdict type), input/ and
// configuration/ (the index-set algebra every algorithm operates over),
// cache/ (oracle-result memoization, flat or tree-pruned), node/ (the
// parse-tree contract hdd consumes), and debugger/ (a driver that times a
// run and tallies oracle outcomes).
//
//	go get github.com/corvid-labs/deltadebug
package deltadebug
