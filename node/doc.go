// Package node defines the parse-tree abstraction HDD consumes: Node, the
// Parser contract that produces a Node tree over byte offsets, and the
// unit-chain collapse transform HDD applies before reducing.
//
// Concrete parsers (tree-sitter for source code, Kaitai Struct for binary
// formats) are out of scope for this module; it depends only on the
// abstract ability to build a node tree over byte offsets, expressed here
// as the Parser interface. See examples/elfparser and examples/lineparser
// for illustrative, non-core implementations.
package node
