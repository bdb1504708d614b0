// Package ragu is a recursive proof-composition engine for proof-carrying
// data (PCD).
//
// Applications register transition predicates (steps) between state types
// (headers) on a Builder, finalize it into an immutable Application, and
// then grow arbitrary binary composition trees: Seed originates history
// from the trivial base case, Fuse combines two existing instances under a
// step, and Compress, Decompress and Rerandomize move instances between
// representations at trust or bandwidth boundaries.
//
// Every instance is an owned, immutable value: operations consume their
// inputs and return replacements, so independent subtrees can be produced
// concurrently with no shared mutable state. Fusion never verifies its
// predecessors; verification is deferred into the accumulator and paid
// once, at compression or by a terminal call to Verify.
package ragu
