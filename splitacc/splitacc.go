// Package splitacc implements a transparent split-accumulation scheme over
// bn254.
//
// Uncompressed accumulators are ordered lists of obligation records, one
// per fusion in the accumulated history, each carrying the witness that
// justifies its transition and a Pedersen commitment over the record
// transcript. Merging two accumulators concatenates their records and
// appends the new obligation, deferring all verification.
//
// Compression replays the accumulated records (the expensive, deferred
// check) and reduces them to a constant-size attestation binding the
// history digest to the final claim. Decompression turns an attestation
// back into a single checkpoint record so that fusion can resume on top of
// the compressed history.
//
// The scheme is transparent: there is no secret setup, and the attestation
// is a binding of the prover's own replay rather than a succinct argument.
// A production deployment substitutes a cryptographic accumulation scheme
// behind the same accum.Scheme interface.
package splitacc

import (
	"github.com/alxiong/ragu/accum"
	"github.com/alxiong/ragu/field"
	"github.com/alxiong/ragu/step"
)

// Resolver maps step indices back to registered steps so that replay can
// re-run each recorded transition.
type Resolver interface {
	ResolveStep(idx step.Index) (step.Step, bool)
}

// Scheme is an accum.Scheme backed by obligation records and Pedersen
// commitments. It is stateless apart from its immutable parameters and is
// safe for concurrent use.
type Scheme struct {
	f        field.Field
	resolver Resolver
	pp       *Params
}

// New returns a scheme over f whose replay resolves steps through resolver.
func New(f field.Field, resolver Resolver) *Scheme {
	return &Scheme{f: f, resolver: resolver, pp: defaultParams()}
}

// Trivial returns the empty accumulator carried by base-case instances.
func (s *Scheme) Trivial() accum.Accumulator {
	return &accumulator{}
}
