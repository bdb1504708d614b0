// Package step defines the transition predicates an application registers.
package step

import (
	"github.com/consensys/gnark/constraint"

	"github.com/alxiong/ragu/field"
	"github.com/alxiong/ragu/header"
)

// Index identifies a registered step within an application. Steps are
// non-uniform: several steps may produce the same output header, and each
// fusion names the one step it runs.
type Index uint32

// Step is an application-defined transition predicate between state types.
//
// Left, Right and Output declare the fixed headers of the two inputs and
// the output; either input may be header.Trivial. Apply consumes the two
// inputs' certified encodings together with a witness and either produces
// the output encoding or reports that the witness does not justify the
// transition.
//
// Apply must be a deterministic function of its arguments with no hidden
// state: the soundness argument relies on the accumulation scheme being
// able to re-derive exactly the same output from the recorded inputs and
// witness. Witnesses must survive a CBOR round trip (the engine stores them
// in encoded form inside obligations), so Apply should accept the decoded
// representation of whatever witness type the caller passes; converting
// through field.Field.FromInterface covers the numeric cases.
type Step interface {
	Index() Index
	Left() header.Header
	Right() header.Header
	Output() header.Header
	Apply(f field.Field, left, right []constraint.Element, witness any) ([]constraint.Element, error)
}
