// Package accum defines the dual-mode proof payload carried by every
// instance and the strategy interface a concrete accumulation scheme
// implements.
//
// An accumulator exists in exactly one of two modes. Uncompressed
// (accumulation) mode is linear-size and cheap to extend: merging two
// accumulators defers the verification of both into the result instead of
// discharging it. Compressed (succinct) mode is produced by an explicit,
// expensive reduction and is what external verifiers consume. Mode is a
// property of the representation, never of logical validity.
package accum

import (
	"github.com/consensys/gnark/constraint"

	"github.com/alxiong/ragu/header"
	"github.com/alxiong/ragu/step"
)

// Mode tags the representation an accumulator is currently in.
type Mode uint8

const (
	Uncompressed Mode = iota
	Compressed
)

func (m Mode) String() string {
	switch m {
	case Uncompressed:
		return "uncompressed"
	case Compressed:
		return "compressed"
	default:
		return "invalid"
	}
}

// Operand names one side of a recorded transition: the state type and
// certified encoding of a predecessor or of the produced output.
type Operand struct {
	Suffix header.Suffix
	Output []constraint.Element
}

// Obligation is the deferred claim produced by one fusion: that running the
// named step on the two operands with the recorded witness yields the
// output operand. The witness is stored in its CBOR encoding so that
// obligations are self-contained on the wire.
type Obligation struct {
	Step    step.Index
	Left    Operand
	Right   Operand
	Output  Operand
	Witness []byte
}

// Accumulator is the opaque proof payload. Its concrete representation
// belongs entirely to the scheme that produced it.
type Accumulator interface {
	Mode() Mode
}

// Scheme is the accumulation strategy injected into an application.
//
// The composition engine treats a Scheme as a correct-by-assumption black
// box: Merge must be cheaper than verifying its inputs, and a malformed
// input accumulator must never survive Compress followed by Verify. All
// methods must be safe for concurrent use.
type Scheme interface {
	// Trivial returns the accumulator of the base-case instance.
	Trivial() Accumulator

	// Merge folds two uncompressed accumulators and a new obligation into
	// one uncompressed accumulator without verifying either input.
	Merge(left, right Accumulator, ob Obligation) (Accumulator, error)

	// Compress performs the expensive reduction to succinct form. It fails
	// only on internal faults; a malformed input yields a compressed
	// accumulator that will fail Verify.
	Compress(acc Accumulator) (Accumulator, error)

	// Decompress reconstitutes an accumulation-mode accumulator from a
	// compressed one so that fusion can resume on top of it.
	Decompress(acc Accumulator) (Accumulator, error)

	// Rerandomize replaces an uncompressed accumulator with one
	// indistinguishable from a freshly produced accumulator for the same
	// claim, certifying the identical history.
	Rerandomize(acc Accumulator) (Accumulator, error)

	// Verify checks that acc attests to the claimed state type and
	// encoding, in whichever mode acc currently is.
	Verify(suffix header.Suffix, output []constraint.Element, acc Accumulator) bool

	// Marshal and Unmarshal convert accumulators to and from their wire
	// payload. The mode tag travels outside the payload.
	Marshal(acc Accumulator) ([]byte, error)
	Unmarshal(mode Mode, payload []byte) (Accumulator, error)
}
