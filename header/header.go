// Package header defines the state types a computation can certify.
//
// Every point in a composition tree carries data of exactly one state type,
// identified by a Suffix discriminant. The discriminant is checked at every
// fusion boundary so that a step can never consume data of a state type it
// did not declare.
package header

import (
	"github.com/consensys/gnark/constraint"

	"github.com/alxiong/ragu/field"
)

// Suffix uniquely identifies a state type within an application.
// Suffix 0 is reserved for the trivial (base case) state type.
type Suffix uint64

// TrivialSuffix is the reserved discriminant of the built-in trivial state.
const TrivialSuffix Suffix = 0

// Header declares how one state type encodes its certified data.
//
// Encode must be a pure, deterministic function of data; collision
// resistance across distinct data values is the responsibility of the
// encoding itself. Width is the fixed number of field elements an encoding
// occupies, constant per header.
type Header interface {
	Suffix() Suffix
	Width() int
	Encode(f field.Field, data any) ([]constraint.Element, error)
}

// Trivial is the built-in base-case state type. Its encoding is empty and
// it is the only state type that may appear in an instance without a
// derivation history behind it.
type Trivial struct{}

func (Trivial) Suffix() Suffix { return TrivialSuffix }

func (Trivial) Width() int { return 0 }

func (Trivial) Encode(field.Field, any) ([]constraint.Element, error) { return nil, nil }
