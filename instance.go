package ragu

import (
	"fmt"

	"github.com/consensys/gnark/constraint"
	"github.com/fxamacker/cbor/v2"

	"github.com/alxiong/ragu/accum"
	"github.com/alxiong/ragu/header"
)

// Instance is a unit of proof-carrying data: a state type discriminant,
// the certified encoding of the data, and the accumulator attesting to the
// entire derivation history. Instances are immutable; every engine
// operation consumes its inputs and returns replacements.
type Instance struct {
	suffix header.Suffix
	output []constraint.Element
	acc    accum.Accumulator
}

// Suffix returns the discriminant of the instance's state type.
func (in Instance) Suffix() header.Suffix { return in.suffix }

// Output returns a copy of the certified encoding.
func (in Instance) Output() []constraint.Element {
	return append([]constraint.Element(nil), in.output...)
}

// Mode returns the representation the instance's accumulator is in.
func (in Instance) Mode() accum.Mode {
	if in.acc == nil {
		return accum.Uncompressed
	}
	return in.acc.Mode()
}

// wireInstance is the CBOR envelope of an instance: fixed-width
// discriminant, encoding vector, mode tag and the scheme's payload.
type wireInstance struct {
	Suffix  uint64
	Output  []constraint.Element
	Mode    uint8
	Payload []byte
}

// MarshalInstance serializes an instance for the wire.
func (app *Application) MarshalInstance(in Instance) ([]byte, error) {
	acc := in.acc
	if acc == nil {
		acc = app.scheme.Trivial()
	}
	payload, err := app.scheme.Marshal(acc)
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(wireInstance{
		Suffix:  uint64(in.suffix),
		Output:  in.output,
		Mode:    uint8(acc.Mode()),
		Payload: payload,
	})
}

// UnmarshalInstance reverses MarshalInstance. Deserialization performs no
// validity check: a tampered payload round-trips structurally and is only
// rejected by Verify.
func (app *Application) UnmarshalInstance(data []byte) (Instance, error) {
	var w wireInstance
	if err := cbor.Unmarshal(data, &w); err != nil {
		return Instance{}, fmt.Errorf("unmarshal instance: %v", err)
	}
	acc, err := app.scheme.Unmarshal(accum.Mode(w.Mode), w.Payload)
	if err != nil {
		return Instance{}, fmt.Errorf("unmarshal accumulator: %v", err)
	}
	return Instance{
		suffix: header.Suffix(w.Suffix),
		output: w.Output,
		acc:    acc,
	}, nil
}
