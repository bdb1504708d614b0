package accum

import (
	"fmt"

	"github.com/consensys/gnark/constraint"
	"github.com/fxamacker/cbor/v2"

	"github.com/alxiong/ragu/header"
)

// Identity is a trivial scheme for exercising the composition engine
// without cryptography. It keeps only the final claim of each accumulator
// and accepts any history, so it proves nothing; it exists so that engine
// tests run independently of a concrete scheme.
type Identity struct{}

type identityAcc struct {
	M      Mode
	Suffix header.Suffix
	Output []constraint.Element
}

func (a *identityAcc) Mode() Mode { return a.M }

func (Identity) Trivial() Accumulator {
	return &identityAcc{M: Uncompressed, Suffix: header.TrivialSuffix}
}

func (Identity) Merge(left, right Accumulator, ob Obligation) (Accumulator, error) {
	if _, ok := left.(*identityAcc); !ok {
		return nil, fmt.Errorf("identity: foreign left accumulator %T", left)
	}
	if _, ok := right.(*identityAcc); !ok {
		return nil, fmt.Errorf("identity: foreign right accumulator %T", right)
	}
	return &identityAcc{
		M:      Uncompressed,
		Suffix: ob.Output.Suffix,
		Output: append([]constraint.Element(nil), ob.Output.Output...),
	}, nil
}

func (Identity) Compress(acc Accumulator) (Accumulator, error) {
	a, ok := acc.(*identityAcc)
	if !ok {
		return nil, fmt.Errorf("identity: foreign accumulator %T", acc)
	}
	return &identityAcc{M: Compressed, Suffix: a.Suffix, Output: a.Output}, nil
}

func (Identity) Decompress(acc Accumulator) (Accumulator, error) {
	a, ok := acc.(*identityAcc)
	if !ok {
		return nil, fmt.Errorf("identity: foreign accumulator %T", acc)
	}
	return &identityAcc{M: Uncompressed, Suffix: a.Suffix, Output: a.Output}, nil
}

func (Identity) Rerandomize(acc Accumulator) (Accumulator, error) {
	a, ok := acc.(*identityAcc)
	if !ok {
		return nil, fmt.Errorf("identity: foreign accumulator %T", acc)
	}
	return &identityAcc{M: a.M, Suffix: a.Suffix, Output: a.Output}, nil
}

func (Identity) Verify(suffix header.Suffix, output []constraint.Element, acc Accumulator) bool {
	a, ok := acc.(*identityAcc)
	if !ok {
		return false
	}
	if a.Suffix != suffix || len(a.Output) != len(output) {
		return false
	}
	for i := range output {
		if a.Output[i] != output[i] {
			return false
		}
	}
	return true
}

func (Identity) Marshal(acc Accumulator) ([]byte, error) {
	a, ok := acc.(*identityAcc)
	if !ok {
		return nil, fmt.Errorf("identity: foreign accumulator %T", acc)
	}
	return cbor.Marshal(a)
}

func (Identity) Unmarshal(mode Mode, payload []byte) (Accumulator, error) {
	var a identityAcc
	if err := cbor.Unmarshal(payload, &a); err != nil {
		return nil, err
	}
	a.M = mode
	return &a, nil
}
