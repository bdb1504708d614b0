package splitacc

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/alxiong/ragu/accum"
)

// Marshal serializes an accumulator payload. The mode tag travels in the
// instance envelope, not here.
func (s *Scheme) Marshal(acc accum.Accumulator) ([]byte, error) {
	switch a := acc.(type) {
	case *accumulator:
		return cbor.Marshal(a)
	case *attestation:
		return cbor.Marshal(a)
	default:
		return nil, fmt.Errorf("splitacc: foreign accumulator %T", acc)
	}
}

func (s *Scheme) Unmarshal(mode accum.Mode, payload []byte) (accum.Accumulator, error) {
	switch mode {
	case accum.Uncompressed:
		var a accumulator
		if err := cbor.Unmarshal(payload, &a); err != nil {
			return nil, err
		}
		return &a, nil
	case accum.Compressed:
		var a attestation
		if err := cbor.Unmarshal(payload, &a); err != nil {
			return nil, err
		}
		return &a, nil
	default:
		return nil, fmt.Errorf("splitacc: invalid mode %d", mode)
	}
}
