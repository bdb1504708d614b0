package splitacc

import (
	"fmt"

	"github.com/consensys/gnark/constraint"
	"github.com/fxamacker/cbor/v2"

	"github.com/alxiong/ragu/accum"
	"github.com/alxiong/ragu/header"
	"github.com/alxiong/ragu/step"
)

// Compress replays the accumulated records, paying the verification cost
// deferred by every Merge, and reduces the history to a constant-size
// attestation. Compression never fails on a malformed history: the
// resulting attestation is poisoned instead, so it is rejected by every
// later verification.
func (s *Scheme) Compress(acc accum.Accumulator) (accum.Accumulator, error) {
	a, ok := acc.(*accumulator)
	if !ok {
		return nil, fmt.Errorf("splitacc: compress requires an uncompressed accumulator, got %T", acc)
	}

	history := s.historyDigest(a.Records)
	suffix, output, valid := s.replay(a.Records)
	if !valid {
		// Claim whatever the final record claims; the poisoned binding
		// below guarantees rejection.
		if n := len(a.Records); n > 0 {
			suffix, output = a.Records[n-1].OutSuffix, a.Records[n-1].Output
		}
	}

	e := s.attestScalar(history, suffix, output)
	blind := freshBlind()
	c := s.pp.commit(&e, &blind)
	if !valid {
		c = s.pp.poison(c)
	}
	bb := blind.Bytes()
	cb := c.Bytes()
	return &attestation{
		History:    append([]byte(nil), history...),
		Suffix:     suffix,
		Output:     append([]constraint.Element(nil), output...),
		Blind:      bb[:],
		Commitment: cb[:],
	}, nil
}

// Decompress reconstitutes accumulation-mode data from an attestation: a
// single checkpoint record carrying the compressed history's digest and
// claim, on top of which fusion can resume.
func (s *Scheme) Decompress(acc accum.Accumulator) (accum.Accumulator, error) {
	at, ok := acc.(*attestation)
	if !ok {
		return nil, fmt.Errorf("splitacc: decompress requires a compressed accumulator, got %T", acc)
	}
	rec := record{
		Kind:       kindCheckpoint,
		OutSuffix:  at.Suffix,
		Output:     append([]constraint.Element(nil), at.Output...),
		History:    append([]byte(nil), at.History...),
		Blind:      append([]byte(nil), at.Blind...),
		Commitment: append([]byte(nil), at.Commitment...),
	}
	return &accumulator{Records: []record{rec}}, nil
}

// Verify checks an accumulator against the claimed state type and encoding
// in whichever mode it is in. Uncompressed accumulators are fully replayed;
// attestations are checked against their Pedersen binding.
func (s *Scheme) Verify(suffix header.Suffix, output []constraint.Element, acc accum.Accumulator) bool {
	switch a := acc.(type) {
	case *accumulator:
		cs, co, ok := s.replay(a.Records)
		if !ok {
			return false
		}
		return cs == uint64(suffix) && equalElements(co, output)
	case *attestation:
		if a.Suffix != uint64(suffix) || !equalElements(a.Output, output) {
			return false
		}
		e := s.attestScalar(a.History, a.Suffix, a.Output)
		return s.pp.open(a.Commitment, &e, a.Blind)
	default:
		return false
	}
}

// replay walks the record list in order, checking each commitment, the
// availability of each operand, and that re-running the recorded step with
// the recorded witness reproduces the recorded output. It returns the
// final claim of the history.
func (s *Scheme) replay(records []record) (uint64, []constraint.Element, bool) {
	seen := make(map[string]struct{}, len(records))
	suffix := uint64(header.TrivialSuffix)
	var output []constraint.Element

	for i := range records {
		rec := &records[i]
		d := s.recordScalar(rec)
		if !s.pp.open(rec.Commitment, &d, rec.Blind) {
			return 0, nil, false
		}

		switch rec.Kind {
		case kindCheckpoint:
			// The opened commitment already binds history, suffix and
			// output together; nothing further to replay.
		case kindStep:
			st, ok := s.resolver.ResolveStep(step.Index(rec.Step))
			if !ok {
				return 0, nil, false
			}
			if uint64(st.Left().Suffix()) != rec.LeftSuffix ||
				uint64(st.Right().Suffix()) != rec.RightSuffix ||
				uint64(st.Output().Suffix()) != rec.OutSuffix {
				return 0, nil, false
			}
			if len(rec.LeftOutput) != st.Left().Width() ||
				len(rec.RightOutput) != st.Right().Width() {
				return 0, nil, false
			}
			if !s.operandAvailable(seen, rec.LeftSuffix, rec.LeftOutput) ||
				!s.operandAvailable(seen, rec.RightSuffix, rec.RightOutput) {
				return 0, nil, false
			}

			var w any
			if err := cbor.Unmarshal(rec.Witness, &w); err != nil {
				return 0, nil, false
			}
			out, err := st.Apply(s.f,
				append([]constraint.Element(nil), rec.LeftOutput...),
				append([]constraint.Element(nil), rec.RightOutput...),
				w)
			if err != nil {
				return 0, nil, false
			}
			if !equalElements(out, rec.Output) {
				return 0, nil, false
			}
		default:
			return 0, nil, false
		}

		seen[s.claimKey(rec.OutSuffix, rec.Output)] = struct{}{}
		suffix, output = rec.OutSuffix, rec.Output
	}
	return suffix, output, true
}

// operandAvailable reports whether a record operand refers to the base case
// or to a claim certified earlier in the same history.
func (s *Scheme) operandAvailable(seen map[string]struct{}, suffix uint64, output []constraint.Element) bool {
	if suffix == uint64(header.TrivialSuffix) {
		return len(output) == 0
	}
	_, ok := seen[s.claimKey(suffix, output)]
	return ok
}

func equalElements(a, b []constraint.Element) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
