package splitacc

import (
	"fmt"

	"github.com/consensys/gnark/constraint"

	"github.com/alxiong/ragu/accum"
)

// Merge concatenates the records of both predecessors and appends the new
// obligation as a committed record. No verification of either predecessor
// happens here; all checks are deferred to compression or verification.
func (s *Scheme) Merge(left, right accum.Accumulator, ob accum.Obligation) (accum.Accumulator, error) {
	l, ok := left.(*accumulator)
	if !ok {
		return nil, fmt.Errorf("splitacc: foreign left accumulator %T", left)
	}
	r, ok := right.(*accumulator)
	if !ok {
		return nil, fmt.Errorf("splitacc: foreign right accumulator %T", right)
	}

	rec := record{
		Kind:        kindStep,
		Step:        uint32(ob.Step),
		LeftSuffix:  uint64(ob.Left.Suffix),
		LeftOutput:  append([]constraint.Element(nil), ob.Left.Output...),
		RightSuffix: uint64(ob.Right.Suffix),
		RightOutput: append([]constraint.Element(nil), ob.Right.Output...),
		OutSuffix:   uint64(ob.Output.Suffix),
		Output:      append([]constraint.Element(nil), ob.Output.Output...),
		Witness:     append([]byte(nil), ob.Witness...),
	}
	blind := freshBlind()
	d := s.recordScalar(&rec)
	c := s.pp.commit(&d, &blind)
	bb := blind.Bytes()
	cb := c.Bytes()
	rec.Blind = bb[:]
	rec.Commitment = cb[:]

	records := make([]record, 0, len(l.Records)+len(r.Records)+1)
	records = append(records, l.Records...)
	records = append(records, r.Records...)
	records = append(records, rec)
	return &accumulator{Records: records}, nil
}

// Rerandomize resamples every record's blinder and recomputes its
// commitment, leaving the certified history untouched. The resulting
// accumulator is distributed like a freshly produced one for the same
// claim. Records whose commitments do not open are re-poisoned so that a
// malformed history cannot be healed by rerandomization.
func (s *Scheme) Rerandomize(acc accum.Accumulator) (accum.Accumulator, error) {
	a, ok := acc.(*accumulator)
	if !ok {
		return nil, fmt.Errorf("splitacc: rerandomize requires an uncompressed accumulator, got %T", acc)
	}

	records := make([]record, len(a.Records))
	for i := range a.Records {
		rec := a.Records[i].clone()
		d := s.recordScalar(&rec)
		opened := s.pp.open(rec.Commitment, &d, rec.Blind)

		blind := freshBlind()
		c := s.pp.commit(&d, &blind)
		if !opened {
			c = s.pp.poison(c)
		}
		bb := blind.Bytes()
		cb := c.Bytes()
		rec.Blind = bb[:]
		rec.Commitment = cb[:]
		records[i] = rec
	}
	return &accumulator{Records: records}, nil
}
