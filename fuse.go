package ragu

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/alxiong/ragu/accum"
	"github.com/alxiong/ragu/step"
)

// Fuse combines two predecessor instances under a registered step into one
// new instance whose accumulator attests to the validity of both
// predecessors and the transition.
//
// Both predecessors must be in uncompressed mode and their state types
// must match the step's declared input types exactly. Fuse never verifies
// the predecessors: their verification is merged, deferred, into the new
// accumulator, and a malformed predecessor is only detected when the
// result is eventually compressed or verified.
//
// The output state type and encoding are deterministic in the inputs; the
// accumulator content may be randomized.
func (app *Application) Fuse(left, right Instance, s step.Step, witness any) (Instance, error) {
	st, ok := app.steps[s.Index()]
	if !ok {
		return Instance{}, fmt.Errorf("%w: step index %d", ErrUnknownStep, s.Index())
	}

	if left.Mode() != accum.Uncompressed {
		return Instance{}, fmt.Errorf("%w: left predecessor is compressed", ErrCompressedInstance)
	}
	if right.Mode() != accum.Uncompressed {
		return Instance{}, fmt.Errorf("%w: right predecessor is compressed", ErrCompressedInstance)
	}

	if want := st.Left().Suffix(); left.suffix != want {
		return Instance{}, fmt.Errorf("%w: left has suffix %d, step %d expects %d",
			ErrTypeMismatch, left.suffix, st.Index(), want)
	}
	if want := st.Right().Suffix(); right.suffix != want {
		return Instance{}, fmt.Errorf("%w: right has suffix %d, step %d expects %d",
			ErrTypeMismatch, right.suffix, st.Index(), want)
	}
	if want := st.Left().Width(); len(left.output) != want {
		return Instance{}, fmt.Errorf("%w: left encoding has %d elements, header expects %d",
			ErrTypeMismatch, len(left.output), want)
	}
	if want := st.Right().Width(); len(right.output) != want {
		return Instance{}, fmt.Errorf("%w: right encoding has %d elements, header expects %d",
			ErrTypeMismatch, len(right.output), want)
	}

	out, err := st.Apply(app.f, left.Output(), right.Output(), witness)
	if err != nil {
		return Instance{}, fmt.Errorf("%w: step %d: %v", ErrInvalidWitness, st.Index(), err)
	}
	if len(out) != st.Output().Width() {
		return Instance{}, fmt.Errorf("step %d produced %d elements for a header of width %d",
			st.Index(), len(out), st.Output().Width())
	}

	wb, err := cbor.Marshal(witness)
	if err != nil {
		return Instance{}, fmt.Errorf("%w: witness not serializable: %v", ErrInvalidWitness, err)
	}

	ob := accum.Obligation{
		Step:    st.Index(),
		Left:    accum.Operand{Suffix: left.suffix, Output: left.Output()},
		Right:   accum.Operand{Suffix: right.suffix, Output: right.Output()},
		Output:  accum.Operand{Suffix: st.Output().Suffix(), Output: out},
		Witness: wb,
	}
	acc, err := app.scheme.Merge(left.acc, right.acc, ob)
	if err != nil {
		return Instance{}, fmt.Errorf("fuse: %v", err)
	}

	app.log.Debug().
		Uint32("step", uint32(st.Index())).
		Uint64("suffix", uint64(st.Output().Suffix())).
		Msg("fused")
	return Instance{suffix: st.Output().Suffix(), output: out, acc: acc}, nil
}

// Seed lifts a single base-case-rooted transition into the first
// non-trivial instance. It is exactly Fuse over two trivial predecessors,
// named so that "start of history" is auditable at the call site.
func (app *Application) Seed(s step.Step, witness any) (Instance, error) {
	return app.Fuse(app.Trivial(), app.Trivial(), s, witness)
}
