package ragu

import (
	"testing"

	"github.com/consensys/gnark/constraint"
	"github.com/stretchr/testify/require"

	"github.com/alxiong/ragu/field"
	"github.com/alxiong/ragu/header"
	"github.com/alxiong/ragu/step"
)

// clashingHeader claims the counter suffix with a different type.
type clashingHeader struct{}

func (clashingHeader) Suffix() header.Suffix { return 1 }
func (clashingHeader) Width() int            { return 2 }
func (clashingHeader) Encode(f field.Field, data any) ([]constraint.Element, error) {
	e := f.FromInterface(data)
	return []constraint.Element{e, e}, nil
}

// reservedHeader claims the trivial suffix without being trivial.
type reservedHeader struct{}

func (reservedHeader) Suffix() header.Suffix { return header.TrivialSuffix }
func (reservedHeader) Width() int            { return 1 }
func (reservedHeader) Encode(f field.Field, data any) ([]constraint.Element, error) {
	return []constraint.Element{f.FromInterface(data)}, nil
}

type headerStep struct {
	idx step.Index
	out header.Header
}

func (s headerStep) Index() step.Index     { return s.idx }
func (headerStep) Left() header.Header     { return header.Trivial{} }
func (headerStep) Right() header.Header    { return header.Trivial{} }
func (s headerStep) Output() header.Header { return s.out }
func (headerStep) Apply(f field.Field, _, _ []constraint.Element, witness any) ([]constraint.Element, error) {
	return []constraint.Element{f.FromInterface(witness)}, nil
}

func TestRegisterDuplicateStepIndex(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Register(incrementStep{}))
	err := b.Register(headerStep{idx: 0, out: counterHeader{}})
	require.ErrorIs(t, err, ErrDuplicateStep)
}

func TestRegisterConflictingSuffix(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Register(incrementStep{}))
	err := b.Register(headerStep{idx: 7, out: clashingHeader{}})
	require.ErrorIs(t, err, ErrDuplicateSuffix)
}

func TestRegisterReservedSuffix(t *testing.T) {
	b := NewBuilder()
	err := b.Register(headerStep{idx: 7, out: reservedHeader{}})
	require.ErrorIs(t, err, ErrReservedSuffix)
}

func TestRegisterSharedHeaderAcrossSteps(t *testing.T) {
	// Two steps declaring the same header type is the normal case.
	b := NewBuilder()
	require.NoError(t, b.Register(incrementStep{}))
	require.NoError(t, b.Register(addStep{}))
}

func TestHeaderLookup(t *testing.T) {
	app := newCounterApp(t)

	h, ok := app.Header(1)
	require.True(t, ok)
	require.Equal(t, 1, h.Width())

	_, ok = app.Header(42)
	require.False(t, ok)

	h, ok = app.Header(header.TrivialSuffix)
	require.True(t, ok)
	require.Equal(t, 0, h.Width())
}

func TestHeaderEncodeMatchesCertifiedOutput(t *testing.T) {
	app := newCounterApp(t)

	five, err := app.Seed(incrementStep{}, uint64(5))
	require.NoError(t, err)

	enc, err := counterHeader{}.Encode(app.Field(), uint64(5))
	require.NoError(t, err)
	require.Equal(t, enc, five.Output())
}

func TestResolveStep(t *testing.T) {
	app := newCounterApp(t)

	s, ok := app.ResolveStep(1)
	require.True(t, ok)
	require.Equal(t, step.Index(1), s.Index())

	_, ok = app.ResolveStep(9)
	require.False(t, ok)
}
