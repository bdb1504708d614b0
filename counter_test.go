package ragu

import (
	"errors"
	"testing"

	"github.com/consensys/gnark/constraint"
	"github.com/stretchr/testify/require"

	"github.com/alxiong/ragu/field"
	"github.com/alxiong/ragu/header"
	"github.com/alxiong/ragu/step"
)

// Counter certifies a single running total.
type counterHeader struct{}

func (counterHeader) Suffix() header.Suffix { return 1 }
func (counterHeader) Width() int            { return 1 }
func (counterHeader) Encode(f field.Field, data any) ([]constraint.Element, error) {
	return []constraint.Element{f.FromInterface(data)}, nil
}

// incrementStep starts a counter at the witness value.
type incrementStep struct{}

func (incrementStep) Index() step.Index     { return 0 }
func (incrementStep) Left() header.Header   { return header.Trivial{} }
func (incrementStep) Right() header.Header  { return header.Trivial{} }
func (incrementStep) Output() header.Header { return counterHeader{} }
func (incrementStep) Apply(f field.Field, _, _ []constraint.Element, witness any) ([]constraint.Element, error) {
	if witness == nil {
		return nil, errors.New("increment requires a starting value")
	}
	return []constraint.Element{f.FromInterface(witness)}, nil
}

// addStep sums two counters.
type addStep struct{}

func (addStep) Index() step.Index     { return 1 }
func (addStep) Left() header.Header   { return counterHeader{} }
func (addStep) Right() header.Header  { return counterHeader{} }
func (addStep) Output() header.Header { return counterHeader{} }
func (addStep) Apply(f field.Field, left, right []constraint.Element, _ any) ([]constraint.Element, error) {
	return []constraint.Element{f.Add(left[0], right[0])}, nil
}

func newCounterApp(t *testing.T, opts ...Option) *Application {
	t.Helper()
	b := NewBuilder()
	require.NoError(t, b.Register(incrementStep{}))
	require.NoError(t, b.Register(addStep{}))
	app, err := b.Finalize(opts...)
	require.NoError(t, err)
	return app
}
