// Package test provides helpers for asserting on instances in engine
// tests.
package test

import (
	"testing"

	"github.com/alxiong/ragu"
)

type Assert struct {
	t *testing.T
}

func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t}
}

// VerifySucceeded fails the test unless in verifies under app.
func (a *Assert) VerifySucceeded(app *ragu.Application, in ragu.Instance) {
	a.t.Helper()
	if !app.Verify(in) {
		a.t.Fatal("instance should verify")
	}
}

// VerifyFailed fails the test if in verifies under app.
func (a *Assert) VerifyFailed(app *ragu.Application, in ragu.Instance) {
	a.t.Helper()
	if app.Verify(in) {
		a.t.Fatal("instance should not verify")
	}
}
