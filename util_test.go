package conic

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, and structs of floats, with an absolute tolerance.
var approx = cmpopts.EquateApprox(0, 1e-9)

func assertNear(t *testing.T, got Point, want Point, epsilon float64) {
	t.Helper()
	if d := got.Distance(want); d > epsilon || math.IsNaN(d) {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

// scale returns the largest coefficient magnitude.
func (c Conic) scale() float64 {
	s := 0.0
	for _, v := range c.Coefficients() {
		s = max(s, math.Abs(v))
	}
	return s
}

// randomConics returns n conics with coefficients in [-10, 10).
func randomConics(n int) []Conic {
	r := rand.New(rand.NewSource(1))
	c := func() float64 { return r.Float64()*20 - 10 }
	out := make([]Conic, n)
	for i := range out {
		out[i] = Conic{A: c(), B: c(), C: c(), D: c(), E: c(), F: c()}
	}
	return out
}
