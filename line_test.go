package conic

import (
	"math"
	"testing"
)

func TestLineCrossingPoint(t *testing.T) {
	l1 := Line{Pt(0, 0), Pt(1, 1)}
	l2 := Line{Pt(0, 2), Pt(1, 1)}
	p, ok := l1.CrossingPoint(l2)
	if !ok {
		t.Fatal("lines don't cross")
	}
	assertNear(t, p, Pt(1, 1), 1e-12)

	if _, ok := l1.CrossingPoint(l1.Transform(Translate(Vec(0, 1)))); ok {
		t.Error("parallel lines cross")
	}
}

func TestLineDistance(t *testing.T) {
	l := Line{Pt(0, 1), Pt(2, 1)}
	if d := l.Distance(Pt(5, 4)); d != 3 {
		t.Errorf("got distance %v, want 3", d)
	}
	if d := l.Length(); d != 2 {
		t.Errorf("got length %v, want 2", d)
	}
	diff(t, Vec(1, 0), l.Direction())
	diff(t, Pt(1, 1), l.Midpoint())
}

func TestLineIsInf(t *testing.T) {
	if (Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}
	if !(Line{Pt(0.0, 0.0), Pt(math.Inf(1), 1.0)}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}
	if !(Line{Pt(math.NaN(), 0.0), Pt(1, 1.0)}).IsNaN() {
		t.Errorf("line is not NaN but should be")
	}
}
