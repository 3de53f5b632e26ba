package conic

import (
	"math"
	"testing"
)

func TestEllipseArea(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-7
	}

	center := Pt(5.0, 5.0)
	e := NewEllipse(center, Vec(5.0, 10.0), 1.0)
	if a := e.Area(); !approxEqual(a, 50.0*math.Pi) {
		t.Errorf("got area %v, expected %v", a, 50.0*math.Pi)
	}
	if !e.Contains(center) {
		t.Error("ellipse doesn't contain its center")
	}

	eNegRadius := NewEllipse(center, Vec(-5.0, 10.0), 1.0)
	if a := eNegRadius.Area(); !approxEqual(a, 50.0*math.Pi) {
		t.Errorf("got area %v, expected %v", a, 50.0*math.Pi)
	}
	if !eNegRadius.Contains(center) {
		t.Error("ellipse doesn't contain its center")
	}
}

func TestEllipseRadiiRotation(t *testing.T) {
	e := NewEllipse(Pt(1, 2), Vec(5, 2), 0.3)
	radii, rot := e.RadiiRotation()
	diff(t, Vec(5, 2), radii, approx)
	diff(t, 0.3, rot, approx)
	diff(t, Pt(1, 2), e.Center())
}

func TestEllipseFromConic(t *testing.T) {
	c := New(5, 4, 5, -18, -24, 24, nil)
	e, err := c.Ellipse()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(1, 2), e.Center(), approx)
	diff(t, Vec(math.Sqrt(3), math.Sqrt(9.0/7.0)), e.Radii(), approx)
	diff(t, -math.Pi/4, e.Rotation(), approx)
	diff(t, math.Pi*math.Sqrt(27.0/7.0), e.Area(), approx)

	bbox := e.BoundingBox()
	r := math.Sqrt(15.0 / 7.0)
	diff(t, Rect{1 - r, 2 - r, 1 + r, 2 + r}, bbox, approx)
	if !bbox.Contains(e.Center()) {
		t.Error("bounding box doesn't contain the center")
	}

	// Converting back yields the same equation, up to scale.
	back := e.Conic(nil)
	k := c.F / back.F
	got := back.Coefficients()
	for i := range got {
		got[i] *= k
	}
	diff(t, c.Coefficients(), got, relApprox)
}

func TestEllipseTransform(t *testing.T) {
	e := NewEllipse(Pt(0, 0), Vec(2, 1), 0).Transform(Translate(Vec(3, 4)))
	diff(t, Pt(3, 4), e.Center())
	c := e.Conic(nil)
	diff(t, EllipseKind, c.Identify())
	diff(t, 0.0, c.Eval(5, 4), approx)
}
