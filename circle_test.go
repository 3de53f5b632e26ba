package conic

import (
	"math"
	"testing"
)

func TestCircleArea(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-7
	}

	center := Pt(5, 5)
	c := Circle{center, 5}
	if a := c.Area(); !approxEqual(a, 25*math.Pi) {
		t.Errorf("got area %v, expected %v", a, 25.0*math.Pi)
	}
	if !c.Contains(center) {
		t.Error("circle doesn't contain its center")
	}

	cNegRadius := Circle{center, -5}
	if a := cNegRadius.Area(); !approxEqual(a, 25.0*math.Pi) {
		t.Errorf("got area %v, expected %v", a, 25.0*math.Pi)
	}
	if !cNegRadius.Contains(center) {
		t.Error("circle doesn't contain its center")
	}
	if p := cNegRadius.Perimeter(); !approxEqual(p, 10*math.Pi) {
		t.Errorf("got perimeter %v, expected %v", p, 10*math.Pi)
	}
}

func TestCircleConicRoundTrip(t *testing.T) {
	f := NewFrame("f")
	want := Circle{Center: Pt(-3, 2), Radius: 1.5}
	c := want.Conic(f)
	if c.Frame != f {
		t.Error("conic not attached to frame")
	}
	diff(t, CircleKind, c.Identify())
	got, err := c.Circle()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, want, got, approx)
	diff(t, Rect{-4.5, 0.5, -1.5, 3.5}, got.BoundingBox(), approx)
	diff(t, Circle{Center: Pt(0, 0), Radius: 1.5}, got.Translate(Vec(3, -2)), approx)
}

func TestCircleTransform(t *testing.T) {
	e := Circle{Center: Pt(1, 1), Radius: 2}.Transform(Scale(2, 1))
	diff(t, Pt(2, 1), e.Center())
	diff(t, Vec(4, 2), e.Radii(), approx)
}
