package conic

import (
	"math"
	"testing"
)

func TestFrameTranslateRotate(t *testing.T) {
	const epsilon = 1e-12
	f := NewFrame("f")
	f.Translate(1, 2)
	f.Rotate(math.Pi / 2)
	// The frame's x axis now points along the world's y axis.
	assertNear(t, f.Origin(), Pt(1, 2), epsilon)
	assertNear(t, Pt(1, 0).Transform(f.Basis()), Pt(1, 3), epsilon)
	assertNear(t, Pt(0, 1).Transform(f.Basis()), Pt(0, 2), epsilon)

	// Translations are interpreted in the frame's current coordinates.
	f.Translate(1, 0)
	assertNear(t, f.Origin(), Pt(1, 3), epsilon)
}

func TestFrameTransformTo(t *testing.T) {
	const epsilon = 1e-12
	world := NewFrame("world")
	f := NewFrame("f")
	f.Translate(3, 0)
	f.Rotate(math.Pi)
	g := NewFrame("g")
	g.Translate(0, 5)

	p := Pt(1, 1)
	assertNear(t, p.Transform(f.TransformTo(world)), Pt(2, -1), epsilon)
	assertNear(t, p.Transform(f.TransformTo(g)), Pt(2, -6), epsilon)
	assertNear(t, p.Transform(f.TransformTo(g)).Transform(g.TransformTo(f)), p, epsilon)

	m := f.MatrixTo(g)
	diff(t, Vec2{}, m.Translation())
	diff(t, Vec(-1, -1), Vec(1, 1).Transform(m), approx)
}

func TestFrameClone(t *testing.T) {
	f := NewFrame("f")
	g := f.Clone()
	g.Translate(1, 1)
	diff(t, Pt(0, 0), f.Origin())
	diff(t, Pt(1, 1), g.Origin())
}

func TestNewFrameFromBasis(t *testing.T) {
	if _, err := NewFrameFromBasis("flat", Scale(1, 0)); err == nil {
		t.Error("expected error for singular basis")
	}
	f, err := NewFrameFromBasis("shifted", Translate(Vec(1, 2)))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(1, 2), f.Origin())
	if s := f.String(); s != `frame "shifted" at (1, 2), x axis ⟨1, 0⟩` {
		t.Errorf("unexpected String: %s", s)
	}
}
