package conic

import (
	"math"
	"math/rand"
	"testing"
)

func TestEval(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for _, c := range randomConics(50) {
		x, y := r.Float64()*10-5, r.Float64()*10-5
		want := c.A*math.Pow(x, 2) + c.B*x*y + c.C*math.Pow(y, 2) + c.D*x + c.E*y + c.F
		diff(t, want, c.Eval(x, y), approx)
	}

	c := New(1, 0, 1, 0, 0, -4, nil)
	if v := c.Eval(2, 0); v != 0 {
		t.Errorf("(2, 0) is not on the circle, got %v", v)
	}
	if v := c.Eval(0, 0); v != -4 {
		t.Errorf("got %v, want -4", v)
	}
}

func TestPointsAt(t *testing.T) {
	c := New(1, 0, 1, 0, 0, -25, nil)
	pts, n := c.PointsAt(3)
	diff(t, 2, n)
	diff(t, []Point{Pt(3, -4), Pt(3, 4)}, pts[:n], approx)

	if _, n := c.PointsAt(6); n != 0 {
		t.Errorf("got %d points outside the circle, want 0", n)
	}

	// x² = y is linear in y.
	p := New(1, 0, 0, 0, -1, 0, nil)
	pts, n = p.PointsAt(3)
	diff(t, 1, n)
	diff(t, Pt(3, 9), pts[0], approx)

	for _, c := range randomConics(20) {
		pts, n := c.PointsAt(0.5)
		for _, pt := range pts[:n] {
			if v := c.Eval(pt.X, pt.Y); math.Abs(v) > 1e-9*c.scale()*(1+pt.Y*pt.Y) {
				t.Errorf("%s: point %s evaluates to %g", c, pt, v)
			}
		}
	}
}

func TestCloneSharesFrame(t *testing.T) {
	f := NewFrame("f")
	c := New(1, 2, 3, 4, 5, 6, f)

	cc := c.Clone()
	cc.A = 10
	if c.A != 1 {
		t.Error("modifying the clone modified the original")
	}
	if cc.Frame != f {
		t.Error("clone doesn't share the frame")
	}

	fc := FromConic(*c)
	diff(t, c.Coefficients(), fc.Coefficients())
	if fc.Frame != f {
		t.Error("copy doesn't share the frame")
	}

	dc := c.DeepClone()
	if dc.Frame == f {
		t.Error("deep clone shares the frame")
	}
	dc.Frame.Translate(1, 1)
	diff(t, Pt(0, 0), f.Origin())
	diff(t, c.Coefficients(), dc.Coefficients())
}

func TestConicString(t *testing.T) {
	tests := []struct {
		c    *Conic
		want string
	}{
		{New(1, 0, 1, 0, 0, -4, nil), "x² + y² - 4 = 0"},
		{New(-2, 1, 0, 0.5, -1, 0, nil), "-2x² + xy + 0.5x - y = 0"},
		{New(0, 0, 0, 0, 0, 0, nil), "0 = 0"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestDeterminantDiscriminant(t *testing.T) {
	c := New(5, 4, 5, 0, 0, -9, nil)
	diff(t, 21.0, c.Determinant())
	diff(t, -84.0, c.Discriminant())
}
