package conic

import (
	"fmt"
	"math"
)

// TranslateFrame returns the equation of c in a frame whose origin is moved
// to (h, k). Equivalently, it substitutes x → x+h and y → y+k.
//
// A, B and C do not change under translation. The new constant term is the
// value of the old equation at (h, k).
func (c Conic) TranslateFrame(h, k float64) Conic {
	return c.withCoefficients(
		c.A,
		c.B,
		c.C,
		2*c.A*h+c.B*k+c.D,
		2*c.C*k+c.B*h+c.E,
		c.Eval(h, k),
	)
}

// RotateFrame returns the equation of c in a frame whose axes are rotated by
// th radians. Equivalently, it substitutes x → x·cos θ − y·sin θ and
// y → x·sin θ + y·cos θ.
//
// A+C and AC−B²/4 do not change under rotation, and neither does F.
func (c Conic) RotateFrame(th float64) Conic {
	s, co := math.Sincos(th)
	s2, c2 := math.Sincos(2 * th)
	return c.withCoefficients(
		c.A*co*co+c.B*s*co+c.C*s*s,
		(c.C-c.A)*s2+c.B*c2,
		c.A*s*s-c.B*s*co+c.C*co*co,
		c.D*co+c.E*s,
		-c.D*s+c.E*co,
		c.F,
	)
}

// Substitute returns the equation of c in new coordinates p, where the old
// coordinates are aff·p. TranslateFrame and RotateFrame are the special cases
// aff = Translate(⟨h, k⟩) and aff = Rotate(θ).
func (c Conic) Substitute(aff Affine) Conic {
	m0, m1, m2, m3 := aff.N0, aff.N1, aff.N2, aff.N3
	t0, t1 := aff.N4, aff.N5
	// Gradient of the old equation at the new origin.
	g0 := 2*c.A*t0 + c.B*t1 + c.D
	g1 := c.B*t0 + 2*c.C*t1 + c.E
	return c.withCoefficients(
		c.A*m0*m0+c.B*m0*m1+c.C*m1*m1,
		2*c.A*m0*m2+c.B*(m0*m3+m1*m2)+2*c.C*m1*m3,
		c.A*m2*m2+c.B*m2*m3+c.C*m3*m3,
		m0*g0+m1*g1,
		m2*g0+m3*g1,
		c.Eval(t0, t1),
	)
}

// Transform returns the image of the curve under aff, expressed in the same
// frame. A point p lies on c exactly when aff·p lies on the result.
//
// Produces NaN coefficients if aff is not invertible.
func (c Conic) Transform(aff Affine) Conic {
	return c.Substitute(aff.Invert())
}

// ChangeFrame re-expresses c in the coordinates of target. The curve itself
// does not move. c's previous frame is left untouched.
//
// ChangeFrame returns [ErrNoFrame] if c or target has no frame; c is not
// modified in that case.
func (c *Conic) ChangeFrame(target *Frame) error {
	if c.Frame == nil || target == nil {
		return fmt.Errorf("changing frame: %w", ErrNoFrame)
	}
	nc := c.Substitute(target.TransformTo(c.Frame))
	nc.Frame = target
	*c = nc
	return nil
}
