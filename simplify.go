package conic

import (
	"errors"
	"fmt"
	"math"
)

// Reduction describes the change of frame that brings a conic into canonical
// form: first the origin moves to Translation, then the axes rotate by
// Rotation.
type Reduction struct {
	// Translation is the canonical origin in the conic's original
	// coordinates. For conics with a unique center this is the center. For
	// parabolas it is the vertex.
	Translation Vec2
	// Rotation is the angle from the original x axis to the canonical x
	// axis, in radians.
	Rotation float64
	// Centered reports whether the conic has a unique center. Only then are
	// both linear terms of the canonical form guaranteed to be zero.
	Centered bool
}

// Affine returns the map from canonical coordinates to the conic's original
// coordinates. Its inverse maps original coordinates to canonical ones, undoing
// the rotation before the translation.
func (r Reduction) Affine() Affine {
	return Translate(r.Translation).Mul(Rotate(r.Rotation))
}

// Center returns the center of c, the solution (h, k) of
//
//	A·h + B/2·k = −D/2
//	B/2·h + C·k = −E/2
//
// It returns [ErrSingularSystem] if the quadratic form is singular, which is
// the case for parabolas and for pairs of parallel or coincident lines.
func (c Conic) Center() (Point, error) {
	if err := c.validate(); err != nil {
		return Point{}, err
	}
	if c.singular() {
		return Point{}, ErrSingularSystem
	}
	det := c.Determinant()
	h := (c.B*c.E - 2*c.C*c.D) / (4 * det)
	k := (c.B*c.D - 2*c.A*c.E) / (4 * det)
	return Pt(h, k), nil
}

func (c Conic) validate() error {
	if !c.isFinite() {
		return fmt.Errorf("%w: coefficients of %s are not finite", ErrInvalidConic, c)
	}
	if c.quadScale() == 0 {
		return fmt.Errorf("%w: %s has no quadratic terms", ErrInvalidConic, c)
	}
	return nil
}

// singular reports whether the quadratic form's determinant is zero, relative
// to the size of the quadratic coefficients.
func (c Conic) singular() bool {
	q := c.quadScale()
	return math.Abs(c.Determinant()) <= Epsilon*q*q
}

// rotationAngle returns the angle that eliminates the cross term of the
// quadratic form (a, b, c).
func rotationAngle(a, b, c, tol float64) float64 {
	switch {
	case math.Abs(b) <= tol:
		return 0
	case math.Abs(a-c) <= tol:
		return math.Pi / 4
	default:
		return 0.5 * math.Atan2(b, a-c)
	}
}

// Reduce returns the canonical form of c without modifying c or its frame.
//
// The canonical form is c in a frame translated to c's center and rotated
// onto the eigenvectors of its quadratic form, so that B is zero and, for
// conics with a unique center, D and E are zero too. For parabolas the
// canonical origin is the vertex and exactly one linear term remains. For
// parallel, coincident or imaginary line pairs the canonical origin lies on the
// line of symmetry and both linear terms vanish.
//
// Coefficients that are zero within [Epsilon] are set to exactly zero. The
// quadratic, linear and constant terms are each judged against their own
// magnitude, so the scale of the curve does not affect the result. A cross
// term that survives the rotation is reported as an error.
func (c Conic) Reduce() (Conic, Reduction, error) {
	if err := c.validate(); err != nil {
		return Conic{}, Reduction{}, err
	}
	tq := Epsilon * c.quadScale()
	th := rotationAngle(c.A, c.B, c.C, tq)

	var red Reduction
	center, err := c.Center()
	switch {
	case err == nil:
		red = Reduction{Translation: Vec2(center), Rotation: th, Centered: true}
	case errors.Is(err, ErrSingularSystem):
		red = Reduction{Translation: c.vertexOffset(th), Rotation: th}
	default:
		return Conic{}, Reduction{}, err
	}

	canon := c.TranslateFrame(red.Translation.Splat()).RotateFrame(red.Rotation)
	if math.Abs(canon.B) > tq {
		return Conic{}, Reduction{}, fmt.Errorf("reducing %s: cross term %g survived rotation by %g", c, canon.B, th)
	}
	canon.snap(c.tolerances(red.Translation))
	return canon, red, nil
}

// tolerances holds the magnitudes below which the coefficients of a reduced
// conic are considered zero.
type tolerances struct {
	quadratic float64
	linear    float64
	constant  float64
}

// tolerances returns the tolerances for c reduced by a translation of t.
// Rounding errors in each reduced coefficient are proportional to the terms
// that were summed to produce it, so each tolerance is Epsilon times the size
// of those terms.
func (c Conic) tolerances(t Vec2) tolerances {
	h, k := math.Abs(t.X), math.Abs(t.Y)
	q := c.quadScale()
	a, b, cc := math.Abs(c.A), math.Abs(c.B), math.Abs(c.C)
	d, e := math.Abs(c.D), math.Abs(c.E)
	return tolerances{
		quadratic: Epsilon * q,
		linear:    Epsilon * max(d, e, 2*q*(h+k)),
		// The terms of Eval(h, k).
		constant: Epsilon * (a*h*h + b*h*k + cc*k*k + d*h + e*k + math.Abs(c.F)),
	}
}

// vertexOffset finds the canonical origin of a conic with a singular quadratic
// form. Rotating by th leaves a single square term; completing that square
// removes one linear term, and the remaining linear term (if any) absorbs the
// constant.
func (c Conic) vertexOffset(th float64) Vec2 {
	rot := c.RotateFrame(th)
	// Rotation mixes D and E; whatever is left of the eliminated term is
	// rounding error.
	var tol float64
	if th != 0 {
		tol = Epsilon * max(math.Abs(c.D), math.Abs(c.E))
	}
	var x0, y0 float64
	if math.Abs(rot.C) <= math.Abs(rot.A) {
		// A·x² + D·x + E·y + F
		x0 = -rot.D / (2 * rot.A)
		if math.Abs(rot.E) > tol {
			y0 = -(rot.F - rot.D*rot.D/(4*rot.A)) / rot.E
		}
	} else {
		// C·y² + D·x + E·y + F
		y0 = -rot.E / (2 * rot.C)
		if math.Abs(rot.D) > tol {
			x0 = -(rot.F - rot.E*rot.E/(4*rot.C)) / rot.D
		}
	}
	return Vec(x0, y0).Transform(Rotate(th))
}

// snap sets coefficients that are zero within tol to exactly zero.
func (c *Conic) snap(tol tolerances) {
	for _, v := range []*float64{&c.A, &c.B, &c.C} {
		if math.Abs(*v) <= tol.quadratic {
			*v = 0
		}
	}
	for _, v := range []*float64{&c.D, &c.E} {
		if math.Abs(*v) <= tol.linear {
			*v = 0
		}
	}
	if math.Abs(c.F) <= tol.constant {
		c.F = 0
	}
}

// Simplify brings c into canonical form (see [Conic.Reduce]) and moves c's
// frame to match, so that the curve itself stays where it is. It returns the
// transform that was applied.
//
// Simplify either updates both the coefficients and the frame, or, when it
// returns an error, neither. Other conics that share c's frame observe the
// frame moving; clone the frame first if that is not wanted.
func (c *Conic) Simplify() (Reduction, error) {
	canon, red, err := c.Reduce()
	if err != nil {
		return Reduction{}, err
	}
	if c.Frame != nil {
		c.Frame.Translate(red.Translation.Splat())
		c.Frame.Rotate(red.Rotation)
	}
	canon.Frame = c.Frame
	canon.reduction = red
	canon.simplified = true
	*c = canon
	return red, nil
}

// Reduction returns the transform applied by the most recent call to
// Simplify. It returns [ErrNotCanonicalized] if c has not been simplified, or
// if c was produced by a transform of a simplified conic.
func (c Conic) Reduction() (Reduction, error) {
	if !c.simplified {
		return Reduction{}, ErrNotCanonicalized
	}
	return c.reduction, nil
}

// IsCanonical reports whether c is in the canonical form produced by
// [Conic.Reduce]: no cross term, and no linear terms beyond what its kind
// requires.
func (c Conic) IsCanonical() bool {
	if c.validate() != nil || c.B != 0 {
		return false
	}
	if c.A != 0 && c.C != 0 {
		return c.D == 0 && c.E == 0
	}
	// Parabolas keep the linear term of the non-square variable, and no
	// constant.
	if c.A != 0 {
		return c.D == 0 && (c.E == 0 || c.F == 0)
	}
	return c.E == 0 && (c.D == 0 || c.F == 0)
}
