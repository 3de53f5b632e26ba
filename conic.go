package conic

import (
	"math"
	"strconv"
	"strings"
)

// Epsilon is the relative tolerance used to decide whether a coefficient is
// zero. The quadratic coefficients are compared against Epsilon times the
// largest of them; linear and constant terms against Epsilon times the size of
// the terms they were computed from.
const Epsilon = 1e-9

// Conic is the second-degree curve
//
//	A·x² + B·xy + C·y² + D·x + E·y + F = 0
//
// in the coordinates of Frame.
//
// The conic does not own its frame. [Conic.Simplify] moves the frame along
// with the coefficients, which every other conic sharing the frame will
// observe. Frame may be nil for conics that are not attached to any frame.
type Conic struct {
	A, B, C, D, E, F float64
	Frame            *Frame

	// reduction is the transform applied by the last call to Simplify.
	reduction  Reduction
	simplified bool
}

// New returns the conic with the given coefficients in frame.
//
// New does not validate the coefficients. A conic whose A, B and C are all
// zero is reported as [UndefinedKind] by [Conic.Identify], and operations that
// need a quadratic curve return [ErrInvalidConic].
func New(a, b, c, d, e, f float64, frame *Frame) *Conic {
	return &Conic{A: a, B: b, C: c, D: d, E: e, F: f, Frame: frame}
}

// FromConic returns a copy of other. The copy shares other's frame.
func FromConic(other Conic) *Conic {
	c := other
	return &c
}

// Clone returns a copy of c that shares c's frame.
func (c Conic) Clone() *Conic {
	return FromConic(c)
}

// DeepClone returns a copy of c with its own copy of c's frame.
func (c Conic) DeepClone() *Conic {
	cc := FromConic(c)
	if c.Frame != nil {
		cc.Frame = c.Frame.Clone()
	}
	return cc
}

// Coefficients returns (A, B, C, D, E, F).
func (c Conic) Coefficients() [6]float64 {
	return [6]float64{c.A, c.B, c.C, c.D, c.E, c.F}
}

// withCoefficients returns a conic in the same frame with the given
// coefficients and no record of a previous simplification.
func (c Conic) withCoefficients(a, b, cc, d, e, f float64) Conic {
	return Conic{A: a, B: b, C: cc, D: d, E: e, F: f, Frame: c.Frame}
}

// Eval returns the left-hand side of the conic's equation at (x, y). Points on
// the curve evaluate to zero.
func (c Conic) Eval(x, y float64) float64 {
	return c.A*x*x + c.B*x*y + c.C*y*y + c.D*x + c.E*y + c.F
}

// PointsAt returns the points of the curve whose x coordinate is x, solving
// the equation for y. The second return value states how many points were
// found; it is zero where the vertical line through x misses the curve.
//
// If C is zero the equation is linear in y and at most one point is returned.
// If the whole vertical line lies on the curve, a single point at y = 0 is
// returned.
func (c Conic) PointsAt(x float64) ([2]Point, int) {
	roots, n := SolveQuadratic(
		c.A*x*x+c.D*x+c.F,
		c.B*x+c.E,
		c.C,
	)
	var pts [2]Point
	for i, y := range roots[:n] {
		pts[i] = Pt(x, y)
	}
	return pts, n
}

// quadScale returns the largest magnitude of the quadratic coefficients. It is
// the scale against which A, B and C are judged to be zero.
func (c Conic) quadScale() float64 {
	return max(math.Abs(c.A), math.Abs(c.B), math.Abs(c.C))
}

func (c Conic) isFinite() bool {
	for _, v := range c.Coefficients() {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// Determinant returns the determinant of the quadratic form matrix
//
//	| A   B/2 |
//	| B/2 C   |
//
// It is positive for ellipses, negative for hyperbolas and zero for
// parabolas, and it does not change under rotation or translation.
func (c Conic) Determinant() float64 {
	return c.A*c.C - c.B*c.B/4
}

// Discriminant returns B² − 4AC.
func (c Conic) Discriminant() float64 {
	return c.B*c.B - 4*c.A*c.C
}

// String formats the conic's equation, omitting zero terms.
func (c Conic) String() string {
	terms := [...]struct {
		v   float64
		sym string
	}{
		{c.A, "x²"},
		{c.B, "xy"},
		{c.C, "y²"},
		{c.D, "x"},
		{c.E, "y"},
		{c.F, ""},
	}
	var sb strings.Builder
	for _, t := range terms {
		if t.v == 0 {
			continue
		}
		v := t.v
		switch {
		case sb.Len() == 0 && v < 0:
			sb.WriteString("-")
			v = -v
		case sb.Len() == 0:
		case v < 0:
			sb.WriteString(" - ")
			v = -v
		default:
			sb.WriteString(" + ")
		}
		if v != 1 || t.sym == "" {
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteString(t.sym)
	}
	if sb.Len() == 0 {
		sb.WriteString("0")
	}
	sb.WriteString(" = 0")
	return sb.String()
}
