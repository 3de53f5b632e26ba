package conic

import (
	"fmt"
	"math"
)

// Feature queries reduce the conic internally, on a copy. They never modify
// the conic or its frame, and their results are in the coordinates of the
// conic's current frame. Queries that are not meaningful for the conic's kind
// return an error wrapping ErrUnsupportedForType.

type canonical struct {
	conic Conic
	red   Reduction
	kind  Kind
}

func (c Conic) canonicalize() (canonical, error) {
	canon, red, err := c.Reduce()
	if err != nil {
		return canonical{}, err
	}
	return canonical{conic: canon, red: red, kind: canon.classify()}, nil
}

func unsupported(op string, k Kind) error {
	return fmt.Errorf("%w: %s of %s", ErrUnsupportedForType, op, k)
}

func (cn canonical) point(v Vec2) Point {
	return Point(v).Transform(cn.red.Affine())
}

func (cn canonical) line(p0, p1 Vec2) Line {
	return Line{cn.point(p0), cn.point(p1)}
}

// principal returns the semi-axis lengths of an ellipse, circle or hyperbola,
// the major (or transverse) one first, along with the canonical direction of
// the major axis.
func (cn canonical) principal() (major, minor float64, u Vec2) {
	c := cn.conic
	// Squared semi-axes along the canonical x and y axes. For hyperbolas
	// exactly one of them is negative.
	sx := -c.F / c.A
	sy := -c.F / c.C
	switch cn.kind {
	case EllipseKind, CircleKind:
		if sx >= sy {
			return math.Sqrt(sx), math.Sqrt(sy), Vec(1, 0)
		}
		return math.Sqrt(sy), math.Sqrt(sx), Vec(0, 1)
	case HyperbolaKind:
		if sx > 0 {
			return math.Sqrt(sx), math.Sqrt(-sy), Vec(1, 0)
		}
		return math.Sqrt(sy), math.Sqrt(-sx), Vec(0, 1)
	default:
		panic("unreachable")
	}
}

// focal returns the focal parameter p of a parabola together with the
// canonical direction of its axis. The vertex is the canonical origin and the
// focus lies at p·u.
func (cn canonical) focal() (p float64, u Vec2) {
	c := cn.conic
	if c.A != 0 {
		// A·x² + E·y = 0, or x² = 4p·y
		return -c.E / (4 * c.A), Vec(0, 1)
	}
	// C·y² + D·x = 0, or y² = 4p·x
	return -c.D / (4 * c.C), Vec(1, 0)
}

func perp(u Vec2) Vec2 {
	return Vec(-u.Y, u.X)
}

func isCentral(k Kind) bool {
	return k == EllipseKind || k == CircleKind || k == HyperbolaKind
}

// SemiAxes returns the semi-axis lengths of an ellipse, circle or hyperbola.
// X holds the semi-major axis (for hyperbolas, the transverse one) and Y the
// semi-minor (conjugate) axis. For circles both are the radius.
func (c Conic) SemiAxes() (Vec2, error) {
	cn, err := c.canonicalize()
	if err != nil {
		return Vec2{}, err
	}
	if !isCentral(cn.kind) {
		return Vec2{}, unsupported("semi-axes", cn.kind)
	}
	a, b, _ := cn.principal()
	return Vec(a, b), nil
}

// Vertices returns the two vertices on the major axis of an ellipse or
// circle, the two vertices of a hyperbola, or the vertex of a parabola. The
// vertices of a circle are the ends of its diameter along the canonical x
// axis.
func (c Conic) Vertices() ([]Point, error) {
	cn, err := c.canonicalize()
	if err != nil {
		return nil, err
	}
	switch {
	case isCentral(cn.kind):
		a, _, u := cn.principal()
		return []Point{cn.point(u.Mul(-a)), cn.point(u.Mul(a))}, nil
	case cn.kind == ParabolaKind:
		return []Point{cn.point(Vec2{})}, nil
	default:
		return nil, unsupported("vertices", cn.kind)
	}
}

// Foci returns the foci of an ellipse or hyperbola, or the single focus of a
// circle (its center) or a parabola.
func (c Conic) Foci() ([]Point, error) {
	cn, err := c.canonicalize()
	if err != nil {
		return nil, err
	}
	switch cn.kind {
	case CircleKind:
		return []Point{cn.point(Vec2{})}, nil
	case EllipseKind, HyperbolaKind:
		a, b, u := cn.principal()
		var f float64
		if cn.kind == EllipseKind {
			f = math.Sqrt(max(0, a*a-b*b))
		} else {
			f = math.Hypot(a, b)
		}
		return []Point{cn.point(u.Mul(-f)), cn.point(u.Mul(f))}, nil
	case ParabolaKind:
		p, u := cn.focal()
		return []Point{cn.point(u.Mul(p))}, nil
	default:
		return nil, unsupported("foci", cn.kind)
	}
}

// Axes returns the axes of symmetry.
//
// For ellipses, circles and hyperbolas these are two segments through the
// center: the major (transverse) axis between the vertices, followed by the
// minor (conjugate) axis. For parabolas it is the single axis, from the
// vertex to the focus.
func (c Conic) Axes() ([]Line, error) {
	cn, err := c.canonicalize()
	if err != nil {
		return nil, err
	}
	switch {
	case isCentral(cn.kind):
		a, b, u := cn.principal()
		v := perp(u)
		return []Line{
			cn.line(u.Mul(-a), u.Mul(a)),
			cn.line(v.Mul(-b), v.Mul(b)),
		}, nil
	case cn.kind == ParabolaKind:
		p, u := cn.focal()
		return []Line{cn.line(Vec2{}, u.Mul(p))}, nil
	default:
		return nil, unsupported("axes", cn.kind)
	}
}

// Asymptotes returns the asymptotes of a hyperbola. Both lines start at the
// center.
func (c Conic) Asymptotes() ([2]Line, error) {
	cn, err := c.canonicalize()
	if err != nil {
		return [2]Line{}, err
	}
	if cn.kind != HyperbolaKind {
		return [2]Line{}, unsupported("asymptotes", cn.kind)
	}
	a, b, u := cn.principal()
	v := perp(u)
	return [2]Line{
		cn.line(Vec2{}, u.Mul(a).Add(v.Mul(b))),
		cn.line(Vec2{}, u.Mul(a).Sub(v.Mul(b))),
	}, nil
}

// Eccentricity returns the eccentricity of an ellipse (between 0 and 1), a
// circle (0), a parabola (1) or a hyperbola (greater than 1).
func (c Conic) Eccentricity() (float64, error) {
	cn, err := c.canonicalize()
	if err != nil {
		return 0, err
	}
	switch cn.kind {
	case CircleKind:
		return 0, nil
	case ParabolaKind:
		return 1, nil
	case EllipseKind:
		a, b, _ := cn.principal()
		return math.Sqrt(max(0, 1-(b*b)/(a*a))), nil
	case HyperbolaKind:
		a, b, _ := cn.principal()
		return math.Sqrt(1 + (b*b)/(a*a)), nil
	default:
		return 0, unsupported("eccentricity", cn.kind)
	}
}

// Directrices returns the two directrices of an ellipse or hyperbola, or the
// directrix of a parabola. Circles have no directrix.
func (c Conic) Directrices() ([]Line, error) {
	cn, err := c.canonicalize()
	if err != nil {
		return nil, err
	}
	switch cn.kind {
	case EllipseKind, HyperbolaKind:
		a, b, u := cn.principal()
		var e float64
		if cn.kind == EllipseKind {
			e = math.Sqrt(1 - (b*b)/(a*a))
		} else {
			e = math.Sqrt(1 + (b*b)/(a*a))
		}
		v := perp(u)
		d := u.Mul(a / e)
		return []Line{
			cn.line(d.Negate(), d.Negate().Add(v)),
			cn.line(d, d.Add(v)),
		}, nil
	case ParabolaKind:
		p, u := cn.focal()
		d := u.Mul(-p)
		return []Line{cn.line(d, d.Add(perp(u)))}, nil
	default:
		return nil, unsupported("directrices", cn.kind)
	}
}

// Lines returns the lines that make up a degenerate conic: two lines for
// intersecting and parallel pairs, one for coincident lines.
func (c Conic) Lines() ([]Line, error) {
	cn, err := c.canonicalize()
	if err != nil {
		return nil, err
	}
	cc := cn.conic
	switch cn.kind {
	case IntersectingLinesKind:
		// A·x² + C·y² = 0 with A and C of opposite sign.
		sa, sc := math.Sqrt(math.Abs(cc.A)), math.Sqrt(math.Abs(cc.C))
		return []Line{
			cn.line(Vec2{}, Vec(sc, sa)),
			cn.line(Vec2{}, Vec(sc, -sa)),
		}, nil
	case ParallelLinesKind, CoincidentLinesKind:
		// p·u² + F = 0, the lines run along v.
		p, u := cc.A, Vec(1, 0)
		if p == 0 {
			p, u = cc.C, Vec(0, 1)
		}
		v := perp(u)
		if cn.kind == CoincidentLinesKind {
			return []Line{cn.line(Vec2{}, v)}, nil
		}
		r := u.Mul(math.Sqrt(-cc.F / p))
		return []Line{
			cn.line(r.Negate(), r.Negate().Add(v)),
			cn.line(r, r.Add(v)),
		}, nil
	default:
		return nil, unsupported("lines", cn.kind)
	}
}

// Ellipse returns the ellipse or circle described by c.
func (c Conic) Ellipse() (Ellipse, error) {
	cn, err := c.canonicalize()
	if err != nil {
		return Ellipse{}, err
	}
	if cn.kind != EllipseKind && cn.kind != CircleKind {
		return Ellipse{}, unsupported("ellipse", cn.kind)
	}
	cc := cn.conic
	// The unit circle, stretched onto the canonical semi-axes and mapped back
	// into c's coordinates.
	stretch := Scale(math.Sqrt(-cc.F/cc.A), math.Sqrt(-cc.F/cc.C))
	return NewEllipseFromAffine(cn.red.Affine().Mul(stretch)), nil
}

// Circle returns the circle described by c.
func (c Conic) Circle() (Circle, error) {
	cn, err := c.canonicalize()
	if err != nil {
		return Circle{}, err
	}
	if cn.kind != CircleKind {
		return Circle{}, unsupported("circle", cn.kind)
	}
	a, _, _ := cn.principal()
	return Circle{Center: Point(cn.red.Translation), Radius: a}, nil
}
