package conic

import "math"

// Line is the line through P0 and P1.
//
// Queries that describe infinite lines (asymptotes, directrices, the
// components of degenerate conics) use P0 and P1 as two points on the line.
// Queries that describe segments (the axes of an ellipse, say) use them as the
// segment's endpoints.
type Line struct {
	P0 Point
	P1 Point
}

// Length returns the distance between the line's two points.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Direction returns the unit vector pointing from P0 to P1.
func (l Line) Direction() Vec2 {
	return l.P1.Sub(l.P0).Normalize()
}

// Eval returns P0 + t·(P1−P0).
func (l Line) Eval(t float64) Point {
	return l.P0.Translate(l.P1.Sub(l.P0).Mul(t))
}

// Midpoint returns the point halfway between P0 and P1.
func (l Line) Midpoint() Point {
	return l.Eval(0.5)
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross. It reports false for parallel lines.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// Distance returns the distance between pt and the infinite line.
func (l Line) Distance(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	return math.Abs(d.Cross(pt.Sub(l.P0))) / d.Hypot()
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}
