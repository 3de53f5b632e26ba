package conic

import "math"

// Ellipse is an ellipse described as the image of the unit circle under an
// affine map. [Conic.Ellipse] converts elliptic conics to this form.
type Ellipse struct {
	inner Affine
}

// NewEllipse returns the ellipse with the given center and radii, whose first
// radius lies along a line rotated by xRotation radians from the x axis.
func NewEllipse(center Point, radii Vec2, xRotation float64) Ellipse {
	// The unit circle is symmetric about both axes, so negative radii
	// describe the same ellipse.
	return Ellipse{
		inner: Translate(Vec2(center)).
			Mul(Rotate(xRotation)).
			Mul(Scale(math.Abs(radii.X), math.Abs(radii.Y))),
	}
}

// NewEllipseFromAffine creates an ellipse from an affine transformation of the unit
// circle.
func NewEllipseFromAffine(aff Affine) Ellipse {
	return Ellipse{inner: aff}
}

// Center returns the center of the ellipse.
func (e Ellipse) Center() Point {
	return Point(e.inner.Translation())
}

// Radii returns the two radii of the ellipse, the larger one first. The first
// radius lies along the direction given by [Ellipse.Rotation].
func (e Ellipse) Radii() Vec2 {
	radii, _ := e.inner.svd()
	return radii
}

// Rotation returns the angle of the first radius, in radians.
func (e Ellipse) Rotation() float64 {
	_, rot := e.inner.svd()
	return rot
}

// RadiiRotation returns the radii and the rotation of this ellipse.
func (e Ellipse) RadiiRotation() (Vec2, float64) {
	return e.inner.svd()
}

func (e Ellipse) Area() float64 {
	return math.Pi * math.Abs(e.inner.Determinant())
}

// Contains reports whether pt lies strictly inside the ellipse.
func (e Ellipse) Contains(pt Point) bool {
	return Vec2(pt.Transform(e.inner.Invert())).Hypot() < 1
}

// BoundingBox returns the tight axis-aligned bounding box of the ellipse.
func (e Ellipse) BoundingBox() Rect {
	// The ellipse is c + u·cos t + v·sin t, where u and v are the columns
	// of the linear part. Its extent along x is √(u.x² + v.x²), and
	// likewise for y.
	aff := e.inner
	rangeX := math.Hypot(aff.N0, aff.N2)
	rangeY := math.Hypot(aff.N1, aff.N3)
	c := e.Center()
	return Rect{
		X0: c.X - rangeX,
		Y0: c.Y - rangeY,
		X1: c.X + rangeX,
		Y1: c.Y + rangeY,
	}
}

func (e Ellipse) Transform(aff Affine) Ellipse {
	return Ellipse{inner: aff.Mul(e.inner)}
}

// Conic returns the equation of the ellipse, attached to frame.
func (e Ellipse) Conic(frame *Frame) *Conic {
	unit := Conic{A: 1, C: 1, F: -1, Frame: frame}
	c := unit.Transform(e.inner)
	return &c
}
