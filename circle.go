package conic

import "math"

type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether pt lies strictly inside the circle.
func (c Circle) Contains(pt Point) bool {
	return pt.Distance(c.Center) < math.Abs(c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) Perimeter() float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	x := c.Center.X
	y := c.Center.Y
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}

func (c Circle) Transform(aff Affine) Ellipse {
	return NewEllipse(c.Center, Vec(c.Radius, c.Radius), 0).Transform(aff)
}

// Conic returns the equation of the circle, attached to frame.
func (c Circle) Conic(frame *Frame) *Conic {
	x, y := c.Center.Splat()
	return New(1, 0, 1, -2*x, -2*y, x*x+y*y-c.Radius*c.Radius, frame)
}
