package conic

import "fmt"

// Frame is a named Cartesian coordinate frame in the plane.
//
// A frame is described by its basis, the affine map from coordinates in the
// frame to coordinates in a common world frame. The world frame itself is any
// frame whose basis is the identity.
//
// Frames are shared by reference. Several conics may hold the same *Frame, and
// moving the frame (for example through [Conic.Simplify]) is visible to all of
// them. Use [Frame.Clone] to obtain an independent frame.
type Frame struct {
	Name  string
	basis Affine
}

// NewFrame returns a frame that coincides with the world frame.
func NewFrame(name string) *Frame {
	return &Frame{Name: name, basis: Identity}
}

// NewFrameFromBasis returns a frame whose coordinates map to world coordinates
// through basis. It returns an error if basis is not invertible.
func NewFrameFromBasis(name string, basis Affine) (*Frame, error) {
	if det := basis.Determinant(); det == 0 || basis.IsNaN() || basis.IsInf() {
		return nil, fmt.Errorf("conic: basis of frame %q is not invertible", name)
	}
	return &Frame{Name: name, basis: basis}, nil
}

// Basis returns the map from coordinates in f to world coordinates.
func (f *Frame) Basis() Affine {
	return f.basis
}

// Origin returns the origin of f in world coordinates.
func (f *Frame) Origin() Point {
	return Point(f.basis.Translation())
}

// Translate moves the origin of f to the point (h, k), given in f's current
// coordinates.
func (f *Frame) Translate(h, k float64) {
	f.basis = f.basis.PreTranslate(Vec(h, k))
}

// Rotate rotates the axes of f by th radians about its origin.
func (f *Frame) Rotate(th float64) {
	f.basis = f.basis.PreRotate(th)
}

// TransformTo returns the map from coordinates in f to coordinates in o.
func (f *Frame) TransformTo(o *Frame) Affine {
	return o.basis.Invert().Mul(f.basis)
}

// MatrixTo returns the change of basis from f to o, ignoring the offset
// between the two origins. It maps directions, not points.
func (f *Frame) MatrixTo(o *Frame) Affine {
	return f.TransformTo(o).WithTranslation(Vec2{})
}

// Clone returns an independent copy of f.
func (f *Frame) Clone() *Frame {
	c := *f
	return &c
}

func (f *Frame) String() string {
	o := f.Origin()
	x := Vec(f.basis.N0, f.basis.N1)
	return fmt.Sprintf("frame %q at %s, x axis %s", f.Name, o, x)
}
