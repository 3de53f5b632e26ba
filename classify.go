package conic

import (
	"math"
	"strconv"
)

// Kind is the classification of a conic.
type Kind int

const (
	// UndefinedKind is reported for equations without quadratic terms.
	UndefinedKind Kind = iota
	EllipseKind
	CircleKind
	HyperbolaKind
	ParabolaKind
	// PointKind is the degenerate ellipse consisting of its center only.
	PointKind
	// IntersectingLinesKind is the degenerate hyperbola consisting of its
	// asymptotes.
	IntersectingLinesKind
	ParallelLinesKind
	// CoincidentLinesKind is a single line, counted twice.
	CoincidentLinesKind
	// ImaginaryKind is reported for equations without real solutions, such
	// as x² + y² + 1 = 0 or x² + 1 = 0.
	ImaginaryKind
)

func (k Kind) String() string {
	switch k {
	case UndefinedKind:
		return "undefined"
	case EllipseKind:
		return "ellipse"
	case CircleKind:
		return "circle"
	case HyperbolaKind:
		return "hyperbola"
	case ParabolaKind:
		return "parabola"
	case PointKind:
		return "point"
	case IntersectingLinesKind:
		return "intersecting lines"
	case ParallelLinesKind:
		return "parallel lines"
	case CoincidentLinesKind:
		return "coincident lines"
	case ImaginaryKind:
		return "imaginary"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// IsDegenerate reports whether k is a point, a pair of lines, or has no real
// points.
func (k Kind) IsDegenerate() bool {
	switch k {
	case PointKind, IntersectingLinesKind, ParallelLinesKind, CoincidentLinesKind, ImaginaryKind:
		return true
	default:
		return false
	}
}

// Identify classifies c. It returns [UndefinedKind] if c has no quadratic
// terms or non-finite coefficients.
func (c Conic) Identify() Kind {
	canon, _, err := c.Reduce()
	if err != nil {
		return UndefinedKind
	}
	return canon.classify()
}

// classify classifies a conic in the canonical form produced by Reduce.
func (c Conic) classify() Kind {
	sign := func(v float64) float64 { return math.Copysign(1, v) }
	switch {
	case c.A != 0 && c.C != 0:
		// A·x² + C·y² + F = 0
		switch {
		case sign(c.A) != sign(c.C):
			if c.F == 0 {
				return IntersectingLinesKind
			}
			return HyperbolaKind
		case c.F == 0:
			return PointKind
		case sign(c.F) == sign(c.A):
			return ImaginaryKind
		case math.Abs(c.A-c.C) <= Epsilon*c.quadScale():
			return CircleKind
		default:
			return EllipseKind
		}
	case c.A != 0 || c.C != 0:
		// p·u² + q·v + F = 0, with u, v either x, y or y, x.
		p, q := c.A, c.E
		if p == 0 {
			p, q = c.C, c.D
		}
		switch {
		case q != 0:
			return ParabolaKind
		case c.F == 0:
			return CoincidentLinesKind
		case sign(c.F) == sign(p):
			return ImaginaryKind
		default:
			return ParallelLinesKind
		}
	default:
		return UndefinedKind
	}
}
