// Package conic models general second-degree plane curves,
//
//	A·x² + B·xy + C·y² + D·x + E·y + F = 0,
//
// attached to a coordinate [Frame]. It evaluates the equation, re-expresses it
// under translation and rotation of the frame, reduces it to canonical form,
// classifies the curve and derives its geometric features.
//
// # Coefficient transforms
//
// [Conic.TranslateFrame] and [Conic.RotateFrame] return the equation of the
// same curve in a translated or rotated frame. Translation leaves A, B and C
// unchanged; rotation leaves A+C, AC−B²/4 and F unchanged. Both are special
// cases of [Conic.Substitute], which handles arbitrary affine changes of
// coordinates, and which [Conic.ChangeFrame] uses to move a conic between
// frames.
//
// # Canonical form
//
// [Conic.Reduce] finds the translation to the curve's center and the rotation
// onto the eigenvectors of its quadratic form, and returns the resulting
// coefficients together with the [Reduction] that produced them. The
// translation happens first, in the original coordinates, followed by the
// rotation, so mapping canonical coordinates back applies the rotation first
// (see [Reduction.Affine]).
//
// When the quadratic form is singular (parabolas, parallel and coincident
// lines) there is no unique center. [Conic.Center] reports
// [ErrSingularSystem], and Reduce instead rotates first and then translates
// to the parabola's vertex, or onto the line of symmetry of a line pair.
//
// [Conic.Simplify] commits the reduction: the conic's coefficients become the
// canonical ones and its frame is moved to match. Frames are shared, so
// other conics in the same frame observe the move.
//
// # Classification and features
//
// [Conic.Identify] returns the curve's [Kind]. The feature queries
// ([Conic.Center], [Conic.SemiAxes], [Conic.Vertices], [Conic.Foci],
// [Conic.Axes], [Conic.Asymptotes], [Conic.Eccentricity],
// [Conic.Directrices] and [Conic.Lines]) work on conics in any state; they
// reduce a copy internally and report results in the conic's current frame.
// A query that is meaningless for the curve's kind, such as the asymptotes of
// an ellipse, returns an error wrapping [ErrUnsupportedForType].
//
// # Precision
//
// All computations use float64. Quadratic coefficients are considered zero
// when they are within [Epsilon] of zero relative to the largest quadratic
// coefficient. Linear and constant terms of a reduced conic are judged
// relative to the terms they were computed from, so a conic and its scaled
// copies classify alike. Only a conic whose A, B and C are all exactly zero is
// rejected with [ErrInvalidConic].
package conic
