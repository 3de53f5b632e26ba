package conic

import "errors"

var (
	// ErrSingularSystem indicates that the quadratic form of a conic is
	// singular (det(Q) = 0), so the conic has no unique center.
	ErrSingularSystem = errors.New("conic: singular quadratic form, no unique center")
	// ErrUnsupportedForType indicates a feature query that is not defined for
	// the conic's classification, such as the asymptotes of an ellipse.
	ErrUnsupportedForType = errors.New("conic: operation not defined for this kind of conic")
	// ErrNotCanonicalized indicates that the conic has not been simplified.
	ErrNotCanonicalized = errors.New("conic: conic has not been simplified")
	// ErrInvalidConic indicates that a, b and c are all zero, or that a
	// coefficient is not finite.
	ErrInvalidConic = errors.New("conic: not a second-degree curve")
	// ErrNoFrame indicates a frame operation on a conic without a frame.
	ErrNoFrame = errors.New("conic: no coordinate frame")
)
