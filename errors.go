package geodesy

import "errors"

// ErrEllipsoidMismatch is returned by operations that require two values
// to share the same reference ellipsoid when they do not. Values on
// different ellipsoids must be brought onto a common datum first (see
// Helmert); they are never coerced silently.
var ErrEllipsoidMismatch = errors.New("ellipsoid mismatch")

// ErrNoConvergence is returned when an iterative latitude solution fails
// to reach its tolerance within the iteration bound. For terrestrial
// inputs the loops converge in a handful of iterations, so hitting the
// bound indicates coordinates far outside the intended domain.
var ErrNoConvergence = errors.New("latitude iteration did not converge")
