package spline

import "fmt"

type Error string

func (e Error) Error() string { return string(e) }

const ErrBadPoint = Error("point is not a usable coordinate")

// InsufficientBackboneError is returned when there are too few points
// to make a curve.
type InsufficientBackboneError struct {
	N   int // backbone points we were given
	Min int // how many we need
}

func (e *InsufficientBackboneError) Error() string {
	return fmt.Sprintf("%d backbone points, need at least %d", e.N, e.Min)
}
