// Package geom provides the affine model that the rest of xdiagram
// is built on: vectors and points in a space of any dimension, and
// the trails and paths whose vertices objects can be placed along.
//
// It is patterned after image.Point, but is generic over the scalar
// type and does not fix the number of dimensions.
package geom

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Float is a constraint for the scalar types that geom types and
// functions can handle.
type Float interface {
	constraints.Float
}

var (
	// ErrInvalidDirection is returned when an operation needs the
	// direction of a vector that has none, such as the zero vector.
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrEmptyInput is returned by operations that are undefined for
	// an empty set of inputs.
	ErrEmptyInput = errors.New("empty input")
)

const (
	// Epsilon is the tolerance used by approximate comparisons of
	// float64 values.
	Epsilon = 1e-9

	// Epsilon32 is the tolerance used by approximate comparisons of
	// float32 values.
	Epsilon32 = 1e-5
)

// Tolerance returns the tolerance that approximate comparisons use
// for T. Types that can't tell 1 from 1+Epsilon, such as float32, get
// Epsilon32.
func Tolerance[T Float]() float64 {
	one := T(1)
	if one+T(Epsilon) == one {
		return Epsilon32
	}
	return Epsilon
}
