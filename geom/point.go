package geom

import "fmt"

// Point is a location in an affine space. Points can't be added to
// each other, but the difference between two points is a Vec and a
// Vec can be added to a Point.
type Point[T Float] struct {
	v Vec[T]
}

// Pt returns the point at the given coordinates relative to the
// origin.
func Pt[T Float](xs ...T) Point[T] {
	return Point[T]{v: V(xs...)}
}

// Origin returns the origin of the space. It is the zero Point.
func Origin[T Float]() Point[T] { return Point[T]{} }

// Vec returns the vector from the origin to p.
func (p Point[T]) Vec() Vec[T] { return p.v }

// Add returns p translated by v.
func (p Point[T]) Add(v Vec[T]) Point[T] {
	return Point[T]{v: p.v.Add(v)}
}

// Sub returns the vector from q to p.
func (p Point[T]) Sub(q Point[T]) Vec[T] {
	return p.v.Sub(q.v)
}

// Eq reports whether p and q are within Tolerance[T] of each other in
// every coordinate.
func (p Point[T]) Eq(q Point[T]) bool {
	return p.v.Eq(q.v)
}

func (p Point[T]) String() string {
	return fmt.Sprintf("P%v", p.v)
}

// Centroid returns the affine mean of points. There is no mean of
// zero points, so an empty argument list yields ErrEmptyInput.
func Centroid[T Float](points ...Point[T]) (Point[T], error) {
	if len(points) == 0 {
		return Point[T]{}, fmt.Errorf("centroid: %w", ErrEmptyInput)
	}

	var sum Vec[T]
	for _, p := range points {
		sum = sum.Add(p.v)
	}
	return Point[T]{v: sum.Scale(1 / T(len(points)))}, nil
}
