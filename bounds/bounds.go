// Package bounds represents the spatial extent of an object by its
// support function rather than by any concrete shape.
//
// A Bounds answers a single question: given a direction v, how far
// from the local origin, in multiples of v, does the region extend?
// The boundary point in direction v is then origin + b.At(v)*v. This
// is enough to place objects next to each other without knowing what
// they look like.
package bounds

import (
	"deedles.dev/xdiagram/geom"
)

// Boundable is implemented by anything that has a bounding region.
type Boundable[T geom.Float] interface {
	Bounds() Bounds[T]
}

// Bounds is a bounding region given by its support function. The
// zero Bounds is the empty region, which is the identity of Union.
//
// Bounds values are immutable. Every method returns a new region.
type Bounds[T geom.Float] struct {
	f func(geom.Vec[T]) T
}

// New returns a region with the given support function. For a
// non-zero direction v, f(v) must return the scalar s such that
// origin + s*v lies on the boundary of the region, which implies
// f(k*v) = f(v)/k for k > 0. f is never called with a zero vector.
func New[T geom.Float](f func(geom.Vec[T]) T) Bounds[T] {
	return Bounds[T]{f: f}
}

// Bounds returns b, so that standalone regions can be used wherever a
// Boundable is expected.
func (b Bounds[T]) Bounds() Bounds[T] { return b }

// IsEmpty reports whether b is the empty region.
func (b Bounds[T]) IsEmpty() bool { return b.f == nil }

// At evaluates the support function of b in direction v. The empty
// region and the zero direction both yield zero, which places the
// boundary at the local origin.
func (b Bounds[T]) At(v geom.Vec[T]) T {
	if b.f == nil || v.IsZero() {
		return 0
	}
	return b.f(v)
}

// BoundaryV returns the vector from the local origin to the boundary
// of b in direction v.
func (b Bounds[T]) BoundaryV(v geom.Vec[T]) geom.Vec[T] {
	return v.Scale(b.At(v))
}

// Boundary returns the point on the boundary of b in direction v.
func (b Bounds[T]) Boundary(v geom.Vec[T]) geom.Point[T] {
	return geom.Origin[T]().Add(b.BoundaryV(v))
}

// Extent returns the width of b along v, in multiples of the length
// of v.
func (b Bounds[T]) Extent(v geom.Vec[T]) T {
	return b.At(v) + b.At(v.Neg())
}

// Union returns the smallest region, as far as a support function can
// tell, that contains both b and o.
func (b Bounds[T]) Union(o Bounds[T]) Bounds[T] {
	switch {
	case b.f == nil:
		return o
	case o.f == nil:
		return b
	}

	f, g := b.f, o.f
	return Bounds[T]{f: func(v geom.Vec[T]) T {
		return max(f(v), g(v))
	}}
}

// Unions returns the union of all of the given regions.
func Unions[T geom.Float](bs ...Bounds[T]) Bounds[T] {
	var r Bounds[T]
	for _, b := range bs {
		r = r.Union(b)
	}
	return r
}

// Translate returns b moved by t relative to the local origin.
func (b Bounds[T]) Translate(t geom.Vec[T]) Bounds[T] {
	if b.f == nil || t.IsZero() {
		return b
	}

	f := b.f
	return Bounds[T]{f: func(v geom.Vec[T]) T {
		return f(v) + t.Dot(v)/v.LenSq()
	}}
}

// Scale returns b scaled uniformly by k about the local origin.
func (b Bounds[T]) Scale(k T) Bounds[T] {
	if b.f == nil {
		return b
	}

	f := b.f
	if k < 0 {
		return Bounds[T]{f: func(v geom.Vec[T]) T {
			return -k * f(v.Neg())
		}}
	}
	return Bounds[T]{f: func(v geom.Vec[T]) T {
		return k * f(v)
	}}
}
