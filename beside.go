package xdiagram

import (
	"deedles.dev/xdiagram/bounds"
	"deedles.dev/xdiagram/geom"
)

// BoundaryV returns the vector from the local origin of obj to its
// boundary in direction v.
func BoundaryV[T geom.Float, D Object[T, D]](v geom.Vec[T], obj D) geom.Vec[T] {
	return obj.Bounds().BoundaryV(v)
}

// Boundary returns the point, relative to obj's local origin, where
// its boundary lies in direction v.
func Boundary[T geom.Float, D Object[T, D]](v geom.Vec[T], obj D) geom.Point[T] {
	return obj.Bounds().Boundary(v)
}

// Translate returns obj with its content moved by t relative to its
// local origin.
func Translate[T geom.Float, D Object[T, D]](t geom.Vec[T], obj D) D {
	return obj.MoveOriginBy(t.Neg())
}

// MoveTo returns obj translated so that its local origin sits at p.
func MoveTo[T geom.Float, D Object[T, D]](p geom.Point[T], obj D) D {
	return Translate(p.Vec(), obj)
}

// Align returns obj with its local origin moved onto its own boundary
// in direction v.
func Align[T geom.Float, D Object[T, D]](v geom.Vec[T], obj D) D {
	return obj.MoveOriginBy(BoundaryV(v, obj))
}

// Beside places b next to a in direction v so that the boundary of a
// in direction v touches the boundary of b in direction -v. The result
// has a's local origin.
//
// Beside is associative for a fixed v. The neutral object is a right
// identity, but not a left one: Beside(v, zero, b) is Align(-v, b).
func Beside[T geom.Float, D Object[T, D]](v geom.Vec[T], a, b D) D {
	return besideSep(v, nil, a, b)
}

// besideSep is Beside with b pushed further along by the offset sep.
func besideSep[T geom.Float, D Object[T, D]](v, sep geom.Vec[T], a, b D) D {
	t := BoundaryV(v, a).Add(sep).Sub(BoundaryV(v.Neg(), b))
	return a.Combine(Translate(t, b))
}

// BesideBounds places obj next to the region b in direction v, as
// though b were the first argument to Beside. Only obj is in the
// result, which uses the local origin of b's frame.
func BesideBounds[T geom.Float, D Object[T, D]](b bounds.Bounds[T], v geom.Vec[T], obj D) D {
	return Translate(b.BoundaryV(v), Align(v.Neg(), obj))
}
