package bounds

import (
	"deedles.dev/xdiagram/geom"
)

// OfPoint returns the region consisting of the single point p.
func OfPoint[T geom.Float](p geom.Point[T]) Bounds[T] {
	pv := p.Vec()
	return New(func(v geom.Vec[T]) T {
		return pv.Dot(v) / v.LenSq()
	})
}

// OfPoints returns the convex hull of points. With no points, it
// returns the empty region.
func OfPoints[T geom.Float](points ...geom.Point[T]) Bounds[T] {
	if len(points) == 0 {
		return Bounds[T]{}
	}

	pvs := make([]geom.Vec[T], 0, len(points))
	for _, p := range points {
		pvs = append(pvs, p.Vec())
	}

	return New(func(v geom.Vec[T]) T {
		m := pvs[0].Dot(v)
		for _, pv := range pvs[1:] {
			m = max(m, pv.Dot(v))
		}
		return m / v.LenSq()
	})
}

// OfSegment returns the line segment from the local origin to the
// point at offset s.
func OfSegment[T geom.Float](s geom.Vec[T]) Bounds[T] {
	return New(func(v geom.Vec[T]) T {
		return max(0, s.Dot(v)) / v.LenSq()
	})
}

// OfCircle returns the ball of radius r centered on the local origin.
// It works in any number of dimensions.
func OfCircle[T geom.Float](r T) Bounds[T] {
	return New(func(v geom.Vec[T]) T {
		return r / v.Len()
	})
}

// OfBox returns the axis-aligned box with opposite corners at lo and
// hi. The corners may be given in either order along any axis.
func OfBox[T geom.Float](lo, hi geom.Point[T]) Bounds[T] {
	lv, hv := lo.Vec(), hi.Vec()
	return New(func(v geom.Vec[T]) T {
		var sum T
		for i, x := range v {
			sum += max(lv.At(i)*x, hv.At(i)*x)
		}
		return sum / v.LenSq()
	})
}

// OfRect returns the two-dimensional box of width w and height h
// centered on the local origin.
func OfRect[T geom.Float](w, h T) Bounds[T] {
	return OfBox(geom.Pt(-w/2, -h/2), geom.Pt(w/2, h/2))
}
