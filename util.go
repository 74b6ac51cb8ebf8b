package xdiagram

import (
	"deedles.dev/xdiagram/bounds"
	"deedles.dev/xdiagram/geom"
)

// Rebounder is an Object whose bounding region can be replaced
// without touching its content.
type Rebounder[T geom.Float, D any] interface {
	Object[T, D]
	SetBounds(bounds.Bounds[T]) D
}

// WithBounds returns obj with the bounding region of ref.
func WithBounds[T geom.Float, D Rebounder[T, D]](ref bounds.Boundable[T], obj D) D {
	return obj.SetBounds(ref.Bounds())
}

// Phantom returns a diagram with no content and the bounding region
// of ref. It takes up space in a layout but draws nothing.
func Phantom[T geom.Float, C any](ref bounds.Boundable[T]) Diagram[T, C] {
	return Diagram[T, C]{bounds: ref.Bounds()}
}

// Pad returns obj with its bounding region scaled by factor about its
// local origin. The content is untouched. Because the scaling is about
// the local origin, an object whose origin is off-center gets more
// padding on its far side.
func Pad[T geom.Float, D Rebounder[T, D]](factor T, obj D) D {
	return obj.SetBounds(obj.Bounds().Scale(factor))
}

// Strut returns an invisible spacer whose bounding region is the
// segment of length |v| along v centered on the local origin. A zero v
// yields a phantom point at the origin.
func Strut[T geom.Float, C any](v geom.Vec[T]) Diagram[T, C] {
	return Phantom[T, C](bounds.OfSegment(v).Translate(v.Scale(-0.5)))
}

// Extent returns the width of obj along v, in multiples of the length
// of v.
func Extent[T geom.Float, D Object[T, D]](v geom.Vec[T], obj D) T {
	return obj.Bounds().Extent(v)
}
