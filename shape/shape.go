// Package shape provides basic two-dimensional shapes as diagrams,
// each with the exact bounding region of its outline.
package shape

import (
	"fmt"
	"slices"

	"deedles.dev/xdiagram"
	"deedles.dev/xdiagram/bounds"
	"deedles.dev/xdiagram/geom"
)

// Kind identifies the geometry of a Shape.
type Kind int

const (
	KindRect Kind = iota
	KindCircle
	KindPolyline
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindPolyline:
		return "polyline"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Style is the paint used to draw a shape. Empty fields are left to
// the renderer.
type Style struct {
	Fill   string
	Stroke string
}

// Shape is the content of a diagram made by this package. Its
// geometry is relative to the position that the diagram places it at.
type Shape[T geom.Float] struct {
	Kind  Kind
	Style Style

	// Size is the width and height of a rectangle centered on the
	// shape's position.
	Size geom.Vec[T]

	// Radius is the radius of a circle centered on the shape's
	// position.
	Radius T

	// Trail is the outline of a polyline starting at the shape's
	// position.
	Trail geom.Trail[T]
}

// Diagram is a diagram of shapes.
type Diagram[T geom.Float] = xdiagram.Diagram[T, Shape[T]]

// Rect returns a w by h rectangle centered on the local origin.
func Rect[T geom.Float](w, h T, style Style) Diagram[T] {
	return xdiagram.New(
		Shape[T]{Kind: KindRect, Style: style, Size: geom.V(w, h)},
		bounds.OfRect(w, h),
	)
}

// Square returns a rectangle with sides of length s.
func Square[T geom.Float](s T, style Style) Diagram[T] {
	return Rect(s, s, style)
}

// Circle returns a circle of radius r centered on the local origin.
func Circle[T geom.Float](r T, style Style) Diagram[T] {
	return xdiagram.New(
		Shape[T]{Kind: KindCircle, Style: style, Radius: r},
		bounds.OfCircle(r),
	)
}

// Polyline returns the open polyline that follows trail from the local
// origin.
func Polyline[T geom.Float](trail geom.Trail[T], style Style) Diagram[T] {
	points := slices.Collect(trail.Vertices(geom.Origin[T]()))
	return xdiagram.New(
		Shape[T]{Kind: KindPolyline, Style: style, Trail: trail},
		bounds.OfPoints(points...),
	)
}
