package xdiagram

import (
	"iter"

	"deedles.dev/xdiagram/geom"
	"deedles.dev/xiter"
)

// Attachment is an object to be placed beside another in direction V.
type Attachment[T geom.Float, D any] struct {
	V      geom.Vec[T]
	Object D
}

// Appends places each attachment beside base in its own direction
// and combines base with all of them. Every attachment is placed
// against the bounding region of base alone, so attachments never
// push each other outwards, unlike a chain of calls to Beside.
func Appends[T geom.Float, D Object[T, D]](base D, attachments ...Attachment[T, D]) D {
	b := base.Bounds()

	r := base
	for _, a := range attachments {
		r = r.Combine(BesideBounds(b, a.V, a.Object))
	}
	return r
}

// Placement is an object to be placed with its local origin at At.
type Placement[T geom.Float, D any] struct {
	At     geom.Point[T]
	Object D
}

// Position moves each object so that its local origin is at its
// given point and then combines them all in order. The result's local
// origin is the origin of the space that the points are given in.
func Position[T geom.Float, D Object[T, D]](placements ...Placement[T, D]) D {
	moved := make([]D, 0, len(placements))
	for _, p := range placements {
		moved = append(moved, MoveTo(p.At, p.Object))
	}
	return Concat[T](moved...)
}

// DecorateVertices places the objects at successive points yielded by
// vertices, as with Position. If there are more points than objects
// or more objects than points, the extras are ignored.
func DecorateVertices[T geom.Float, D Object[T, D]](vertices iter.Seq[geom.Point[T]], objects []D) D {
	placements := make([]Placement[T, D], 0, len(objects))
	for i, p := range xiter.Enumerate(vertices) {
		if i >= len(objects) {
			break
		}
		placements = append(placements, Placement[T, D]{At: p, Object: objects[i]})
	}
	return Position(placements...)
}

// DecorateTrail places the objects at the vertices of trail, starting
// with the origin. Extra vertices or objects are ignored.
func DecorateTrail[T geom.Float, D Object[T, D]](trail geom.Trail[T], objects []D) D {
	return DecorateVertices(trail.Vertices(geom.Origin[T]()), objects)
}

// DecoratePath places the objects at the vertices of every trail of
// path in turn. Extra vertices or objects are ignored.
func DecoratePath[T geom.Float, D Object[T, D]](path geom.Path[T], objects []D) D {
	return DecorateVertices(path.AllVertices(), objects)
}
