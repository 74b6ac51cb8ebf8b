// Package xdiagram assembles boundable objects into composite objects
// while preserving their spatial relationships.
//
// The combinators in this package work with nothing but each object's
// local origin and its bounding region, as described by package
// bounds. They compute where each object has to be moved so that a
// requested relationship holds, such as two objects touching along a
// direction, and then superpose the moved objects. What the objects
// contain and how that is drawn is left to other packages.
//
// Every combinator is generic over any type satisfying [Object], and
// [Diagram] is provided as a ready-made implementation that carries
// arbitrary content.
package xdiagram

import (
	"iter"
	"slices"

	"deedles.dev/xdiagram/bounds"
	"deedles.dev/xdiagram/geom"
)

// Object is the set of capabilities that the combinators in this
// package need from the things that they arrange. D is the
// implementing type itself.
//
// The zero value of D must be the neutral object, the one that
// Combine treats as an identity.
type Object[T geom.Float, D any] interface {
	// Bounds returns the bounding region of the object relative to its
	// local origin.
	Bounds() bounds.Bounds[T]

	// MoveOriginBy returns the object with its local origin moved by v.
	// The content stays where it is, so relative to the new origin it
	// appears moved by -v.
	MoveOriginBy(v geom.Vec[T]) D

	// Combine superposes the object and other at their current
	// positions relative to their local origins. The result keeps the
	// shared local origin. Combine must be associative.
	Combine(other D) D
}

// Item is a piece of content placed at an offset from a diagram's
// local origin.
type Item[T geom.Float, C any] struct {
	Offset  geom.Vec[T]
	Content C
}

// Diagram is an Object that holds content of type C, which is opaque
// to this package. The zero Diagram is empty and is the neutral
// object.
type Diagram[T geom.Float, C any] struct {
	items  []Item[T, C]
	bounds bounds.Bounds[T]
}

// New returns a diagram containing c at its local origin with the
// bounding region b.
func New[T geom.Float, C any](c C, b bounds.Bounds[T]) Diagram[T, C] {
	return Diagram[T, C]{
		items:  []Item[T, C]{{Content: c}},
		bounds: b,
	}
}

// Bounds implements Object.
func (d Diagram[T, C]) Bounds() bounds.Bounds[T] { return d.bounds }

// SetBounds returns d with its bounding region replaced by b. The
// content is unchanged.
func (d Diagram[T, C]) SetBounds(b bounds.Bounds[T]) Diagram[T, C] {
	d.bounds = b
	return d
}

// MoveOriginBy implements Object.
func (d Diagram[T, C]) MoveOriginBy(v geom.Vec[T]) Diagram[T, C] {
	if v.IsZero() {
		return d
	}

	n := v.Neg()
	items := make([]Item[T, C], 0, len(d.items))
	for _, item := range d.items {
		items = append(items, Item[T, C]{
			Offset:  item.Offset.Add(n),
			Content: item.Content,
		})
	}

	return Diagram[T, C]{
		items:  items,
		bounds: d.bounds.Translate(n),
	}
}

// Combine implements Object. The content of other is placed on top of
// the content of d.
func (d Diagram[T, C]) Combine(other Diagram[T, C]) Diagram[T, C] {
	return Diagram[T, C]{
		items:  slices.Concat(d.items, other.items),
		bounds: d.bounds.Union(other.bounds),
	}
}

// Len returns the number of items of content in d.
func (d Diagram[T, C]) Len() int { return len(d.items) }

// Items returns an iterator over the content of d from bottom to top
// along with the offset of each from d's local origin.
func (d Diagram[T, C]) Items() iter.Seq2[geom.Vec[T], C] {
	return func(yield func(geom.Vec[T], C) bool) {
		for _, item := range d.items {
			if !yield(item.Offset, item.Content) {
				return
			}
		}
	}
}

// Concat combines objects in order using their Combine methods. With
// no objects, it returns the neutral object.
func Concat[T geom.Float, D Object[T, D]](objects ...D) D {
	var r D
	for i, obj := range objects {
		if i == 0 {
			r = obj
			continue
		}
		r = r.Combine(obj)
	}
	return r
}
