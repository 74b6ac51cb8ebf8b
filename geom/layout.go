package geom

import (
	"iter"
	"slices"

	"deedles.dev/xiter"
)

// Trail is a sequence of segment offsets. A trail has no position of
// its own; it starts wherever it is placed, and each offset leads from
// one vertex to the next.
type Trail[T Float] []Vec[T]

// TrailOf returns a trail made from the offsets yielded by seq.
func TrailOf[T Float](seq iter.Seq[Vec[T]]) Trail[T] {
	return Trail[T](slices.Collect(seq))
}

// TrailFromVertices returns the trail that visits the given points in
// order, along with the first point. If there are no points, the
// returned trail is empty and the start is the origin.
func TrailFromVertices[T Float](points ...Point[T]) (start Point[T], t Trail[T]) {
	if len(points) == 0 {
		return start, nil
	}

	t = make(Trail[T], 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		t = append(t, points[i].Sub(points[i-1]))
	}
	return points[0], t
}

// Vertices returns an iterator that yields start and then each
// successive vertex of t as though t began at start. A trail with n
// offsets has n+1 vertices.
func (t Trail[T]) Vertices(start Point[T]) iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		if !yield(start) {
			return
		}

		p := start
		for _, off := range t {
			p = p.Add(off)
			if !yield(p) {
				return
			}
		}
	}
}

// Offset returns the vector from the first to the last vertex of t.
func (t Trail[T]) Offset() Vec[T] {
	var sum Vec[T]
	for _, off := range t {
		sum = sum.Add(off)
	}
	return sum
}

// Located is a trail pinned to a starting point.
type Located[T Float] struct {
	Start Point[T]
	Trail Trail[T]
}

// At pins t to start.
func (t Trail[T]) At(start Point[T]) Located[T] {
	return Located[T]{Start: start, Trail: t}
}

// Vertices returns an iterator over the vertices of the trail
// beginning at its start point.
func (l Located[T]) Vertices() iter.Seq[Point[T]] {
	return l.Trail.Vertices(l.Start)
}

// Path is a collection of possibly disjoint located trails.
type Path[T Float] []Located[T]

// Vertices returns an iterator that yields the vertex sequence of
// each trail of p in order.
func (p Path[T]) Vertices() iter.Seq[iter.Seq[Point[T]]] {
	return xiter.Map(slices.Values(p), Located[T].Vertices)
}

// AllVertices returns an iterator over the vertices of every trail
// in p, one trail after another.
func (p Path[T]) AllVertices() iter.Seq[Point[T]] {
	return xiter.Concat(slices.Collect(p.Vertices())...)
}

// Repeat returns an iterator that yields v exactly n times.
func Repeat[T Float](v Vec[T], n int) iter.Seq[Vec[T]] {
	return func(yield func(Vec[T]) bool) {
		for range n {
			if !yield(v) {
				return
			}
		}
	}
}
