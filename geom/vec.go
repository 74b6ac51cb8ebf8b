package geom

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Vec is a vector in a space of any dimension. The dimension of a
// Vec is its length, and any component beyond that length is treated
// as zero, so nil is the zero vector of every space.
//
// Vecs are values. No method modifies its receiver or its arguments.
type Vec[T Float] []T

// V returns a Vec with the given components. The components are
// copied, so later changes to xs do not affect the returned Vec.
func V[T Float](xs ...T) Vec[T] {
	return Vec[T](slices.Clone(xs))
}

// X returns a two-dimensional unit vector along the first axis.
func X[T Float]() Vec[T] { return Vec[T]{1, 0} }

// Y returns a two-dimensional unit vector along the second axis.
func Y[T Float]() Vec[T] { return Vec[T]{0, 1} }

// Dim returns the number of explicit components of v.
func (v Vec[T]) Dim() int { return len(v) }

// At returns the ith component of v, or zero if v has fewer than i+1
// components.
func (v Vec[T]) At(i int) T {
	if i < 0 || i >= len(v) {
		return 0
	}
	return v[i]
}

func (v Vec[T]) zip(w Vec[T], f func(a, b T) T) Vec[T] {
	n := max(len(v), len(w))
	if n == 0 {
		return nil
	}

	r := make(Vec[T], n)
	for i := range r {
		r[i] = f(v.At(i), w.At(i))
	}
	return r
}

func (v Vec[T]) each(f func(T) T) Vec[T] {
	if len(v) == 0 {
		return nil
	}

	r := make(Vec[T], len(v))
	for i, x := range v {
		r[i] = f(x)
	}
	return r
}

// Add returns v+w.
func (v Vec[T]) Add(w Vec[T]) Vec[T] {
	return v.zip(w, func(a, b T) T { return a + b })
}

// Sub returns v-w.
func (v Vec[T]) Sub(w Vec[T]) Vec[T] {
	return v.zip(w, func(a, b T) T { return a - b })
}

// Neg returns -v.
func (v Vec[T]) Neg() Vec[T] {
	return v.each(func(x T) T { return -x })
}

// Scale returns v scaled by s.
func (v Vec[T]) Scale(s T) Vec[T] {
	return v.each(func(x T) T { return x * s })
}

// Dot returns the inner product of v and w.
func (v Vec[T]) Dot(w Vec[T]) T {
	var sum T
	for i := range min(len(v), len(w)) {
		sum += v[i] * w[i]
	}
	return sum
}

// LenSq returns the squared length of v.
func (v Vec[T]) LenSq() T { return v.Dot(v) }

// Len returns the length of v.
func (v Vec[T]) Len() T {
	return T(math.Sqrt(float64(v.LenSq())))
}

// IsZero reports whether every component of v is exactly zero.
func (v Vec[T]) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// Eq reports whether v and w differ by no more than Tolerance[T] in
// any component.
func (v Vec[T]) Eq(w Vec[T]) bool {
	tol := Tolerance[T]()
	for i := range max(len(v), len(w)) {
		if math.Abs(float64(v.At(i)-w.At(i))) > tol {
			return false
		}
	}
	return true
}

func (v Vec[T]) String() string {
	var buf strings.Builder
	buf.WriteByte('<')
	for i, x := range v {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprint(&buf, x)
	}
	buf.WriteByte('>')
	return buf.String()
}

// WithLength returns a vector of signed length s pointing in the
// direction of v. A negative s points the result opposite to v. The
// zero vector has no direction, so it yields ErrInvalidDirection
// regardless of s.
func WithLength[T Float](s T, v Vec[T]) (Vec[T], error) {
	l := v.Len()
	if l == 0 {
		return nil, fmt.Errorf("with length %v: %w", s, ErrInvalidDirection)
	}
	return v.Scale(s / l), nil
}

// Normalize returns the unit vector in the direction of v.
func Normalize[T Float](v Vec[T]) (Vec[T], error) {
	return WithLength(1, v)
}
