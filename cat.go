package xdiagram

import (
	"fmt"

	"deedles.dev/xdiagram/geom"
)

// CatMethod selects how Cat spaces objects.
type CatMethod int

const (
	// MethodCat leaves a gap of Sep between the bounding regions of
	// successive objects.
	MethodCat CatMethod = iota

	// MethodDistrib puts the local origins of successive objects Sep
	// apart, regardless of their size. Objects may overlap.
	MethodDistrib
)

func (m CatMethod) String() string {
	switch m {
	case MethodCat:
		return "cat"
	case MethodDistrib:
		return "distrib"
	default:
		return fmt.Sprintf("CatMethod(%d)", int(m))
	}
}

// CatOptions configures CatWith.
type CatOptions[T geom.Float] struct {
	Method CatMethod

	// Sep is the distance between successive objects. Its meaning
	// depends on Method. A negative Sep is used as is.
	Sep T
}

// DefaultCatOptions returns the options used by Cat: boundary-to-
// boundary spacing with no gap.
func DefaultCatOptions[T geom.Float]() CatOptions[T] {
	return CatOptions[T]{Method: MethodCat}
}

// Cat places objects next to each other in a line in direction v
// using DefaultCatOptions.
func Cat[T geom.Float, D Object[T, D]](v geom.Vec[T], objects []D) (D, error) {
	return CatWith(v, DefaultCatOptions[T](), objects)
}

// CatWith places objects in a line in direction v, spaced according
// to opts. The result has the local origin of the first object.
//
// No objects yields the neutral object, and a single object is
// returned unchanged. Otherwise, v needs a direction, so a zero v
// yields geom.ErrInvalidDirection.
func CatWith[T geom.Float, D Object[T, D]](v geom.Vec[T], opts CatOptions[T], objects []D) (D, error) {
	switch len(objects) {
	case 0:
		var zero D
		return zero, nil
	case 1:
		return objects[0], nil
	}

	sep, err := geom.WithLength(opts.Sep, v)
	if err != nil {
		var zero D
		return zero, fmt.Errorf("cat %v objects: %w", len(objects), err)
	}

	switch opts.Method {
	case MethodCat:
		return catBounds(v, sep, objects), nil
	case MethodDistrib:
		return DecorateTrail(geom.TrailOf(geom.Repeat(sep, len(objects))), objects), nil
	default:
		var zero D
		return zero, fmt.Errorf("cat: unknown method %v", opts.Method)
	}
}

func catBounds[T geom.Float, D Object[T, D]](v, sep geom.Vec[T], objects []D) D {
	nv := v.Neg()

	last := len(objects) - 1
	r := Align(nv, objects[last])
	for i := last - 1; i > 0; i-- {
		r = besideSep(v, sep, Align(nv, objects[i]), r)
	}
	return besideSep(v, sep, objects[0], r)
}
