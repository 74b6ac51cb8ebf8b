package xdiagram

import (
	"deedles.dev/xdiagram/geom"
)

// The helpers in this file assume two dimensions with the second axis
// pointing down the page, as in image and SVG coordinates.

// NextTo places b to the right of a.
func NextTo[T geom.Float, D Object[T, D]](a, b D) D {
	return Beside(geom.X[T](), a, b)
}

// Above places a above b. The result has a's local origin.
func Above[T geom.Float, D Object[T, D]](a, b D) D {
	return Beside(geom.Y[T](), a, b)
}

// Hcat places objects left to right with sep between their bounding
// regions.
func Hcat[T geom.Float, D Object[T, D]](sep T, objects ...D) D {
	// A non-zero direction can't fail.
	r, _ := CatWith(geom.X[T](), CatOptions[T]{Sep: sep}, objects)
	return r
}

// Vcat places objects top to bottom with sep between their bounding
// regions.
func Vcat[T geom.Float, D Object[T, D]](sep T, objects ...D) D {
	r, _ := CatWith(geom.Y[T](), CatOptions[T]{Sep: sep}, objects)
	return r
}
