// Package scene decodes TOML descriptions of simple diagrams and
// builds them.
//
// A scene is a list of shapes arranged in one of three ways:
//
//	direction = [1, 0]
//	method = "cat"  # or "distrib" or "trail"
//	sep = 10
//
//	[[item]]
//	shape = "rect"
//	size = [40, 20]
//	fill = "#ccc"
//
//	[[item]]
//	shape = "circle"
//	size = [15]
//	pad = 1.5
//
// With the "trail" method, the items are placed at the vertices of the
// trail given by the offsets in the top-level trail key instead.
package scene

import (
	"errors"
	"fmt"
	"io"

	"deedles.dev/xdiagram"
	"deedles.dev/xdiagram/geom"
	"deedles.dev/xdiagram/shape"
	"github.com/BurntSushi/toml"
)

var (
	// ErrUnknownShape is returned when an item names a shape that
	// doesn't exist.
	ErrUnknownShape = errors.New("unknown shape")

	// ErrUnknownMethod is returned when a scene names an arrangement
	// method that doesn't exist.
	ErrUnknownMethod = errors.New("unknown method")

	// ErrBadSize is returned when an item's size doesn't have the
	// number of components that its shape needs.
	ErrBadSize = errors.New("bad size")
)

// Scene is a decoded scene description.
type Scene struct {
	Direction []float64   `toml:"direction"`
	Method    string      `toml:"method"`
	Sep       float64     `toml:"sep"`
	Trail     [][]float64 `toml:"trail"`
	Items     []Item      `toml:"item"`
}

// Item is a single shape in a scene.
type Item struct {
	Shape  string      `toml:"shape"`
	Size   []float64   `toml:"size"`
	Points [][]float64 `toml:"points"`
	Fill   string      `toml:"fill"`
	Stroke string      `toml:"stroke"`
	Pad    *float64    `toml:"pad"`
}

// Decode reads a scene description from r.
func Decode(r io.Reader) (*Scene, error) {
	var s Scene
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return &s, nil
}

// Load reads the scene description in the file at path.
func Load(path string) (*Scene, error) {
	var s Scene
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("load scene %q: %w", path, err)
	}
	return &s, nil
}

// Build returns the diagram that s describes. A scene with no
// direction is laid out left to right.
func (s *Scene) Build() (shape.Diagram[float64], error) {
	items := make([]shape.Diagram[float64], 0, len(s.Items))
	for i, item := range s.Items {
		d, err := item.Build()
		if err != nil {
			return shape.Diagram[float64]{}, fmt.Errorf("item %v: %w", i, err)
		}
		items = append(items, d)
	}

	dir := geom.V(s.Direction...)
	if len(s.Direction) == 0 {
		dir = geom.X[float64]()
	}

	switch s.Method {
	case "", "cat":
		return xdiagram.CatWith(dir, xdiagram.CatOptions[float64]{Method: xdiagram.MethodCat, Sep: s.Sep}, items)
	case "distrib":
		return xdiagram.CatWith(dir, xdiagram.CatOptions[float64]{Method: xdiagram.MethodDistrib, Sep: s.Sep}, items)
	case "trail":
		return xdiagram.DecorateTrail(trail(s.Trail), items), nil
	default:
		return shape.Diagram[float64]{}, fmt.Errorf("build scene: %q: %w", s.Method, ErrUnknownMethod)
	}
}

// Build returns the diagram for a single item.
func (item Item) Build() (shape.Diagram[float64], error) {
	style := shape.Style{Fill: item.Fill, Stroke: item.Stroke}

	var d shape.Diagram[float64]
	switch item.Shape {
	case "rect":
		if len(item.Size) != 2 {
			return d, fmt.Errorf("rect needs 2 sizes, got %v: %w", len(item.Size), ErrBadSize)
		}
		d = shape.Rect(item.Size[0], item.Size[1], style)

	case "circle":
		if len(item.Size) != 1 {
			return d, fmt.Errorf("circle needs 1 size, got %v: %w", len(item.Size), ErrBadSize)
		}
		d = shape.Circle(item.Size[0], style)

	case "polyline":
		d = shape.Polyline(trail(item.Points), style)

	case "strut":
		d = xdiagram.Strut[float64, shape.Shape[float64]](geom.V(item.Size...))

	default:
		return d, fmt.Errorf("%q: %w", item.Shape, ErrUnknownShape)
	}

	if item.Pad != nil {
		d = xdiagram.Pad(*item.Pad, d)
	}
	return d, nil
}

func trail(offsets [][]float64) geom.Trail[float64] {
	t := make(geom.Trail[float64], 0, len(offsets))
	for _, off := range offsets {
		t = append(t, geom.V(off...))
	}
	return t
}
