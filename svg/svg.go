// Package svg renders diagrams of shapes as SVG documents.
package svg

import (
	"bytes"
	"cmp"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"deedles.dev/xdiagram/geom"
	"deedles.dev/xdiagram/shape"
)

// ErrUnsupportedShape is returned when a diagram contains a shape that
// has no SVG representation.
var ErrUnsupportedShape = errors.New("unsupported shape")

// Option configures Render.
type Option func(*renderer)

type renderer struct {
	margin float64
	stroke string
	fill   string
	width  float64
}

// WithMargin sets the space left around the diagram's bounding
// region. The default is 10.
func WithMargin(m float64) Option { return func(r *renderer) { r.margin = m } }

// WithStroke sets the stroke color and width used for shapes that
// don't specify their own stroke.
func WithStroke(color string, width float64) Option {
	return func(r *renderer) { r.stroke, r.width = color, width }
}

// WithFill sets the fill used for shapes that don't specify their own.
func WithFill(color string) Option { return func(r *renderer) { r.fill = color } }

func newRenderer(opts ...Option) renderer {
	r := renderer{
		margin: 10,
		stroke: "black",
		fill:   "none",
		width:  1,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Frame is the rectangle, in the diagram's coordinates, that an SVG
// document produced by Render shows.
type Frame struct {
	MinX, MinY float64
	W, H       float64
}

// FrameOf returns the frame around the bounding region of d, extended
// by margin on every side. The region is measured along the axes, so
// the frame is exact for anything whose extent is a box.
func FrameOf[T geom.Float](d shape.Diagram[T], margin float64) Frame {
	b := d.Bounds()
	minX := -float64(b.At(geom.V[T](-1, 0)))
	maxX := float64(b.At(geom.V[T](1, 0)))
	minY := -float64(b.At(geom.V[T](0, -1)))
	maxY := float64(b.At(geom.V[T](0, 1)))

	return Frame{
		MinX: minX - margin,
		MinY: minY - margin,
		W:    maxX - minX + 2*margin,
		H:    maxY - minY + 2*margin,
	}
}

// Render writes d to w as an SVG document. The document's viewport
// covers the diagram's bounding region. Phantom content, such as
// struts, takes up space but draws nothing.
func Render[T geom.Float](w io.Writer, d shape.Diagram[T], opts ...Option) error {
	r := newRenderer(opts...)
	f := FrameOf(d, r.margin)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%g %g %g %g" width="%g" height="%g">`+"\n",
		f.MinX, f.MinY, f.W, f.H, f.W, f.H)
	for off, s := range d.Items() {
		if err := renderShape(&buf, &r, off, s); err != nil {
			return err
		}
	}
	buf.WriteString("</svg>\n")

	_, err := buf.WriteTo(w)
	return err
}

func (r *renderer) paint(s shape.Style) string {
	fill, stroke := cmp.Or(s.Fill, r.fill), cmp.Or(s.Stroke, r.stroke)
	return fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="%g"`, escapeXML(fill), escapeXML(stroke), r.width)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func renderShape[T geom.Float](buf *bytes.Buffer, r *renderer, off geom.Vec[T], s shape.Shape[T]) error {
	x, y := float64(off.At(0)), float64(off.At(1))

	switch s.Kind {
	case shape.KindRect:
		w, h := float64(s.Size.At(0)), float64(s.Size.At(1))
		fmt.Fprintf(buf, `  <rect x="%g" y="%g" width="%g" height="%g" %s/>`+"\n",
			x-w/2, y-h/2, w, h, r.paint(s.Style))

	case shape.KindCircle:
		fmt.Fprintf(buf, `  <circle cx="%g" cy="%g" r="%g" %s/>`+"\n",
			x, y, float64(s.Radius), r.paint(s.Style))

	case shape.KindPolyline:
		var points []string
		for p := range s.Trail.Vertices(geom.Origin[T]().Add(off)) {
			points = append(points, fmt.Sprintf("%g,%g", float64(p.Vec().At(0)), float64(p.Vec().At(1))))
		}
		fmt.Fprintf(buf, `  <polyline points="%s" %s/>`+"\n",
			strings.Join(points, " "), r.paint(s.Style))

	default:
		return fmt.Errorf("render %v: %w", s.Kind, ErrUnsupportedShape)
	}

	return nil
}
