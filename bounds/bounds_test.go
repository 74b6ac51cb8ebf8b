package bounds_test

import (
	"testing"

	"deedles.dev/xdiagram/bounds"
	"deedles.dev/xdiagram/geom"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func TestEmpty(t *testing.T) {
	var b bounds.Bounds[float64]
	require.True(t, b.IsEmpty())
	require.Equal(t, 0.0, b.At(geom.V(1.0, 0)))
	require.True(t, b.Translate(geom.V(3.0, 4)).IsEmpty())
	require.True(t, b.Scale(2).IsEmpty())

	c := bounds.OfCircle(2.0)
	require.InDelta(t, 2, b.Union(c).At(geom.V(1.0, 0)), delta)
	require.InDelta(t, 2, c.Union(b).At(geom.V(1.0, 0)), delta)
	require.True(t, bounds.Unions[float64]().IsEmpty())
}

func TestZeroDirection(t *testing.T) {
	b := bounds.OfCircle(3.0).Translate(geom.V(1.0, 1))
	require.Equal(t, 0.0, b.At(nil))
	require.True(t, b.BoundaryV(geom.V(0.0, 0)).IsZero())
}

func TestHomogeneity(t *testing.T) {
	b := bounds.OfRect(4.0, 2)
	require.InDelta(t, 2, b.At(geom.V(1.0, 0)), delta)
	require.InDelta(t, 1, b.At(geom.V(2.0, 0)), delta)
	require.True(t, b.BoundaryV(geom.V(1.0, 0)).Eq(b.BoundaryV(geom.V(5.0, 0))))
	require.True(t, b.Boundary(geom.V(0.0, -3)).Eq(geom.Pt(0.0, -1)))
}

func TestTranslate(t *testing.T) {
	b := bounds.OfCircle(1.0)
	tr := geom.V(3.0, -2)
	moved := b.Translate(tr)

	for _, v := range []geom.Vec[float64]{geom.V(1.0, 0), geom.V(0.0, 1), geom.V(-1.0, 0), geom.V(1.0, 1)} {
		want := b.BoundaryV(v).Dot(v) + tr.Dot(v)
		require.InDelta(t, want, moved.BoundaryV(v).Dot(v), delta, "direction %v", v)
	}
}

func TestUnion(t *testing.T) {
	a := bounds.OfRect(2.0, 2)
	b := bounds.OfCircle(1.0).Translate(geom.V(5.0, 0))
	u := a.Union(b)

	require.InDelta(t, 6, u.At(geom.V(1.0, 0)), delta)
	require.InDelta(t, 1, u.At(geom.V(-1.0, 0)), delta)
	require.InDelta(t, 1, u.At(geom.V(0.0, 1)), delta)
	require.InDelta(t, 7, u.Extent(geom.V(1.0, 0)), delta)
}

func TestScale(t *testing.T) {
	b := bounds.OfBox(geom.Pt(-1.0, -2), geom.Pt(3.0, 1))
	s := b.Scale(2)
	for _, v := range []geom.Vec[float64]{geom.V(1.0, 0), geom.V(-1.0, 0), geom.V(0.0, 1), geom.V(0.0, -1), geom.V(1.0, 1)} {
		require.InDelta(t, 2*b.At(v), s.At(v), delta, "direction %v", v)
	}

	flipped := b.Scale(-1)
	require.InDelta(t, 1, flipped.At(geom.V(1.0, 0)), delta)
	require.InDelta(t, 3, flipped.At(geom.V(-1.0, 0)), delta)
}

func TestPrimitives(t *testing.T) {
	tests := []struct {
		name string
		b    bounds.Bounds[float64]
		v    geom.Vec[float64]
		want float64
	}{
		{"point", bounds.OfPoint(geom.Pt(2.0, 3)), geom.V(1.0, 0), 2},
		{"points", bounds.OfPoints(geom.Pt(0.0, 0), geom.Pt(4.0, 1), geom.Pt(-1.0, 5)), geom.V(0.0, 1), 5},
		{"segment forward", bounds.OfSegment(geom.V(3.0, 0)), geom.V(1.0, 0), 3},
		{"segment backward", bounds.OfSegment(geom.V(3.0, 0)), geom.V(-1.0, 0), 0},
		{"circle diagonal", bounds.OfCircle(2.0), geom.V(3.0, 4), 0.4},
		{"box 3d", bounds.OfBox(geom.Pt(-1.0, -1, -1), geom.Pt(1.0, 2, 3)), geom.V(0.0, 0, 1), 3},
		{"box reversed corners", bounds.OfBox(geom.Pt(1.0, 1), geom.Pt(-1.0, -1)), geom.V(1.0, 0), 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.InDelta(t, test.want, test.b.At(test.v), delta)
		})
	}

	require.True(t, bounds.OfPoints[float64]().IsEmpty())
}

func BenchmarkUnion(b *testing.B) {
	r := bounds.OfRect(1.0, 1)
	v := geom.V(1.0, 1)
	for b.Loop() {
		u := r
		for i := range 64 {
			u = u.Union(r.Translate(geom.V(float64(i), 0)))
		}
		u.At(v)
	}
}

func TestOwnsCoordinates(t *testing.T) {
	xs := []float64{3, 0}
	b := bounds.OfPoint(geom.Pt(xs...))
	box := bounds.OfBox(geom.Pt(xs...), geom.Pt(5.0, 1))
	xs[0] = 100

	require.InDelta(t, 3, b.At(geom.X[float64]()), 1e-9)
	require.InDelta(t, 5, box.At(geom.X[float64]()), 1e-9)
	require.InDelta(t, -3, box.At(geom.X[float64]().Neg()), 1e-9)
}
