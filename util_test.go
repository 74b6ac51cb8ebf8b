package xdiagram_test

import (
	"testing"

	"deedles.dev/xdiagram"
	"deedles.dev/xdiagram/bounds"
	"deedles.dev/xdiagram/geom"
	"github.com/stretchr/testify/require"
)

func TestPad(t *testing.T) {
	a := rect("a", 4, 2).MoveOriginBy(geom.V(1.0, 0))
	p := xdiagram.Pad(2.0, a)

	require.Equal(t, items(a), items(p))
	for _, v := range directions {
		require.InDelta(t, 2*a.Bounds().At(v), p.Bounds().At(v), delta, "direction %v", v)
	}

	// The origin is off-center, so the padding is uneven.
	require.InDelta(t, 2, p.Bounds().At(geom.V(1.0, 0)), delta)
	require.InDelta(t, 6, p.Bounds().At(geom.V(-1.0, 0)), delta)
}

func TestStrut(t *testing.T) {
	v := geom.V(3.0, 4)
	s := xdiagram.Strut[float64, string](v)

	require.Equal(t, 0, s.Len())
	require.InDelta(t, 0.5, s.Bounds().At(v), delta)
	require.InDelta(t, 0.5, s.Bounds().At(v.Neg()), delta)
	require.InDelta(t, 5, s.Bounds().BoundaryV(v).Len()*2, delta)
	require.InDelta(t, 0, s.Bounds().At(geom.V(-4.0, 3)), delta)

	d := xdiagram.Hcat(0.0, rect("a", 2, 2), xdiagram.Strut[float64, string](geom.V(5.0, 0)), rect("b", 2, 2))
	require.Equal(t, []string{"a", "b"}, contents(d))
	require.True(t, offsetOf(t, d, "b").Eq(geom.V(7.0, 0)))

	z := xdiagram.Strut[float64, string](nil)
	for _, v := range directions {
		require.InDelta(t, 0, z.Bounds().At(v), delta)
	}
}

func TestPhantom(t *testing.T) {
	a := rect("a", 2, 6)
	p := xdiagram.Phantom[float64, string](a)
	require.Equal(t, 0, p.Len())
	for _, v := range directions {
		require.InDelta(t, a.Bounds().At(v), p.Bounds().At(v), delta, "direction %v", v)
	}

	d := xdiagram.Above[float64](p, circle("b", 1))
	require.Equal(t, []string{"b"}, contents(d))
	require.True(t, offsetOf(t, d, "b").Eq(geom.V(0.0, 4)))
}

func TestWithBounds(t *testing.T) {
	a := circle("a", 1)
	ref := rect("ref", 10, 10)

	w := xdiagram.WithBounds[float64](ref, a)
	require.Equal(t, items(a), items(w))
	require.InDelta(t, 5, w.Bounds().At(geom.V(1.0, 0)), delta)

	w = xdiagram.WithBounds[float64](bounds.OfCircle(3.0), a)
	require.InDelta(t, 3, w.Bounds().At(geom.V(0.0, 1)), delta)
}
