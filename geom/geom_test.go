// Package geom_test exercises the planar primitives and predicates that
// the segment tree and path finder build on.
package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isoroute/isoroute/geom"
)

func TestPointLess(t *testing.T) {
	assert.True(t, geom.Point{X: 1, Y: 5}.Less(geom.Point{X: 2, Y: 0}))
	assert.True(t, geom.Point{X: 1, Y: 1}.Less(geom.Point{X: 1, Y: 2}))
	assert.False(t, geom.Point{X: 1, Y: 2}.Less(geom.Point{X: 1, Y: 2}))
	assert.False(t, geom.Point{X: 2, Y: 0}.Less(geom.Point{X: 1, Y: 9}))
}

func TestIsLeft(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 10, Y: 0}
	assert.Positive(t, geom.IsLeft(a, b, geom.Point{X: 5, Y: 1}))
	assert.Negative(t, geom.IsLeft(a, b, geom.Point{X: 5, Y: -1}))
	assert.Zero(t, geom.IsLeft(a, b, geom.Point{X: 5, Y: 0}))
}

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		p0, p1, p2, p3 geom.Point
		want           bool
	}{
		{"crossing", geom.Point{0, 0}, geom.Point{2, 2}, geom.Point{0, 2}, geom.Point{2, 0}, true},
		{"disjoint", geom.Point{0, 0}, geom.Point{1, 0}, geom.Point{0, 1}, geom.Point{1, 1}, false},
		{"shared endpoint", geom.Point{0, 0}, geom.Point{1, 1}, geom.Point{1, 1}, geom.Point{2, 0}, true},
		{"t junction", geom.Point{0, 0}, geom.Point{2, 0}, geom.Point{1, 0}, geom.Point{1, 1}, true},
		{"collinear overlap", geom.Point{0, 0}, geom.Point{3, 0}, geom.Point{1, 0}, geom.Point{4, 0}, true},
		{"collinear disjoint", geom.Point{0, 0}, geom.Point{1, 0}, geom.Point{2, 0}, geom.Point{3, 0}, false},
		{"parallel", geom.Point{0, 0}, geom.Point{2, 0}, geom.Point{0, 1}, geom.Point{2, 1}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geom.SegmentsIntersect(tc.p0, tc.p1, tc.p2, tc.p3))
			// The predicate is symmetric in its two segments.
			assert.Equal(t, tc.want, geom.SegmentsIntersect(tc.p2, tc.p3, tc.p0, tc.p1))
		})
	}
}

func unitSquare() geom.Ring {
	return geom.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
}

func TestPointInRing(t *testing.T) {
	ring := unitSquare()
	assert.True(t, geom.PointInRing(geom.Point{X: 5, Y: 5}, ring))
	assert.False(t, geom.PointInRing(geom.Point{X: 15, Y: 5}, ring))
	assert.False(t, geom.PointInRing(geom.Point{X: -1, Y: -1}, ring))
}

func TestRingAreaAndCorrect(t *testing.T) {
	ccw := unitSquare()
	assert.InDelta(t, 100.0, geom.RingArea(ccw), 1e-12)

	cw := ccw.Reversed()
	assert.InDelta(t, -100.0, geom.RingArea(cw), 1e-12)

	mp := geom.MultiPolygon{{Outer: cw}}
	geom.Correct(mp)
	assert.InDelta(t, 100.0, geom.RingArea(mp[0].Outer), 1e-12)
}

func TestAreaWithHole(t *testing.T) {
	hole := geom.Ring{{2, 2}, {2, 4}, {4, 4}, {4, 2}, {2, 2}} // clockwise
	mp := geom.MultiPolygon{{Outer: unitSquare(), Inners: []geom.Ring{hole}}}
	assert.InDelta(t, 96.0, geom.Area(mp), 1e-12)
}

func TestChebyshev(t *testing.T) {
	assert.Equal(t, 7.0, geom.Chebyshev(geom.Point{0, 0}, geom.Point{3, 7}))
	assert.Equal(t, 3.0, geom.Chebyshev(geom.Point{0, 0}, geom.Point{-3, 1}))
}

func TestLerp(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 10, Y: 20}
	assert.Equal(t, geom.Point{X: 5, Y: 10}, geom.Lerp(a, b, 0.5))
	assert.Equal(t, a, geom.Lerp(a, b, 0))
	assert.Equal(t, b, geom.Lerp(a, b, 1))
}

func TestLineStringHelpers(t *testing.T) {
	ls := geom.LineString{{0, 0}, {3, 4}, {3, 8}}
	require.Equal(t, geom.Point{X: 0, Y: 0}, ls.Front())
	require.Equal(t, geom.Point{X: 3, Y: 8}, ls.Back())
	assert.InDelta(t, 9.0, ls.Length(), 1e-12)

	rev := ls.Reversed()
	assert.Equal(t, geom.Point{X: 3, Y: 8}, rev.Front())
	assert.Equal(t, ls.Front(), rev.Back())
	// Reversed copies; the original is untouched.
	assert.Equal(t, geom.Point{X: 0, Y: 0}, ls.Front())
}

func TestSelfIntersects(t *testing.T) {
	bowtie := geom.Ring{{0, 0}, {2, 2}, {2, 0}, {0, 2}, {0, 0}}
	assert.True(t, geom.SelfIntersects(geom.MultiPolygon{{Outer: bowtie}}))
	assert.False(t, geom.SelfIntersects(geom.MultiPolygon{{Outer: unitSquare()}}))
}

func TestEnvelope(t *testing.T) {
	mp := geom.MultiPolygon{{Outer: unitSquare()}}
	box := geom.Envelope(mp)
	assert.Equal(t, geom.Box{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}, box)
	assert.Equal(t, geom.Box{MinX: -1, MinY: -1, MaxX: 11, MaxY: 11}, box.Expand(1))
	assert.True(t, box.Intersects(geom.Box{MinX: 10, MinY: 0, MaxX: 20, MaxY: 10}))
	assert.True(t, box.TouchesOnSide(geom.Box{MinX: 10, MinY: 0, MaxX: 20, MaxY: 10}))
	assert.False(t, box.TouchesOnSide(geom.Box{MinX: 3, MinY: 3, MaxX: 4, MaxY: 4}))
}
