package tsp_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isoroute/isoroute/geom"
	"github.com/isoroute/isoroute/tsp"
)

func seg(reversible bool, x0, y0, x1, y1 float64) geom.DirectedPath {
	return geom.DirectedPath{
		Line:       geom.LineString{{X: x0, Y: y0}, {X: x1, Y: y1}},
		Reversible: reversible,
	}
}

var origin = geom.Point{X: 0, Y: 0}

// multiset returns the paths as orientation-normalised endpoint pairs so
// reorderings and reversals can be compared as bags.
func multiset(paths []geom.DirectedPath) []string {
	var keys []string
	for _, p := range paths {
		a, b := p.Line.Front(), p.Line.Back()
		if p.Reversible && b.Less(a) {
			a, b = b, a
		}
		keys = append(keys, pointKey(a)+"-"+pointKey(b))
	}
	sort.Strings(keys)

	return keys
}

func pointKey(p geom.Point) string {
	return string(rune('a'+int(p.X))) + string(rune('a'+int(p.Y)))
}

func TestTourLength(t *testing.T) {
	paths := []geom.DirectedPath{
		seg(true, 1, 0, 2, 0),
		seg(true, 5, 0, 6, 0),
	}
	// 1 to reach the first front, 3 from (2,0) to (5,0).
	assert.Equal(t, 4.0, tsp.TourLength(paths, origin))
	assert.Zero(t, tsp.TourLength(nil, origin))
}

func TestNearestNeighbourReordersAndReverses(t *testing.T) {
	paths := []geom.DirectedPath{
		seg(true, 5, 0, 9, 0), // far
		seg(true, 3, 0, 1, 0), // near, but back endpoint is nearer
	}
	tsp.NearestNeighbour(paths, origin)
	require.Len(t, paths, 2)
	// The near path comes first, reversed so its (1,0) end leads.
	assert.Equal(t, geom.Point{X: 1, Y: 0}, paths[0].Line.Front())
	assert.Equal(t, geom.Point{X: 3, Y: 0}, paths[0].Line.Back())
	assert.Equal(t, geom.Point{X: 5, Y: 0}, paths[1].Line.Front())
}

func TestNearestNeighbourKeepsBetterInput(t *testing.T) {
	// Already optimal: greedy must not commit an equal-or-worse order.
	paths := []geom.DirectedPath{
		seg(false, 1, 0, 2, 0),
		seg(false, 2, 0, 3, 0),
	}
	want := []geom.DirectedPath{paths[0], paths[1]}
	tsp.NearestNeighbour(paths, origin)
	assert.Equal(t, want, paths)
}

func TestNearestNeighbourRespectsDirection(t *testing.T) {
	paths := []geom.DirectedPath{
		seg(false, 9, 0, 0, 0), // back endpoint is at the origin, but locked
	}
	tsp.NearestNeighbour(paths, origin)
	assert.Equal(t, geom.Point{X: 9, Y: 0}, paths[0].Line.Front())
}

func TestNearestNeighbourPreservesMultiset(t *testing.T) {
	paths := []geom.DirectedPath{
		seg(true, 7, 7, 8, 8),
		seg(true, 1, 1, 2, 2),
		seg(true, 4, 4, 5, 5),
	}
	want := multiset(paths)
	tsp.NearestNeighbour(paths, origin)
	assert.Equal(t, want, multiset(paths))
	// Greedy from the origin visits them near to far.
	assert.Equal(t, geom.Point{X: 1, Y: 1}, paths[0].Line.Front())
	assert.Equal(t, geom.Point{X: 4, Y: 4}, paths[1].Line.Front())
	assert.Equal(t, geom.Point{X: 7, Y: 7}, paths[2].Line.Front())
}

func TestTwoOptNeverWorsens(t *testing.T) {
	paths := []geom.DirectedPath{
		seg(true, 0, 1, 0, 2),
		seg(true, 9, 1, 9, 2),
		seg(true, 0, 3, 0, 4),
		seg(true, 9, 3, 9, 4),
		seg(true, 0, 5, 0, 6),
	}
	want := multiset(paths)
	before := tsp.TourLength(paths, origin)
	tsp.TwoOpt(paths, origin)
	after := tsp.TourLength(paths, origin)
	assert.LessOrEqual(t, after, before)
	assert.Equal(t, want, multiset(paths))
}

func TestTwoOptLeavesDirectedSpansAlone(t *testing.T) {
	paths := []geom.DirectedPath{
		seg(false, 0, 0, 1, 0),
		seg(false, 5, 0, 6, 0),
		seg(false, 2, 0, 3, 0),
		seg(false, 7, 0, 8, 0),
	}
	want := []geom.DirectedPath{paths[0], paths[1], paths[2], paths[3]}
	tsp.TwoOpt(paths, origin)
	// Nothing may reverse: every span is locked, so 2-opt has no legal
	// move, and the greedy seed only reorders the paths. Each path keeps
	// its orientation and the multiset holds.
	assert.ElementsMatch(t, want, paths)
	for _, p := range paths {
		assert.False(t, p.Reversible)
	}
}
