package segmentize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isoroute/isoroute/geom"
	"github.com/isoroute/isoroute/segmentize"
)

func path(reversible bool, pts ...geom.Point) geom.DirectedPath {
	return geom.DirectedPath{Line: geom.LineString(pts), Reversible: reversible}
}

func totalLength(paths []geom.DirectedPath) float64 {
	var sum float64
	for _, p := range paths {
		sum += p.Line.Length()
	}

	return sum
}

func TestNoIntersections(t *testing.T) {
	out := segmentize.Paths([]geom.DirectedPath{
		path(true, geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, geom.Point{X: 1, Y: 1}),
	})
	require.Len(t, out, 2)
	for _, p := range out {
		assert.Len(t, p.Line, 2)
		assert.True(t, p.Reversible)
	}
	assert.InDelta(t, 2.0, totalLength(out), 1e-9)
}

func TestCrossingSplitsBoth(t *testing.T) {
	out := segmentize.Paths([]geom.DirectedPath{
		path(true, geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 2}),
		path(true, geom.Point{X: 0, Y: 2}, geom.Point{X: 2, Y: 0}),
	})
	// Both diagonals split at (1,1).
	require.Len(t, out, 4)
	center := geom.Point{X: 1, Y: 1}
	for _, p := range out {
		require.Len(t, p.Line, 2)
		assert.True(t, p.Line.Front() == center || p.Line.Back() == center)
	}
	assert.InDelta(t, 4*geom.Dist(geom.Point{X: 0, Y: 0}, center), totalLength(out), 1e-9)
}

func TestTJunctionSplitsTheBar(t *testing.T) {
	out := segmentize.Paths([]geom.DirectedPath{
		path(true, geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}),
		path(true, geom.Point{X: 2, Y: 0}, geom.Point{X: 2, Y: 3}),
	})
	// The horizontal splits at (2,0); the vertical only touches with its
	// endpoint and stays whole.
	require.Len(t, out, 3)
	assert.InDelta(t, 7.0, totalLength(out), 1e-9)
}

func TestDirectedSegmentsKeepDirection(t *testing.T) {
	out := segmentize.Paths([]geom.DirectedPath{
		path(false, geom.Point{X: 2, Y: 2}, geom.Point{X: 0, Y: 0}), // points down-left
		path(true, geom.Point{X: 0, Y: 2}, geom.Point{X: 2, Y: 0}),
	})
	require.Len(t, out, 4)
	center := geom.Point{X: 1, Y: 1}
	var directed []geom.DirectedPath
	for _, p := range out {
		if !p.Reversible {
			directed = append(directed, p)
		}
	}
	require.Len(t, directed, 2)
	// Sub-segments of the directed input still point down-left, in
	// original order.
	assert.Equal(t, geom.Point{X: 2, Y: 2}, directed[0].Line.Front())
	assert.Equal(t, center, directed[0].Line.Back())
	assert.Equal(t, center, directed[1].Line.Front())
	assert.Equal(t, geom.Point{X: 0, Y: 0}, directed[1].Line.Back())
}

func TestReversibleSegmentsComeOutNormalised(t *testing.T) {
	out := segmentize.Paths([]geom.DirectedPath{
		path(true, geom.Point{X: 5, Y: 5}, geom.Point{X: 1, Y: 1}),
	})
	require.Len(t, out, 1)
	// Lexicographically smaller endpoint first.
	assert.Equal(t, geom.Point{X: 1, Y: 1}, out[0].Line.Front())
	assert.Equal(t, geom.Point{X: 5, Y: 5}, out[0].Line.Back())
}

func TestCollinearOverlapSplits(t *testing.T) {
	out := segmentize.Paths([]geom.DirectedPath{
		path(true, geom.Point{X: 0, Y: 0}, geom.Point{X: 3, Y: 0}),
		path(true, geom.Point{X: 1, Y: 0}, geom.Point{X: 4, Y: 0}),
	})
	// First splits at 1, second at 3: four sub-segments in total, and the
	// shared stretch [1,3] appears twice.
	require.Len(t, out, 4)
	assert.InDelta(t, 6.0, totalLength(out), 1e-9)
}

func TestMergeNearPoints(t *testing.T) {
	paths := []geom.DirectedPath{
		path(true, geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}),
		path(true, geom.Point{X: 1 + 1e-7, Y: 0}, geom.Point{X: 2, Y: 0}),
	}
	merged := segmentize.MergeNearPoints(paths, segmentize.MergeEpsilon)
	assert.Equal(t, 1, merged)
	// Both paths now share the representative vertex exactly.
	assert.Equal(t, paths[0].Line.Back(), paths[1].Line.Front())
}

func TestMergeNearPointsKeepsDistantPoints(t *testing.T) {
	paths := []geom.DirectedPath{
		path(true, geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}),
		path(true, geom.Point{X: 1.5, Y: 0}, geom.Point{X: 2, Y: 0}),
	}
	assert.Zero(t, segmentize.MergeNearPoints(paths, segmentize.MergeEpsilon))
	assert.NotEqual(t, paths[0].Line.Back(), paths[1].Line.Front())
}

func TestMergeCollapsesConsecutiveDuplicates(t *testing.T) {
	paths := []geom.DirectedPath{
		path(true, geom.Point{X: 0, Y: 0}, geom.Point{X: 0, Y: 1e-7}, geom.Point{X: 5, Y: 5}),
	}
	segmentize.MergeNearPoints(paths, segmentize.MergeEpsilon)
	require.Len(t, paths[0].Line, 2)
}
