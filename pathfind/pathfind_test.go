package pathfind_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isoroute/isoroute/geom"
	"github.com/isoroute/isoroute/pathfind"
)

func box(minX, minY, maxX, maxY float64) geom.MultiPolygon {
	return geom.MultiPolygon{{Outer: geom.Box{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}.Ring()}}
}

func TestDirectPathInOpenSpace(t *testing.T) {
	s, err := pathfind.NewSurface(box(-100, -100, 100, 100), nil, 0.1)
	require.NoError(t, err)
	path, err := s.FindPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 1}, math.Inf(1), pathfind.Unlimited)
	require.NoError(t, err)
	assert.Equal(t, geom.LineString{{0, 0}, {1, 1}}, path)
}

func TestKeepOutModeDirectPath(t *testing.T) {
	// Free space is the exterior of the keep-out; the keep-out here is a
	// donut, and both points sit in its hole.
	donut := geom.MultiPolygon{{
		Outer:  geom.Box{MinX: -10, MinY: -10, MaxX: 10, MaxY: 10}.Ring(),
		Inners: []geom.Ring{geom.Box{MinX: -5, MinY: -5, MaxX: 5, MaxY: 5}.Ring().Reversed()},
	}}
	s, err := pathfind.NewSurface(nil, donut, 0.1)
	require.NoError(t, err)
	path, err := s.FindPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 1}, math.Inf(1), pathfind.Unlimited)
	require.NoError(t, err)
	assert.Equal(t, geom.LineString{{0, 0}, {1, 1}}, path)
}

func TestKeepOutModeUnreachable(t *testing.T) {
	donut := geom.MultiPolygon{{
		Outer:  geom.Box{MinX: -10, MinY: -10, MaxX: 10, MaxY: 10}.Ring(),
		Inners: []geom.Ring{geom.Box{MinX: -5, MinY: -5, MaxX: 5, MaxY: 5}.Ring().Reversed()},
	}}
	s, err := pathfind.NewSurface(nil, donut, 0.1)
	require.NoError(t, err)
	// (50,50) is outside the donut entirely: a different component.
	_, err = s.FindPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 50, Y: 50}, math.Inf(1), pathfind.Unlimited)
	assert.ErrorIs(t, err, pathfind.ErrNoPath)
}

func TestDetourAroundBox(t *testing.T) {
	keepOut := geom.MultiPolygon{{
		Outer: geom.Ring{{3, 3}, {8, 3}, {7, 7}, {3, 7}, {3, 3}},
	}}
	s, err := pathfind.NewSurface(box(-100, -100, 100, 100), keepOut, 0.1)
	require.NoError(t, err)
	path, err := s.FindPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10}, math.Inf(1), pathfind.Unlimited)
	require.NoError(t, err)
	assert.Equal(t, geom.LineString{{0, 0}, {3, 7}, {10, 10}}, path)
}

func TestPointOutsideSurface(t *testing.T) {
	keepOut := geom.MultiPolygon{{
		Outer: geom.Ring{{3, 3}, {8, 3}, {7, 7}, {3, 7}, {3, 3}},
	}}
	s, err := pathfind.NewSurface(box(-100, -100, 100, 100), keepOut, 0.1)
	require.NoError(t, err)
	// The start is inside the keep-out.
	_, err = s.FindPath(geom.Point{X: 5, Y: 5}, geom.Point{X: 20, Y: 20}, math.Inf(1), pathfind.Unlimited)
	assert.ErrorIs(t, err, pathfind.ErrNoPath)
}

func TestMaxPathLengthBudget(t *testing.T) {
	keepOut := geom.MultiPolygon{{
		Outer: geom.Ring{{3, 3}, {8, 3}, {7, 7}, {3, 7}, {3, 3}},
	}}
	s, err := pathfind.NewSurface(box(-100, -100, 100, 100), keepOut, 0.1)
	require.NoError(t, err)
	// The detour needs about 15.2 units; 14 cannot fit any path.
	_, err = s.FindPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10}, 14, pathfind.Unlimited)
	assert.ErrorIs(t, err, pathfind.ErrNoPath)

	path, err := s.FindPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10}, 16, pathfind.Unlimited)
	require.NoError(t, err)
	assert.LessOrEqual(t, path.Length(), 16.0)
}

func TestTriesBudgetAborts(t *testing.T) {
	keepOut := geom.MultiPolygon{{
		Outer: geom.Ring{{3, 3}, {8, 3}, {7, 7}, {3, 7}, {3, 3}},
	}}
	s, err := pathfind.NewSurface(box(-100, -100, 100, 100), keepOut, 0.1)
	require.NoError(t, err)
	_, err = s.FindPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10}, math.Inf(1), 1)
	assert.ErrorIs(t, err, pathfind.ErrNoPath)

	_, err = s.FindPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10}, math.Inf(1), 0)
	assert.ErrorIs(t, err, pathfind.ErrNoPath)
}

func TestPathStaysInSurface(t *testing.T) {
	keepOut := geom.MultiPolygon{{
		Outer: geom.Ring{{3, 3}, {8, 3}, {7, 7}, {3, 7}, {3, 3}},
	}}
	s, err := pathfind.NewSurface(box(-100, -100, 100, 100), keepOut, 0.1)
	require.NoError(t, err)
	path, err := s.FindPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10}, math.Inf(1), pathfind.Unlimited)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(path), 2)
	assert.Equal(t, geom.Point{X: 0, Y: 0}, path.Front())
	assert.Equal(t, geom.Point{X: 10, Y: 10}, path.Back())
	// No leg of the returned path may cross into the keep-out interior.
	for i := 1; i < len(path); i++ {
		mid := geom.Lerp(path[i-1], path[i], 0.5)
		assert.False(t, geom.PointInRing(mid, keepOut[0].Outer),
			"leg %d midpoint %v crosses the keep-out", i, mid)
	}
}
