package segmentize

import (
	"math"
	"sort"

	"github.com/isoroute/isoroute/geom"
)

// Scale maps board units onto the integer grid used for exact
// intersection arithmetic.
const Scale = 1e6

type ipoint struct {
	x, y int64
}

type iseg struct {
	a, b       ipoint
	reversible bool
}

// Paths splits the input paths into two-point segments such that no two
// output segments cross in their interiors and T-junctions are shared
// vertices. Near points are merged first (MergeEpsilon). Non-reversible
// segments keep their direction; reversible ones come out with the
// lexicographically smaller endpoint first.
//
// The pairwise sweep is quadratic in the segment count with no spatial
// pruning; isolation toolpaths are small enough that this has never been
// the bottleneck.
func Paths(paths []geom.DirectedPath) []geom.DirectedPath {
	merged := make([]geom.DirectedPath, len(paths))
	for i, p := range paths {
		merged[i] = geom.DirectedPath{Line: p.Line.Clone(), Reversible: p.Reversible}
	}
	MergeNearPoints(merged, MergeEpsilon)

	var segs []iseg
	for _, p := range merged {
		for i := 1; i < len(p.Line); i++ {
			a := scalePoint(p.Line[i-1])
			b := scalePoint(p.Line[i])
			if a == b {
				continue
			}
			segs = append(segs, iseg{a: a, b: b, reversible: p.Reversible})
		}
	}

	cuts := make([][]ipoint, len(segs))
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			cutPair(segs[i], segs[j], &cuts[i], &cuts[j])
		}
	}

	var out []geom.DirectedPath
	for k, s := range segs {
		for _, sub := range splitSegment(s, cuts[k]) {
			a := unscalePoint(sub.a)
			b := unscalePoint(sub.b)
			if s.reversible && b.Less(a) {
				a, b = b, a
			}
			out = append(out, geom.DirectedPath{
				Line:       geom.LineString{a, b},
				Reversible: s.reversible,
			})
		}
	}

	return out
}

func scalePoint(p geom.Point) ipoint {
	return ipoint{x: int64(math.Round(p.X * Scale)), y: int64(math.Round(p.Y * Scale))}
}

func unscalePoint(p ipoint) geom.Point {
	return geom.Point{X: float64(p.x) / Scale, Y: float64(p.y) / Scale}
}

func cross(ax, ay, bx, by int64) int64 {
	return ax*by - ay*bx
}

// onSegment reports whether p lies on the closed segment s, assuming p is
// collinear with s.
func onSegment(p ipoint, s iseg) bool {
	return min64(s.a.x, s.b.x) <= p.x && p.x <= max64(s.a.x, s.b.x) &&
		min64(s.a.y, s.b.y) <= p.y && p.y <= max64(s.a.y, s.b.y)
}

// cutPair records the intersection vertices of s1 and s2 in both cut
// lists. Proper crossings contribute the snapped crossing point; touches
// and collinear overlaps contribute the endpoints that land on the other
// segment's interior.
func cutPair(s1, s2 iseg, cuts1, cuts2 *[]ipoint) {
	d1x, d1y := s1.b.x-s1.a.x, s1.b.y-s1.a.y
	d2x, d2y := s2.b.x-s2.a.x, s2.b.y-s2.a.y
	ex, ey := s2.a.x-s1.a.x, s2.a.y-s1.a.y

	denom := cross(d1x, d1y, d2x, d2y)
	if denom == 0 {
		if cross(ex, ey, d1x, d1y) != 0 {
			return // parallel, not collinear
		}
		// Collinear overlap: each endpoint of one that lies on the other
		// becomes a cut on the other.
		for _, p := range []ipoint{s2.a, s2.b} {
			if onSegment(p, s1) {
				*cuts1 = append(*cuts1, p)
			}
		}
		for _, p := range []ipoint{s1.a, s1.b} {
			if onSegment(p, s2) {
				*cuts2 = append(*cuts2, p)
			}
		}

		return
	}

	tNum := cross(ex, ey, d2x, d2y)
	uNum := cross(ex, ey, d1x, d1y)
	if denom < 0 {
		denom, tNum, uNum = -denom, -tNum, -uNum
	}
	if tNum < 0 || tNum > denom || uNum < 0 || uNum > denom {
		return // the lines cross outside both segments
	}
	t := float64(tNum) / float64(denom)
	p := ipoint{
		x: s1.a.x + int64(math.Round(t*float64(d1x))),
		y: s1.a.y + int64(math.Round(t*float64(d1y))),
	}
	*cuts1 = append(*cuts1, p)
	*cuts2 = append(*cuts2, p)
}

// splitSegment orders the cut vertices along s and emits the non-empty
// sub-segments between them.
func splitSegment(s iseg, cuts []ipoint) []iseg {
	if len(cuts) == 0 {
		return []iseg{s}
	}
	dx, dy := s.b.x-s.a.x, s.b.y-s.a.y
	// Position along the segment by dot product; exact in int64.
	param := func(p ipoint) int64 {
		return (p.x-s.a.x)*dx + (p.y-s.a.y)*dy
	}
	pts := make([]ipoint, 0, len(cuts)+2)
	pts = append(pts, s.a)
	pts = append(pts, cuts...)
	pts = append(pts, s.b)
	sort.Slice(pts, func(i, j int) bool { return param(pts[i]) < param(pts[j]) })

	var out []iseg
	prev := pts[0]
	for _, pt := range pts[1:] {
		if pt == prev {
			continue
		}
		out = append(out, iseg{a: prev, b: pt, reversible: s.reversible})
		prev = pt
	}

	return out
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}

func max64(a, b int64) int64 {
	if a < b {
		return b
	}

	return a
}
