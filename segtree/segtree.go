package segtree

import (
	"sort"

	"github.com/isoroute/isoroute/geom"
)

// segment stores an undirected segment normalised so first has the lower
// X (ties keep insertion order). positiveSlope remembers whether first.Y
// is below second.Y so min/max Y stay O(1).
type segment struct {
	first, second geom.Point
	positiveSlope bool
}

func newSegment(a, b geom.Point) segment {
	if b.X < a.X {
		a, b = b, a
	}

	return segment{first: a, second: b, positiveSlope: a.Y < b.Y}
}

func (s segment) minX() float64 { return s.first.X }
func (s segment) maxX() float64 { return s.second.X }

func (s segment) minY() float64 {
	if s.positiveSlope {
		return s.first.Y
	}

	return s.second.Y
}

func (s segment) maxY() float64 {
	if s.positiveSlope {
		return s.second.Y
	}

	return s.first.Y
}

// buildCorner selects one bounding-box extreme of a segment together with the
// sign that turns every comparison into a factor*value < factor*intercept
// test.
func buildCorner(onX, lessThan bool) (func(segment) float64, float64) {
	switch {
	case lessThan && onX:
		return segment.maxX, 1
	case lessThan && !onX:
		return segment.maxY, 1
	case !lessThan && onX:
		return segment.minX, -1
	default:
		return segment.minY, -1
	}
}

// queryCorner is the mirror of buildCorner: the extreme of the query
// segment that decides whether the "in" child can possibly match.
func queryCorner(onX, lessThan bool) (func(segment) float64, float64) {
	switch {
	case lessThan && onX:
		return segment.minX, -1
	case lessThan && !onX:
		return segment.minY, -1
	case !lessThan && onX:
		return segment.maxX, 1
	default:
		return segment.maxY, 1
	}
}

// node is either internal (children set, intercept meaningful) or a leaf
// holding exactly one segment.
type node struct {
	intercept float64
	in, out   *node
	seg       segment
	leaf      bool
}

// Tree is an immutable segment intersection index. The zero value is an
// empty tree.
type Tree struct {
	root *node
}

// New builds a tree over the given segment endpoints. Duplicates and
// degenerate segments are stored as-is.
func New(segments [][2]geom.Point) *Tree {
	if len(segments) == 0 {
		return &Tree{}
	}
	segs := make([]segment, 0, len(segments))
	for _, s := range segments {
		segs = append(segs, newSegment(s[0], s[1]))
	}

	return &Tree{root: build(segs, true, true)}
}

const (
	startOnX      = true
	startLessThan = true
)

func build(segs []segment, onX, lessThan bool) *node {
	if len(segs) == 1 {
		return &node{seg: segs[0], leaf: true}
	}
	corner, factor := buildCorner(onX, lessThan)
	sort.SliceStable(segs, func(i, j int) bool {
		return factor*corner(segs[i]) < factor*corner(segs[j])
	})
	mid := len(segs) / 2
	intercept := corner(segs[mid])

	return &node{
		intercept: intercept,
		in:        build(segs[:mid], lessThan != onX, !lessThan),
		out:       build(segs[mid:], lessThan != onX, !lessThan),
	}
}

// Intersects reports whether the segment p0–p1 intersects any stored
// segment, endpoints included.
func (t *Tree) Intersects(p0, p1 geom.Point) bool {
	if t.root == nil {
		return false
	}

	return intersects(newSegment(p0, p1), t.root, startOnX, startLessThan)
}

func intersects(query segment, n *node, onX, lessThan bool) bool {
	if n.leaf {
		return geom.SegmentsIntersect(query.first, query.second, n.seg.first, n.seg.second)
	}
	newOnX := lessThan != onX
	newLessThan := !lessThan
	if intersects(query, n.out, newOnX, newLessThan) {
		return true
	}
	corner, factor := queryCorner(onX, lessThan)
	if !(factor*corner(query) < factor*n.intercept) {
		return intersects(query, n.in, newOnX, newLessThan)
	}

	return false
}
