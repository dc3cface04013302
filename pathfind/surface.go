package pathfind

import (
	"errors"

	"github.com/isoroute/isoroute/boolops"
	"github.com/isoroute/isoroute/geom"
	"github.com/isoroute/isoroute/segtree"
)

// ErrNoPath is returned when the goal is unreachable from the start, a
// point lies outside the free space, or the tries budget ran out.
var ErrNoPath = errors.New("pathfind: no path")

// SearchKey identifies a connected component of the free space. Two
// points are mutually reachable only when InSurface returns the same key
// for both.
type SearchKey int

// Surface is the free space for non-cutting moves. It holds mutable
// memoisation caches and must not be used from multiple goroutines.
type Surface struct {
	keepInGrown   nestedMultiPolygon
	keepOutShrunk nestedMultiPolygon
	hasKeepIn     bool

	// allVertices holds the pre-growth ring vertices: one row per input
	// polygon, one list per ring, outer first. These are the candidate
	// waypoints of the search graph.
	allVertices [][][]geom.Point

	tree *segtree.Tree

	edgeMemo     map[[2]geom.Point]bool
	pointMemo    map[geom.Point]pointMemoEntry
	indicesCache []ringIndices
	indicesByKey map[string]SearchKey
	verticesMemo map[SearchKey][]geom.Point

	tries    int
	budgeted bool
}

type pointMemoEntry struct {
	key SearchKey
	ok  bool
}

// NewSurface builds the free space from an optional keep-in (nil means
// absent) and a keep-out, with tolerance t. See the package comment for
// the growth rules.
func NewSurface(keepIn, keepOut geom.MultiPolygon, tolerance float64) (*Surface, error) {
	s := &Surface{
		edgeMemo:     make(map[[2]geom.Point]bool),
		pointMemo:    make(map[geom.Point]pointMemoEntry),
		indicesByKey: make(map[string]SearchKey),
		verticesMemo: make(map[SearchKey][]geom.Point),
	}

	var source geom.MultiPolygon
	var err error
	if keepIn != nil {
		s.hasKeepIn = true
		source, err = boolops.Difference(keepIn, keepOut)
		if err != nil {
			return nil, err
		}
	} else {
		source = keepOut
	}

	for _, poly := range source {
		var vertexRow [][]geom.Point
		vertexRow = append(vertexRow, ringWaypoints(poly.Outer))

		outerDelta := tolerance
		if !s.hasKeepIn {
			outerDelta = -tolerance
		}
		grownOuter, err := boolops.BufferMiterRing(poly.Outer, outerDelta)
		if err != nil {
			return nil, err
		}
		nested := nestedPolygon{outer: grownOuter}

		for _, inner := range poly.Inners {
			vertexRow = append(vertexRow, ringWaypoints(inner))
			// Holes are stored clockwise; the buffer needs a filled shape,
			// and growing a shape shrinks the holes in it, so the delta is
			// inverted relative to the outer.
			filled := inner.Reversed()
			grownInner, err := boolops.BufferMiterRing(filled, -outerDelta)
			if err != nil {
				return nil, err
			}
			nested.inners = append(nested.inners, grownInner)
		}

		s.allVertices = append(s.allVertices, vertexRow)
		if s.hasKeepIn {
			s.keepInGrown = append(s.keepInGrown, nested)
		} else {
			s.keepOutShrunk = append(s.keepOutShrunk, nested)
		}
	}

	s.tree = segtree.New(boundarySegments(s.searchSpace()))

	return s, nil
}

func (s *Surface) searchSpace() nestedMultiPolygon {
	if s.hasKeepIn {
		return s.keepInGrown
	}

	return s.keepOutShrunk
}

// Boundary returns the grown free-space boundary as a flat multipolygon,
// for diagnostics and debug rendering by callers.
func (s *Surface) Boundary() geom.MultiPolygon {
	var out geom.MultiPolygon
	for _, nested := range s.searchSpace() {
		out = append(out, nested.outer...)
		for _, inner := range nested.inners {
			out = append(out, inner...)
		}
	}

	return out
}

// ringWaypoints copies a ring's vertices without the closing duplicate.
func ringWaypoints(r geom.Ring) []geom.Point {
	n := len(r)
	if n > 1 && r.Closed() {
		n--
	}
	out := make([]geom.Point, n)
	copy(out, r[:n])

	return out
}

func boundarySegments(mp nestedMultiPolygon) [][2]geom.Point {
	var segs [][2]geom.Point
	addRing := func(r geom.Ring) {
		for i := 0; i+1 < len(r); i++ {
			segs = append(segs, [2]geom.Point{r[i], r[i+1]})
		}
	}
	for _, nested := range mp {
		for _, poly := range nested.outer {
			addRing(poly.Outer)
			for _, inner := range poly.Inners {
				addRing(inner)
			}
		}
		for _, innerMP := range nested.inners {
			for _, poly := range innerMP {
				addRing(poly.Outer)
				for _, inner := range poly.Inners {
					addRing(inner)
				}
			}
		}
	}

	return segs
}

// InSurface reports which free-space component p inhabits.
func (s *Surface) InSurface(p geom.Point) (SearchKey, bool) {
	if memo, ok := s.pointMemo[p]; ok {
		return memo.key, memo.ok
	}
	var indices ringIndices
	var inside bool
	if s.hasKeepIn {
		indices, inside = insideMultipolygons(p, s.keepInGrown)
	} else {
		indices, inside = outsideMultipolygons(p, s.keepOutShrunk)
	}
	if !inside {
		s.pointMemo[p] = pointMemoEntry{}

		return 0, false
	}
	encoded := indices.encode()
	key, ok := s.indicesByKey[encoded]
	if !ok {
		key = SearchKey(len(s.indicesCache))
		s.indicesCache = append(s.indicesCache, indices)
		s.indicesByKey[encoded] = key
	}
	s.pointMemo[p] = pointMemoEntry{key: key, ok: true}

	return key, true
}

// edgeVisible reports whether the segment a–b stays inside the free
// space, i.e. crosses no boundary segment.
func (s *Surface) edgeVisible(a, b geom.Point) bool {
	if b.Less(a) {
		a, b = b, a
	}
	key := [2]geom.Point{a, b}
	if memo, ok := s.edgeMemo[key]; ok {
		return memo
	}
	visible := !s.tree.Intersects(a, b)
	s.edgeMemo[key] = visible

	return visible
}

// vertices returns the candidate waypoints of one component: the
// pre-growth vertices of every ring the component's containment structure
// names.
func (s *Surface) vertices(key SearchKey) []geom.Point {
	if memo, ok := s.verticesMemo[key]; ok {
		return memo
	}
	var out []geom.Point
	for _, polyEntry := range s.indicesCache[key] {
		row := s.allVertices[polyEntry.poly]
		for _, ringEntry := range polyEntry.rings {
			if ringEntry.ring < len(row) {
				out = append(out, row[ringEntry.ring]...)
			}
		}
	}
	s.verticesMemo[key] = out

	return out
}

// decrementTries burns one unit of the search budget; false means the
// budget is exhausted.
func (s *Surface) decrementTries() bool {
	if !s.budgeted {
		return true
	}
	if s.tries == 0 {
		return false
	}
	s.tries--

	return true
}
