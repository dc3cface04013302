package voronoi

import (
	"errors"
	"math"
	"sort"

	"github.com/isoroute/isoroute/boolops"
	"github.com/isoroute/isoroute/geom"
)

// ErrNonPositiveMaxDist rejects a non-positive sampling distance.
var ErrNonPositiveMaxDist = errors.New("voronoi: maxDist must be positive")

// boundaryGenerator marks sites that belong to the bounding-box ring;
// their cells are dropped.
const boundaryGenerator = -1

type site struct {
	point     geom.Point
	generator int
}

// Partition returns one maximal-extent region per input polygon. The
// regions tile the bounding box (up to the discarded border band along
// the box ring) and each contains its conductor.
func Partition(input geom.MultiPolygon, boundingBox geom.Box, maxDist float64) (geom.MultiPolygon, error) {
	if maxDist <= 0 {
		return nil, ErrNonPositiveMaxDist
	}
	if len(input) == 0 {
		return nil, nil
	}

	sites := collectSites(input, boundingBox, maxDist)

	// One cell list per conductor; the box ring's cells are not kept.
	cells := make([][]geom.MultiPolygon, len(input))
	box := boundingBox.Ring()
	for i, s := range sites {
		if s.generator == boundaryGenerator {
			continue
		}
		cell := clipCell(box, i, sites)
		if len(cell) >= 3 {
			cells[s.generator] = append(cells[s.generator],
				geom.MultiPolygon{{Outer: closeCell(cell)}})
		}
	}

	out := make(geom.MultiPolygon, 0, len(input))
	for i, poly := range input {
		operands := append(cells[i], geom.MultiPolygon{poly})
		region, err := boolops.Sum(operands)
		if err != nil {
			return nil, err
		}
		out = append(out, pickRegion(region, poly))
	}
	geom.Correct(out)

	return out, nil
}

// collectSites samples all conductor rings, then the bounding-box ring.
func collectSites(input geom.MultiPolygon, boundingBox geom.Box, maxDist float64) []site {
	var sites []site
	addRing := func(r geom.Ring, generator int) {
		for i := 0; i+1 < len(r); i++ {
			a, b := r[i], r[i+1]
			steps := int(math.Ceil(geom.Dist(a, b) / maxDist))
			if steps < 1 {
				steps = 1
			}
			for k := 0; k < steps; k++ {
				sites = append(sites, site{
					point:     geom.Lerp(a, b, float64(k)/float64(steps)),
					generator: generator,
				})
			}
		}
	}
	for pi, poly := range input {
		addRing(poly.Outer, pi)
		for _, inner := range poly.Inners {
			addRing(inner, pi)
		}
	}
	addRing(boundingBox.Ring(), boundaryGenerator)

	return sites
}

// clipCell intersects the bounding rectangle with the bisector half-plane
// of every foreign site near enough to matter, nearest first.
func clipCell(box geom.Ring, self int, sites []site) []geom.Point {
	p := sites[self].point
	generator := sites[self].generator

	type candidate struct {
		point  geom.Point
		distSq float64
	}
	candidates := make([]candidate, 0, len(sites))
	for i, s := range sites {
		if i == self || s.generator == generator {
			continue
		}
		candidates = append(candidates, candidate{point: s.point, distSq: geom.DistSq(p, s.point)})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].distSq < candidates[j].distSq })

	cell := make([]geom.Point, 0, len(box)-1)
	cell = append(cell, box[:len(box)-1]...)
	radiusSq := cellRadiusSq(p, cell)
	for _, c := range candidates {
		// A bisector at distance d/2 cannot cut a cell of radius r when
		// d > 2r.
		if c.distSq > 4*radiusSq {
			break
		}
		cell = clipHalfPlane(cell, p, c.point)
		if len(cell) < 3 {
			return nil
		}
		radiusSq = cellRadiusSq(p, cell)
	}

	return cell
}

func cellRadiusSq(p geom.Point, cell []geom.Point) float64 {
	var r float64
	for _, v := range cell {
		if d := geom.DistSq(p, v); d > r {
			r = d
		}
	}

	return r
}

// clipHalfPlane keeps the part of the convex cell closer to p than to q,
// by Sutherland–Hodgman against the perpendicular bisector.
func clipHalfPlane(cell []geom.Point, p, q geom.Point) []geom.Point {
	mid := geom.Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
	nx, ny := q.X-p.X, q.Y-p.Y // normal pointing at q; keep side ≤ 0

	side := func(v geom.Point) float64 {
		return (v.X-mid.X)*nx + (v.Y-mid.Y)*ny
	}

	out := make([]geom.Point, 0, len(cell)+1)
	for i := range cell {
		cur := cell[i]
		next := cell[(i+1)%len(cell)]
		sc, sn := side(cur), side(next)
		if sc <= 0 {
			out = append(out, cur)
		}
		if (sc < 0 && sn > 0) || (sc > 0 && sn < 0) {
			t := sc / (sc - sn)
			out = append(out, geom.Lerp(cur, next, t))
		}
	}

	return out
}

func closeCell(cell []geom.Point) geom.Ring {
	ring := make(geom.Ring, 0, len(cell)+1)
	ring = append(ring, cell...)
	ring = append(ring, cell[0])

	return ring
}

// pickRegion selects, from the merged region, the polygon whose outer ring
// holds the conductor's first vertex, falling back to the largest piece;
// the other pieces are dropped.
func pickRegion(region geom.MultiPolygon, conductor geom.Polygon) geom.Polygon {
	if len(region) == 1 {
		return region[0]
	}
	if len(region) == 0 {
		return conductor
	}
	anchor := conductor.Outer.Front()
	best := 0
	bestArea := 0.0
	for i, poly := range region {
		if geom.PointInRing(anchor, poly.Outer) {
			return poly
		}
		if a := geom.Area(geom.MultiPolygon{poly}); a > bestArea {
			best, bestArea = i, a
		}
	}

	return region[best]
}
