package boolops

import (
	"math"

	clipper "github.com/go-clipper/clipper2/port"

	"github.com/isoroute/isoroute/geom"
)

// Scale converts board units to the engine's integer grid. One unit of the
// grid is a micro board unit, fine enough that offset epsilons survive the
// round trip.
const Scale = 1e6

func toPoint64(p geom.Point) clipper.Point64 {
	return clipper.Point64{X: int64(math.Round(p.X * Scale)), Y: int64(math.Round(p.Y * Scale))}
}

func fromPoint64(p clipper.Point64) geom.Point {
	return geom.Point{X: float64(p.X) / Scale, Y: float64(p.Y) / Scale}
}

// ringToPath drops the closing vertex: engine paths are implicitly closed.
func ringToPath(r geom.Ring) clipper.Path64 {
	n := len(r)
	if n > 1 && r.Closed() {
		n--
	}
	path := make(clipper.Path64, 0, n)
	for i := 0; i < n; i++ {
		path = append(path, toPoint64(r[i]))
	}

	return path
}

func pathToRing(p clipper.Path64) geom.Ring {
	ring := make(geom.Ring, 0, len(p)+1)
	for _, pt := range p {
		ring = append(ring, fromPoint64(pt))
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}

	return ring
}

func toPaths(mp geom.MultiPolygon) clipper.Paths64 {
	var paths clipper.Paths64
	for _, poly := range mp {
		paths = append(paths, ringToPath(poly.Outer))
		for _, inner := range poly.Inners {
			paths = append(paths, ringToPath(inner))
		}
	}

	return paths
}

func lineToPath(ls geom.LineString) clipper.Path64 {
	path := make(clipper.Path64, 0, len(ls))
	for _, pt := range ls {
		path = append(path, toPoint64(pt))
	}

	return path
}

// fromTree rebuilds polygons from the engine's nesting tree: top-level
// children are outers, their children holes, and a hole's children start
// new polygons again.
func fromTree(tree *clipper.PolyTree64) geom.MultiPolygon {
	var mp geom.MultiPolygon
	for _, outer := range tree.Children() {
		collectPolygons(outer, &mp)
	}
	geom.Correct(mp)

	return mp
}

func collectPolygons(outer *clipper.PolyPath64, mp *geom.MultiPolygon) {
	poly := geom.Polygon{Outer: pathToRing(outer.Polygon())}
	for _, hole := range outer.Children() {
		poly.Inners = append(poly.Inners, pathToRing(hole.Polygon()))
		for _, nested := range hole.Children() {
			collectPolygons(nested, mp)
		}
	}
	*mp = append(*mp, poly)
}

func clone(mp geom.MultiPolygon) geom.MultiPolygon {
	out := make(geom.MultiPolygon, 0, len(mp))
	for _, poly := range mp {
		cp := geom.Polygon{Outer: poly.Outer.Clone()}
		for _, inner := range poly.Inners {
			cp.Inners = append(cp.Inners, inner.Clone())
		}
		out = append(out, cp)
	}

	return out
}
