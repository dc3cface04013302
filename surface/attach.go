package surface

import (
	"github.com/isoroute/isoroute/geom"
)

// attachRing links ring onto one end of toolpath if some ring vertex is
// within maxDistance of an endpoint. The ring is rotated so the nearest
// vertex comes first (and, closing, last) before insertion.
func attachRing(ring geom.Ring, toolpath *geom.LineString, maxDistance float64) bool {
	if len(ring) < 2 || len(*toolpath) == 0 {
		return false
	}
	n := len(ring) - 1 // distinct vertices; the closing duplicate repeats ring[0]

	insertAtFront := true
	best := 0
	bestDist := geom.DistSq(ring[0], (*toolpath).Front())
	for i := 0; i < n; i++ {
		if d := geom.DistSq(ring[i], (*toolpath).Front()); d < bestDist {
			bestDist, best, insertAtFront = d, i, true
		}
		if d := geom.DistSq(ring[i], (*toolpath).Back()); d < bestDist {
			bestDist, best, insertAtFront = d, i, false
		}
	}
	endpoint := (*toolpath).Back()
	if insertAtFront {
		endpoint = (*toolpath).Front()
	}
	if geom.Dist(ring[best], endpoint) >= maxDistance {
		return false
	}

	// Rotate so the loop starts and ends at the chosen vertex.
	rotated := make(geom.LineString, 0, n+1)
	rotated = append(rotated, ring[best:n]...)
	rotated = append(rotated, ring[:best]...)
	rotated = append(rotated, ring[best])

	if insertAtFront {
		*toolpath = append(rotated, (*toolpath)...)
	} else {
		*toolpath = append(*toolpath, rotated...)
	}

	return true
}

// attachRingToPaths tries every existing path; with no endpoint close
// enough the ring starts a path of its own.
func attachRingToPaths(ring geom.Ring, toolpaths *geom.MultiLineString, maxDistance float64) {
	for i := range *toolpaths {
		if attachRing(ring, &(*toolpaths)[i], maxDistance) {
			return
		}
	}
	*toolpaths = append(*toolpaths, ring.Clone())
}

// attachPolygons links every ring of polygons into the toolpaths: all
// outers first, then ring index 1 of every polygon, then index 2, and so
// on, which keeps nested loops together.
func attachPolygons(polygons geom.MultiPolygon, toolpaths *geom.MultiLineString, maxDistance float64) {
	for _, poly := range polygons {
		attachRingToPaths(poly.Outer, toolpaths, maxDistance)
	}
	for i := 0; ; i++ {
		found := false
		for _, poly := range polygons {
			if i < len(poly.Inners) {
				found = true
				attachRingToPaths(poly.Inners[i], toolpaths, maxDistance)
			}
		}
		if !found {
			return
		}
	}
}
