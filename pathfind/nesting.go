package pathfind

import (
	"strconv"

	"github.com/isoroute/isoroute/geom"
)

// nestedPolygon is one free-space component shape: a grown outer
// multipolygon and, per original hole, the shrunk hole as a multipolygon
// of its own (growth can split shapes, hence multi).
type nestedPolygon struct {
	outer  geom.MultiPolygon
	inners []geom.MultiPolygon
}

type nestedMultiPolygon []nestedPolygon

// mpRingIndices records, inside one multipolygon, which polygon a point
// is in and which of that polygon's rings bound it: ring 0 is the outer,
// ring i+1 the i-th hole.
type mpRingEntry struct {
	poly  int
	rings []int
}

type mpRingIndices []mpRingEntry

// ringIndices is the nested variant: for each relevant polygon of the
// nested multipolygon, the rings that bound the point, each carrying the
// containment detail of the multipolygon behind that ring.
type ringEntry struct {
	ring int
	mp   mpRingIndices
}

type ringIndicesEntry struct {
	poly  int
	rings []ringEntry
}

type ringIndices []ringIndicesEntry

// encode builds a compact hashable key for interning. The containment
// structures are slow to hash directly; the string form is built once per
// distinct structure.
func (ri ringIndices) encode() string {
	buf := make([]byte, 0, 16*len(ri))
	for _, e := range ri {
		buf = strconv.AppendInt(buf, int64(e.poly), 10)
		buf = append(buf, ':')
		for _, r := range e.rings {
			buf = strconv.AppendInt(buf, int64(r.ring), 10)
			buf = append(buf, '(')
			for _, m := range r.mp {
				buf = strconv.AppendInt(buf, int64(m.poly), 10)
				buf = append(buf, '[')
				for _, ring := range m.rings {
					buf = strconv.AppendInt(buf, int64(ring), 10)
					buf = append(buf, ',')
				}
				buf = append(buf, ']')
			}
			buf = append(buf, ')')
		}
		buf = append(buf, ';')
	}

	return string(buf)
}

// insideMultipolygon locates p strictly inside mp: inside some polygon's
// outer and outside all of its holes. Nested shapes inside a hole are
// found by continuing the scan.
func insideMultipolygon(p geom.Point, mp geom.MultiPolygon) (mpRingIndices, bool) {
	for polyIndex, poly := range mp {
		if !geom.PointInRing(p, poly.Outer) {
			continue
		}
		// Inside this outer; part of the shape unless a hole swallows p.
		indices := mpRingIndices{{poly: polyIndex, rings: []int{0}}}
		inHole := false
		for innerIndex, inner := range poly.Inners {
			if geom.PointInRing(p, inner) {
				inHole = true

				break
			}
			// This hole must not be crossed.
			indices[len(indices)-1].rings = append(indices[len(indices)-1].rings, innerIndex+1)
		}
		if !inHole {
			return indices, true
		}
		// Inside an inner: a sibling shape may live in that hole, keep
		// scanning.
	}

	return nil, false
}

// outsideMultipolygon locates p outside mp: for every polygon, either
// outside its outer or inside one of its holes.
func outsideMultipolygon(p geom.Point, mp geom.MultiPolygon) (mpRingIndices, bool) {
	var indices mpRingIndices
	for polyIndex, poly := range mp {
		if geom.PointInRing(p, poly.Outer) {
			inAnyInner := false
			for i, inner := range poly.Inners {
				if geom.PointInRing(p, inner) {
					inAnyInner = true
					indices = append(indices, mpRingEntry{poly: polyIndex, rings: []int{i + 1}})

					break
				}
			}
			if !inAnyInner {
				// Inside the shape itself: not outside at all.
				return nil, false
			}
		} else {
			// Keep out of this outer.
			indices = append(indices, mpRingEntry{poly: polyIndex, rings: []int{0}})
		}
	}

	return indices, true
}

// insideMultipolygons is the nested variant of insideMultipolygon.
func insideMultipolygons(p geom.Point, mp nestedMultiPolygon) (ringIndices, bool) {
	for polyIndex, poly := range mp {
		insideMP, ok := insideMultipolygon(p, poly.outer)
		if !ok {
			continue
		}
		indices := ringIndices{{poly: polyIndex, rings: []ringEntry{{ring: 0, mp: insideMP}}}}
		inHole := false
		for innerIndex, inner := range poly.inners {
			outsideMP, outside := outsideMultipolygon(p, inner)
			if !outside {
				inHole = true

				break
			}
			indices[len(indices)-1].rings = append(indices[len(indices)-1].rings,
				ringEntry{ring: innerIndex + 1, mp: outsideMP})
		}
		if !inHole {
			return indices, true
		}
	}

	return nil, false
}

// outsideMultipolygons is the nested variant of outsideMultipolygon.
func outsideMultipolygons(p geom.Point, mp nestedMultiPolygon) (ringIndices, bool) {
	var indices ringIndices
	for polyIndex, poly := range mp {
		outsideMP, outside := outsideMultipolygon(p, poly.outer)
		if !outside {
			inAnyInner := false
			for innerIndex, inner := range poly.inners {
				insideMP, inside := insideMultipolygon(p, inner)
				if inside {
					inAnyInner = true
					indices = append(indices, ringIndicesEntry{
						poly:  polyIndex,
						rings: []ringEntry{{ring: innerIndex + 1, mp: insideMP}},
					})

					break
				}
			}
			if !inAnyInner {
				return nil, false
			}
		} else {
			indices = append(indices, ringIndicesEntry{
				poly:  polyIndex,
				rings: []ringEntry{{ring: 0, mp: outsideMP}},
			})
		}
	}

	return indices, true
}
