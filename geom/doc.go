// Package geom defines the planar primitives shared by every stage of the
// milling pipeline: points, line strings, rings, polygons, multipolygons,
// boxes, and directed tool paths — plus the small set of robust predicates
// (orientation, betweenness, segment intersection, winding-number point
// containment) that the segment tree and the path finder depend on.
//
// Conventions:
//
//   - Coordinates are float64 board units. Equality is bitwise; callers that
//     need tolerance use segmentize.MergeNearPoints first.
//   - Points order lexicographically by (X, Y); see Point.Less.
//   - A Ring is a closed LineString: the first vertex is repeated as the
//     last. Outer rings wind counter-clockwise, holes clockwise.
//   - A DirectedPath whose Reversible flag is false must be traversed
//     front-to-back (climb-milling constraint); a reversible path may start
//     from either end.
//
// All predicates are exact up to float64 arithmetic: IsLeft is the cross
// product (p1−p0)×(p2−p0), and SegmentsIntersect falls back to collinear
// betweenness checks, so touching endpoints and T-junctions count as
// intersections.
package geom
