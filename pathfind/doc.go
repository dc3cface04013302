// Package pathfind routes non-cutting moves between cut endpoints through
// the free space left by keep-in and keep-out regions, without crossing
// copper.
//
// A Surface is built once per layer from an optional keep-in multipolygon,
// a keep-out multipolygon, and a tolerance t. With a keep-in, the free
// space is the interior of (keepIn − keepOut) with every outer grown by +t
// and every hole shrunk by −t (miter joins, so grown corners stay clear of
// the originals); without one, it is the exterior of the keep-out with
// outers shrunk and holes grown. The pre-growth ring vertices become the
// candidate waypoints of the search graph; the post-growth ring segments
// feed a segment tree for line-of-sight queries.
//
// Two points can only be connected when they inhabit the same connected
// component of the free space. Component identity is the full sequence of
// ring containments — which outers a point is inside and which holes it
// must avoid — computed by recursive winding-number tests and interned to
// a small integer SearchKey, because the containment structure itself is
// too large to hash on every memo lookup.
//
// FindPath runs A* from start to goal: neighbours of a vertex are the
// start, the goal, and every waypoint of the component that is visible
// and still fits the remaining path-length budget; the heuristic is
// straight-line distance. An optional tries budget decrements once per
// visibility query and per neighbour test, and aborts the search with
// ErrNoPath when it hits zero.
//
// A Surface memoises point containment, edge visibility, and per-component
// waypoint lists, so it must not be shared between goroutines; distinct
// Surfaces are independent.
package pathfind
