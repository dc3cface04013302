// Package voronoi inflates each conductor polygon to its maximum extent:
// the region of the board closer to that conductor's edges than to any
// other conductor's, clipped to a bounding box. Milling along these region
// boundaries removes the least copper that still isolates every trace.
//
// Partition samples every conductor ring (and the bounding-box ring, whose
// regions are discarded) at a spacing of at most maxDist, builds each
// sample site's Voronoi cell by clipping the bounding rectangle against
// the perpendicular-bisector half-plane of every nearby foreign site, and
// unions the cells of each conductor together with the conductor itself.
// Curved bisector arcs around corners come out as chains of straight
// edges whose deviation is bounded by the sampling distance, the same
// error bound an exact diagram sampled at maxDist would give.
//
// Sites of the same conductor never clip each other — their cells merge
// in the union anyway — so each cell clip only consults foreign sites,
// nearest first, and stops as soon as the remaining sites are more than
// twice the cell radius away.
//
// The output has one region per input polygon, in input order; regions
// carry holes exactly where foreign conductors sit inside a conductor's
// hole. Orientation is normalised.
//
// Errors:
//
//	ErrNonPositiveMaxDist - maxDist must be positive.
//	boolops.ErrTopology   - the merge step failed in the clipping engine.
package voronoi
