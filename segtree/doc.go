// Package segtree answers "does this segment intersect any of a fixed set
// of segments?" in sublinear time, for the path finder's line-of-sight
// tests.
//
// The tree is built once from the boundary segments of a path-finding
// surface. Each level sorts by one bounding-box corner coordinate — the
// axis and the comparison direction alternate through a fixed cycle of
// four (max-x, min-y, max-y, min-x) — and splits at the median, so the
// tree partitions the plane like a kd-tree with margins. Leaves hold one
// segment each; queries descend both children only when the query
// segment's own bounding-box extreme straddles the intercept, and test
// exact intersection with the stable cross-product predicate at leaves.
//
// Segments are stored undirected: normalised so the lower-x endpoint comes
// first, with the original slope sign kept separately for the min/max-y
// accessors.
//
// Complexity: O(n log n) build; queries are O(log n) on spread-out
// boundaries and degrade gracefully toward O(n) on pathological overlap.
package segtree
