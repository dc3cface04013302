// Package segmentize normalises tool-path geometry before graph
// construction: it merges vertices that differ only by rounding noise and
// splits every path at every crossing and T-junction, so that the segments
// handed to the Eulerian trail builder meet only at shared endpoints.
//
// Paths is the main entry point. It first applies MergeNearPoints with
// MergeEpsilon, then scales the coordinates by Scale onto an integer grid,
// splits each segment at its intersections with every other segment, and
// scales back. On the grid, two segments either miss, cross at one snapped
// point, touch in a T, or overlap collinearly; each case inserts the
// corresponding cut vertices into both segments.
//
// Guarantees on the output:
//
//   - No two segments cross in their interiors; three segments meet at a
//     former T-junction point.
//   - Each input path is exactly the concatenation, in original order, of
//     its output sub-segments.
//   - Non-reversible segments keep their direction. Reversible segments
//     are normalised so the lexicographically smaller endpoint comes
//     first.
//
// MergeNearPoints rewrites all points within MergeEpsilon of each other to
// a common representative (the lexicographically smallest reaches
// furthest, since the scan runs in sorted order) and reports how many
// rewrites happened.
package segmentize
