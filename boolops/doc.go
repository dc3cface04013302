// Package boolops wraps an integer-coordinate polygon clipping engine
// behind the floating-point geometry types used by the rest of the
// pipeline.
//
// Board units are scaled by Scale (10⁶) into int64 paths at this boundary
// and scaled back afterwards; no other package touches integer coordinates.
//
// Beyond plain delegation the wrapper enforces contracts that clipping
// engines commonly get wrong:
//
//   - Union / SymDifference with a zero-area operand return the other
//     operand unchanged instead of degenerate output; Difference returns
//     its first operand unchanged when the second has zero area, and
//     empty when the first has.
//   - Buffer with distance 0 returns the input unchanged.
//   - Union of operands whose bounding boxes exactly touch on a side
//     pre-dilates both by a small ε so no hairline gap survives.
//   - Sum reduces a list by hierarchical pairwise union, concatenating
//     operands whose bounding boxes are disjoint instead of clipping them.
//
// Circular joins are approximated with PointsPerCircle segments per full
// circle (default 30).
//
// Errors:
//
//	ErrTopology - the underlying engine failed on the operands. The layer
//	              must be aborted; retrying cannot help.
package boolops
