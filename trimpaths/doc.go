// Package trimpaths removes backtrack segments that the final trail set no
// longer needs. The planner adds enough doubled segments to make an
// Eulerian circuit; an open trail only needs an Eulerian path, so doubled
// segments sitting at a trail's ends — or forming one contiguous interior
// span of a closed loop — can be shaved off again.
//
// For each trail, Trim strips leading segments while each matches an
// unconsumed backtrack, then trailing segments likewise. A closed loop is
// additionally scanned for its longest contiguous all-backtrack interior
// span; unless the two end trims combined are strictly longer than that
// span, the loop is rotated open at the span instead. Reversible trails get a second pass in
// the opposite orientation. Matching consumes the directed variant of a
// segment in preference to the reversible one, so direction-constrained
// duplicates are retired first.
//
// Trails left with fewer than two vertices are dropped.
package trimpaths
