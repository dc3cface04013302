package boolops

import (
	"errors"
	"fmt"

	clipper "github.com/go-clipper/clipper2/port"

	"github.com/isoroute/isoroute/geom"
)

// ErrTopology indicates the clipping engine failed on its operands, most
// often from self-intersecting input. Callers must surface a diagnostic
// and abort the layer; retrying the same operands cannot succeed.
var ErrTopology = errors.New("boolops: topology error in clipping engine")

// touchEpsilon is the pre-dilation applied to union operands whose
// bounding boxes exactly touch on a side, in board units.
const touchEpsilon = 1e-6

// Union returns a ∪ b. A zero-area operand yields the other operand
// unchanged, whatever the engine would say.
func Union(a, b geom.MultiPolygon) (geom.MultiPolygon, error) {
	if geom.Area(a) == 0 {
		return clone(b), nil
	}
	if geom.Area(b) == 0 {
		return clone(a), nil
	}
	if geom.Envelope(a).TouchesOnSide(geom.Envelope(b)) {
		// Exactly touching boxes provoke hairline gaps in some engines.
		// Pre-dilate both operands so the shared edge overlaps.
		var err error
		if a, err = Buffer(a, touchEpsilon); err != nil {
			return nil, err
		}
		if b, err = Buffer(b, touchEpsilon); err != nil {
			return nil, err
		}
	}

	return booleanOp(clipper.Union, toPaths(a), toPaths(b))
}

// Intersection returns a ∩ b.
func Intersection(a, b geom.MultiPolygon) (geom.MultiPolygon, error) {
	if geom.Area(a) == 0 || geom.Area(b) == 0 {
		return nil, nil
	}

	return booleanOp(clipper.Intersection, toPaths(a), toPaths(b))
}

// Difference returns a − b. Subtracting a zero-area operand yields a
// unchanged.
func Difference(a, b geom.MultiPolygon) (geom.MultiPolygon, error) {
	if geom.Area(a) == 0 {
		return nil, nil
	}
	if geom.Area(b) == 0 {
		return clone(a), nil
	}

	return booleanOp(clipper.Difference, toPaths(a), toPaths(b))
}

// SymDifference returns the symmetric difference of a and b. A zero-area
// operand yields the other operand unchanged.
func SymDifference(a, b geom.MultiPolygon) (geom.MultiPolygon, error) {
	if geom.Area(a) == 0 {
		return clone(b), nil
	}
	if geom.Area(b) == 0 {
		return clone(a), nil
	}

	return booleanOp(clipper.Xor, toPaths(a), toPaths(b))
}

// Sum reduces operands to their union by hierarchical pairwise merging.
// Pairs whose bounding boxes are disjoint are concatenated rather than
// clipped, which keeps the reduction near-linear on boards whose nets are
// spread out.
func Sum(operands []geom.MultiPolygon) (geom.MultiPolygon, error) {
	switch len(operands) {
	case 0:
		return nil, nil
	case 1:
		return clone(operands[0]), nil
	}
	mid := len(operands) / 2
	left, err := Sum(operands[:mid])
	if err != nil {
		return nil, err
	}
	right, err := Sum(operands[mid:])
	if err != nil {
		return nil, err
	}
	if len(left) == 0 {
		return right, nil
	}
	if len(right) == 0 {
		return left, nil
	}
	boxL, boxR := geom.Envelope(left), geom.Envelope(right)
	if !boxL.Intersects(boxR) {
		return append(left, right...), nil
	}

	return Union(left, right)
}

func booleanOp(op clipper.ClipType, subjects, clips clipper.Paths64) (geom.MultiPolygon, error) {
	tree, _, err := clipper.BooleanOp64Tree(op, clipper.NonZero, subjects, clips)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTopology, err)
	}

	return fromTree(tree), nil
}
