package boolops

import (
	"fmt"

	clipper "github.com/go-clipper/clipper2/port"

	"github.com/isoroute/isoroute/geom"
)

// Simplify drops polygon vertices within epsilon of the shape they
// define. Epsilon ≤ 0 returns the input unchanged.
func Simplify(mp geom.MultiPolygon, epsilon float64) (geom.MultiPolygon, error) {
	if epsilon <= 0 || len(mp) == 0 {
		return clone(mp), nil
	}
	simplified, err := clipper.SimplifyPaths64(toPaths(mp), epsilon*Scale, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTopology, err)
	}

	return booleanOp(clipper.Union, simplified, nil)
}

// SimplifyLine drops line-string vertices within epsilon of the polyline.
// The endpoints are always kept.
func SimplifyLine(ls geom.LineString, epsilon float64) (geom.LineString, error) {
	if epsilon <= 0 || len(ls) < 3 {
		return ls.Clone(), nil
	}
	simplified, err := clipper.SimplifyPath64(lineToPath(ls), epsilon*Scale, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTopology, err)
	}
	out := make(geom.LineString, 0, len(simplified))
	for _, pt := range simplified {
		out = append(out, fromPoint64(pt))
	}

	return out, nil
}
