package surface

import (
	"github.com/isoroute/isoroute/boolops"
	"github.com/isoroute/isoroute/geom"
	"github.com/isoroute/isoroute/tsp"
)

// OptimiseOrder returns the paths reordered (and reversed where allowed)
// to minimise rapid travel from start: nearest-neighbour, optionally
// polished by 2-opt. The input slice is left untouched.
func OptimiseOrder(paths []geom.DirectedPath, start geom.Point, use2opt bool) []geom.DirectedPath {
	out := make([]geom.DirectedPath, len(paths))
	copy(out, paths)
	if use2opt {
		tsp.TwoOpt(out, start)
	} else {
		tsp.NearestNeighbour(out, start)
	}

	return out
}

// SimplifyPaths drops vertices within the surface tolerance of each final
// path, the last step before emission.
func (s *Surface) SimplifyPaths(paths []geom.DirectedPath) ([]geom.DirectedPath, error) {
	out := make([]geom.DirectedPath, 0, len(paths))
	for _, p := range paths {
		line, err := boolops.SimplifyLine(p.Line, s.opts.Tolerance)
		if err != nil {
			return nil, err
		}
		out = append(out, geom.DirectedPath{Line: line, Reversible: p.Reversible})
	}

	return out, nil
}
