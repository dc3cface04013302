package segmentize

import (
	"sort"

	"github.com/isoroute/isoroute/geom"
)

// MergeEpsilon is the default near-equality distance in board units.
const MergeEpsilon = 1e-5

// MergeNearPoints rewrites every vertex of paths through a representative
// map that collapses point pairs within distance of each other, then drops
// the consecutive duplicates the rewrite can create. Returns the number of
// point rewrites performed.
func MergeNearPoints(paths []geom.DirectedPath, distance float64) int {
	rep := make(map[geom.Point]geom.Point)
	for _, p := range paths {
		for _, pt := range p.Line {
			rep[pt] = pt
		}
	}
	merged := mergeRepresentatives(rep, distance)
	if merged == 0 {
		return 0
	}
	for i := range paths {
		line := paths[i].Line[:0]
		for _, pt := range paths[i].Line {
			pt = rep[pt]
			if len(line) > 0 && line[len(line)-1] == pt {
				continue // collapse duplicates created by the rewrite
			}
			line = append(line, pt)
		}
		paths[i].Line = line
	}

	return merged
}

// mergeRepresentatives collapses near pairs inside the map. The scan runs
// in sorted point order; for each point only candidates whose X lies
// within distance of the current representative need examining.
func mergeRepresentatives(rep map[geom.Point]geom.Point, distance float64) int {
	keys := make([]geom.Point, 0, len(rep))
	for pt := range rep {
		keys = append(keys, pt)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	merged := 0
	distSq := distance * distance
	for i := range keys {
		ri := rep[keys[i]]
		for j := i + 1; j < len(keys) && keys[j].X <= ri.X+distance; j++ {
			rj := rep[keys[j]]
			if rj != ri && geom.DistSq(ri, rj) <= distSq {
				merged++
				rep[keys[j]] = ri
			}
		}
	}

	return merged
}
