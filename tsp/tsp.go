package tsp

import (
	"github.com/isoroute/isoroute/geom"
)

// TourLength returns the total rapid distance of visiting paths in order
// from start: Chebyshev hops from each path's back to the next path's
// front.
func TourLength(paths []geom.DirectedPath, start geom.Point) float64 {
	if len(paths) == 0 {
		return 0
	}
	total := geom.Chebyshev(start, paths[0].Line.Front())
	for i := 1; i < len(paths); i++ {
		total += geom.Chebyshev(paths[i-1].Line.Back(), paths[i].Line.Front())
	}

	return total
}

// NearestNeighbour reorders paths in place greedily from start. Paths may
// be reversed when reversible. The new ordering is kept only when its
// rapid distance is strictly below the incoming ordering's.
func NearestNeighbour(paths []geom.DirectedPath, start geom.Point) {
	if len(paths) == 0 {
		return
	}
	originalLength := TourLength(paths, start)

	remaining := make([]geom.DirectedPath, len(paths))
	copy(remaining, paths)
	ordered := make([]geom.DirectedPath, 0, len(paths))
	newLength := 0.0
	current := start
	for len(remaining) > 0 {
		best := 0
		bestBack := false
		bestDist := geom.Chebyshev(current, remaining[0].Line.Front())
		for i, p := range remaining {
			if d := geom.Chebyshev(current, p.Line.Front()); d < bestDist {
				bestDist, best, bestBack = d, i, false
			}
			if !p.Reversible {
				continue
			}
			if d := geom.Chebyshev(current, p.Line.Back()); d < bestDist {
				bestDist, best, bestBack = d, i, true
			}
		}
		chosen := remaining[best]
		if bestBack {
			chosen.Line = chosen.Line.Reversed()
		}
		newLength += bestDist
		ordered = append(ordered, chosen)
		current = chosen.Line.Back()
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	if newLength < originalLength {
		copy(paths, ordered)
	}
}

// TwoOpt runs NearestNeighbour and then 2-opt span reversal to a local
// optimum. A reversed span reverses each of its paths, so spans
// containing a non-reversible path are never touched.
func TwoOpt(paths []geom.DirectedPath, start geom.Point) {
	NearestNeighbour(paths, start)
	for improved := true; improved; {
		improved = false
		for a := 0; a+3 < len(paths)+1; a++ {
			b := a + 1
			for c := b + 1; c+1 < len(paths); c++ {
				d := c + 1
				oldCost := geom.Chebyshev(paths[a].Line.Back(), paths[b].Line.Front()) +
					geom.Chebyshev(paths[c].Line.Back(), paths[d].Line.Front())
				newCost := geom.Chebyshev(paths[a].Line.Back(), paths[c].Line.Back()) +
					geom.Chebyshev(paths[b].Line.Front(), paths[d].Line.Front())
				if !(oldCost > newCost) {
					continue
				}
				if !spanReversible(paths[b : c+1]) {
					continue
				}
				reverseSpan(paths[b : c+1])
				improved = true
			}
		}
	}
}

func spanReversible(span []geom.DirectedPath) bool {
	for _, p := range span {
		if !p.Reversible {
			return false
		}
	}

	return true
}

// reverseSpan flips the order of the span and the direction of each path
// in it.
func reverseSpan(span []geom.DirectedPath) {
	for i, j := 0, len(span)-1; i < j; i, j = i+1, j-1 {
		span[i], span[j] = span[j], span[i]
	}
	for i := range span {
		span[i].Line = span[i].Line.Reversed()
	}
}
