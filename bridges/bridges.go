package bridges

import (
	"errors"
	"sort"

	"github.com/isoroute/isoroute/geom"
)

// ErrNoBridges indicates the outline is too short to host even one bridge
// of the requested width.
var ErrNoBridges = errors.New("bridges: no segment long enough for a bridge")

// Make returns a copy of ring with bridge vertices inserted, the indices
// of each bridge's first vertex, and the number of requested bridges that
// could not be placed. The tool lifts between index i and i+1 for each
// returned index i.
func Make(ring geom.Ring, count int, width float64) (geom.Ring, []int, int, error) {
	chosen, missed, err := findLongestSegments(ring, count, width)
	if err != nil {
		return ring, nil, count, err
	}
	newRing, starts := insertBridges(ring, chosen, width)

	return newRing, starts, missed, nil
}

type chosenSegment struct {
	index  int
	length float64
}

// findLongestSegments repeatedly takes the longest remaining segment
// until count are chosen or the longest left is shorter than width.
func findLongestSegments(ring geom.Ring, count int, width float64) ([]chosenSegment, int, error) {
	distances := make([]chosenSegment, 0, len(ring)-1)
	for i := 0; i+1 < len(ring); i++ {
		distances = append(distances, chosenSegment{index: i, length: geom.Dist(ring[i], ring[i+1])})
	}

	var output []chosenSegment
	for i := 0; i < count && len(distances) > 0; i++ {
		best := 0
		for j, d := range distances {
			if d.length > distances[best].length {
				best = j
			}
		}
		if distances[best].length < width {
			break // nothing long enough remains
		}
		output = append(output, distances[best])
		distances = append(distances[:best], distances[best+1:]...)
	}
	if len(output) == 0 {
		return nil, count, ErrNoBridges
	}

	return output, count - len(output), nil
}

// insertBridges splits each chosen segment at two points width apart,
// symmetric about its midpoint, and returns the indices of the first
// vertex of each pair.
func insertBridges(ring geom.Ring, chosen []chosenSegment, width float64) (geom.Ring, []int) {
	sort.Slice(chosen, func(i, j int) bool { return chosen[i].index < chosen[j].index })

	out := ring.Clone()
	starts := make([]int, 0, len(chosen))
	for k, seg := range chosen {
		// Every earlier insertion shifted the following indices by two.
		idx := seg.index + 2*k
		a := geom.Lerp(out[idx], out[idx+1], 0.5-(width/seg.length)/2)
		b := geom.Lerp(out[idx], out[idx+1], 0.5+(width/seg.length)/2)
		inserted := make(geom.Ring, 0, len(out)+2)
		inserted = append(inserted, out[:idx+1]...)
		inserted = append(inserted, a, b)
		inserted = append(inserted, out[idx+1:]...)
		out = inserted
		starts = append(starts, idx+1)
	}

	return out, starts
}
