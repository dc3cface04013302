package trimpaths

import (
	"github.com/isoroute/isoroute/geom"
)

// segKey identifies a two-point backtrack segment by endpoints and
// reversibility.
type segKey struct {
	a, b       geom.Point
	reversible bool
}

// bag is a multiset of backtrack segments.
type bag map[segKey]int

func newBag(backtracks []geom.DirectedPath) bag {
	b := make(bag, len(backtracks))
	for _, p := range backtracks {
		if len(p.Line) < 2 {
			continue
		}
		b[segKey{a: p.Line.Front(), b: p.Line.Back(), reversible: p.Reversible}]++
	}

	return b
}

func (b bag) clone() bag {
	out := make(bag, len(b))
	for k, n := range b {
		out[k] = n
	}

	return out
}

// take consumes one segment start→end from the bag if present: the
// directed variant first, then the reversible one in either orientation.
func (b bag) take(start, end geom.Point) bool {
	for _, k := range []segKey{
		{a: start, b: end, reversible: false},
		{a: start, b: end, reversible: true},
		{a: end, b: start, reversible: true},
	} {
		if b[k] > 0 {
			b[k]--

			return true
		}
	}

	return false
}

// Trim strips backtrack-derived segments from the trails. The input
// slices are not modified; trails shrunk below two vertices are dropped.
func Trim(toolpaths, backtracks []geom.DirectedPath) []geom.DirectedPath {
	out := make([]geom.DirectedPath, 0, len(toolpaths))
	if len(backtracks) == 0 {
		for _, p := range toolpaths {
			out = append(out, geom.DirectedPath{Line: p.Line.Clone(), Reversible: p.Reversible})
		}

		return out
	}
	remaining := newBag(backtracks)
	for _, p := range toolpaths {
		trail := geom.DirectedPath{Line: p.Line.Clone(), Reversible: p.Reversible}
		trimPath(&trail, remaining)
		if trail.Reversible {
			trail.Line.Reverse()
			trimPath(&trail, remaining)
			trail.Line.Reverse()
		}
		if len(trail.Line) >= 2 {
			out = append(out, trail)
		}
	}

	return out
}

// trimPath shaves trail ends (and, for loops, the best interior span)
// against the backtrack bag. Consumed segments are removed from remaining
// only for the trim actually applied.
func trimPath(trail *geom.DirectedPath, remaining bag) {
	line := trail.Line
	if len(line) < 2 {
		return
	}
	scratch := remaining.clone()

	// Leading segments: removeFromStart vertices get dropped in front.
	removeFromStart := 0
	lengthFromStart := 0.0
	for i := 0; i+1 < len(line); i++ {
		if !scratch.take(line[i], line[i+1]) {
			break
		}
		removeFromStart = i + 1
		lengthFromStart += geom.Dist(line[i], line[i+1])
	}

	// Trailing segments: removeFromEnd is the first index dropped.
	removeFromEnd := len(line)
	lengthFromEnd := 0.0
	for i := len(line) - 1; i > 0; i-- {
		if !scratch.take(line[i-1], line[i]) {
			break
		}
		removeFromEnd = i
		lengthFromEnd += geom.Dist(line[i-1], line[i])
	}

	// For loops, a contiguous interior span may beat both end trims.
	longest := 0.0
	longestStart, longestEnd := 0, 0
	if line.Closed() {
		for current := 0; current+1 < len(line); {
			scratch = remaining.clone()
			for current+1 < len(line) && !scratch.take(line[current], line[current+1]) {
				current++
			}
			if current+1 >= len(line) {
				break
			}
			spanLength := geom.Dist(line[current], line[current+1])
			spanStart := current
			spanEnd := current + 1
			for current++; current+1 < len(line) && scratch.take(line[current], line[current+1]); current++ {
				spanEnd = current + 1
				spanLength += geom.Dist(line[current], line[current+1])
			}
			if spanLength > longest {
				longest = spanLength
				longestStart = spanStart
				longestEnd = spanEnd
			}
		}
	}

	if lengthFromStart+lengthFromEnd > longest {
		for i := removeFromEnd - 1; i+1 < len(line); i++ {
			remaining.take(line[i], line[i+1])
		}
		for i := 0; i < removeFromStart; i++ {
			remaining.take(line[i], line[i+1])
		}
		if removeFromStart > removeFromEnd {
			// Both scans together consumed the whole trail.
			removeFromStart = removeFromEnd
		}
		trail.Line = line[removeFromStart:removeFromEnd].Clone()
	} else {
		for i := longestStart; i < longestEnd; i++ {
			remaining.take(line[i], line[i+1])
		}
		// Rotate the loop open at the removed span.
		opened := make(geom.LineString, 0, len(line))
		opened = append(opened, line[longestEnd:]...)
		opened = append(opened, line[1:longestStart+1]...)
		trail.Line = opened
	}
}
