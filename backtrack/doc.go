// Package backtrack decides which cut segments to traverse twice so that
// the cut graph needs fewer Eulerian trails — trading extra milling
// distance for saved rapid moves and tool lifts.
//
// A vertex with surplus outgoing (or odd) degree forces a trail to start
// there; its mirror forces an end. Every such forced start costs one tool
// lift plus a rapid move. Plan runs, from each vertex that can usefully
// gain an outgoing edge, a Dijkstra search through the existing edges to
// the nearest vertex that can usefully gain an incoming edge. A candidate
// is only followed while it pays for itself:
//
//	timeWith    = pathLength / G1Speed
//	timeWithout = UpTime + chebyshev(start, vertex)/G0Speed + DownTime
//	timeSaved   = timeWithout − timeWith
//
// and it is discarded when timeSaved < 0 or pathLength/timeSaved exceeds
// InPerSec, the caller's exchange rate of extra milling length per saved
// second.
//
// Feasible candidates are applied shortest first, re-checking both
// endpoints' degrees before each application; the first stale candidate
// restarts the sweep. InPerSec == 0 disables the planner entirely.
//
// Vertices are processed in lexicographic order, so the result is
// deterministic for identical input.
package backtrack
