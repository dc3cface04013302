// Package eulerian covers a bag of directed and reversible segments with
// the minimum number of open trails, so the milling tool lifts off as few
// times as the graph allows.
//
// Input edges are paths: each contributes one edge between its front and
// back points (interior vertices ride along). A reversible edge may be
// traversed in either direction and is oriented on the fly; a directed
// edge must be cut front-to-back.
//
// For a mixed multigraph the minimum trail count per connected component
// is max(1, excess/2), where excess counts vertices whose degrees force a
// trail to start or end there. MustStartHelper is that per-vertex
// predicate: with out-, in-, and bidirectional degree counts, a vertex
// must start a trail when out exceeds in+bidi, or when its total degree is
// odd and in does not exceed out+bidi.
//
// Trails runs a greedy Hierholzer walk per weakly connected component
// (components come from a disjoint-set over edge endpoints): start at a
// must-start vertex of the remaining subgraph when one exists, follow
// usable edges until stuck, then repeatedly walk closed loops from
// vertices already on the trail and splice them in. Edge choice is
// deterministic — lowest insertion index, directed before reversible.
//
// Complexity: O(E·α(V)) for components, O(V log V) for the deterministic
// ordering, O(E) for the walks; splicing touches each edge once.
package eulerian
