// Package scc computes strongly connected components of the mixed
// (directed plus reversible) path graphs that appear between segmentization
// and trail construction.
//
// Each input path contributes an arc from its front point to its back
// point; a reversible path contributes the reverse arc too, and loops are
// permitted. Components returns Tarjan's components as lists of points, in
// deterministic order: vertices are visited in lexicographic point order.
//
// Complexity: O(V + E) time, O(V) space on top of the adjacency map.
package scc
