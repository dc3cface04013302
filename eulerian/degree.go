package eulerian

// VertexDegree counts the edges meeting at a vertex by kind: In and Out
// for directed edges, Bidi for reversible ones.
type VertexDegree struct {
	In, Out, Bidi int
}

// MustStart reports whether a trail of the remaining subgraph is forced to
// start at a vertex with these degrees.
func (d VertexDegree) MustStart() bool {
	return MustStartHelper(d.Out, d.In, d.Bidi)
}

// MustEnd is the mirror predicate: a trail is forced to end here.
func (d VertexDegree) MustEnd() bool {
	return MustStartHelper(d.In, d.Out, d.Bidi)
}

// MustStartHelper decides trail starts from raw degree counts.
//
// A vertex must start a trail when its outward surplus cannot be absorbed
// by reorienting reversible edges (out > in+bidi), or when its total
// degree is odd and the inward side is not already saturated
// (in ≤ out+bidi). Everything else can sit in the middle of a trail.
func MustStartHelper(out, in, bidi int) bool {
	if out > in+bidi {
		return true
	}
	if in > out+bidi {
		return false
	}

	return (out+in+bidi)%2 == 1
}
