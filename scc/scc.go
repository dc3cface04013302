package scc

import (
	"sort"

	"github.com/isoroute/isoroute/geom"
)

type tarjanState struct {
	index   int
	stack   []geom.Point
	indices map[geom.Point]int
	lowLink map[geom.Point]int
	onStack map[geom.Point]bool
	graph   map[geom.Point][]geom.Point
	result  [][]geom.Point
}

// Components returns the strongly connected components of the vertex graph
// induced by paths. Directed paths contribute one arc front→back;
// reversible paths contribute both directions. Every endpoint appears in
// exactly one component.
func Components(paths []geom.DirectedPath) [][]geom.Point {
	st := &tarjanState{
		indices: make(map[geom.Point]int),
		lowLink: make(map[geom.Point]int),
		onStack: make(map[geom.Point]bool),
		graph:   make(map[geom.Point][]geom.Point),
	}
	for _, p := range paths {
		if len(p.Line) == 0 {
			continue
		}
		front, back := p.Line.Front(), p.Line.Back()
		st.graph[front] = append(st.graph[front], back)
		if _, ok := st.graph[back]; !ok {
			st.graph[back] = nil
		}
		if p.Reversible {
			st.graph[back] = append(st.graph[back], front)
		}
	}

	vertices := make([]geom.Point, 0, len(st.graph))
	for v := range st.graph {
		vertices = append(vertices, v)
	}
	sort.Slice(vertices, func(i, j int) bool { return vertices[i].Less(vertices[j]) })

	for _, v := range vertices {
		if _, seen := st.indices[v]; !seen {
			st.strongConnect(v)
		}
	}

	return st.result
}

func (st *tarjanState) strongConnect(v geom.Point) {
	st.indices[v] = st.index
	st.lowLink[v] = st.index
	st.index++
	st.stack = append(st.stack, v)
	st.onStack[v] = true

	for _, w := range st.graph[v] {
		if _, seen := st.indices[w]; !seen {
			st.strongConnect(w)
			if st.lowLink[w] < st.lowLink[v] {
				st.lowLink[v] = st.lowLink[w]
			}
		} else if st.onStack[w] {
			// The index, not the low link: arcs to a finished component
			// must be ignored, per Tarjan's original formulation.
			if st.indices[w] < st.lowLink[v] {
				st.lowLink[v] = st.indices[w]
			}
		}
	}

	if st.lowLink[v] == st.indices[v] {
		var component []geom.Point
		for {
			w := st.stack[len(st.stack)-1]
			st.stack = st.stack[:len(st.stack)-1]
			st.onStack[w] = false
			component = append(component, w)
			if w == v {
				break
			}
		}
		st.result = append(st.result, component)
	}
}
