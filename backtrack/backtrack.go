package backtrack

import (
	"container/heap"
	"sort"

	"github.com/isoroute/isoroute/eulerian"
	"github.com/isoroute/isoroute/geom"
)

// Options carries the machine timing model. G1Speed is the milling feed,
// G0Speed the rapid feed (board units per second); UpTime and DownTime are
// the fixed costs of lifting and plunging the tool; InPerSec is how much
// extra milling length the user accepts per second of rapid time saved.
type Options struct {
	G1Speed  float64
	G0Speed  float64
	UpTime   float64
	DownTime float64
	InPerSec float64
}

// Plan returns the sub-paths to duplicate, in application order and with
// traversal direction resolved. The input paths are not modified. An
// InPerSec of zero returns nil.
func Plan(paths []geom.DirectedPath, opts Options) []geom.DirectedPath {
	if opts.InPerSec == 0 {
		return nil
	}

	// Edges that meet at each vertex; reversible edges are listed at both
	// endpoints. Degrees are tracked separately because they change as
	// backtracks are applied while the edge set does not.
	graph := make(map[geom.Point][]geom.DirectedPath)
	degrees := make(map[geom.Point]*eulerian.VertexDegree)
	degree := func(v geom.Point) *eulerian.VertexDegree {
		d, ok := degrees[v]
		if !ok {
			d = &eulerian.VertexDegree{}
			degrees[v] = d
		}

		return d
	}
	for _, p := range paths {
		if len(p.Line) < 2 {
			continue
		}
		front, back := p.Line.Front(), p.Line.Back()
		graph[front] = append(graph[front], p)
		if _, ok := graph[back]; !ok {
			graph[back] = nil
		}
		if p.Reversible {
			graph[back] = append(graph[back], p)
			degree(front).Bidi++
			degree(back).Bidi++
		} else {
			degree(front).Out++
			degree(back).In++
		}
	}

	vertices := make([]geom.Point, 0, len(degrees))
	for v := range degrees {
		vertices = append(vertices, v)
	}
	sort.Slice(vertices, func(i, j int) bool { return vertices[i].Less(vertices[j]) })

	var backtracks []geom.DirectedPath
	for {
		var candidates []candidate
		for _, v := range vertices {
			if c, ok := nearestEndVertex(graph, v, degrees, opts); ok {
				candidates = append(candidates, c)
			}
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].length < candidates[j].length
		})

		applied := 0
		exhausted := true
		for _, c := range candidates {
			start := c.path[0].Line.Front()
			end := c.path[len(c.path)-1].Line.Back()
			// Degrees may have moved since the sweep; the first stale
			// candidate invalidates the remaining ordering.
			if !canStart(*degrees[start]) || !canEnd(*degrees[end]) {
				exhausted = false

				break
			}
			backtracks = append(backtracks, c.path...)
			if c.path[0].Reversible {
				degrees[start].Bidi++
			} else {
				degrees[start].Out++
			}
			if c.path[len(c.path)-1].Reversible {
				degrees[end].Bidi++
			} else {
				degrees[end].In++
			}
			applied++
		}
		if exhausted || applied == len(candidates) {
			return backtracks
		}
	}
}

// canEnd reports whether one more incoming edge at a vertex with these
// degrees reduces the number of trails needed.
func canEnd(d eulerian.VertexDegree) bool {
	return eulerian.MustStartHelper(d.Out, d.In, d.Bidi)
}

// canStart is the outgoing mirror of canEnd.
func canStart(d eulerian.VertexDegree) bool {
	return eulerian.MustStartHelper(d.In, d.Out, d.Bidi)
}

type candidate struct {
	length float64
	path   []geom.DirectedPath
}

type queueItem struct {
	dist  float64
	point geom.Point
}

type priorityQueue []queueItem

func (q priorityQueue) Len() int { return len(q) }

// Less orders by distance; equal distances pop the lesser point first,
// which keeps the sweep deterministic.
func (q priorityQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}

	return q[i].point.Less(q[j].point)
}
func (q priorityQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *priorityQueue) Push(x interface{}) { *q = append(*q, x.(queueItem)) }
func (q *priorityQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}

type reached struct {
	dist float64
	via  geom.DirectedPath
}

// nearestEndVertex runs the pruned Dijkstra from start to the nearest
// vertex that canEnd, returning the edges to duplicate in traversal order
// and direction. Not useful (start cannot start, or nothing affordable)
// reports ok=false.
func nearestEndVertex(
	graph map[geom.Point][]geom.DirectedPath,
	start geom.Point,
	degrees map[geom.Point]*eulerian.VertexDegree,
	opts Options,
) (candidate, bool) {
	if !canStart(*degrees[start]) {
		return candidate{}, false
	}
	distances := map[geom.Point]reached{start: {}}
	done := make(map[geom.Point]bool)
	queue := &priorityQueue{{dist: 0, point: start}}
	for queue.Len() > 0 {
		current := heap.Pop(queue).(queueItem).point
		if current != start {
			if d, ok := degrees[current]; ok && canEnd(*d) {
				return buildCandidate(start, current, distances), true
			}
		}
		if done[current] {
			continue
		}
		for _, edge := range graph[current] {
			next := edge.Line.Back()
			if edge.Reversible && current == next {
				next = edge.Line.Front()
			}
			if done[next] {
				continue
			}
			dist := distances[current].dist + edge.Line.Length()
			timeWith := dist / opts.G1Speed
			timeWithout := opts.UpTime + geom.Chebyshev(next, start)/opts.G0Speed + opts.DownTime
			timeSaved := timeWithout - timeWith
			if timeSaved < 0 || dist/timeSaved > opts.InPerSec {
				continue // already too far away to pay for itself
			}
			if old, ok := distances[next]; !ok || old.dist > dist {
				distances[next] = reached{dist: dist, via: edge}
			}
			heap.Push(queue, queueItem{dist: distances[next].dist, point: next})
		}
		done[current] = true
	}

	return candidate{}, false
}

// buildCandidate walks the predecessor edges from end back to start,
// reversing reversible edges that were traversed back-to-front.
func buildCandidate(start, end geom.Point, distances map[geom.Point]reached) candidate {
	var reverse []geom.DirectedPath
	for v := end; v != start; {
		e := distances[v].via
		step := geom.DirectedPath{Line: e.Line.Clone(), Reversible: e.Reversible}
		if e.Reversible && v == e.Line.Front() {
			step.Line.Reverse()
		}
		reverse = append(reverse, step)
		v = step.Line.Front()
	}
	path := make([]geom.DirectedPath, 0, len(reverse))
	for i := len(reverse) - 1; i >= 0; i-- {
		path = append(path, reverse[i])
	}

	return candidate{length: distances[end].dist, path: path}
}
