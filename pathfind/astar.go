package pathfind

import (
	"container/heap"

	"github.com/isoroute/isoroute/geom"
)

// Unlimited disables the tries budget.
const Unlimited = -1

type searchItem struct {
	f     float64
	point geom.Point
}

type searchQueue []searchItem

func (q searchQueue) Len() int { return len(q) }
func (q searchQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}

	return q[i].point.Less(q[j].point)
}
func (q searchQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *searchQueue) Push(x interface{}) { *q = append(*q, x.(searchItem)) }
func (q *searchQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}

// FindPath returns a path from start to goal through the free space whose
// length does not exceed maxPathLength. maxTries caps the number of
// visibility and neighbour tests (Unlimited disables the cap); when the
// budget runs out, the goal is unreachable, or either point is outside
// the surface, ErrNoPath is returned.
func (s *Surface) FindPath(start, goal geom.Point, maxPathLength float64, maxTries int) (geom.LineString, error) {
	if maxTries != Unlimited && maxTries <= 0 {
		return nil, ErrNoPath
	}
	s.budgeted = maxTries != Unlimited
	s.tries = maxTries

	startKey, ok := s.InSurface(start)
	if !ok {
		return nil, ErrNoPath
	}
	goalKey, ok := s.InSurface(goal)
	if !ok || startKey != goalKey {
		// Goal outside the surface or in a region the start cannot reach.
		return nil, ErrNoPath
	}

	return s.findPath(start, goal, maxPathLength, startKey)
}

func (s *Surface) findPath(start, goal geom.Point, maxPathLength float64, key SearchKey) (geom.LineString, error) {
	// A direct connection also covers start == goal.
	if !s.decrementTries() {
		return nil, ErrNoPath
	}
	if s.edgeVisible(start, goal) && geom.DistSq(start, goal) < maxPathLength*maxPathLength {
		return geom.LineString{start, goal}, nil
	}

	waypoints := s.vertices(key)
	openSet := &searchQueue{{f: geom.Dist(start, goal), point: start}}
	closedSet := make(map[geom.Point]bool)
	cameFrom := make(map[geom.Point]geom.Point)
	gScore := map[geom.Point]float64{start: 0}

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(searchItem).point
		if current == goal {
			return buildPath(current, cameFrom), nil
		}
		if closedSet[current] {
			continue
		}
		budget := maxPathLength - gScore[current]
		for _, neighbor := range neighborCandidates(start, goal, waypoints) {
			if neighbor == current {
				continue
			}
			if !s.decrementTries() {
				return nil, ErrNoPath
			}
			if geom.Dist(current, neighbor)+geom.Dist(neighbor, goal) > budget {
				continue
			}
			if !s.decrementTries() {
				return nil, ErrNoPath
			}
			if !s.edgeVisible(current, neighbor) {
				continue
			}
			tentative := gScore[current] + geom.Dist(current, neighbor)
			if old, seen := gScore[neighbor]; !seen || tentative < old {
				cameFrom[neighbor] = current
				gScore[neighbor] = tentative
				heap.Push(openSet, searchItem{f: tentative + geom.Dist(neighbor, goal), point: neighbor})
			}
		}
		closedSet[current] = true
	}

	return nil, ErrNoPath
}

// neighborCandidates lists the start, the goal, then every waypoint, in
// the stable order the memoised vertex list provides.
func neighborCandidates(start, goal geom.Point, waypoints []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(waypoints)+2)
	out = append(out, start, goal)
	out = append(out, waypoints...)

	return out
}

// buildPath walks the predecessor chain back from current; the result
// always has at least two points.
func buildPath(current geom.Point, cameFrom map[geom.Point]geom.Point) geom.LineString {
	var reversed geom.LineString
	for {
		reversed = append(reversed, current)
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		current = prev
	}
	reversed.Reverse()

	return reversed
}
