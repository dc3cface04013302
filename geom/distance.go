package geom

import "math"

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// DistSq returns the squared Euclidean distance, for comparisons that do
// not need the root.
func DistSq(p, q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y

	return dx*dx + dy*dy
}

// Chebyshev returns max(|Δx|, |Δy|): the time a rapid move takes on a
// machine whose axes travel independently at equal speed.
func Chebyshev(p, q Point) float64 {
	dx := math.Abs(q.X - p.X)
	dy := math.Abs(q.Y - p.Y)

	return math.Max(dx, dy)
}

// Lerp returns the point a fraction t of the way from p to q: t=0 gives p,
// t=1 gives q.
func Lerp(p, q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}
