package surface

import (
	"math"

	"github.com/isoroute/isoroute/geom"
)

// plungeSlack is how much larger than the cutter a hole must be before it
// is milled as a circle instead of plunged.
const plungeSlack = 1.001

// MillHoles converts drill locations into tool paths: a hole the cutter
// (nearly) fills becomes a single-point plunge, a larger one a circular
// path of radius (hole − cutter)/2 around the center. stepSize is the
// emitter's depth increment and is passed through untouched by the
// geometry.
func (s *Surface) MillHoles(holes []Hole, cutterDiameter, stepSize float64) []geom.DirectedPath {
	_ = stepSize

	paths := make([]geom.DirectedPath, 0, len(holes))
	for _, hole := range holes {
		if cutterDiameter*plungeSlack >= hole.Diameter {
			paths = append(paths, geom.DirectedPath{
				Line:       geom.LineString{hole.Center},
				Reversible: true,
			})

			continue
		}
		radius := (hole.Diameter - cutterDiameter) / 2
		paths = append(paths, geom.DirectedPath{
			Line:       circlePath(hole.Center, radius, s.opts.PointsPerCircle),
			Reversible: true,
		})
	}

	return paths
}

// circlePath starts east of the center, the direction the tool approaches
// from, and closes on itself.
func circlePath(center geom.Point, radius float64, points int) geom.LineString {
	if points < 4 {
		points = 4
	}
	path := make(geom.LineString, 0, points+1)
	for i := 0; i < points; i++ {
		angle := 2 * math.Pi * float64(i) / float64(points)
		path = append(path, geom.Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
	path = append(path, path[0])

	return path
}
