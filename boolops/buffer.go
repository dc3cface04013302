package boolops

import (
	"fmt"
	"math"

	clipper "github.com/go-clipper/clipper2/port"

	"github.com/isoroute/isoroute/geom"
)

// DefaultPointsPerCircle is the number of segments approximating a full
// circle in round joins and end caps.
const DefaultPointsPerCircle = 30

// Options tunes buffering.
type Options struct {
	// PointsPerCircle is the arc approximation density. Values below 4 are
	// clamped to 4.
	PointsPerCircle int
}

// Option mutates Options.
type Option func(*Options)

// WithPointsPerCircle overrides the arc approximation density.
func WithPointsPerCircle(n int) Option {
	return func(o *Options) { o.PointsPerCircle = n }
}

func buildOptions(opts []Option) Options {
	cfg := Options{PointsPerCircle: DefaultPointsPerCircle}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.PointsPerCircle < 4 {
		cfg.PointsPerCircle = 4
	}

	return cfg
}

// arcTolerance converts a points-per-circle density into the engine's
// maximum sagitta, in grid units, for a radius of |delta| board units.
func arcTolerance(delta float64, pointsPerCircle int) float64 {
	tol := math.Abs(delta) * Scale * (1 - math.Cos(math.Pi/float64(pointsPerCircle)))
	if tol <= 0 {
		tol = 0.25
	}

	return tol
}

// Buffer grows (or, negative, shrinks) mp by distance, with round joins.
// Distance 0 returns the input unchanged — engines commonly return empty
// here, the wrapper must not.
func Buffer(mp geom.MultiPolygon, distance float64, opts ...Option) (geom.MultiPolygon, error) {
	if distance == 0 || len(mp) == 0 {
		return clone(mp), nil
	}
	cfg := buildOptions(opts)

	return inflateClosed(toPaths(mp), distance, clipper.Round, cfg)
}

// BufferMiter is Buffer with miter joins, used where grown corners must
// stay outside the original corner (path-finding tolerance growth).
func BufferMiter(mp geom.MultiPolygon, distance float64, opts ...Option) (geom.MultiPolygon, error) {
	if distance == 0 || len(mp) == 0 {
		return clone(mp), nil
	}
	cfg := buildOptions(opts)

	return inflateClosed(toPaths(mp), distance, clipper.Miter, cfg)
}

// BufferRing buffers a single closed ring treated as a filled polygon.
func BufferRing(r geom.Ring, distance float64, opts ...Option) (geom.MultiPolygon, error) {
	return Buffer(geom.MultiPolygon{{Outer: r.Clone()}}, distance, opts...)
}

// BufferMiterRing buffers a single closed ring with miter joins.
func BufferMiterRing(r geom.Ring, distance float64, opts ...Option) (geom.MultiPolygon, error) {
	return BufferMiter(geom.MultiPolygon{{Outer: r.Clone()}}, distance, opts...)
}

// BufferLine grows an open line string into a polygon of half-width
// distance with round caps. Distance 0 yields nil: a line has no area.
func BufferLine(ls geom.LineString, distance float64, opts ...Option) (geom.MultiPolygon, error) {
	return BufferLines(geom.MultiLineString{ls}, distance, opts...)
}

// BufferLines grows every open line string of mls by distance. The engine
// offsets open paths directly, so no Eulerian pre-decomposition is needed.
func BufferLines(mls geom.MultiLineString, distance float64, opts ...Option) (geom.MultiPolygon, error) {
	if distance == 0 || len(mls) == 0 {
		return nil, nil
	}
	cfg := buildOptions(opts)
	var paths clipper.Paths64
	for _, ls := range mls {
		if len(ls) < 2 {
			continue
		}
		paths = append(paths, lineToPath(ls))
	}
	inflated, err := clipper.InflatePaths64(paths, distance*Scale, clipper.Round, clipper.OpenRound,
		clipper.OffsetOptions{MiterLimit: 2.0, ArcTolerance: arcTolerance(distance, cfg.PointsPerCircle)})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTopology, err)
	}

	return booleanOp(clipper.Union, inflated, nil)
}

func inflateClosed(paths clipper.Paths64, distance float64, join clipper.JoinType, cfg Options) (geom.MultiPolygon, error) {
	inflated, err := clipper.InflatePaths64(paths, distance*Scale, join, clipper.ClosedPolygon,
		clipper.OffsetOptions{MiterLimit: 2.0, ArcTolerance: arcTolerance(distance, cfg.PointsPerCircle)})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTopology, err)
	}
	// Re-union to resolve self-overlaps the offset may create and to
	// rebuild hole nesting.
	return booleanOp(clipper.Union, inflated, nil)
}
