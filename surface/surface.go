package surface

import (
	"fmt"

	"github.com/isoroute/isoroute/boolops"
	"github.com/isoroute/isoroute/geom"
)

// Default knobs.
const (
	// DefaultTolerance is the geometric tolerance in board units, used
	// for voronoi sampling and input simplification.
	DefaultTolerance = 0.0001

	// DefaultPointsPerCircle matches the buffering default.
	DefaultPointsPerCircle = boolops.DefaultPointsPerCircle
)

// Options configures a Surface.
type Options struct {
	// Tolerance is the geometric tolerance in board units.
	Tolerance float64

	// PointsPerCircle bounds arc approximation for rendering and
	// buffering.
	PointsPerCircle int

	// FillClosedLines is passed through to the importer: fill closed
	// zero-width outlines.
	FillClosedLines bool

	// Simplify drops vertices within Tolerance of their neighbours after
	// import, which cuts memory and time at negligible precision loss.
	Simplify bool
}

// Option mutates Options.
type Option func(*Options)

// WithTolerance overrides the geometric tolerance.
func WithTolerance(t float64) Option {
	return func(o *Options) { o.Tolerance = t }
}

// WithPointsPerCircle overrides the arc approximation density.
func WithPointsPerCircle(n int) Option {
	return func(o *Options) { o.PointsPerCircle = n }
}

// WithFillClosedLines asks the importer to fill closed zero-width
// outlines.
func WithFillClosedLines() Option {
	return func(o *Options) { o.FillClosedLines = true }
}

// WithoutSimplify keeps every imported vertex.
func WithoutSimplify() Option {
	return func(o *Options) { o.Simplify = false }
}

// Surface owns the conductor geometry of one layer and the warnings the
// pipeline produced for it. Not safe for concurrent use; use one Surface
// per layer.
type Surface struct {
	opts        Options
	conductors  geom.MultiPolygon
	boundingBox geom.Box
	mask        geom.MultiPolygon
	rendered    bool
	warnings    []Warning
}

// New returns a Surface with the given options applied over defaults.
func New(opts ...Option) *Surface {
	cfg := Options{
		Tolerance:       DefaultTolerance,
		PointsPerCircle: DefaultPointsPerCircle,
		Simplify:        true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = DefaultTolerance
	}

	return &Surface{opts: cfg}
}

// Render imports the layer geometry. Importer failures come back wrapped
// in ErrImportFailed; self-intersecting geometry is recorded as a warning
// and processing continues best effort.
func (s *Surface) Render(importer VectorImporter) error {
	mp, err := importer.Render(s.opts.FillClosedLines, true, s.opts.PointsPerCircle)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImportFailed, err)
	}

	return s.SetConductors(mp, importer.BoundingBox())
}

// SetConductors installs already-rendered geometry, for callers that
// bypass the importer.
func (s *Surface) SetConductors(mp geom.MultiPolygon, boundingBox geom.Box) error {
	if geom.SelfIntersects(mp) {
		s.warn(WarnSelfIntersecting,
			"layer geometry is self-intersecting; tool paths are best effort")
	}
	if s.opts.Simplify {
		simplified, err := boolops.Simplify(mp, s.opts.Tolerance)
		if err != nil {
			return err
		}
		mp = simplified
	}
	s.conductors = mp
	s.boundingBox = boundingBox
	s.rendered = true

	return nil
}

// AddMask intersects the layer with a keep-in mask; offset passes are
// clipped to it from here on.
func (s *Surface) AddMask(mask geom.MultiPolygon) error {
	if !s.rendered {
		return ErrNotRendered
	}
	clipped, err := boolops.Intersection(s.conductors, mask)
	if err != nil {
		return err
	}
	s.conductors = clipped
	s.mask = mask
	s.boundingBox = geom.Envelope(mask)

	return nil
}

// Conductors exposes the layer geometry read-only; the slice must not be
// mutated.
func (s *Surface) Conductors() geom.MultiPolygon { return s.conductors }

// BoundingBox returns the layer extent.
func (s *Surface) BoundingBox() geom.Box { return s.boundingBox }

// Warnings returns the diagnostics collected so far, in order.
func (s *Surface) Warnings() []Warning { return s.warnings }

func (s *Surface) warn(kind WarningKind, format string, args ...interface{}) {
	s.warnings = append(s.warnings, Warning{Kind: kind, Detail: fmt.Sprintf(format, args...)})
}
