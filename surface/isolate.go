package surface

import (
	"math"

	"github.com/isoroute/isoroute/backtrack"
	"github.com/isoroute/isoroute/boolops"
	"github.com/isoroute/isoroute/eulerian"
	"github.com/isoroute/isoroute/geom"
	"github.com/isoroute/isoroute/segmentize"
	"github.com/isoroute/isoroute/trimpaths"
	"github.com/isoroute/isoroute/voronoi"
)

// IsolateConfig parameterises one isolation run.
type IsolateConfig struct {
	// ToolDiameter is the cutter diameter in board units; rings are
	// offset by half of it.
	ToolDiameter float64

	// ExtraPasses adds that many offset rings beyond the first.
	ExtraPasses int

	// Overlap is the fraction of the tool diameter shared between
	// adjacent passes; 0.5 spaces pass centres half a diameter apart.
	Overlap float64

	// Voronoi mills along the maximal-extent region boundaries instead
	// of hugging each trace.
	Voronoi bool

	// PreserveThermalReliefs keeps empty pour holes as milled features in
	// voronoi mode.
	PreserveThermalReliefs bool

	// ClimbMilling locks every cut's direction, forbidding reversal.
	ClimbMilling bool

	// EulerianPaths rebuilds the attached rings into a minimum trail
	// cover; disabling it emits the raw attached rings.
	EulerianPaths bool

	// Backtrack is the duplicate-segment planner's timing model; a zero
	// InPerSec disables planning.
	Backtrack backtrack.Options
}

// DefaultIsolateConfig returns the config matching common isolation runs:
// one pass, half-diameter overlap, Eulerian trail construction on,
// backtracking off.
func DefaultIsolateConfig(toolDiameter float64) IsolateConfig {
	return IsolateConfig{
		ToolDiameter:  toolDiameter,
		Overlap:       0.5,
		EulerianPaths: true,
	}
}

// Isolate produces the tool paths that electrically separate every
// conductor of the layer. Paths come back unordered; run OptimiseOrder on
// them before emission.
func (s *Surface) Isolate(cfg IsolateConfig) ([]geom.DirectedPath, error) {
	if !s.rendered {
		return nil, ErrNotRendered
	}
	grow := cfg.ToolDiameter / 2

	milling := make(geom.MultiPolygon, len(s.conductors))
	copy(milling, s.conductors)
	if cfg.Voronoi && cfg.PreserveThermalReliefs {
		count, err := preserveThermalReliefs(&milling, math.Max(grow, s.opts.Tolerance))
		if err != nil {
			return nil, err
		}
		if count > 0 {
			s.warn(WarnThermalReliefs, "%d thermal reliefs preserved as milled features", count)
		}
	}

	// The box ring is a voronoi generator too, so a region along the board
	// edge stops halfway to it. Push the ring out far enough that the
	// outermost pass still fits inside its own region.
	sampling := s.voronoiSampling(grow)
	vorMargin := 2*grow*float64(cfg.ExtraPasses+1) + 2*sampling
	regions, err := voronoi.Partition(milling, s.boundingBox.Expand(vorMargin), sampling)
	if err != nil {
		return nil, err
	}

	var toolpath geom.MultiLineString
	contention := false
	for i := range milling {
		rings, cont, err := s.offsetPolygon(milling[i], regions[i], grow, cfg)
		if err != nil {
			return nil, err
		}
		for _, mp := range rings {
			attachPolygons(mp, &toolpath, grow*2)
		}
		contention = contention || cont
	}
	if contention {
		s.warn(WarnClearanceContention,
			"requested clearance could not be fully achieved; smaller effective clearance used")
	}

	paths := make([]geom.DirectedPath, 0, len(toolpath))
	for _, ls := range toolpath {
		paths = append(paths, geom.DirectedPath{Line: ls, Reversible: !cfg.ClimbMilling})
	}
	if !cfg.EulerianPaths {
		return paths, nil
	}

	segments := segmentize.Paths(paths)
	backtracks := backtrack.Plan(segments, cfg.Backtrack)
	trails := eulerian.Trails(append(segments, backtracks...))

	return trimpaths.Trim(trails, backtracks), nil
}

// voronoiSampling picks the boundary sampling distance: fine enough that
// bisector scalloping stays well under the isolation width, coarse
// enough to keep the diagram tractable.
func (s *Surface) voronoiSampling(grow float64) float64 {
	return math.Max(s.opts.Tolerance, grow/4)
}

// offsetPolygon emits the ladder of offset rings for one conductor, per
// pass. The contention flag reports any pass whose grown shape had to be
// clipped back.
func (s *Surface) offsetPolygon(input, vor geom.Polygon, grow float64, cfg IsolateConfig) ([]geom.MultiPolygon, bool, error) {
	base := input
	if cfg.Voronoi {
		base = vor
	}
	clip := s.mask
	if clip == nil {
		clip = geom.MultiPolygon{{Outer: s.boundingBox.Expand(grow * float64(cfg.ExtraPasses+1)).Ring()}}
	}
	masked, err := boolops.Intersection(geom.MultiPolygon{base}, clip)
	if err != nil {
		return nil, false, err
	}

	steps := cfg.ExtraPasses + 1
	stride := 2 * grow * (1 - cfg.Overlap)
	var out []geom.MultiPolygon
	contention := false
	for i := 0; i < steps; i++ {
		var expandBy float64
		if !cfg.Voronoi {
			expandBy = grow + float64(i)*stride
		} else {
			// Voronoi boundaries are shared between regions, so only the
			// inward half of the ladder is needed.
			factor := (1-float64(steps))/2 + float64(i)
			if factor > 0 {
				continue
			}
			expandBy = stride * factor
		}

		if expandBy == 0 {
			out = append(out, masked)

			continue
		}
		grown, err := boolops.Buffer(masked, expandBy, boolops.WithPointsPerCircle(s.opts.PointsPerCircle))
		if err != nil {
			return nil, false, err
		}
		var ring geom.MultiPolygon
		if !cfg.Voronoi {
			ring, err = boolops.Intersection(grown, geom.MultiPolygon{vor})
		} else {
			ring, err = boolops.Union(grown, geom.MultiPolygon{input})
		}
		if err != nil {
			return nil, false, err
		}
		out = append(out, ring)
		if !sameArea(grown, ring) {
			contention = true
		}
	}

	return out, contention, nil
}

// sameArea approximates shape equality by area; a pass either clips the
// grown shape to its region or unions the conductor back into it, so a
// changed pass always differs in area.
func sameArea(a, b geom.MultiPolygon) bool {
	areaA, areaB := geom.Area(a), geom.Area(b)
	scale := math.Max(1, math.Max(areaA, areaB))

	return math.Abs(areaA-areaB) <= 1e-9*scale
}

// preserveThermalReliefs appends, as standalone features, every hole
// whose shrunk interior touches no copper: those vias stay thermally
// connected unless their relief ring is milled too.
func preserveThermalReliefs(milling *geom.MultiPolygon, grow float64) (int, error) {
	var additions geom.MultiPolygon
	count := 0
	for _, poly := range *milling {
		for _, inner := range poly.Inners {
			filled := geom.Polygon{Outer: inner.Reversed()}
			shrunk, err := boolops.Buffer(geom.MultiPolygon{filled}, -grow)
			if err != nil {
				return count, err
			}
			if geom.Area(shrunk) == 0 {
				continue
			}
			overlap, err := boolops.Intersection(shrunk, *milling)
			if err != nil {
				return count, err
			}
			if geom.Area(overlap) == 0 {
				count++
				additions = append(additions, shrunk...)
			}
		}
	}
	*milling = append(*milling, additions...)

	return count, nil
}
