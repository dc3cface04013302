package surface

import (
	"errors"

	"github.com/isoroute/isoroute/geom"
)

// Sentinel errors for the orchestrator.
var (
	// ErrImportFailed wraps an importer error; the underlying parse
	// failure is attached unchanged.
	ErrImportFailed = errors.New("surface: import failed")

	// ErrNotRendered is returned when geometry is requested before Render
	// or SetConductors has run.
	ErrNotRendered = errors.New("surface: no conductor geometry rendered")
)

// WarningKind classifies a diagnostic the pipeline continued past.
type WarningKind int

const (
	// WarnSelfIntersecting flags self-intersecting imported geometry;
	// results are best effort.
	WarnSelfIntersecting WarningKind = iota

	// WarnClearanceContention flags offset passes that could not reach
	// the requested clearance because conductors sit too close.
	WarnClearanceContention

	// WarnThermalReliefs counts copper-pour holes preserved as their own
	// milled features.
	WarnThermalReliefs

	// WarnNoBridges flags an outline that hosted fewer tabs than asked.
	WarnNoBridges
)

// Warning is one recoverable diagnostic.
type Warning struct {
	Kind   WarningKind
	Detail string
}

// VectorImporter is the boundary to the Gerber/Excellon rasteriser. It is
// not implemented here.
type VectorImporter interface {
	// BoundingBox returns the extent of the artwork in board units.
	BoundingBox() geom.Box

	// Render converts the artwork to polygons. fillClosedLines fills
	// closed zero-width outlines, renderPathsAsShapes strokes open paths
	// to their aperture width, pointsPerCircle bounds arc approximation.
	Render(fillClosedLines, renderPathsAsShapes bool, pointsPerCircle int) (geom.MultiPolygon, error)
}

// Dialect selects the G-code flavour of the downstream emitter.
type Dialect int

const (
	LinuxCNC Dialect = iota
	Mach3
	Mach4
	Custom
)

// TileInfo describes board repetition for the emitter; the planning core
// only carries it through.
type TileInfo struct {
	Rows, Cols int
	DX, DY     float64
	Software   Dialect
}

// Hole is one drill location.
type Hole struct {
	Center   geom.Point
	Diameter float64
}
